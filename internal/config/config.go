// Package config resolves workspace credentials and client settings from
// environment variables, an optional user config file, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Environments lists the deployment targets this tool knows about.
var Environments = []string{"dev", "test", "prod"}

// Config holds resolved settings for a run.
type Config struct {
	Host        string            `mapstructure:"host"`
	Token       string            `mapstructure:"token"`
	Hosts       map[string]string `mapstructure:"hosts"` // per-environment host overrides
	DefaultEnv  string            `mapstructure:"default_environment"`
	HTTPTimeout time.Duration     `mapstructure:"http_timeout"`
}

// ErrMissingCredentials is returned when no host or token could be resolved.
var ErrMissingCredentials = errors.New(
	"workspace host and token are required; set DATABRICKS_HOST and DATABRICKS_TOKEN " +
		"environment variables or provide --host and --token flags")

// Load reads configuration with the following precedence (highest first):
// environment variables (DATABRICKS_HOST, DATABRICKS_TOKEN), the user
// config file (~/.config/dbxverify/config.yaml), built-in defaults.
// Flag overrides are applied by the caller on top of the result.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("http_timeout", "30s")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	_ = v.BindEnv("host", "DATABRICKS_HOST")
	_ = v.BindEnv("token", "DATABRICKS_TOKEN")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// HostFor returns the host to use for an environment: the global host if
// set, otherwise the per-environment entry from the config file.
func (c *Config) HostFor(env string) string {
	if c.Host != "" {
		return c.Host
	}
	return c.Hosts[env]
}

// Resolve applies flag overrides and returns the credentials for env.
// Missing host or token is a configuration error; no check may run.
func (c *Config) Resolve(env, hostFlag, tokenFlag string) (host, token string, err error) {
	host = hostFlag
	if host == "" {
		host = c.HostFor(env)
	}
	token = tokenFlag
	if token == "" {
		token = c.Token
	}
	if host == "" || token == "" {
		return "", "", ErrMissingCredentials
	}
	return host, token, nil
}

// DefaultEnvironment returns the environment to preselect in interactive
// mode: the config file's default_environment when it names a known target,
// otherwise the first known environment.
func (c *Config) DefaultEnvironment() string {
	if ValidEnvironment(c.DefaultEnv) {
		return c.DefaultEnv
	}
	return Environments[0]
}

// ValidEnvironment reports whether env is a known deployment target.
func ValidEnvironment(env string) bool {
	for _, e := range Environments {
		if e == env {
			return true
		}
	}
	return false
}

// userConfigDir returns the XDG config directory for dbxverify.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dbxverify")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "dbxverify")
	}
	return filepath.Join(home, ".config", "dbxverify")
}
