package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file
	t.Setenv("DATABRICKS_HOST", "https://adb-1.azuredatabricks.net")
	t.Setenv("DATABRICKS_TOKEN", "dapi123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != "https://adb-1.azuredatabricks.net" {
		t.Errorf("host = %q", cfg.Host)
	}
	if cfg.Token != "dapi123" {
		t.Errorf("token = %q", cfg.Token)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("timeout = %s, want default 30s", cfg.HTTPTimeout)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DATABRICKS_HOST", "")
	t.Setenv("DATABRICKS_TOKEN", "")

	configDir := filepath.Join(dir, "dbxverify")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
hosts:
  dev: https://adb-dev.azuredatabricks.net
  prod: https://adb-prod.azuredatabricks.net
token: dapi-from-file
default_environment: prod
http_timeout: 10s
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.HostFor("dev"); got != "https://adb-dev.azuredatabricks.net" {
		t.Errorf("HostFor(dev) = %q", got)
	}
	if got := cfg.HostFor("test"); got != "" {
		t.Errorf("HostFor(test) = %q, want empty", got)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("timeout = %s, want 10s", cfg.HTTPTimeout)
	}
	if got := cfg.DefaultEnvironment(); got != "prod" {
		t.Errorf("DefaultEnvironment() = %q, want prod", got)
	}
}

func TestDefaultEnvironment_Fallback(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"unset", Config{}, "dev"},
		{"unknown", Config{DefaultEnv: "staging"}, "dev"},
		{"known", Config{DefaultEnv: "test"}, "test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DefaultEnvironment(); got != tt.want {
				t.Errorf("DefaultEnvironment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "dbxverify")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("host: https://from-file\ntoken: file-token\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DATABRICKS_HOST", "https://from-env")
	t.Setenv("DATABRICKS_TOKEN", "env-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "https://from-env" {
		t.Errorf("host = %q, want env var to win", cfg.Host)
	}
	if cfg.Token != "env-token" {
		t.Errorf("token = %q, want env var to win", cfg.Token)
	}
}

func TestResolve(t *testing.T) {
	cfg := &Config{
		Token: "cfg-token",
		Hosts: map[string]string{"dev": "https://cfg-dev"},
	}

	tests := []struct {
		name      string
		env       string
		hostFlag  string
		tokenFlag string
		wantHost  string
		wantToken string
		wantErr   bool
	}{
		{"flags win", "dev", "https://flag", "flag-token", "https://flag", "flag-token", false},
		{"config fallback", "dev", "", "", "https://cfg-dev", "cfg-token", false},
		{"unknown env without host", "test", "", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, token, err := cfg.Resolve(tt.env, tt.hostFlag, tt.tokenFlag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if host != tt.wantHost || token != tt.wantToken {
				t.Errorf("got (%q, %q), want (%q, %q)", host, token, tt.wantHost, tt.wantToken)
			}
		})
	}
}

func TestResolve_MissingCredentials(t *testing.T) {
	cfg := &Config{}
	_, _, err := cfg.Resolve("dev", "", "")
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestValidEnvironment(t *testing.T) {
	for _, env := range []string{"dev", "test", "prod"} {
		if !ValidEnvironment(env) {
			t.Errorf("expected %q to be valid", env)
		}
	}
	for _, env := range []string{"", "staging", "DEV"} {
		if ValidEnvironment(env) {
			t.Errorf("expected %q to be invalid", env)
		}
	}
}
