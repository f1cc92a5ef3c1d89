package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbxverify/dbxverify/internal/config"
)

// osExit is a copy of os.Exit that can be mocked in tests
var osExit = os.Exit

// RootFlags contains the flags for a validation run
type RootFlags struct {
	Env         string
	Host        string
	Token       string
	UseCase     string
	ValidateAll bool
	SmokeTest   bool
	OutputJSON  string
	Format      string
	NoColor     bool
	Verbose     bool
}

// NewRootCmd creates the root command for the CLI
func NewRootCmd() *cobra.Command {
	flags := &RootFlags{}

	cmd := &cobra.Command{
		Use:   "dbxverify",
		Short: "Verify Databricks bundle deployments",
		Long: `dbxverify - Databricks Deployment Verification

Checks that notebooks and clusters are correctly deployed to a Databricks
workspace after a bundle deployment.

  - Run without arguments to launch the interactive TUI.
  - Run with --env to validate an environment headlessly.
  - Use --smoke-test for a fast connectivity check.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Validate the dev deployment (shared folder + cluster)
  dbxverify --env dev

  # Validate everything including all use cases
  dbxverify --env test --validate-all

  # Validate a single use case and save the report
  dbxverify --env prod --use-case usecase-1 --output-json report.json

  # Fast connectivity check only
  dbxverify --env dev --smoke-test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(flags); err != nil {
				return err
			}
			return runValidate(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.Env, "env", "", "Environment to validate (dev, test, prod)")
	cmd.Flags().StringVar(&flags.Host, "host", "", "Workspace host URL (overrides DATABRICKS_HOST)")
	cmd.Flags().StringVar(&flags.Token, "token", "", "Workspace access token (overrides DATABRICKS_TOKEN)")
	cmd.Flags().StringVar(&flags.UseCase, "use-case", "", "Use case to validate (usecase-1, usecase-2, all)")
	cmd.Flags().BoolVar(&flags.ValidateAll, "validate-all", false, "Validate every known use case")
	cmd.Flags().BoolVar(&flags.SmokeTest, "smoke-test", false, "Run only the connectivity smoke check")
	cmd.Flags().StringVar(&flags.OutputJSON, "output-json", "", "Write the full JSON report to a file")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "text", "Console output format: text, json, markdown")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colorized output")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable request diagnostics")

	_ = cmd.MarkFlagRequired("env")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(NewCompletionCmd(cmd))

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	return cmd
}

func validateFlags(flags *RootFlags) error {
	if !config.ValidEnvironment(flags.Env) {
		return fmt.Errorf("invalid --env %q (valid: %s)", flags.Env, strings.Join(config.Environments, ", "))
	}

	if flags.UseCase != "" && flags.UseCase != "all" {
		known := false
		for _, uc := range validationUseCases() {
			if uc == flags.UseCase {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("invalid --use-case %q (valid: %s, all)",
				flags.UseCase, strings.Join(validationUseCases(), ", "))
		}
	}

	return nil
}

// Execute runs the CLI command
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
