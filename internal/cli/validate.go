package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/dbxverify/dbxverify/internal/config"
	"github.com/dbxverify/dbxverify/internal/logger"
	"github.com/dbxverify/dbxverify/internal/validation"
	"github.com/dbxverify/dbxverify/internal/workspace"
)

func validationUseCases() []string {
	return validation.UseCases
}

// selectUseCases resolves the --use-case / --validate-all flags into the
// list of use-case folders to check.
func selectUseCases(flags *RootFlags) []string {
	if flags.ValidateAll || flags.UseCase == "all" {
		return validationUseCases()
	}
	if flags.UseCase != "" {
		return []string{flags.UseCase}
	}
	return nil
}

func runValidate(ctx context.Context, flags *RootFlags) error {
	opts, err := NewReportOptions(flags)
	if err != nil {
		return fmt.Errorf("invalid report options: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	host, token, err := cfg.Resolve(flags.Env, flags.Host, flags.Token)
	if err != nil {
		return err
	}

	level := "warn"
	if flags.Verbose {
		level = "debug"
	}
	log := logger.New(level)

	client := workspace.NewClient(host, token,
		workspace.WithTimeout(cfg.HTTPTimeout),
		workspace.WithLogger(log),
	)

	text := &TextFormatter{ColorEnabled: opts.ColorEnabled}
	var vopts []validation.Option
	if opts.Format == FormatText {
		vopts = append(vopts, validation.WithNotify(func(r validation.Result) {
			fmt.Print(text.FormatResult(r))
		}))
	}

	v := validation.New(client, flags.Env, vopts...)

	if flags.SmokeTest {
		return runSmokeTest(ctx, v, text, opts)
	}

	if opts.Format == FormatText {
		fmt.Print(text.header("Databricks Deployment Validation"))
		fmt.Print(text.field("Environment", flags.Env))
		fmt.Print(text.field("Workspace", client.Host()))
		fmt.Print(text.field("Validation Path", v.BasePath()))
		fmt.Println()
	}

	useCases := selectUseCases(flags)
	bar := newCheckBar(flags, 2+len(useCases))

	v.ValidateSharedFolder(ctx)
	barAdd(bar)

	for _, useCase := range useCases {
		v.ValidateUseCase(ctx, useCase)
		barAdd(bar)
	}

	v.ValidateCluster(ctx, flags.Env+"-cluster")
	barAdd(bar)
	barFinish(bar)

	report := v.Report()

	if opts.Format == FormatText {
		fmt.Println()
	}
	if err := WriteReport(report, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// Exit non-zero on FAILED results without double-printing an error
	if !report.OK() {
		osExit(1)
	}

	return nil
}

func runSmokeTest(ctx context.Context, v *validation.Validator, text *TextFormatter, opts *ReportOptions) error {
	root := validation.DeploymentRoot(v.Environment())

	if !v.SmokeTest(ctx) {
		fmt.Println(text.error("✗ Workspace API connectivity failed"))
		osExit(1)
		return nil
	}

	fmt.Println(text.success(fmt.Sprintf("✓ Workspace API connectivity verified - deployment root exists at %s", root)))

	if opts.OutputJSON != "" {
		if err := writeJSONFile(v.Report(), opts.OutputJSON); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Printf("Report saved to: %s\n", opts.OutputJSON)
	}

	return nil
}

// newCheckBar creates a progress bar over the check sequence, on stderr so
// stdout stays clean for check output. Suppressed for structured formats.
func newCheckBar(flags *RootFlags, total int) *progressbar.ProgressBar {
	if flags.Format != "text" || flags.Verbose {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Validating"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func barAdd(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Add(1)
	}
}

func barFinish(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
