package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dbxverify/dbxverify/internal/validation"
)

// ReportOptions contains options for report rendering and persistence
type ReportOptions struct {
	Format       OutputFormat
	Formatter    Formatter
	OutputJSON   string
	ColorEnabled bool
	Verbose      bool
}

// NewReportOptions creates report options from flags
func NewReportOptions(flags *RootFlags) (*ReportOptions, error) {
	format, err := ParseFormat(flags.Format)
	if err != nil {
		return nil, err
	}

	// Color only makes sense for terminal-bound text output
	colorEnabled := !flags.NoColor
	if format != FormatText {
		colorEnabled = false
	}

	return &ReportOptions{
		Format:       format,
		Formatter:    NewFormatter(format, colorEnabled),
		OutputJSON:   flags.OutputJSON,
		ColorEnabled: colorEnabled,
		Verbose:      flags.Verbose,
	}, nil
}

// WriteReport renders the report to the console and, when requested,
// persists the canonical JSON document regardless of console format.
func WriteReport(report *validation.Report, opts *ReportOptions) error {
	if report == nil {
		return fmt.Errorf("no report to write")
	}

	if err := WriteOutput(os.Stdout, opts.Formatter.FormatReport(report)); err != nil {
		return err
	}

	if opts.OutputJSON != "" {
		if err := writeJSONFile(report, opts.OutputJSON); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Printf("Report saved to: %s\n", opts.OutputJSON)
	}

	return nil
}

func writeJSONFile(report *validation.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// WriteOutput writes formatted output to a writer
func WriteOutput(w io.Writer, content string) error {
	_, err := fmt.Fprint(w, content)
	return err
}
