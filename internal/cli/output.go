package cli

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/fatih/color"

	"github.com/dbxverify/dbxverify/internal/validation"
)

// OutputFormat represents the type of output format
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON
	FormatMarkdown
)

// ParseFormat converts a string to OutputFormat
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return FormatText, fmt.Errorf("invalid format: %s (valid: text, json, markdown)", s)
	}
}

// Formatter defines the interface for report formatters
type Formatter interface {
	FormatReport(report *validation.Report) string
}

// NewFormatter creates a formatter based on format and options
func NewFormatter(format OutputFormat, colorEnabled bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TextFormatter{ColorEnabled: colorEnabled}
	}
}

// TextFormatter formats the report as human-readable text
type TextFormatter struct {
	ColorEnabled bool
}

func (f *TextFormatter) FormatReport(report *validation.Report) string {
	var b strings.Builder

	b.WriteString(f.header("Validation Summary"))
	b.WriteString("\n")
	b.WriteString(f.field("Environment", report.Environment))
	b.WriteString(f.field("Workspace", report.WorkspaceHost))
	b.WriteString(f.field("Base Path", report.BasePath))
	b.WriteString("\n")

	b.WriteString(f.subheader("Summary"))
	b.WriteString(f.field("Total Checks", fmt.Sprintf("%d", report.Summary.TotalChecks)))
	b.WriteString(f.field("Passed", fmt.Sprintf("%d", report.Summary.Passed)))
	b.WriteString(f.field("Failed", fmt.Sprintf("%d", report.Summary.Failed)))
	b.WriteString(f.field("Warnings", fmt.Sprintf("%d", report.Summary.Warnings)))
	b.WriteString("\n")

	if report.OK() {
		b.WriteString(f.success("✓ Validation PASSED"))
	} else {
		b.WriteString(f.error("✗ Validation FAILED"))
	}
	b.WriteString("\n")

	return b.String()
}

// FormatResult renders a single check outcome as an unbuffered console line.
func (f *TextFormatter) FormatResult(r validation.Result) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(f.marker(r.Status))
	b.WriteString(" ")
	b.WriteString(r.Message)
	if r.ClusterState != "" {
		b.WriteString(fmt.Sprintf(" (state: %s)", r.ClusterState))
	}
	b.WriteString("\n")

	for _, nb := range r.Notebooks {
		b.WriteString(f.muted("     - " + path.Base(nb)))
		b.WriteString("\n")
	}

	return b.String()
}

func (f *TextFormatter) marker(status validation.Status) string {
	switch status {
	case validation.StatusPassed:
		if f.ColorEnabled {
			return color.GreenString("✓")
		}
		return "✓"
	case validation.StatusFailed:
		if f.ColorEnabled {
			return color.RedString("✗")
		}
		return "✗"
	default:
		if f.ColorEnabled {
			return color.YellowString("⚠")
		}
		return "⚠"
	}
}

func (f *TextFormatter) header(s string) string {
	if f.ColorEnabled {
		return color.New(color.Bold, color.FgCyan).Sprintf("═══ %s ═══\n", s)
	}
	return fmt.Sprintf("=== %s ===\n", s)
}

func (f *TextFormatter) subheader(s string) string {
	if f.ColorEnabled {
		return color.New(color.Bold).Sprintf("%s:\n", s)
	}
	return fmt.Sprintf("%s:\n", s)
}

func (f *TextFormatter) field(key, value string) string {
	if f.ColorEnabled {
		return fmt.Sprintf("  %s: %s\n", color.CyanString(key), value)
	}
	return fmt.Sprintf("  %s: %s\n", key, value)
}

func (f *TextFormatter) success(s string) string {
	if f.ColorEnabled {
		return color.GreenString(s)
	}
	return s
}

func (f *TextFormatter) error(s string) string {
	if f.ColorEnabled {
		return color.RedString(s)
	}
	return s
}

func (f *TextFormatter) muted(s string) string {
	if f.ColorEnabled {
		return color.New(color.Faint).Sprint(s)
	}
	return s
}

// JSONFormatter formats the report as JSON
type JSONFormatter struct{}

func (f *JSONFormatter) FormatReport(report *validation.Report) string {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal report: %s"}`, err)
	}
	return string(data)
}

// MarkdownFormatter formats the report as GitHub-flavored Markdown
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) FormatReport(report *validation.Report) string {
	var b strings.Builder

	b.WriteString("# Deployment Validation Report\n\n")
	b.WriteString(fmt.Sprintf("**Environment:** `%s`\n\n", report.Environment))
	b.WriteString(fmt.Sprintf("**Workspace:** `%s`\n\n", report.WorkspaceHost))
	b.WriteString(fmt.Sprintf("**Base Path:** `%s`\n\n", report.BasePath))

	if report.OK() {
		b.WriteString("**Status:** ✅ Passed\n\n")
	} else {
		b.WriteString("**Status:** ❌ Failed\n\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Status | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Passed | %d |\n", report.Summary.Passed))
	b.WriteString(fmt.Sprintf("| Failed | %d |\n", report.Summary.Failed))
	b.WriteString(fmt.Sprintf("| Warnings | %d |\n\n", report.Summary.Warnings))

	if len(report.Results) > 0 {
		b.WriteString("## Checks\n\n")
		for _, r := range report.Results {
			b.WriteString(f.formatResult(r))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (f *MarkdownFormatter) formatResult(r validation.Result) string {
	var icon string
	switch r.Status {
	case validation.StatusPassed:
		icon = "✅"
	case validation.StatusFailed:
		icon = "❌"
	default:
		icon = "⚠️"
	}

	line := fmt.Sprintf("- %s **%s**: %s", icon, r.Component, r.Message)
	if r.ClusterState != "" {
		line += fmt.Sprintf(" (state: `%s`)", r.ClusterState)
	}
	line += "\n"

	for _, nb := range r.Notebooks {
		line += fmt.Sprintf("  - `%s`\n", nb)
	}

	return line
}
