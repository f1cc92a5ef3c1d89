package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dbxverify/dbxverify/internal/validation"
)

func sampleReport() *validation.Report {
	return validation.BuildReport("dev", "https://adb-1.azuredatabricks.net",
		"/Workspace/Deployments/dev/files/src", []validation.Result{
			{
				Component: "shared",
				Status:    validation.StatusPassed,
				Message:   "Found 2 notebooks in shared",
				Notebooks: []string{
					"/Workspace/Deployments/dev/files/src/shared/ingest",
					"/Workspace/Deployments/dev/files/src/shared/report",
				},
			},
			{
				Component: "usecase-1",
				Status:    validation.StatusFailed,
				Message:   "usecase-1 folder not found at /Workspace/Deployments/dev/files/src/usecase-1",
			},
			{
				Component:    "cluster-dev-cluster",
				Status:       validation.StatusWarning,
				Message:      "Cluster dev-cluster not found",
				ClusterState: "",
			},
		})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatText, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestTextFormatter_FormatReport(t *testing.T) {
	f := &TextFormatter{ColorEnabled: false}
	out := f.FormatReport(sampleReport())

	for _, want := range []string{
		"Environment: dev",
		"Total Checks: 3",
		"Passed: 1",
		"Failed: 1",
		"Warnings: 1",
		"Validation FAILED",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected text report to contain %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_FormatResult(t *testing.T) {
	f := &TextFormatter{ColorEnabled: false}
	report := sampleReport()

	passedLine := f.FormatResult(report.Results[0])
	if !strings.Contains(passedLine, "✓") || !strings.Contains(passedLine, "Found 2 notebooks") {
		t.Errorf("unexpected passed line: %q", passedLine)
	}
	// Notebook listing shows base names only
	if !strings.Contains(passedLine, "- ingest") || strings.Contains(passedLine, "- /Workspace") {
		t.Errorf("expected notebook base names, got: %q", passedLine)
	}

	failedLine := f.FormatResult(report.Results[1])
	if !strings.Contains(failedLine, "✗") {
		t.Errorf("unexpected failed line: %q", failedLine)
	}

	warnLine := f.FormatResult(report.Results[2])
	if !strings.Contains(warnLine, "⚠") {
		t.Errorf("unexpected warning line: %q", warnLine)
	}
}

func TestTextFormatter_ClusterState(t *testing.T) {
	f := &TextFormatter{ColorEnabled: false}
	line := f.FormatResult(validation.Result{
		Component:    "cluster-dev-cluster",
		Status:       validation.StatusPassed,
		Message:      "Cluster dev-cluster found",
		ClusterState: "RUNNING",
	})

	if !strings.Contains(line, "(state: RUNNING)") {
		t.Errorf("expected cluster state in line: %q", line)
	}
}

func TestJSONFormatter_RoundTrip(t *testing.T) {
	f := &JSONFormatter{}
	out := f.FormatReport(sampleReport())

	var decoded validation.Report
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON output does not parse: %v", err)
	}

	if decoded.Environment != "dev" {
		t.Errorf("environment = %q", decoded.Environment)
	}
	if len(decoded.Results) != 3 {
		t.Errorf("results = %d, want 3", len(decoded.Results))
	}
	if decoded.Summary.TotalChecks != 3 {
		t.Errorf("total checks = %d, want 3", decoded.Summary.TotalChecks)
	}
}

func TestMarkdownFormatter_FormatReport(t *testing.T) {
	f := &MarkdownFormatter{}
	out := f.FormatReport(sampleReport())

	for _, want := range []string{
		"# Deployment Validation Report",
		"**Environment:** `dev`",
		"| Passed | 1 |",
		"| Failed | 1 |",
		"**usecase-1**",
		"❌",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected markdown report to contain %q:\n%s", want, out)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON, false).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter for FormatJSON")
	}
	if _, ok := NewFormatter(FormatMarkdown, false).(*MarkdownFormatter); !ok {
		t.Error("expected MarkdownFormatter for FormatMarkdown")
	}
	if _, ok := NewFormatter(FormatText, true).(*TextFormatter); !ok {
		t.Error("expected TextFormatter for FormatText")
	}
}
