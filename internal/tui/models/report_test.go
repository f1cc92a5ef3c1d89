package models

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbxverify/dbxverify/internal/validation"
)

func sampleReport() *validation.Report {
	base := validation.BasePath("dev")
	results := []validation.Result{
		{
			Component: "shared",
			Status:    validation.StatusPassed,
			Message:   "Found 2 notebooks in shared",
			Notebooks: []string{base + "/shared/ingest", base + "/shared/report"},
		},
		{
			Component: "usecase-1",
			Status:    validation.StatusFailed,
			Message:   "usecase-1 folder not found at " + base + "/usecase-1",
		},
		{
			Component: "cluster-dev-cluster",
			Status:    validation.StatusWarning,
			Message:   "Cluster dev-cluster not found",
		},
	}
	return validation.BuildReport("dev", "https://dbc.example.com", base, results)
}

func TestNewReportModel(t *testing.T) {
	m := NewReportModel(sampleReport(), 0, 0)

	if m.width != 80 || m.height != 24 {
		t.Errorf("Expected default dimensions 80x24, got %dx%d", m.width, m.height)
	}

	if m.reportType != "validation" {
		t.Errorf("Expected report type 'validation', got '%s'", m.reportType)
	}
}

func TestReportModel_View_Validation(t *testing.T) {
	m := NewReportModel(sampleReport(), 100, 40)

	view := m.View()
	if !strings.Contains(view, "Validation Report") {
		t.Error("Expected view to contain report title")
	}

	if !strings.Contains(view, "dev") {
		t.Error("Expected view to contain environment")
	}
}

func TestReportModel_Update_FilterKeys(t *testing.T) {
	tests := []struct {
		key      rune
		expected int
	}{
		{'1', 0},
		{'2', 1},
		{'3', 2},
		{'4', 3},
	}

	for _, tt := range tests {
		m := NewReportModel(sampleReport(), 100, 40)
		m.viewportTop = 3

		updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		m = updatedModel.(ReportModel)

		if m.selectedFilter != tt.expected {
			t.Errorf("Key %c: expected filter %d, got %d", tt.key, tt.expected, m.selectedFilter)
		}

		if m.viewportTop != 0 {
			t.Errorf("Key %c: expected viewport reset, got %d", tt.key, m.viewportTop)
		}
	}
}

func TestReportModel_IncludeResult(t *testing.T) {
	m := NewReportModel(sampleReport(), 100, 40)

	failed := validation.Result{Status: validation.StatusFailed}
	warning := validation.Result{Status: validation.StatusWarning}
	passed := validation.Result{Status: validation.StatusPassed}

	tests := []struct {
		name    string
		filter  int
		result  validation.Result
		include bool
	}{
		{"all includes failed", 0, failed, true},
		{"all includes passed", 0, passed, true},
		{"failed filter includes failed", 1, failed, true},
		{"failed filter excludes warning", 1, warning, false},
		{"warning filter includes warning", 2, warning, true},
		{"warning filter excludes passed", 2, passed, false},
		{"passed filter includes passed", 3, passed, true},
		{"passed filter excludes failed", 3, failed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.selectedFilter = tt.filter
			if got := m.includeResult(tt.result); got != tt.include {
				t.Errorf("includeResult = %v, want %v", got, tt.include)
			}
		})
	}
}

func TestReportModel_Update_BackToMenu(t *testing.T) {
	m := NewReportModel(sampleReport(), 100, 40)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected command to be non-nil")
	}

	if _, ok := cmd().(BackToMenuMsg); !ok {
		t.Error("Expected BackToMenuMsg on enter")
	}
}

func TestReportModel_SaveReport(t *testing.T) {
	t.Chdir(t.TempDir())

	m := NewReportModel(sampleReport(), 100, 40)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if cmd == nil {
		t.Fatal("Expected save command to be non-nil")
	}

	msg, ok := cmd().(ReportSaveMsg)
	if !ok {
		t.Fatal("Expected ReportSaveMsg")
	}
	if msg.Error != nil {
		t.Fatalf("Save failed: %v", msg.Error)
	}

	data, err := os.ReadFile(msg.Path)
	if err != nil {
		t.Fatalf("Saved report not readable: %v", err)
	}

	var report validation.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("Saved report is not valid JSON: %v", err)
	}
	if report.Summary.TotalChecks != 3 {
		t.Errorf("Expected 3 checks in saved report, got %d", report.Summary.TotalChecks)
	}
}

func TestReportModel_SaveStatusTimeout(t *testing.T) {
	m := NewReportModel(sampleReport(), 100, 40)

	updatedModel, cmd := m.Update(ReportSaveMsg{Path: "/tmp/report.json"})
	m = updatedModel.(ReportModel)

	if !m.saveStatusShow {
		t.Error("Expected save status to be shown")
	}
	if cmd == nil {
		t.Fatal("Expected timeout command")
	}

	updatedModel, _ = m.Update(ReportSaveTimeoutMsg{Token: m.saveStatusToken})
	m = updatedModel.(ReportModel)

	if m.saveStatusShow {
		t.Error("Expected save status to be hidden after timeout")
	}
}

func TestReportModel_SaveStatusStaleTimeoutIgnored(t *testing.T) {
	m := NewReportModel(sampleReport(), 100, 40)

	updatedModel, _ := m.Update(ReportSaveMsg{Path: "/tmp/report.json"})
	m = updatedModel.(ReportModel)

	// A timeout from an earlier save must not hide the newer status.
	updatedModel, _ = m.Update(ReportSaveTimeoutMsg{Token: m.saveStatusToken - 1})
	m = updatedModel.(ReportModel)

	if !m.saveStatusShow {
		t.Error("Expected stale timeout to be ignored")
	}
}

func TestNewSmokeReportModel_View(t *testing.T) {
	outcome := SmokeOutcome{
		Env:  "prod",
		Host: "https://dbc.example.com",
		Path: "/Workspace/Deployments/prod",
		OK:   true,
	}

	m := NewSmokeReportModel(outcome, 100, 40)

	view := m.View()
	if !strings.Contains(view, "Smoke Test") {
		t.Error("Expected view to contain smoke test title")
	}

	if !strings.Contains(view, "/Workspace/Deployments/prod") {
		t.Error("Expected view to contain deployment root")
	}
}

func TestNewSmokeReportModel_View_Failure(t *testing.T) {
	outcome := SmokeOutcome{
		Env: "prod",
		Err: errors.New("connection refused"),
	}

	m := NewSmokeReportModel(outcome, 100, 40)

	view := m.View()
	if !strings.Contains(view, "connection refused") {
		t.Error("Expected view to contain failure reason")
	}
}
