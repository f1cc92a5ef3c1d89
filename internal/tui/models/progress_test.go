package models

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewProgressModel(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 0, 0)

	if m.width != 80 || m.height != 24 {
		t.Errorf("Expected default dimensions 80x24, got %dx%d", m.width, m.height)
	}

	if m.total != 4 {
		t.Errorf("Expected total 4, got %d", m.total)
	}

	if m.done {
		t.Error("Expected model to start not done")
	}
}

func TestProgressModel_Init_StartsTicking(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)

	if cmd := m.Init(); cmd == nil {
		t.Error("Expected Init to return tick command")
	}
}

func TestProgressModel_Update_TickAdvancesSpinner(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)

	updatedModel, cmd := m.Update(TickMsg(time.Now()))
	m = updatedModel.(ProgressModel)

	if m.spinner != 1 {
		t.Errorf("Expected spinner frame 1, got %d", m.spinner)
	}

	if cmd == nil {
		t.Error("Expected tick to schedule another tick")
	}
}

func TestProgressModel_Update_TickStopsWhenDone(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)
	m.done = true

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("Expected no further ticks once done")
	}
}

func TestProgressModel_Update_ProgressUpdate(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)

	updatedModel, _ := m.Update(ProgressUpdateMsg{Completed: 2, CheckName: "usecase-1"})
	m = updatedModel.(ProgressModel)

	if m.current != 2 {
		t.Errorf("Expected current 2, got %d", m.current)
	}

	if m.checkName != "usecase-1" {
		t.Errorf("Expected check name 'usecase-1', got '%s'", m.checkName)
	}
}

func TestProgressModel_Update_OperationDone(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)

	updatedModel, _ := m.Update(OperationDoneMsg{Result: "result"})
	m = updatedModel.(ProgressModel)

	if !m.done {
		t.Error("Expected model to be done")
	}

	if m.result != "result" {
		t.Errorf("Expected result to be stored, got %v", m.result)
	}
}

func TestProgressModel_Update_EnterShowsReportWhenDone(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)
	m.done = true
	m.result = "result"

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected command to be non-nil")
	}

	msg, ok := cmd().(ViewReportMsg)
	if !ok {
		t.Fatal("Expected ViewReportMsg")
	}

	if msg.Result != "result" {
		t.Errorf("Expected result to be forwarded, got %v", msg.Result)
	}
}

func TestProgressModel_Update_CancelWhileRunning(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected command to be non-nil")
	}

	if _, ok := cmd().(OperationCancelMsg); !ok {
		t.Error("Expected OperationCancelMsg on ctrl+c")
	}
}

func TestProgressModel_View(t *testing.T) {
	m := NewProgressModel("Validating Deployment", "dev", 4, 80, 24)

	view := m.View()
	if !strings.Contains(view, "Validating Deployment") {
		t.Error("Expected view to contain operation name")
	}

	if !strings.Contains(view, "dev") {
		t.Error("Expected view to mention environment")
	}
}

func TestProgressModel_View_Done(t *testing.T) {
	m := NewProgressModel("Smoke Test", "prod", 1, 80, 24)
	m.done = true

	view := m.View()
	if !strings.Contains(view, "Checks Complete") {
		t.Error("Expected done view to contain completion title")
	}
}
