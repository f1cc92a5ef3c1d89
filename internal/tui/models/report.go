package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbxverify/dbxverify/internal/tui/styles"
	"github.com/dbxverify/dbxverify/internal/validation"
)

// SmokeOutcome is the result of a connectivity-only smoke test
type SmokeOutcome struct {
	Env  string
	Host string
	Path string
	OK   bool
	Err  error
}

// ReportModel displays validation or smoke test results
type ReportModel struct {
	report          *validation.Report
	smoke           *SmokeOutcome
	reportType      string // "validation", "smoke"
	width           int
	height          int
	viewportTop     int
	viewportSize    int
	selectedFilter  int    // 0: all, 1: failed, 2: warnings, 3: passed
	savedReportPath string // Path where report was saved
	saveError       error  // Error from last save attempt
	saveStatusToken int
	saveStatusShow  bool
}

// NewReportModel creates a new report model for validation results
func NewReportModel(report *validation.Report, width, height int) ReportModel {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	return ReportModel{
		report:       report,
		reportType:   "validation",
		width:        width,
		height:       height,
		viewportSize: calculateViewportSize(height),
	}
}

// NewSmokeReportModel creates a new report model for a smoke test outcome
func NewSmokeReportModel(outcome SmokeOutcome, width, height int) ReportModel {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	return ReportModel{
		smoke:        &outcome,
		reportType:   "smoke",
		width:        width,
		height:       height,
		viewportSize: calculateViewportSize(height),
	}
}

func calculateViewportSize(height int) int {
	// Overhead: Title(2) + Status(5) + Gap(1) + Summary(9) + Filters(1) + Border(2) + Help(5)
	size := height - 25
	if size < 5 {
		return 5 // Minimum viewport size
	}
	return size
}

// Init initializes the model
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewportSize = calculateViewportSize(m.height)
		styles.AdaptToTerminal(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.viewportTop > 0 {
				m.viewportTop--
			}

		case "down", "j":
			m.viewportTop++

		case "1":
			m.selectedFilter = 0 // All
			m.viewportTop = 0

		case "2":
			m.selectedFilter = 1 // Failed only
			m.viewportTop = 0

		case "3":
			m.selectedFilter = 2 // Warnings only
			m.viewportTop = 0

		case "4":
			m.selectedFilter = 3 // Passed only
			m.viewportTop = 0

		case "s":
			if m.reportType == "validation" {
				return m, func() tea.Msg {
					path, err := m.saveReport()
					if err != nil {
						return ReportSaveMsg{Error: err}
					}
					return ReportSaveMsg{Path: path}
				}
			}

		case "enter", "esc":
			return m, func() tea.Msg {
				return BackToMenuMsg{}
			}

		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case ReportSaveMsg:
		if msg.Error != nil {
			m.saveError = msg.Error
			m.savedReportPath = ""
		} else {
			m.savedReportPath = msg.Path
			m.saveError = nil
		}
		m.saveStatusToken++
		token := m.saveStatusToken
		m.saveStatusShow = true
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return ReportSaveTimeoutMsg{Token: token}
		})

	case ReportSaveTimeoutMsg:
		if msg.Token == m.saveStatusToken {
			m.saveStatusShow = false
		}
		return m, nil
	}

	return m, nil
}

// View renders the report
func (m ReportModel) View() string {
	if m.reportType == "smoke" {
		return m.renderSmokeReport()
	}
	return m.renderValidationReport()
}

// renderValidationReport renders a deployment validation report
func (m ReportModel) renderValidationReport() string {
	if m.report == nil {
		return styles.RenderError("No report available")
	}

	title := styles.RenderTitle("📊 Validation Report")

	// Environment and host in subtle header
	pathBox := lipgloss.NewStyle().
		Foreground(styles.ColorMuted).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(styles.ColorMuted).
		Padding(0, 1).
		Width(m.width - 8).
		Render(fmt.Sprintf("%s  %s", m.report.Environment, m.report.WorkspaceHost))

	// Overall status in highlighted box
	var statusText string
	var statusColor lipgloss.AdaptiveColor
	if m.report.OK() {
		statusText = styles.IconCheck + "  Validation passed"
		statusColor = styles.ColorSuccess
	} else {
		statusText = styles.IconCross + "  Validation failed"
		statusColor = styles.ColorError
	}

	statusBox := lipgloss.NewStyle().
		Foreground(statusColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(statusColor).
		Padding(1, 2).
		Width(m.width - 8).
		Render(statusText)

	summaryBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.ColorPrimary).
		Padding(1, 2).
		Width(m.width - 8).
		Render(m.renderSummary())

	filters := m.renderFilters()

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.ColorMuted).
		Width(m.width - 8).
		Height(m.viewportSize + 2).
		Render(m.renderResults())

	helpBox := lipgloss.NewStyle().
		Foreground(styles.ColorMuted).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(styles.ColorMuted).
		Padding(1, 2).
		Width(m.width - 8).
		Render(
			styles.RenderKeyBinding("1-4", "filter") + "  " +
				styles.RenderKeyBinding("↑/↓", "scroll") + "  " +
				styles.RenderKeyBinding("s", "save report") + "  " +
				styles.RenderKeyBinding("enter", "continue"),
		)

	saveStatusLine := m.renderSaveStatusLine()

	var parts []string
	parts = append(parts, title, pathBox, "", statusBox, "", summaryBox, filters, resultsBox)
	if saveStatusLine != "" {
		parts = append(parts, "", saveStatusLine)
	}
	parts = append(parts, helpBox)

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Top,
		content,
	)
}

// renderSmokeReport renders a smoke test outcome
func (m ReportModel) renderSmokeReport() string {
	if m.smoke == nil {
		return styles.RenderError("No smoke test result available")
	}

	title := styles.RenderTitle("🔌 Smoke Test")

	var statusText string
	var statusColor lipgloss.AdaptiveColor
	if m.smoke.OK {
		statusText = fmt.Sprintf("%s  Connected to %s\n\nDeployment root reachable: %s", styles.IconCheck, m.smoke.Host, m.smoke.Path)
		statusColor = styles.ColorSuccess
	} else {
		statusText = fmt.Sprintf("%s  Smoke test failed for %s", styles.IconCross, m.smoke.Env)
		if m.smoke.Err != nil {
			statusText += "\n\n" + m.smoke.Err.Error()
		}
		statusColor = styles.ColorError
	}

	statusBox := lipgloss.NewStyle().
		Foreground(statusColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(statusColor).
		Padding(1, 2).
		Width(m.width - 8).
		Render(statusText)

	helpBox := lipgloss.NewStyle().
		Foreground(styles.ColorMuted).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(styles.ColorMuted).
		Padding(1, 2).
		Width(m.width - 8).
		Render(styles.RenderKeyBinding("enter", "back to menu"))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		statusBox,
		"",
		helpBox,
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Top,
		content,
	)
}

// renderSummary renders the check summary table
func (m ReportModel) renderSummary() string {
	headers := []string{"Status", "Count"}
	rows := [][]string{
		{"Passed", fmt.Sprintf("%d", m.report.Summary.Passed)},
		{"Failed", fmt.Sprintf("%d", m.report.Summary.Failed)},
		{"Warnings", fmt.Sprintf("%d", m.report.Summary.Warnings)},
		{"Total", fmt.Sprintf("%d", m.report.Summary.TotalChecks)},
	}

	return styles.RenderTable(headers, rows)
}

// renderFilters renders filter tabs
func (m ReportModel) renderFilters() string {
	tabs := []string{
		"1: All",
		"2: Failed",
		"3: Warnings",
		"4: Passed",
	}

	var rendered []string
	for i, tab := range tabs {
		if i == m.selectedFilter {
			rendered = append(rendered, styles.SelectedListItemStyle.Render(tab))
		} else {
			rendered = append(rendered, styles.MutedStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderResults renders the filtered check results with scrolling
func (m ReportModel) renderResults() string {
	var lines []string
	for _, r := range m.report.Results {
		if !m.includeResult(r) {
			continue
		}
		lines = append(lines, m.formatResult(r)...)
	}

	if len(lines) == 0 {
		return styles.MutedStyle.Render("No checks to display")
	}

	// Apply viewport scrolling
	start := m.viewportTop
	end := m.viewportTop + m.viewportSize
	if end > len(lines) {
		end = len(lines)
	}
	if start >= len(lines) {
		m.viewportTop = len(lines) - m.viewportSize
		if m.viewportTop < 0 {
			m.viewportTop = 0
		}
		start = m.viewportTop
	}

	content := strings.Join(lines[start:end], "\n")

	// Scroll indicators
	if len(lines) > m.viewportSize {
		if m.viewportTop > 0 {
			content = styles.MutedStyle.Render("↑ more ↑") + "\n" + content
		}
		if end < len(lines) {
			content = content + "\n" + styles.MutedStyle.Render("↓ more ↓")
		}
	}

	return content
}

func (m ReportModel) includeResult(r validation.Result) bool {
	switch m.selectedFilter {
	case 1:
		return r.Status == validation.StatusFailed
	case 2:
		return r.Status == validation.StatusWarning
	case 3:
		return r.Status == validation.StatusPassed
	default:
		return true
	}
}

// formatResult formats a single check result for display
func (m ReportModel) formatResult(r validation.Result) []string {
	var icon string
	var style lipgloss.Style
	switch r.Status {
	case validation.StatusPassed:
		icon = styles.IconCheck
		style = styles.PassedStyle
	case validation.StatusFailed:
		icon = styles.IconCross
		style = styles.FailedStyle
	default:
		icon = styles.IconWarning
		style = styles.WarningStyle
	}

	header := fmt.Sprintf("%s %s: %s", icon, r.Component, r.Message)
	if r.ClusterState != "" {
		header += fmt.Sprintf(" (state: %s)", r.ClusterState)
	}

	lines := []string{style.Render(header)}
	for _, nb := range r.Notebooks {
		lines = append(lines, styles.MutedStyle.Render("  "+styles.IconBullet+" "+path.Base(nb)))
	}
	return lines
}

func (m ReportModel) renderSaveStatusLine() string {
	if m.saveStatusShow && m.savedReportPath != "" {
		return styles.SuccessStyle.Render(fmt.Sprintf("%s Saved report: %s", styles.IconCheck, m.savedReportPath))
	}
	if m.saveStatusShow && m.saveError != nil {
		return styles.ErrorStyle.Render(fmt.Sprintf("%s Error saving report: %v", styles.IconCross, m.saveError))
	}
	return ""
}

func (m ReportModel) saveReport() (string, error) {
	reportDir := "reports"
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("validation-%s-%s.json", m.report.Environment, timestamp)

	data, err := json.MarshalIndent(m.report, "", "  ")
	if err != nil {
		return "", err
	}

	out := filepath.Join(reportDir, filename)
	if err := os.WriteFile(out, append(data, '\n'), 0644); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(out)
	if err != nil {
		return out, nil
	}

	return absPath, nil
}

// ReportSaveMsg is sent when a report is saved
type ReportSaveMsg struct {
	Path  string
	Error error
}

// ReportSaveTimeoutMsg hides save status after a delay.
type ReportSaveTimeoutMsg struct {
	Token int
}
