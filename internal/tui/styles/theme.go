package styles

import "github.com/charmbracelet/lipgloss"

// Semantic Colors
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#E06C75", Dark: "#E06C75"} // Red
	ColorWarning = lipgloss.AdaptiveColor{Light: "#E5C07B", Dark: "#E5C07B"} // Yellow
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#98C379", Dark: "#98C379"} // Green
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#61AFEF", Dark: "#61AFEF"} // Blue
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#56B6C2", Dark: "#56B6C2"} // Cyan
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#5C6370", Dark: "#5C6370"} // Gray
)

// Base Styles
var (
	// BaseStyle is the foundation for all text styles
	BaseStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// ErrorStyle for failed checks and fatal errors
	ErrorStyle = BaseStyle.
			Foreground(ColorError).
			Bold(true)

	// WarningStyle for warning-level check results
	WarningStyle = BaseStyle.
			Foreground(ColorWarning)

	// SuccessStyle for passed checks
	SuccessStyle = BaseStyle.
			Foreground(ColorSuccess).
			Bold(true)

	// InfoStyle for informational messages
	InfoStyle = BaseStyle.
			Foreground(ColorInfo)

	// MutedStyle for less important text
	MutedStyle = BaseStyle.
			Foreground(ColorMuted)
)

// Component Styles
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1).
			Padding(0, 1)

	// SubtitleStyle for secondary headings
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			MarginBottom(1).
			Padding(0, 1)

	// ListItemStyle for list items
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// SelectedListItemStyle for selected list items
	SelectedListItemStyle = ListItemStyle.
				Foreground(ColorPrimary).
				Bold(true)

	// KeyStyle for keyboard shortcut keys
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// DescStyle for descriptions
	DescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)

// Layout Styles
var (
	// DocStyle for the main document container
	DocStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// DialogBoxStyle for modal dialogs
	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(60)
)

// Table Styles
var (
	// TableHeaderStyle for table headers
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)

	// TableCellStyle for table cells
	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Status Styles
var (
	// PassedStyle for PASSED results
	PassedStyle = SuccessStyle

	// FailedStyle for FAILED results
	FailedStyle = ErrorStyle

	// PendingStyle for checks that have not run yet
	PendingStyle = MutedStyle
)

// Icon strings (using Unicode symbols)
const (
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "⚠"
	IconInfo    = "ℹ"
	IconArrow   = "→"
	IconBullet  = "•"
	IconSpinner = "⣾⣽⣻⢿⡿⣟⣯⣷" // Animation frames for spinner
)

// Helper functions

// RenderTitle renders a styled title
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a styled subtitle
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderError renders an error message with icon
func RenderError(text string) string {
	return ErrorStyle.Render(IconCross + " " + text)
}

// RenderWarning renders a warning message with icon
func RenderWarning(text string) string {
	return WarningStyle.Render(IconWarning + " " + text)
}

// RenderSuccess renders a success message with icon
func RenderSuccess(text string) string {
	return SuccessStyle.Render(IconCheck + " " + text)
}

// RenderInfo renders an info message with icon
func RenderInfo(text string) string {
	return InfoStyle.Render(IconInfo + " " + text)
}

// RenderKeyBinding renders a keyboard shortcut
func RenderKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + DescStyle.Render(desc)
}

// RenderTable renders headers and rows as an aligned table. Rows shorter
// than the header are padded; extra cells are ignored.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
	}

	renderRow := func(cells []string, style lipgloss.Style) string {
		line := ""
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			for len(cell) < widths[i] {
				cell += " "
			}
			line += style.Render(cell)
		}
		return line
	}

	out := renderRow(headers, TableHeaderStyle) + "\n"
	for _, row := range rows {
		out += renderRow(row, TableCellStyle) + "\n"
	}
	return out
}

// AdaptToTerminal adjusts layout styles for small terminals. It only ever
// shrinks dimensions.
func AdaptToTerminal(width, height int) {
	if width < 70 && width > 0 {
		DialogBoxStyle = DialogBoxStyle.Width(width - 10)
	}
	if width < 60 {
		DocStyle = DocStyle.Padding(1, 1)
	}
	if width < 45 {
		DocStyle = DocStyle.Padding(0, 1)
	}
}
