package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbxverify/dbxverify/internal/tui/styles"
)

// MenuOption represents a selectable option in the menu
type MenuOption struct {
	Label       string
	Description string
	Action      string // Action identifier (e.g., "validate", "smoke", "quit")
}

// MenuSelectMsg is sent when the user picks a menu option
type MenuSelectMsg struct {
	Action string
}

// BackToMenuMsg returns the application to the main menu
type BackToMenuMsg struct{}

// MenuModel represents the main menu state
type MenuModel struct {
	options  []MenuOption
	selected int
	width    int
	height   int
	quitting bool
}

// NewMenuModel creates a new menu model
func NewMenuModel() MenuModel {
	return MenuModel{
		options: []MenuOption{
			{
				Label:       "Validate Deployment",
				Description: "Check shared folder, use cases and cluster for an environment",
				Action:      "validate",
			},
			{
				Label:       "Smoke Test",
				Description: "Fast connectivity check against the deployment root",
				Action:      "smoke",
			},
			{
				Label:       "Quit",
				Description: "Exit the application",
				Action:      "quit",
			},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		styles.AdaptToTerminal(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.selected--
			if m.selected < 0 {
				m.selected = len(m.options) - 1 // Wrap to bottom
			}

		case "down", "j":
			m.selected++
			if m.selected >= len(m.options) {
				m.selected = 0 // Wrap to top
			}

		case "enter":
			action := m.SelectedAction()
			if action == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, func() tea.Msg {
				return MenuSelectMsg{Action: action}
			}

		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b []string
	b = append(b, styles.RenderTitle("dbxverify - Deployment Verification"))
	b = append(b, "")

	for i, opt := range m.options {
		cursor := "  "
		label := styles.ListItemStyle.Render(opt.Label)
		if i == m.selected {
			cursor = styles.KeyStyle.Render(styles.IconArrow + " ")
			label = styles.SelectedListItemStyle.Render(opt.Label)
		}
		b = append(b, cursor+label)
		b = append(b, "    "+styles.DescStyle.Render(opt.Description))
	}

	b = append(b, "")
	b = append(b, styles.HelpStyle.Render(
		styles.RenderKeyBinding("↑/↓", "navigate")+"  "+
			styles.RenderKeyBinding("enter", "select")+"  "+
			styles.RenderKeyBinding("q", "quit")))

	return styles.DocStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}

// SelectedAction returns the action of the currently selected option
func (m MenuModel) SelectedAction() string {
	if m.selected < 0 || m.selected >= len(m.options) {
		return ""
	}
	return m.options[m.selected].Action
}
