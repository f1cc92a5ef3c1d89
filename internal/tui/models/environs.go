package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbxverify/dbxverify/internal/config"
	"github.com/dbxverify/dbxverify/internal/tui/styles"
)

// EnvSelectMsg is sent when the user picks a target environment
type EnvSelectMsg struct {
	Env string
}

// EnvModel lets the user pick which environment to run against
type EnvModel struct {
	envs     []string
	selected int
	prompt   string
	width    int
	height   int
}

// NewEnvModel creates a new environment picker with preselect highlighted
// when it names a known environment.
func NewEnvModel(prompt, preselect string) EnvModel {
	m := EnvModel{
		envs:   config.Environments,
		prompt: prompt,
		width:  80,
		height: 24,
	}
	for i, env := range m.envs {
		if env == preselect {
			m.selected = i
		}
	}
	return m
}

// Init initializes the model
func (m EnvModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state
func (m EnvModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
				m.selected = len(m.envs) - 1 // Wrap to bottom
			}

		case "down", "j":
			m.selected++
			if m.selected >= len(m.envs) {
				m.selected = 0 // Wrap to top
			}

		case "enter":
			env := m.SelectedEnv()
			return m, func() tea.Msg {
				return EnvSelectMsg{Env: env}
			}

		case "esc":
			return m, func() tea.Msg {
				return BackToMenuMsg{}
			}

		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the environment picker
func (m EnvModel) View() string {
	var b []string
	b = append(b, styles.RenderTitle(m.prompt))
	b = append(b, "")

	for i, env := range m.envs {
		cursor := "  "
		label := styles.ListItemStyle.Render(env)
		if i == m.selected {
			cursor = styles.KeyStyle.Render(styles.IconArrow + " ")
			label = styles.SelectedListItemStyle.Render(env)
		}
		b = append(b, cursor+label)
	}

	b = append(b, "")
	b = append(b, styles.HelpStyle.Render(
		styles.RenderKeyBinding("↑/↓", "navigate")+"  "+
			styles.RenderKeyBinding("enter", "select")+"  "+
			styles.RenderKeyBinding("esc", "back")))

	return styles.DocStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}

// SelectedEnv returns the currently highlighted environment
func (m EnvModel) SelectedEnv() string {
	return m.envs[m.selected]
}
