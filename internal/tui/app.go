// Package tui provides the interactive terminal interface. It wraps the same
// validation engine as the CLI in a bubbletea state machine.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbxverify/dbxverify/internal/config"
	"github.com/dbxverify/dbxverify/internal/tui/models"
	"github.com/dbxverify/dbxverify/internal/validation"
	"github.com/dbxverify/dbxverify/internal/workspace"
)

// AppState represents the current state of the application
type AppState int

const (
	StateMenu AppState = iota
	StateEnvSelect
	StateProgress
	StateReport
)

// App is the main TUI application coordinator
type App struct {
	state         AppState
	menuModel     models.MenuModel
	envModel      models.EnvModel
	progressModel models.ProgressModel
	reportModel   models.ReportModel
	ctx           context.Context
	cancel        context.CancelFunc
	action        string // Menu action awaiting an environment choice
	width         int
	height        int
}

// NewApp creates a new TUI application
func NewApp() App {
	ctx, cancel := context.WithCancel(context.Background())

	return App{
		state:     StateMenu,
		menuModel: models.NewMenuModel(),
		ctx:       ctx,
		cancel:    cancel,
		width:     80,
		height:    24,
	}
}

// Init initializes the application
func (a App) Init() tea.Cmd {
	return a.menuModel.Init()
}

// Update handles messages and updates the application state
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
	}

	switch a.state {
	case StateMenu:
		return a.updateMenu(msg)
	case StateEnvSelect:
		return a.updateEnvSelect(msg)
	case StateProgress:
		return a.updateProgress(msg)
	case StateReport:
		return a.updateReport(msg)
	}

	return a, nil
}

// View renders the current view based on state
func (a App) View() string {
	switch a.state {
	case StateMenu:
		return a.menuModel.View()
	case StateEnvSelect:
		return a.envModel.View()
	case StateProgress:
		return a.progressModel.View()
	case StateReport:
		return a.reportModel.View()
	}

	return "Unknown state"
}

// updateMenu handles menu state updates
func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case models.MenuSelectMsg:
		switch msg.Action {
		case "validate", "smoke":
			a.action = msg.Action
			prompt := "Select environment to validate"
			if msg.Action == "smoke" {
				prompt = "Select environment for smoke test"
			}
			a.envModel = models.NewEnvModel(prompt, defaultEnvironment())
			a.state = StateEnvSelect
			return a, a.envModel.Init()

		case "quit":
			return a, tea.Quit
		}

	default:
		var m tea.Model
		m, cmd = a.menuModel.Update(msg)
		a.menuModel = m.(models.MenuModel)
	}

	return a, cmd
}

// updateEnvSelect handles environment picker updates
func (a App) updateEnvSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case models.EnvSelectMsg:
		switch a.action {
		case "validate":
			return a.startValidation(msg.Env)
		case "smoke":
			return a.startSmokeTest(msg.Env)
		}

	case models.BackToMenuMsg:
		a.state = StateMenu
		return a, nil

	default:
		var m tea.Model
		m, cmd = a.envModel.Update(msg)
		a.envModel = m.(models.EnvModel)
	}

	return a, cmd
}

// updateProgress handles progress state updates
func (a App) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case models.ViewReportMsg:
		switch result := msg.Result.(type) {
		case *validation.Report:
			a.reportModel = models.NewReportModel(result, a.width, a.height)
		case models.SmokeOutcome:
			a.reportModel = models.NewSmokeReportModel(result, a.width, a.height)
		default:
			a.state = StateMenu
			return a, nil
		}
		a.state = StateReport
		return a, a.reportModel.Init()

	case models.OperationCancelMsg:
		a.cancel()
		a.ctx, a.cancel = context.WithCancel(context.Background())
		a.state = StateMenu
		return a, nil

	case models.BackToMenuMsg:
		a.state = StateMenu
		return a, nil

	default:
		var m tea.Model
		m, cmd = a.progressModel.Update(msg)
		a.progressModel = m.(models.ProgressModel)
	}

	return a, cmd
}

// updateReport handles report state updates
func (a App) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.(type) {
	case models.BackToMenuMsg:
		a.state = StateMenu
		return a, nil

	default:
		var m tea.Model
		m, cmd = a.reportModel.Update(msg)
		a.reportModel = m.(models.ReportModel)
	}

	return a, cmd
}

// startValidation runs the full check sequence for an environment
func (a App) startValidation(env string) (tea.Model, tea.Cmd) {
	totalChecks := 2 + len(validation.UseCases) // shared + use cases + cluster
	a.progressModel = models.NewProgressModel("Validating Deployment", env, totalChecks, a.width, a.height)
	a.state = StateProgress

	ctx := a.ctx
	return a, tea.Batch(
		a.progressModel.Init(),
		func() tea.Msg {
			validator, _, err := newValidator(env)
			if err != nil {
				return models.OperationDoneMsg{Result: configErrorReport(env, err)}
			}

			validator.ValidateSharedFolder(ctx)
			for _, useCase := range validation.UseCases {
				validator.ValidateUseCase(ctx, useCase)
			}
			validator.ValidateCluster(ctx, env+"-cluster")

			return models.OperationDoneMsg{Result: validator.Report()}
		},
	)
}

// startSmokeTest runs the connectivity-only check for an environment
func (a App) startSmokeTest(env string) (tea.Model, tea.Cmd) {
	a.progressModel = models.NewProgressModel("Smoke Test", env, 1, a.width, a.height)
	a.state = StateProgress

	ctx := a.ctx
	return a, tea.Batch(
		a.progressModel.Init(),
		func() tea.Msg {
			validator, host, err := newValidator(env)
			if err != nil {
				return models.OperationDoneMsg{Result: models.SmokeOutcome{Env: env, Err: err}}
			}

			outcome := models.SmokeOutcome{
				Env:  env,
				Host: host,
				Path: validation.DeploymentRoot(env),
			}
			outcome.OK = validator.SmokeTest(ctx)
			if !outcome.OK {
				outcome.Err = fmt.Errorf("deployment root %s not reachable", outcome.Path)
			}
			return models.OperationDoneMsg{Result: outcome}
		},
	)
}

// defaultEnvironment picks the env to highlight in the picker. Config
// problems are surfaced later, when an operation actually starts.
func defaultEnvironment() string {
	cfg, err := config.Load()
	if err != nil {
		return config.Environments[0]
	}
	return cfg.DefaultEnvironment()
}

// newValidator builds a workspace client and validator from stored
// configuration and environment variables.
func newValidator(env string) (*validation.Validator, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	host, token, err := cfg.Resolve(env, "", "")
	if err != nil {
		return nil, "", err
	}

	client := workspace.NewClient(host, token, workspace.WithTimeout(cfg.HTTPTimeout))
	return validation.New(client, env), host, nil
}

// configErrorReport wraps a configuration failure as a single failed check
// so it renders in the normal report view.
func configErrorReport(env string, err error) *validation.Report {
	results := []validation.Result{{
		Component: "configuration",
		Status:    validation.StatusFailed,
		Message:   err.Error(),
	}}
	return validation.BuildReport(env, "", validation.BasePath(env), results)
}

// Run starts the TUI application
func Run() error {
	app := NewApp()
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
