package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/views/match"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/views/message"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView    *menu.View
	matchView   *match.View
	messageView *message.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		menuView:  menu.NewView(s, km, ports.FounderName),
		matchView: match.NewView(s, km, ports.Match, ports.Project, ports.ProjectID),
		messageView: message.NewView(s, km, message.Services{
			Message:  ports.Message,
			Report:   ports.Report,
			Outreach: ports.Outreach,
		}, ports.FounderName),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.matchView.WithContext(ctx)
	a.messageView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("pitchmatch"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewMatch:
			a.matchView, cmd = a.matchView.Update(msg)
			a.err = a.matchView.Err()
		case messages.ViewMessage:
			a.messageView, cmd = a.messageView.Update(msg)
			a.err = a.messageView.Err()
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		previous := a.currentView
		a.currentView = msg.View
		// Coming back from a message keeps the results on screen.
		if msg.View == messages.ViewMatch && previous != messages.ViewMessage {
			a.matchView.Reset()
			return a, a.matchView.Init()
		}
		return a, nil

	case messages.ProjectsLoaded, messages.MatchCompleted:
		a.matchView, cmd = a.matchView.Update(msg)
		a.err = a.matchView.Err()
		return a, cmd

	case messages.InvestorSelected:
		a.messageView.SetTarget(msg.Result, msg.Project)
		a.currentView = messages.ViewMessage
		return a, nil

	case messages.MessageRefined, messages.MessageSent:
		a.messageView, cmd = a.messageView.Update(msg)
		a.err = a.messageView.Err()
		return a, cmd

	case spinner.TickMsg:
		// Each view's spinner ignores ticks meant for the other.
		var matchCmd, messageCmd tea.Cmd
		a.matchView, matchCmd = a.matchView.Update(msg)
		a.messageView, messageCmd = a.messageView.Update(msg)
		return a, tea.Batch(matchCmd, messageCmd)

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewMatch:
			a.matchView, cmd = a.matchView.Update(msg)
		case messages.ViewMessage:
			a.messageView, cmd = a.messageView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
			// Menu and help don't display errors
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewMatch:
		a.matchView, cmd = a.matchView.Update(msg)
	case messages.ViewMessage:
		a.messageView, cmd = a.messageView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMatch:
		return a.matchView.View()
	case messages.ViewMessage:
		return a.messageView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	help := `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Find investors:
  (type)      Describe your ideal investor
  tab         Switch project
  enter       Rank investors

Results:
  j/k, ↑/↓    Navigate matches
  enter       Draft a message
  n           New search

Message:
  j/k, ↑/↓    Scroll
  r           Refine the draft`
	if a.ports.Outreach != nil {
		help += "\n  s           Send with an investor report"
	}
	return help + "\n\n[esc] back to menu"
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Preference returns the current preference text.
func (a *App) Preference() string {
	return a.matchView.Preference()
}

// Results returns the current match results.
func (a *App) Results() []domain.MatchResult {
	return a.matchView.Results()
}

// Draft returns the message being previewed.
func (a *App) Draft() string {
	return a.messageView.Body()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.matchView.SetDimensions(width, height)
	a.messageView.SetDimensions(width, height)
}
