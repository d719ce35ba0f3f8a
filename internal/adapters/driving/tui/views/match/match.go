// Package match provides the investor matching view for the TUI.
package match

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
)

// View represents the match view with the preference input, the project
// being matched, the ranked results and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PreferenceInput
	list      *list.MatchList
	statusbar *status.Bar

	matchService   driving.MatchService
	projectService driving.ProjectService
	ctx            context.Context

	projects   []domain.Project
	project    int
	preselect  string
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new match view. preselect names the project chosen
// once projects load; the first project is used when it is empty.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	matchService driving.MatchService,
	projectService driving.ProjectService,
	preselect string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewPreferenceInput(s),
		list:           list.NewMatchList(s),
		statusbar:      status.NewBar(s, km),
		matchService:   matchService,
		projectService: projectService,
		ctx:            context.Background(),
		project:        -1,
		preselect:      preselect,
		width:          80,
		height:         24,
		focusInput:     true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor blinking and loads the projects.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadProjects())
}

// Update handles messages for the match view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.statusbar, cmd = v.statusbar.Update(msg)
		return v, cmd

	case messages.ProjectsLoaded:
		v.handleProjectsLoaded(msg)
		return v, nil

	case messages.MatchCompleted:
		v.handleMatchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Ignore keys while a match is running.
	if v.statusbar.State() == status.StateMatching {
		return v, nil
	}

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyTab {
		v.nextProject()
		return v, nil
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			return v, v.submit()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Results mode.
	if msg.Type == tea.KeyEnter {
		return v, v.selectResult()
	}

	if keymap.Matches(msg.String(), v.keymap.NewSearch) {
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	}
	v.list, _ = v.list.Update(msg)
	return v, nil
}

// submit starts a match for the current preference and project.
func (v *View) submit() tea.Cmd {
	p := v.Project()
	if p == nil {
		v.setError(ErrNoProject)
		return nil
	}

	v.err = nil
	v.statusbar.SetMessage("")
	v.focusInput = false
	v.input.Blur()
	tick := v.statusbar.SetState(status.StateMatching)
	return tea.Batch(tick, v.performMatch(domain.MatchRequest{
		ProjectID:  p.ID,
		Preference: v.input.Value(),
	}))
}

// performMatch ranks investors off the update loop.
func (v *View) performMatch(req domain.MatchRequest) tea.Cmd {
	ctx := v.ctx
	svc := v.matchService
	return func() tea.Msg {
		if svc == nil {
			return messages.MatchCompleted{Err: ErrNoMatchService}
		}
		results, err := svc.Match(ctx, req)
		return messages.MatchCompleted{Results: results, Err: err}
	}
}

func (v *View) loadProjects() tea.Cmd {
	ctx := v.ctx
	svc := v.projectService
	return func() tea.Msg {
		if svc == nil {
			return messages.ProjectsLoaded{}
		}
		projects, err := svc.List(ctx)
		return messages.ProjectsLoaded{Projects: projects, Err: err}
	}
}

func (v *View) selectResult() tea.Cmd {
	result := v.list.SelectedResult()
	p := v.Project()
	if result == nil || p == nil {
		return nil
	}
	selected := messages.InvestorSelected{Result: *result, Project: *p}
	return func() tea.Msg {
		return selected
	}
}

func (v *View) handleProjectsLoaded(msg messages.ProjectsLoaded) {
	if msg.Err != nil {
		v.setError(fmt.Errorf("loading projects: %w", msg.Err))
		return
	}

	v.projects = msg.Projects
	v.project = -1
	if len(v.projects) == 0 {
		return
	}
	v.project = 0
	for i := range v.projects {
		if v.projects[i].ID == v.preselect {
			v.project = i
			break
		}
	}
}

func (v *View) handleMatchCompleted(msg messages.MatchCompleted) {
	if msg.Err != nil {
		v.focusInput = true
		v.input.Focus()
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(msg.Results))
	v.focusInput = false
	v.input.Blur()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) nextProject() {
	if len(v.projects) == 0 {
		return
	}
	v.project = (v.project + 1) % len(v.projects)
}

// View renders the match view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	sections = append(sections, v.styles.Title.Render("pitchmatch"), "")
	sections = append(sections, v.renderProject(), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.statusbar.State() != status.StateMatching {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderProject() string {
	p := v.Project()
	if p == nil {
		return v.styles.Muted.Render("Project: none")
	}

	line := v.styles.Subtitle.Render("Project: ") + v.styles.Normal.Render(p.Name)
	if p.Profile != nil && p.Profile.Industry != "" {
		line += v.styles.Muted.Render(fmt.Sprintf(" (%s, %s, raising %s)",
			p.Profile.Industry, p.Profile.Stage, p.Profile.FundingNeeded))
	}
	if len(v.projects) > 1 {
		line += v.styles.Help.Render(fmt.Sprintf("  [tab] %d/%d", v.project+1, len(v.projects)))
	}
	return line
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-12) // header, project, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Preference returns the current preference text.
func (v *View) Preference() string {
	return v.input.Value()
}

// SetPreference sets the preference text.
func (v *View) SetPreference(preference string) {
	v.input.SetValue(preference)
}

// Project returns the project being matched, or nil if there is none.
func (v *View) Project() *domain.Project {
	if v.project < 0 || v.project >= len(v.projects) {
		return nil
	}
	return &v.projects[v.project]
}

// Results returns the current match results.
func (v *View) Results() []domain.MatchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Matching reports whether a match is in flight.
func (v *View) Matching() bool {
	return v.statusbar.State() == status.StateMatching
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to input mode, keeping the loaded projects.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetResults(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
