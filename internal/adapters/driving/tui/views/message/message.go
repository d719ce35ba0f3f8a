// Package message provides the outreach message preview for the TUI.
package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
)

// Services groups the ports the message view drives.
// Report and Outreach are optional.
type Services struct {
	Message  driving.MessageService
	Report   driving.ReportService
	Outreach driving.OutreachService
}

// View shows the message generated for one match, scored by the analyser,
// and lets the founder refine or send it.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	services  Services
	founder   string
	ctx       context.Context

	result   domain.MatchResult
	project  domain.Project
	body     string
	analysis domain.MessageAnalysis
	sent     *domain.OutreachMessage

	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new message view signing drafts as founder.
func NewView(s *styles.Styles, km *keymap.KeyMap, services Services, founder string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		services:  services,
		founder:   founder,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetTarget drafts a fresh message for the selected match.
func (v *View) SetTarget(result domain.MatchResult, project domain.Project) {
	v.result = result
	v.project = project
	v.sent = nil
	v.err = nil
	v.scrollOffset = 0
	v.statusbar.Clear()
	v.statusbar.SetState(status.StateMessage)

	if v.services.Message == nil {
		v.setBody("")
		return
	}
	v.setBody(v.services.Message.Generate(result.Investor, project, v.founder))
}

func (v *View) setBody(body string) {
	v.body = body
	if v.services.Message != nil {
		v.analysis = v.services.Message.Analyze(body)
	}
	v.wrap()
}

// Update handles messages for the message view.
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

	case messages.MessageRefined:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.setBody(msg.Body)
		v.statusbar.SetState(status.StateMessage)
		v.statusbar.SetMessage("Message refined")
		return v, nil

	case messages.MessageSent:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.sent = msg.Message
		v.statusbar.SetState(status.StateMessage)
		v.statusbar.SetMessage(fmt.Sprintf("Sent to %s at %s", v.result.Investor.Name, v.result.Investor.Firm))
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.statusbar.Busy() {
		return v, nil
	}

	pressed := msg.String()
	switch {
	case keymap.Matches(pressed, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMatch}
		}
	case keymap.Matches(pressed, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(pressed, v.keymap.Down):
		if v.scrollOffset < v.maxScroll() {
			v.scrollOffset++
		}
	case keymap.Matches(pressed, v.keymap.Refine):
		if v.services.Message == nil {
			return v, nil
		}
		if v.sent != nil {
			v.setError(ErrAlreadySent)
			return v, nil
		}
		v.statusbar.SetMessage("Refining...")
		return v, tea.Batch(v.statusbar.SetState(status.StateWorking), v.refine())
	case keymap.Matches(pressed, v.keymap.Send):
		if v.services.Outreach == nil {
			v.setError(ErrNoOutreachService)
			return v, nil
		}
		if v.sent != nil {
			v.setError(ErrAlreadySent)
			return v, nil
		}
		v.statusbar.SetMessage("Sending...")
		return v, tea.Batch(v.statusbar.SetState(status.StateWorking), v.send())
	}
	return v, nil
}

// refine rewrites the draft off the update loop.
func (v *View) refine() tea.Cmd {
	ctx, svc := v.ctx, v.services.Message
	body, inv, project := v.body, v.result.Investor, v.project
	return func() tea.Msg {
		refined, err := svc.Refine(ctx, body, inv, project)
		return messages.MessageRefined{Body: refined, Err: err}
	}
}

// send builds the report, when a report service is set, and sends the draft.
func (v *View) send() tea.Cmd {
	ctx, services := v.ctx, v.services
	body, inv, project := v.body, v.result.Investor, v.project
	return func() tea.Msg {
		var report *domain.Report
		if services.Report != nil {
			r, err := services.Report.Generate(ctx, project, inv)
			if err != nil {
				return messages.MessageSent{Err: fmt.Errorf("generating report: %w", err)}
			}
			report = r
		}
		sent, err := services.Outreach.Send(ctx, project.ID, inv.ID, body, report)
		return messages.MessageSent{Message: sent, Err: err}
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// wrap splits the body into lines that fit the view width.
func (v *View) wrap() {
	width := v.width - 6
	if width < 20 {
		width = 20
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(v.body)
	v.lines = strings.Split(wrapped, "\n")
	if v.scrollOffset > v.maxScroll() {
		v.scrollOffset = v.maxScroll()
	}
}

// bodyHeight is the number of body lines shown at once.
func (v *View) bodyHeight() int {
	h := v.height - 12
	if h < 3 {
		h = 3
	}
	return h
}

func (v *View) maxScroll() int {
	m := len(v.lines) - v.bodyHeight()
	if m < 0 {
		return 0
	}
	return m
}

// View renders the message preview.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	inv := v.result.Investor
	sections := make([]string, 0, 12)

	sections = append(sections,
		v.styles.Title.Render(fmt.Sprintf("Message to %s, %s at %s", inv.Name, inv.Role, inv.Firm)),
		v.styles.Muted.Render("Project: "+v.project.Name),
		"",
		v.styles.Normal.Render("Match ")+v.styles.Score(v.result.Score).Render(fmt.Sprintf("%d%%", v.result.Score))+
			v.styles.Normal.Render("   Message quality ")+
			v.styles.Score(v.analysis.Score).Render(fmt.Sprintf("%d/100", v.analysis.Score)),
		"",
	)

	end := v.scrollOffset + v.bodyHeight()
	if end > len(v.lines) {
		end = len(v.lines)
	}
	sections = append(sections, v.styles.Letter.Render(strings.Join(v.lines[v.scrollOffset:end], "\n")))

	if len(v.analysis.Suggestions) > 0 {
		sections = append(sections, "", v.styles.Warning.Render("Suggestion: "+v.analysis.Suggestions[0]))
	}

	if v.sent != nil {
		sections = append(sections, "", v.styles.Success.Render(
			fmt.Sprintf("Sent %s", v.sent.SentAt.Format("Jan 2, 15:04"))))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
	v.wrap()
}

// Body returns the current draft.
func (v *View) Body() string {
	return v.body
}

// Analysis returns the analysis of the current draft.
func (v *View) Analysis() domain.MessageAnalysis {
	return v.analysis
}

// Sent returns the sent message, or nil while the draft is unsent.
func (v *View) Sent() *domain.OutreachMessage {
	return v.sent
}

// Result returns the match the draft is written for.
func (v *View) Result() domain.MatchResult {
	return v.result
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
