package message

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
)

type mockMessageService struct {
	refined   string
	refineErr error
}

func (m *mockMessageService) Generate(inv domain.Investor, project domain.Project, founderName string) string {
	return "Hi " + inv.Name + ",\n\n" + project.Name + " would love to talk with " + inv.Firm + ".\n\n" + founderName
}

func (m *mockMessageService) Refine(_ context.Context, _ string, _ domain.Investor, _ domain.Project) (string, error) {
	return m.refined, m.refineErr
}

func (m *mockMessageService) Analyze(message string) domain.MessageAnalysis {
	if strings.Contains(message, "traction") {
		return domain.MessageAnalysis{Score: 92}
	}
	return domain.MessageAnalysis{Score: 70, Suggestions: []string{"Mention traction"}}
}

type mockReportService struct {
	err error
}

func (m *mockReportService) Generate(_ context.Context, _ domain.Project, _ domain.Investor) (*domain.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Report{}, nil
}

// mockOutreachService implements Send only.
type mockOutreachService struct {
	driving.OutreachService
	report *domain.Report
	body   string
	err    error
}

func (m *mockOutreachService) Send(
	_ context.Context, projectID, investorID, body string, report *domain.Report,
) (*domain.OutreachMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.body = body
	m.report = report
	return &domain.OutreachMessage{
		ID:         "msg3",
		ProjectID:  projectID,
		InvestorID: investorID,
		Body:       body,
		SentAt:     time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC),
	}, nil
}

func testTarget() (domain.MatchResult, domain.Project) {
	return domain.MatchResult{
			Investor: domain.Investor{ID: "vc6", Name: "Jennifer Wu", Role: "Partner", Firm: "Ribbit Capital"},
			Score:    88,
		}, domain.Project{
			ID:   "proj1",
			Name: "FinFlow AI",
		}
}

func newTestView(services Services) *View {
	v := NewView(nil, nil, services, "Jamie Lee")
	v.SetDimensions(100, 40)
	v.SetTarget(testTarget())
	return v
}

func TestView_SetTarget_DraftsMessage(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{}})

	assert.Contains(t, v.Body(), "Hi Jennifer Wu")
	assert.Contains(t, v.Body(), "Ribbit Capital")
	assert.Contains(t, v.Body(), "Jamie Lee")
	assert.Equal(t, 70, v.Analysis().Score)
	assert.Nil(t, v.Sent())
	assert.Equal(t, "vc6", v.Result().Investor.ID)

	view := v.View()
	assert.Contains(t, view, "Message to Jennifer Wu, Partner at Ribbit Capital")
	assert.Contains(t, view, "Match 88%")
	assert.Contains(t, view, "Message quality 70/100")
	assert.Contains(t, view, "Suggestion: Mention traction")
	assert.Contains(t, view, "r: refine")
}

func TestView_NotReady(t *testing.T) {
	v := NewView(nil, nil, Services{}, "")

	assert.Equal(t, "Initialising...", v.View())
	assert.Nil(t, v.Init())
}

func TestView_SetTarget_NoMessageService(t *testing.T) {
	v := newTestView(Services{})

	assert.Equal(t, "", v.Body())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Nil(t, cmd)
}

func TestView_Refine(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{refined: "Now with traction."}})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	assert.Contains(t, v.View(), "Refining...")

	// Keys are ignored while refining.
	_, ignored := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, ignored)

	v.Update(messages.MessageRefined{Body: "Now with traction."})

	assert.Equal(t, "Now with traction.", v.Body())
	assert.Equal(t, 92, v.Analysis().Score)
	assert.Contains(t, v.View(), "Message refined")
}

func TestView_Refine_Command(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{refined: "better"}})

	msg := v.refine()()

	assert.Equal(t, messages.MessageRefined{Body: "better"}, msg)
}

func TestView_Refine_Error(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{}})

	v.Update(messages.MessageRefined{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.Body(), "Hi Jennifer Wu")
}

func TestView_Send_WithReport(t *testing.T) {
	outreach := &mockOutreachService{}
	v := newTestView(Services{
		Message:  &mockMessageService{},
		Report:   &mockReportService{},
		Outreach: outreach,
	})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	require.NotNil(t, cmd)

	sent := v.send()().(messages.MessageSent)
	require.NoError(t, sent.Err)
	assert.NotNil(t, outreach.report)
	assert.Equal(t, v.Body(), outreach.body)

	v.Update(sent)

	require.NotNil(t, v.Sent())
	assert.Equal(t, "msg3", v.Sent().ID)
	view := v.View()
	assert.Contains(t, view, "Sent to Jennifer Wu at Ribbit Capital")
	assert.Contains(t, view, "Sent Dec 22, 12:00")
}

func TestView_Send_WithoutReportService(t *testing.T) {
	outreach := &mockOutreachService{}
	v := newTestView(Services{Message: &mockMessageService{}, Outreach: outreach})

	sent := v.send()().(messages.MessageSent)

	require.NoError(t, sent.Err)
	assert.Nil(t, outreach.report)
}

func TestView_Send_ReportError(t *testing.T) {
	outreach := &mockOutreachService{}
	v := newTestView(Services{
		Message:  &mockMessageService{},
		Report:   &mockReportService{err: domain.ErrNotFound},
		Outreach: outreach,
	})

	sent := v.send()().(messages.MessageSent)

	assert.ErrorIs(t, sent.Err, domain.ErrNotFound)
	assert.Equal(t, "", outreach.body)
}

func TestView_Send_Error(t *testing.T) {
	v := newTestView(Services{
		Message:  &mockMessageService{},
		Outreach: &mockOutreachService{err: domain.ErrInvalidInput},
	})

	v.Update(v.send()())

	assert.ErrorIs(t, v.Err(), domain.ErrInvalidInput)
	assert.Nil(t, v.Sent())
}

func TestView_Send_Unavailable(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{}})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrNoOutreachService)
}

func TestView_AfterSend_NoRefineOrResend(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{}, Outreach: &mockOutreachService{}})
	v.Update(v.send()())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrAlreadySent)

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrAlreadySent)
}

func TestView_Esc_BackToResults(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{}})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMatch}, cmd())
}

func TestView_Scroll(t *testing.T) {
	svc := &mockMessageService{}
	v := NewView(nil, nil, Services{Message: svc}, "Jamie Lee")
	v.SetDimensions(60, 15) // three body lines visible
	v.SetTarget(testTarget())
	require.Greater(t, len(v.lines), 3)

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.scrollOffset)

	for range 20 {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	assert.Equal(t, v.maxScroll(), v.scrollOffset)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, v.maxScroll()-1, v.scrollOffset)
}

func TestView_SetTarget_ResetsSentState(t *testing.T) {
	v := newTestView(Services{Message: &mockMessageService{}, Outreach: &mockOutreachService{}})
	v.Update(v.send()())
	require.NotNil(t, v.Sent())

	v.SetTarget(testTarget())

	assert.Nil(t, v.Sent())
	assert.NoError(t, v.Err())
}
