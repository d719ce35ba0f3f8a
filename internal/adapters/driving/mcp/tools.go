package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// ProfileInput describes a startup for matching and project creation.
type ProfileInput struct {
	Industry      string `json:"industry,omitempty" jsonschema:"industry, e.g. FinTech"`
	Stage         string `json:"stage,omitempty" jsonschema:"funding stage, e.g. Series A"`
	FundingNeeded string `json:"funding_needed,omitempty" jsonschema:"amount being raised, e.g. $5M"`
	Revenue       string `json:"revenue,omitempty" jsonschema:"current revenue, e.g. $500K ARR"`
	Growth        string `json:"growth,omitempty" jsonschema:"growth rate, e.g. 25% MoM"`
	Customers     int    `json:"customers,omitempty" jsonschema:"number of customers"`
	TeamSize      int    `json:"team_size,omitempty" jsonschema:"number of employees"`
	Location      string `json:"location,omitempty" jsonschema:"company location"`
}

func (p ProfileInput) isEmpty() bool {
	return p == ProfileInput{}
}

func (p ProfileInput) toDomain() *domain.ProjectProfile {
	if p.isEmpty() {
		return nil
	}
	return &domain.ProjectProfile{
		Industry:      p.Industry,
		Stage:         p.Stage,
		FundingNeeded: p.FundingNeeded,
		Revenue:       p.Revenue,
		Growth:        p.Growth,
		Customers:     p.Customers,
		TeamSize:      p.TeamSize,
		Location:      p.Location,
	}
}

// MatchInput is the input schema for the match_investors tool.
type MatchInput struct {
	ProjectID  string       `json:"project_id,omitempty" jsonschema:"match for an existing project"`
	Profile    ProfileInput `json:"profile,omitempty" jsonschema:"startup profile, used when project_id is not set"`
	Preference string       `json:"preference,omitempty" jsonschema:"what the founder looks for in an investor"`
	Limit      int          `json:"limit,omitempty" jsonschema:"maximum number of results (default all)"`
}

// MatchOutput is the output schema for the match_investors tool.
type MatchOutput struct {
	Results []MatchResultOutput `json:"results"`
	Count   int                 `json:"count"`
}

// MatchResultOutput represents a single ranked investor.
type MatchResultOutput struct {
	InvestorID string   `json:"investor_id"`
	Name       string   `json:"name"`
	Firm       string   `json:"firm"`
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
	Insight    string   `json:"insight"`
}

// CreateProjectInput is the input schema for the create_project tool.
type CreateProjectInput struct {
	Name        string       `json:"name" jsonschema:"project name"`
	Description string       `json:"description,omitempty" jsonschema:"what the startup does"`
	Profile     ProfileInput `json:"profile,omitempty" jsonschema:"startup profile"`
}

// ProjectOutput summarises a project.
type ProjectOutput struct {
	ProjectID   string   `json:"project_id"`
	Name        string   `json:"name"`
	Shortlist   []string `json:"shortlist"`
	SentMessage []string `json:"sent_messages"`
}

// ShortlistInput is the input schema for the shortlist_investors tool.
type ShortlistInput struct {
	ProjectID   string   `json:"project_id" jsonschema:"project to update"`
	InvestorIDs []string `json:"investor_ids" jsonschema:"investors to add"`
}

// TargetInput names a project and an investor.
type TargetInput struct {
	ProjectID  string `json:"project_id" jsonschema:"the founder's project"`
	InvestorID string `json:"investor_id" jsonschema:"the investor being contacted"`
}

// GenerateMessageInput is the input schema for the generate_message tool.
type GenerateMessageInput struct {
	ProjectID   string `json:"project_id" jsonschema:"the founder's project"`
	InvestorID  string `json:"investor_id" jsonschema:"the investor being contacted"`
	FounderName string `json:"founder_name,omitempty" jsonschema:"name that signs the message"`
}

// RefineMessageInput is the input schema for the refine_message tool.
type RefineMessageInput struct {
	ProjectID  string `json:"project_id" jsonschema:"the founder's project"`
	InvestorID string `json:"investor_id" jsonschema:"the investor being contacted"`
	Message    string `json:"message" jsonschema:"the draft to refine"`
}

// MessageOutput carries a drafted message.
type MessageOutput struct {
	Message string `json:"message"`
}

// AnalyzeMessageInput is the input schema for the analyze_message tool.
type AnalyzeMessageInput struct {
	Message string `json:"message" jsonschema:"the draft to analyze"`
}

// ReportOutput is the output schema for the generate_report tool.
type ReportOutput struct {
	Report domain.Report `json:"report"`
}

// SendMessageInput is the input schema for the send_message tool.
type SendMessageInput struct {
	ProjectID  string `json:"project_id" jsonschema:"the founder's project"`
	InvestorID string `json:"investor_id" jsonschema:"the investor being contacted"`
	Message    string `json:"message,omitempty" jsonschema:"message body; drafted when empty"`
	SkipReport bool   `json:"skip_report,omitempty" jsonschema:"do not attach an investor report"`
}

// SendMessageOutput is the output schema for the send_message tool.
type SendMessageOutput struct {
	MessageID  string `json:"message_id"`
	InvestorID string `json:"investor_id"`
	SentAt     string `json:"sent_at"`
	Message    string `json:"message"`
	MatchScore int    `json:"match_score,omitempty"`
}

// ReplyInput is the input schema for the reply_to_message tool.
type ReplyInput struct {
	MessageID  string `json:"message_id" jsonschema:"message being answered"`
	InvestorID string `json:"investor_id,omitempty" jsonschema:"investor replying (default the addressee)"`
	Reply      string `json:"reply,omitempty" jsonschema:"reply text; drafted when empty"`
}

// ReplyOutput is the output schema for the reply_to_message tool.
type ReplyOutput struct {
	ReplyID    string `json:"reply_id"`
	MessageID  string `json:"message_id"`
	InvestorID string `json:"investor_id"`
	Reply      string `json:"reply"`
}

// MeetingInput is the input schema for the schedule_meeting tool.
type MeetingInput struct {
	MessageID       string `json:"message_id" jsonschema:"message the meeting answers"`
	InvestorID      string `json:"investor_id,omitempty" jsonschema:"investor scheduling (default the addressee)"`
	Date            string `json:"date,omitempty" jsonschema:"YYYY-MM-DD; first suggested slot when empty"`
	Time            string `json:"time,omitempty" jsonschema:"HH:MM; first suggested slot when empty"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"length in minutes (default 30)"`
	MeetingType     string `json:"meeting_type,omitempty" jsonschema:"video, phone or in-person (default video)"`
	Location        string `json:"location,omitempty" jsonschema:"address or meeting link"`
	Notes           string `json:"notes,omitempty" jsonschema:"notes for the founder"`
}

// MeetingOutput is the output schema for the schedule_meeting tool.
type MeetingOutput struct {
	MeetingID       string `json:"meeting_id"`
	MessageID       string `json:"message_id"`
	InvestorID      string `json:"investor_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	MeetingType     string `json:"meeting_type"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "match_investors",
		Description: "Rank catalog investors for a project or startup profile, best first",
	}, s.handleMatch)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a startup project",
	}, s.handleCreateProject)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "shortlist_investors",
		Description: "Add investors to a project's shortlist",
	}, s.handleShortlist)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_message",
		Description: "Draft an outreach message from a project to an investor",
	}, s.handleGenerateMessage)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refine_message",
		Description: "Redraft an outreach message, keeping its signature",
	}, s.handleRefineMessage)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_message",
		Description: "Score a draft message and list strengths and suggestions",
	}, s.handleAnalyzeMessage)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_report",
		Description: "Build the investor report attached to outreach",
	}, s.handleGenerateReport)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "send_message",
		Description: "Send a message to an investor, with a report attached",
	}, s.handleSendMessage)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reply_to_message",
		Description: "Record an investor's reply to a sent message",
	}, s.handleReply)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "schedule_meeting",
		Description: "Schedule a meeting in response to a sent message",
	}, s.handleScheduleMeeting)
}

func (s *Server) handleMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MatchInput,
) (*mcp.CallToolResult, MatchOutput, error) {
	results, err := s.ports.Match.Match(ctx, domain.MatchRequest{
		ProjectID:  input.ProjectID,
		Profile:    input.Profile.toDomain(),
		Preference: input.Preference,
		Limit:      input.Limit,
	})
	if err != nil {
		return nil, MatchOutput{}, err
	}

	output := MatchOutput{
		Results: make([]MatchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = MatchResultOutput{
			InvestorID: results[i].Investor.ID,
			Name:       results[i].Investor.Name,
			Firm:       results[i].Investor.Firm,
			Score:      results[i].Score,
			Reasons:    append([]string{}, results[i].Reasons...),
			Insight:    results[i].Insight,
		}
	}
	return nil, output, nil
}

func (s *Server) handleCreateProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateProjectInput,
) (*mcp.CallToolResult, ProjectOutput, error) {
	project, err := s.ports.Project.Create(ctx, input.Name, input.Description, input.Profile.toDomain())
	if err != nil {
		return nil, ProjectOutput{}, err
	}
	return nil, projectOutput(project), nil
}

func (s *Server) handleShortlist(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ShortlistInput,
) (*mcp.CallToolResult, ProjectOutput, error) {
	project, err := s.ports.Project.Shortlist(ctx, input.ProjectID, input.InvestorIDs...)
	if err != nil {
		return nil, ProjectOutput{}, err
	}
	return nil, projectOutput(project), nil
}

func projectOutput(p *domain.Project) ProjectOutput {
	return ProjectOutput{
		ProjectID:   p.ID,
		Name:        p.Name,
		Shortlist:   append([]string{}, p.ShortlistedInvestors...),
		SentMessage: append([]string{}, p.SentMessages...),
	}
}

// target resolves the project and investor of a request.
func (s *Server) target(ctx context.Context, projectID, investorID string) (*domain.Project, *domain.Investor, error) {
	project, err := s.ports.Project.Get(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("project %q: %w", projectID, err)
	}
	inv, err := s.ports.Catalog.Get(ctx, investorID)
	if err != nil {
		return nil, nil, fmt.Errorf("investor %q: %w", investorID, err)
	}
	return project, inv, nil
}

func (s *Server) founderName(override string) string {
	if override != "" {
		return override
	}
	if s.ports.FounderName != "" {
		return s.ports.FounderName
	}
	return domain.DefaultFounderName
}

func (s *Server) handleGenerateMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateMessageInput,
) (*mcp.CallToolResult, MessageOutput, error) {
	project, inv, err := s.target(ctx, input.ProjectID, input.InvestorID)
	if err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: s.ports.Message.Generate(*inv, *project, s.founderName(input.FounderName))}, nil
}

func (s *Server) handleRefineMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RefineMessageInput,
) (*mcp.CallToolResult, MessageOutput, error) {
	project, inv, err := s.target(ctx, input.ProjectID, input.InvestorID)
	if err != nil {
		return nil, MessageOutput{}, err
	}
	refined, err := s.ports.Message.Refine(ctx, input.Message, *inv, *project)
	if err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: refined}, nil
}

func (s *Server) handleAnalyzeMessage(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeMessageInput,
) (*mcp.CallToolResult, domain.MessageAnalysis, error) {
	return nil, s.ports.Message.Analyze(input.Message), nil
}

func (s *Server) handleGenerateReport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TargetInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	if s.ports.Report == nil {
		return nil, ReportOutput{}, errNotConfigured
	}
	project, inv, err := s.target(ctx, input.ProjectID, input.InvestorID)
	if err != nil {
		return nil, ReportOutput{}, err
	}
	report, err := s.ports.Report.Generate(ctx, *project, *inv)
	if err != nil {
		return nil, ReportOutput{}, err
	}
	return nil, ReportOutput{Report: *report}, nil
}

func (s *Server) handleSendMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendMessageInput,
) (*mcp.CallToolResult, SendMessageOutput, error) {
	if s.ports.Outreach == nil {
		return nil, SendMessageOutput{}, errNotConfigured
	}
	project, inv, err := s.target(ctx, input.ProjectID, input.InvestorID)
	if err != nil {
		return nil, SendMessageOutput{}, err
	}

	body := input.Message
	if body == "" {
		body = s.ports.Message.Generate(*inv, *project, s.founderName(""))
	}

	var report *domain.Report
	if !input.SkipReport && s.ports.Report != nil {
		report, err = s.ports.Report.Generate(ctx, *project, *inv)
		if err != nil {
			return nil, SendMessageOutput{}, err
		}
	}

	msg, err := s.ports.Outreach.Send(ctx, project.ID, inv.ID, body, report)
	if err != nil {
		return nil, SendMessageOutput{}, err
	}

	output := SendMessageOutput{
		MessageID:  msg.ID,
		InvestorID: msg.InvestorID,
		SentAt:     msg.SentAt.Format(time.RFC3339),
		Message:    msg.Body,
	}
	if report != nil {
		output.MatchScore = report.Matching.Score
	}
	return nil, output, nil
}

func (s *Server) handleReply(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReplyInput,
) (*mcp.CallToolResult, ReplyOutput, error) {
	if s.ports.Outreach == nil {
		return nil, ReplyOutput{}, errNotConfigured
	}

	text := input.Reply
	if text == "" {
		drafted, err := s.ports.Outreach.SuggestReply(ctx, input.MessageID)
		if err != nil {
			return nil, ReplyOutput{}, err
		}
		text = drafted
	}

	reply, err := s.ports.Outreach.Reply(ctx, input.MessageID, input.InvestorID, text)
	if err != nil {
		return nil, ReplyOutput{}, err
	}
	return nil, ReplyOutput{
		ReplyID:    reply.ID,
		MessageID:  reply.MessageID,
		InvestorID: reply.InvestorID,
		Reply:      reply.Text,
	}, nil
}

func (s *Server) handleScheduleMeeting(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MeetingInput,
) (*mcp.CallToolResult, MeetingOutput, error) {
	if s.ports.Outreach == nil {
		return nil, MeetingOutput{}, errNotConfigured
	}

	req := domain.MeetingRequest{
		Date:            input.Date,
		Time:            input.Time,
		DurationMinutes: input.DurationMinutes,
		Type:            domain.MeetingType(input.MeetingType),
		Location:        input.Location,
		Notes:           input.Notes,
	}
	if req.Date == "" && req.Time == "" {
		slot := s.ports.Outreach.SuggestSlots(s.ports.now())[0]
		req.Date, req.Time = slot.Date, slot.Time
	}

	meeting, err := s.ports.Outreach.ScheduleMeeting(ctx, input.MessageID, input.InvestorID, req)
	if err != nil {
		return nil, MeetingOutput{}, err
	}
	return nil, MeetingOutput{
		MeetingID:       meeting.ID,
		MessageID:       meeting.MessageID,
		InvestorID:      meeting.InvestorID,
		Date:            meeting.Date,
		Time:            meeting.Time,
		DurationMinutes: meeting.DurationMinutes,
		MeetingType:     string(meeting.Type),
	}, nil
}
