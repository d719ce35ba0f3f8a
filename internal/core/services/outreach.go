package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Ensure OutreachService implements the interface.
var _ driving.OutreachService = (*OutreachService)(nil)

// OutreachService records messages and investor responses. Project changes
// go through ProjectStore.Update; mu serialises message updates.
type OutreachService struct {
	mu       sync.Mutex
	projects driven.ProjectStore
	messages driven.MessageStore
	replies  driven.ReplyStore
	meetings driven.MeetingStore
	catalog  driven.InvestorCatalog
	clock    driven.Clock
	random   driven.RandomSource
}

// OutreachStores groups the stores the outreach service writes to.
type OutreachStores struct {
	Projects driven.ProjectStore
	Messages driven.MessageStore
	Replies  driven.ReplyStore
	Meetings driven.MeetingStore
}

// NewOutreachService creates a new outreach service.
func NewOutreachService(
	stores OutreachStores,
	catalog driven.InvestorCatalog,
	clock driven.Clock,
	random driven.RandomSource,
) *OutreachService {
	return &OutreachService{
		projects: stores.Projects,
		messages: stores.Messages,
		replies:  stores.Replies,
		meetings: stores.Meetings,
		catalog:  catalog,
		clock:    clock,
		random:   random,
	}
}

// Send records a message and appends it to the project's sent list.
func (s *OutreachService) Send(
	ctx context.Context,
	projectID, investorID, body string,
	report *domain.Report,
) (*domain.OutreachMessage, error) {
	if s.projects == nil || s.messages == nil || s.catalog == nil || s.clock == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: message body is required", domain.ErrInvalidInput)
	}

	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", projectID, err)
	}
	if _, err := s.catalog.Get(ctx, investorID); err != nil {
		return nil, fmt.Errorf("get investor %s: %w", investorID, err)
	}

	msg := domain.OutreachMessage{
		ID:         newID(),
		ProjectID:  project.ID,
		InvestorID: investorID,
		Body:       body,
		Report:     report,
		SentAt:     s.clock.Now(),
		Status:     domain.MessageStatusSent,
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	_, err = s.projects.Update(ctx, project.ID, func(p *domain.Project) error {
		p.SentMessages = append(p.SentMessages, msg.ID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", project.ID, err)
	}

	logger.Info("Sent message %s from %s to %s", msg.ID, project.ID, investorID)
	return &msg, nil
}

// Reply records an investor's answer and flags the message as replied.
// An empty investorID defaults to the message's addressee.
func (s *OutreachService) Reply(ctx context.Context, messageID, investorID, text string) (*domain.Reply, error) {
	if s.messages == nil || s.replies == nil || s.clock == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: reply text is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := s.addressedMessage(ctx, messageID, investorID)
	if err != nil {
		return nil, err
	}

	reply := domain.Reply{
		ID:         newID(),
		MessageID:  msg.ID,
		InvestorID: msg.InvestorID,
		Text:       text,
		SentAt:     s.clock.Now(),
	}
	if err := s.replies.Save(ctx, reply); err != nil {
		return nil, fmt.Errorf("save reply: %w", err)
	}

	msg.Replied = true
	msg.ReplyID = reply.ID
	if err := s.messages.Save(ctx, *msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	logger.Info("Investor %s replied to %s", reply.InvestorID, msg.ID)
	return &reply, nil
}

// ScheduleMeeting books a meeting and flags the message.
func (s *OutreachService) ScheduleMeeting(
	ctx context.Context,
	messageID, investorID string,
	req domain.MeetingRequest,
) (*domain.Meeting, error) {
	if s.messages == nil || s.meetings == nil || s.clock == nil {
		return nil, domain.ErrNotImplemented
	}
	req = req.Normalize()
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: meeting date and time are required", domain.ErrInvalidInput)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown meeting type %q", domain.ErrInvalidInput, req.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := s.addressedMessage(ctx, messageID, investorID)
	if err != nil {
		return nil, err
	}

	meeting := domain.Meeting{
		ID:              newID(),
		MessageID:       msg.ID,
		InvestorID:      msg.InvestorID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Location:        req.Location,
		Notes:           req.Notes,
		ScheduledAt:     s.clock.Now(),
		Status:          domain.MeetingStatusScheduled,
	}
	if err := s.meetings.Save(ctx, meeting); err != nil {
		return nil, fmt.Errorf("save meeting: %w", err)
	}

	msg.HasMeeting = true
	msg.MeetingID = meeting.ID
	if err := s.messages.Save(ctx, *msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	logger.Info("Meeting %s scheduled for %s %s", meeting.ID, meeting.Date, meeting.Time)
	return &meeting, nil
}

// MarkRead flags a message as read.
func (s *OutreachService) MarkRead(ctx context.Context, messageID string) error {
	if s.messages == nil {
		return domain.ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return fmt.Errorf("get message %s: %w", messageID, err)
	}
	if msg.Read {
		return nil
	}
	msg.Read = true
	return s.messages.Save(ctx, *msg)
}

// ListMessages returns messages passing the filter.
func (s *OutreachService) ListMessages(ctx context.Context, filter domain.MessageFilter) ([]domain.OutreachMessage, error) {
	if s.messages == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.messages.List(ctx, filter)
}

// ListReplies returns all replies.
func (s *OutreachService) ListReplies(ctx context.Context) ([]domain.Reply, error) {
	if s.replies == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.replies.List(ctx)
}

// ListMeetings returns all meetings.
func (s *OutreachService) ListMeetings(ctx context.Context) ([]domain.Meeting, error) {
	if s.meetings == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.meetings.List(ctx)
}

// SuggestReply drafts a reply from the investor to a message.
func (s *OutreachService) SuggestReply(ctx context.Context, messageID string) (string, error) {
	if s.messages == nil {
		return "", domain.ErrNotImplemented
	}
	msg, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return "", fmt.Errorf("get message %s: %w", messageID, err)
	}

	d := replyData{
		Founder: "there",
		Company: "your company",
		Problem: "the problem",
		Sector:  "this space",
	}
	if s.projects != nil {
		if project, err := s.projects.Get(ctx, msg.ProjectID); err == nil {
			d.Company = project.Name
			d.Sector = orDefault(project.Industry(), d.Sector)
		}
	}
	if r := msg.Report; r != nil {
		d.Founder = orDefault(r.Founder.Name, d.Founder)
		d.Company = orDefault(r.Company.Name, d.Company)
		d.Sector = orDefault(r.Company.Industry, d.Sector)
		d.Problem = orDefault(strings.TrimSuffix(r.Product.Problem, "."), d.Problem)
	}
	d.Investor, d.Firm, d.Role = "The investment team", "our firm", ""
	if s.catalog != nil {
		if inv, err := s.catalog.Get(ctx, msg.InvestorID); err == nil {
			d.Investor, d.Firm, d.Role = inv.Name, inv.Firm, inv.Role
		}
	}

	return pick(s.random, replyTemplates)(d), nil
}

// SuggestSlots proposes tomorrow morning, tomorrow afternoon and next week.
func (s *OutreachService) SuggestSlots(now time.Time) []domain.TimeSlot {
	tomorrow := now.AddDate(0, 0, 1).Format(time.DateOnly)
	nextWeek := now.AddDate(0, 0, 7).Format(time.DateOnly)
	return []domain.TimeSlot{
		{Label: "Tomorrow at 10:00 AM", Date: tomorrow, Time: "10:00"},
		{Label: "Tomorrow at 2:00 PM", Date: tomorrow, Time: "14:00"},
		{Label: "Next Week at 10:00 AM", Date: nextWeek, Time: "10:00"},
	}
}

// addressedMessage loads a message and checks who is responding to it.
func (s *OutreachService) addressedMessage(ctx context.Context, messageID, investorID string) (*domain.OutreachMessage, error) {
	msg, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", messageID, err)
	}
	if investorID != "" && investorID != msg.InvestorID {
		return nil, fmt.Errorf("%w: message %s was not sent to investor %s", domain.ErrInvalidInput, messageID, investorID)
	}
	return msg, nil
}

type replyData struct {
	Founder  string
	Company  string
	Sector   string
	Problem  string
	Investor string
	Firm     string
	Role     string
}

func (d replyData) title() string {
	if d.Role == "" {
		return d.Firm
	}
	return d.Role + ", " + d.Firm
}

var replyTemplates = []func(replyData) string{
	func(d replyData) string {
		return fmt.Sprintf(`Hi %s,

Thank you for reaching out about %s. I'm impressed by your traction and the problem you're solving.

I'd love to learn more about your vision and discuss how we might be able to support your journey.

Would you be available for a 30-minute call next week?

Best regards,
%s
%s`, d.Founder, d.Company, d.Investor, d.title())
	},
	func(d replyData) string {
		return fmt.Sprintf(`Hello %s,

Thanks for sharing your story. %s aligns well with our investment thesis in %s.

The metrics you've shared are compelling. I'd like to dive deeper into your go-to-market strategy and competitive positioning.

Are you available for a preliminary discussion?

Best,
%s`, d.Founder, d.Company, d.Sector, d.Investor)
	},
	func(d replyData) string {
		return fmt.Sprintf(`Hi %s,

I appreciate you thinking of %s for %s.

Your approach to %s is interesting. I'd like to understand more about your unit economics and expansion plans.

Let's schedule some time to discuss further.

Regards,
%s
%s`, d.Founder, d.Firm, d.Company, lowerFirst(d.Problem), d.Investor, d.Firm)
	},
}

// lowerFirst lower-cases the leading letter so a sentence can be embedded.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
