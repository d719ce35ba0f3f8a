package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// OutreachService sends messages and records investor responses.
type OutreachService interface {
	// Send records a message from a project to an investor.
	Send(ctx context.Context, projectID, investorID, body string, report *domain.Report) (*domain.OutreachMessage, error)

	// Reply records an investor's answer to a message.
	Reply(ctx context.Context, messageID, investorID, text string) (*domain.Reply, error)

	// ScheduleMeeting books a meeting in response to a message.
	ScheduleMeeting(ctx context.Context, messageID, investorID string, req domain.MeetingRequest) (*domain.Meeting, error)

	// MarkRead flags a message as read by the investor.
	MarkRead(ctx context.Context, messageID string) error

	// ListMessages returns messages passing the filter.
	ListMessages(ctx context.Context, filter domain.MessageFilter) ([]domain.OutreachMessage, error)

	// ListReplies returns all replies.
	ListReplies(ctx context.Context) ([]domain.Reply, error)

	// ListMeetings returns all scheduled meetings.
	ListMeetings(ctx context.Context) ([]domain.Meeting, error)

	// SuggestReply drafts an investor reply to a message.
	SuggestReply(ctx context.Context, messageID string) (string, error)

	// SuggestSlots proposes meeting times relative to now.
	SuggestSlots(now time.Time) []domain.TimeSlot
}
