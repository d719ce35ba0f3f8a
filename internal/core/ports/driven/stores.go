package driven

import (
	"context"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// ProjectStore persists projects for the lifetime of a session.
type ProjectStore interface {
	// Save stores or updates a project.
	Save(ctx context.Context, project domain.Project) error

	// Get retrieves a project by ID.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// Update applies fn to the stored project as one atomic step and
	// returns the result. Errors from fn are returned unchanged and leave
	// the project as it was.
	// Returns domain.ErrNotFound if the project does not exist.
	Update(ctx context.Context, id string, fn func(*domain.Project) error) (*domain.Project, error)

	// List returns all projects, newest first by creation time.
	List(ctx context.Context) ([]domain.Project, error)
}

// MessageStore persists outreach messages.
type MessageStore interface {
	// Save stores or updates a message.
	Save(ctx context.Context, msg domain.OutreachMessage) error

	// Get retrieves a message by ID.
	Get(ctx context.Context, id string) (*domain.OutreachMessage, error)

	// List returns messages passing the filter in send order.
	List(ctx context.Context, filter domain.MessageFilter) ([]domain.OutreachMessage, error)
}

// ReplyStore persists investor replies.
type ReplyStore interface {
	// Save stores a reply.
	Save(ctx context.Context, reply domain.Reply) error

	// Get retrieves a reply by ID.
	Get(ctx context.Context, id string) (*domain.Reply, error)

	// List returns all replies in the order they were saved.
	List(ctx context.Context) ([]domain.Reply, error)
}

// MeetingStore persists scheduled meetings.
type MeetingStore interface {
	// Save stores a meeting.
	Save(ctx context.Context, meeting domain.Meeting) error

	// Get retrieves a meeting by ID.
	Get(ctx context.Context, id string) (*domain.Meeting, error)

	// List returns all meetings in the order they were saved.
	List(ctx context.Context) ([]domain.Meeting, error)
}

// SearchStore remembers the most recent match run.
type SearchStore interface {
	// SetCurrent replaces the current search.
	SetCurrent(ctx context.Context, search domain.Search) error

	// Current returns the current search.
	// Returns domain.ErrNotFound if no search has run yet.
	Current(ctx context.Context) (*domain.Search, error)
}
