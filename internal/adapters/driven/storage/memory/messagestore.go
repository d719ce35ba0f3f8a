package memory

import (
	"context"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure the outreach stores implement their interfaces.
var (
	_ driven.MessageStore = (*MessageStore)(nil)
	_ driven.ReplyStore   = (*ReplyStore)(nil)
	_ driven.MeetingStore = (*MeetingStore)(nil)
)

// MessageStore is an in-memory implementation of driven.MessageStore.
type MessageStore struct {
	messages *records[domain.OutreachMessage]
}

// NewMessageStore creates a new in-memory message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{messages: newRecords[domain.OutreachMessage]()}
}

// Save stores or updates a message.
func (s *MessageStore) Save(_ context.Context, msg domain.OutreachMessage) error {
	if msg.ID == "" {
		return domain.ErrInvalidInput
	}
	s.messages.put(msg.ID, msg)
	return nil
}

// Get retrieves a message by ID.
func (s *MessageStore) Get(_ context.Context, id string) (*domain.OutreachMessage, error) {
	msg, err := s.messages.get(id)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns messages passing the filter in send order.
func (s *MessageStore) List(_ context.Context, filter domain.MessageFilter) ([]domain.OutreachMessage, error) {
	return s.messages.all(filter.Matches), nil
}

// ReplyStore is an in-memory implementation of driven.ReplyStore.
type ReplyStore struct {
	replies *records[domain.Reply]
}

// NewReplyStore creates a new in-memory reply store.
func NewReplyStore() *ReplyStore {
	return &ReplyStore{replies: newRecords[domain.Reply]()}
}

// Save stores a reply.
func (s *ReplyStore) Save(_ context.Context, reply domain.Reply) error {
	if reply.ID == "" {
		return domain.ErrInvalidInput
	}
	s.replies.put(reply.ID, reply)
	return nil
}

// Get retrieves a reply by ID.
func (s *ReplyStore) Get(_ context.Context, id string) (*domain.Reply, error) {
	reply, err := s.replies.get(id)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// List returns all replies.
func (s *ReplyStore) List(_ context.Context) ([]domain.Reply, error) {
	return s.replies.all(nil), nil
}

// MeetingStore is an in-memory implementation of driven.MeetingStore.
type MeetingStore struct {
	meetings *records[domain.Meeting]
}

// NewMeetingStore creates a new in-memory meeting store.
func NewMeetingStore() *MeetingStore {
	return &MeetingStore{meetings: newRecords[domain.Meeting]()}
}

// Save stores a meeting.
func (s *MeetingStore) Save(_ context.Context, meeting domain.Meeting) error {
	if meeting.ID == "" {
		return domain.ErrInvalidInput
	}
	s.meetings.put(meeting.ID, meeting)
	return nil
}

// Get retrieves a meeting by ID.
func (s *MeetingStore) Get(_ context.Context, id string) (*domain.Meeting, error) {
	meeting, err := s.meetings.get(id)
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List returns all meetings.
func (s *MeetingStore) List(_ context.Context) ([]domain.Meeting, error) {
	return s.meetings.all(nil), nil
}
