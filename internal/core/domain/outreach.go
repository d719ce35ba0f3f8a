package domain

import "time"

// MessageStatus is the delivery state of an outreach message.
type MessageStatus string

// Message statuses.
const (
	MessageStatusSent MessageStatus = "sent"
)

// MeetingStatus is the state of a scheduled meeting.
type MeetingStatus string

// Meeting statuses.
const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
)

// MeetingType is how a meeting takes place.
type MeetingType string

// Meeting types.
const (
	MeetingTypeVideo    MeetingType = "video"
	MeetingTypePhone    MeetingType = "phone"
	MeetingTypeInPerson MeetingType = "in-person"
)

// DefaultMeetingMinutes is the meeting length when none is given.
const DefaultMeetingMinutes = 30

// IsValid returns true if the meeting type is recognised.
func (t MeetingType) IsValid() bool {
	switch t {
	case MeetingTypeVideo, MeetingTypePhone, MeetingTypeInPerson:
		return true
	default:
		return false
	}
}

// OutreachMessage is a message sent from a project to an investor.
type OutreachMessage struct {
	ID         string        `json:"id"`
	ProjectID  string        `json:"projectId"`
	InvestorID string        `json:"investorId"`
	Body       string        `json:"message"`
	Report     *Report       `json:"report,omitempty"`
	SentAt     time.Time     `json:"sentAt"`
	Status     MessageStatus `json:"status"`
	Read       bool          `json:"read"`
	Replied    bool          `json:"replied"`
	HasMeeting bool          `json:"hasMeeting"`

	// ReplyID is set once the investor has replied.
	ReplyID string `json:"replyId,omitempty"`

	// MeetingID is set once a meeting has been scheduled.
	MeetingID string `json:"meetingId,omitempty"`
}

// Reply is an investor's written answer to an outreach message.
type Reply struct {
	ID         string    `json:"id"`
	MessageID  string    `json:"messageId"`
	InvestorID string    `json:"vcId"`
	Text       string    `json:"reply"`
	SentAt     time.Time `json:"sentAt"`
}

// MeetingRequest carries the fields an investor fills in to book a meeting.
type MeetingRequest struct {
	Date            string
	Time            string
	DurationMinutes int
	Type            MeetingType
	Location        string
	Notes           string
}

// Normalize fills defaults for optional fields.
func (r MeetingRequest) Normalize() MeetingRequest {
	if r.DurationMinutes <= 0 {
		r.DurationMinutes = DefaultMeetingMinutes
	}
	if r.Type == "" {
		r.Type = MeetingTypeVideo
	}
	return r
}

// Meeting is a call booked between an investor and a founder.
type Meeting struct {
	ID              string        `json:"id"`
	MessageID       string        `json:"messageId"`
	InvestorID      string        `json:"vcId"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	DurationMinutes int           `json:"duration"`
	Type            MeetingType   `json:"meetingType"`
	Location        string        `json:"location,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	ScheduledAt     time.Time     `json:"scheduledAt"`
	Status          MeetingStatus `json:"status"`
}

// MessageFilter narrows ListMessages. Empty fields match everything.
type MessageFilter struct {
	ProjectID  string
	InvestorID string
	UnreadOnly bool
}

// Matches reports whether m passes the filter.
func (f MessageFilter) Matches(m *OutreachMessage) bool {
	if f.ProjectID != "" && m.ProjectID != f.ProjectID {
		return false
	}
	if f.InvestorID != "" && m.InvestorID != f.InvestorID {
		return false
	}
	if f.UnreadOnly && m.Read {
		return false
	}
	return true
}

// TimeSlot is a suggested meeting time.
type TimeSlot struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}
