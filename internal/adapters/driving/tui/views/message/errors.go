package message

import "errors"

// Error definitions for the message view.
var (
	// ErrNoOutreachService indicates messages cannot be sent.
	ErrNoOutreachService = errors.New("sending is not available")

	// ErrAlreadySent indicates the draft went out already.
	ErrAlreadySent = errors.New("message already sent")
)
