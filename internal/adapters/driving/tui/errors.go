package tui

import "errors"

// ErrMissingMatchService is returned when the match service is not provided.
var ErrMissingMatchService = errors.New("tui: match service is required")

// ErrMissingProjectService is returned when the project service is not provided.
var ErrMissingProjectService = errors.New("tui: project service is required")

// ErrMissingMessageService is returned when the message service is not provided.
var ErrMissingMessageService = errors.New("tui: message service is required")
