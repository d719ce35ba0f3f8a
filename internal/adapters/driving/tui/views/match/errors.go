package match

import "errors"

// Error definitions for the match view.
var (
	// ErrNoMatchService indicates that no match service was provided.
	ErrNoMatchService = errors.New("match service is required")

	// ErrNoProject indicates there is no project to match against.
	ErrNoProject = errors.New("no project to match: create one with 'pitchmatch project create' or start with --demo")
)
