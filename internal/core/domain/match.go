package domain

import "time"

// Score is the raw output of the match scorer for one investor.
type Score struct {
	// Value is the compatibility score in [0, 98].
	Value int

	// Reasons are human-readable explanations for the awarded points.
	Reasons []string
}

// MatchResult is an investor decorated with its compatibility score.
// Results are recomputed per search and never persisted.
type MatchResult struct {
	Investor Investor `json:"investor"`

	// Score is in [0, 98].
	Score int `json:"score"`

	// Reasons explain the score.
	Reasons []string `json:"reasons"`

	// Insight is a one-sentence summary chosen by score bracket.
	Insight string `json:"insight"`
}

// MatchRequest describes a search for investors.
// Either ProjectID or Profile must be set; ProjectID wins when both are.
type MatchRequest struct {
	// ProjectID references a stored project whose profile is used.
	ProjectID string

	// Profile is an inline profile for ad-hoc matching.
	Profile *ProjectProfile

	// Preference is the founder's free-text description of the ideal investor.
	Preference string

	// Limit caps the number of results. Zero means no limit.
	Limit int
}

// Search records the most recent match run of a session.
type Search struct {
	ProjectID  string        `json:"projectId,omitempty"`
	Preference string        `json:"preference"`
	Results    []MatchResult `json:"results"`
	At         time.Time     `json:"at"`
}
