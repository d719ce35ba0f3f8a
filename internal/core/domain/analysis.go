package domain

// MessageAnalysis is feedback on a drafted outreach message.
type MessageAnalysis struct {
	// Score is an overall quality estimate in [85, 94].
	Score int `json:"score"`

	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
}
