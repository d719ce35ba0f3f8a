package domain

import (
	"fmt"
	"time"
)

// ActivityKind classifies an activity feed event.
type ActivityKind string

// Activity kinds.
const (
	ActivityProjectCreated   ActivityKind = "project_created"
	ActivityAnalysisComplete ActivityKind = "analysis_complete"
	ActivityReply            ActivityKind = "reply"
	ActivityMeeting          ActivityKind = "meeting"
)

// Activity is one entry in a project's activity feed.
type Activity struct {
	Kind    ActivityKind `json:"type"`
	Title   string       `json:"title"`
	Detail  string       `json:"description"`
	At      time.Time    `json:"timestamp"`
	TimeAgo string       `json:"timeAgo"`
}

// TimeAgo renders the distance between at and now as a short label.
func TimeAgo(at, now time.Time) string {
	d := now.Sub(at)
	minutes := int(d / time.Minute)
	hours := int(d / time.Hour)
	days := int(d / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour"))
	default:
		return fmt.Sprintf("%d %s ago", days, plural(days, "day"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
