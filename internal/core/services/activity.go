package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

const baseInvestorMatches = 12

// Activity lists what has happened to a project, newest first.
func (s *ProjectService) Activity(ctx context.Context, projectID string, now time.Time) ([]domain.Activity, error) {
	project, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	events := []domain.Activity{
		{
			Kind:  domain.ActivityProjectCreated,
			Title: "Project Created Successfully!",
			Detail: fmt.Sprintf("Great start! Your project %q is now live. "+
				"We're analyzing it to find the best investor matches.", project.Name),
			At: project.CreatedAt,
		},
		{
			Kind:  domain.ActivityAnalysisComplete,
			Title: "Analysis Complete",
			Detail: fmt.Sprintf("We've analyzed your %s and found %d potential investor matches. "+
				"Your %s positioning looks strong!",
				orDefault(project.Industry(), "project"), expectedMatches(project.Stage()),
				orDefault(project.Stage(), "stage")),
			At: project.CreatedAt,
		},
	}

	outreach, err := s.outreachEvents(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	events = append(events, outreach...)

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].At.After(events[b].At)
	})
	for i := range events {
		events[i].TimeAgo = domain.TimeAgo(events[i].At, now)
	}
	return events, nil
}

func (s *ProjectService) outreachEvents(ctx context.Context, projectID string) ([]domain.Activity, error) {
	if s.messages == nil {
		return nil, nil
	}
	msgs, err := s.messages.List(ctx, domain.MessageFilter{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	ids := make(map[string]struct{}, len(msgs))
	for i := range msgs {
		ids[msgs[i].ID] = struct{}{}
	}

	var events []domain.Activity
	if s.replies != nil {
		replies, err := s.replies.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list replies: %w", err)
		}
		for _, r := range replies {
			if _, ok := ids[r.MessageID]; !ok {
				continue
			}
			events = append(events, domain.Activity{
				Kind:   domain.ActivityReply,
				Title:  "Investor Replied to Your Message!",
				Detail: "An investor has responded to your outreach. Check your inbox to read the full message.",
				At:     r.SentAt,
			})
		}
	}
	if s.meetings != nil {
		meetings, err := s.meetings.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list meetings: %w", err)
		}
		for _, m := range meetings {
			if _, ok := ids[m.MessageID]; !ok {
				continue
			}
			events = append(events, domain.Activity{
				Kind:  domain.ActivityMeeting,
				Title: "Meeting Scheduled!",
				Detail: fmt.Sprintf("An investor has scheduled a %d-minute %s meeting with you on %s.",
					m.DurationMinutes, m.Type, meetingDay(m.Date)),
				At: m.ScheduledAt,
			})
		}
	}
	return events, nil
}

// expectedMatches estimates how many investors suit a stage.
func expectedMatches(stage string) int {
	switch stage {
	case "Series A":
		return baseInvestorMatches + 5
	case "Seed":
		return baseInvestorMatches + 3
	default:
		return baseInvestorMatches
	}
}

// meetingDay renders "2025-01-02" as "Jan 2".
func meetingDay(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
