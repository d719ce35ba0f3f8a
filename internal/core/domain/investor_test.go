package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvestor_CoversIndustry(t *testing.T) {
	inv := Investor{Industries: []string{"FinTech", "Enterprise SaaS"}}

	tests := []struct {
		industry string
		want     bool
	}{
		{"FinTech", true},
		{"fintech", true},
		{"Tech", true},
		{"SaaS", true},
		{"Enterprise SaaS Platforms", true},
		{"Climate", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			assert.Equal(t, tt.want, inv.CoversIndustry(tt.industry))
		})
	}
}

func TestInvestor_AcceptsStage(t *testing.T) {
	inv := Investor{Stages: []string{"Seed", "Series A"}}

	assert.True(t, inv.AcceptsStage("Series A"))
	assert.False(t, inv.AcceptsStage("series a"))
	assert.False(t, inv.AcceptsStage("Series B"))
}

func TestInvestor_Fallbacks(t *testing.T) {
	var inv Investor

	assert.Equal(t, "technology", inv.FirstFocusArea("technology"))
	assert.Equal(t, "leading companies", inv.PortfolioCompany(0, "leading companies"))

	inv.FocusAreas = []string{"AI"}
	inv.Portfolio = []string{"Stripe"}
	assert.Equal(t, "AI", inv.FirstFocusArea("technology"))
	assert.Equal(t, "Stripe", inv.PortfolioCompany(0, "x"))
	assert.Equal(t, "x", inv.PortfolioCompany(1, "x"))
	assert.Equal(t, "x", inv.PortfolioCompany(-1, "x"))
}

func TestProject_Clone(t *testing.T) {
	p := Project{
		ID:                   "p1",
		Profile:              &ProjectProfile{Industry: "FinTech", Highlights: []string{"a"}},
		ShortlistedInvestors: []string{"v1"},
	}

	c := p.Clone()
	c.Profile.Highlights[0] = "changed"
	c.ShortlistedInvestors[0] = "v2"

	assert.Equal(t, "a", p.Profile.Highlights[0])
	assert.Equal(t, "v1", p.ShortlistedInvestors[0])
	assert.Equal(t, "FinTech", p.Industry())
}

func TestProject_NilProfile(t *testing.T) {
	p := Project{}

	assert.Empty(t, p.Industry())
	assert.Empty(t, p.Stage())
	assert.Nil(t, p.Clone().Profile)
}

func TestMessageFilter_Matches(t *testing.T) {
	m := &OutreachMessage{ProjectID: "p1", InvestorID: "v1", Read: true}

	assert.True(t, MessageFilter{}.Matches(m))
	assert.True(t, MessageFilter{ProjectID: "p1"}.Matches(m))
	assert.False(t, MessageFilter{ProjectID: "p2"}.Matches(m))
	assert.False(t, MessageFilter{InvestorID: "v2"}.Matches(m))
	assert.False(t, MessageFilter{UnreadOnly: true}.Matches(m))
}

func TestMeetingRequest_Normalize(t *testing.T) {
	r := MeetingRequest{Date: "2025-01-02", Time: "10:00"}.Normalize()

	assert.Equal(t, DefaultMeetingMinutes, r.DurationMinutes)
	assert.Equal(t, MeetingTypeVideo, r.Type)
	assert.True(t, r.Type.IsValid())
	assert.False(t, MeetingType("carrier pigeon").IsValid())
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "Just now"},
		{5 * time.Minute, "5 min ago"},
		{time.Hour, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{72 * time.Hour, "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(now.Add(-tt.ago), now))
		})
	}
}
