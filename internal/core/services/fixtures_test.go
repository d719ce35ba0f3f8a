package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/clock"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

var testNow = time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC)

// fakeCatalog is an in-memory investor catalog.
type fakeCatalog struct {
	investors []domain.Investor
	err       error
}

func (c *fakeCatalog) List(context.Context) ([]domain.Investor, error) {
	if c.err != nil {
		return nil, c.err
	}
	return append([]domain.Investor(nil), c.investors...), nil
}

func (c *fakeCatalog) Get(_ context.Context, id string) (*domain.Investor, error) {
	for _, inv := range c.investors {
		if inv.ID == id {
			return &inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func mustCheckSize(s string) domain.CheckSize {
	cs, err := domain.ParseCheckSize(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func sequoia() domain.Investor {
	return domain.Investor{
		ID:         "vc1",
		Name:       "Sarah Chen",
		Firm:       "Sequoia Capital",
		Role:       "Partner",
		FocusAreas: []string{"B2B SaaS", "AI/ML", "Payments"},
		Industries: []string{"FinTech", "SaaS"},
		Stages:     []string{"Seed", "Series A"},
		CheckSize:  mustCheckSize("$1M-$10M"),
		Location:   "Menlo Park, CA",
		Portfolio:  []string{"Stripe", "Plaid", "Brex"},
	}
}

func accel() domain.Investor {
	return domain.Investor{
		ID:         "vc3",
		Name:       "Emily Watson",
		Firm:       "Accel",
		Role:       "Partner",
		FocusAreas: []string{"Developer Tools"},
		Industries: []string{"Enterprise Software"},
		Stages:     []string{"Series A", "Series B"},
		CheckSize:  mustCheckSize("$5M-$20M"),
		Portfolio:  []string{"Slack", "Atlassian"},
	}
}

func benchmark() domain.Investor {
	return domain.Investor{
		ID:         "vc4",
		Name:       "David Kim",
		Firm:       "Benchmark",
		Role:       "General Partner",
		FocusAreas: []string{"Sustainability"},
		Industries: []string{"Climate Tech", "E-commerce"},
		Stages:     []string{"Seed"},
		CheckSize:  mustCheckSize("$1M-$8M"),
		Portfolio:  []string{"eBay", "Uber"},
	}
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{investors: []domain.Investor{sequoia(), accel(), benchmark()}}
}

func finflowProfile() *domain.ProjectProfile {
	return &domain.ProjectProfile{
		Industry:      "FinTech",
		Stage:         "Series A",
		FundingNeeded: "$5M",
		Revenue:       "$500K ARR",
		Growth:        "25% MoM",
		Customers:     150,
	}
}

func finflow() domain.Project {
	return domain.Project{
		ID:   "proj1",
		Name: "FinFlow AI",
		Description: "AI-powered financial planning platform for SMBs. Automates cash flow forecasting " +
			"using machine learning.",
		CreatedAt:            testNow,
		Profile:              finflowProfile(),
		ShortlistedInvestors: []string{},
		SentMessages:         []string{},
	}
}

// testStores groups fresh memory stores.
type testStores struct {
	projects *memory.ProjectStore
	messages *memory.MessageStore
	replies  *memory.ReplyStore
	meetings *memory.MeetingStore
	searches *memory.SearchStore
	clock    *clock.Fixed
}

func newTestStores() *testStores {
	return &testStores{
		projects: memory.NewProjectStore(),
		messages: memory.NewMessageStore(),
		replies:  memory.NewReplyStore(),
		meetings: memory.NewMeetingStore(),
		searches: memory.NewSearchStore(),
		clock:    clock.NewFixed(testNow),
	}
}

// stableIDs makes newID return id-1, id-2, ... for the duration of the test.
func stableIDs(t *testing.T) {
	t.Helper()
	orig := newID
	n := 0
	newID = func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
	t.Cleanup(func() { newID = orig })
}
