package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/random"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

func TestScorer_FinTechSeriesA(t *testing.T) {
	for _, bonus := range []int{0, 7, 14} {
		scorer := NewScorer(random.NewSequence(bonus))

		got := scorer.Score(finflowProfile(), sequoia(), "")

		assert.Equal(t, min(85+bonus, maxScore), got.Value)
		assert.GreaterOrEqual(t, got.Value, 85)
		assert.LessOrEqual(t, got.Value, 98)
		assert.Equal(t, []string{
			"Strong industry alignment in FinTech",
			"Actively investing in Series A companies",
			"Check size aligns with funding needs",
		}, got.Reasons)
	}
}

func TestScorer_IndustryAddsPoints(t *testing.T) {
	scorer := NewScorer(random.NewSequence(0))
	inv := sequoia()

	without := scorer.Score(&domain.ProjectProfile{Industry: "Agriculture"}, inv, "")
	with := scorer.Score(&domain.ProjectProfile{Industry: "FinTech"}, inv, "")

	assert.Equal(t, industryPoints, with.Value-without.Value)
}

func TestScorer_IndustryIsCaseInsensitiveSubstring(t *testing.T) {
	scorer := NewScorer(nil)
	inv := sequoia()

	assert.Equal(t, industryPoints, scorer.Score(&domain.ProjectProfile{Industry: "fintech"}, inv, "").Value)
	assert.Equal(t, industryPoints, scorer.Score(&domain.ProjectProfile{Industry: "B2B SaaS"}, inv, "").Value)
}

func TestScorer_StageIsExact(t *testing.T) {
	scorer := NewScorer(nil)
	inv := sequoia()

	assert.Equal(t, stagePoints, scorer.Score(&domain.ProjectProfile{Stage: "Seed"}, inv, "").Value)
	assert.Zero(t, scorer.Score(&domain.ProjectProfile{Stage: "seed"}, inv, "").Value)
}

func TestScorer_CheckSizeOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		funding string
	}{
		{"below range", "$500K"},
		{"above range", "$30M"},
		{"unparseable", "a lot"},
		{"empty", ""},
	}

	scorer := NewScorer(random.NewSequence(0))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(&domain.ProjectProfile{FundingNeeded: tt.funding}, accel(), "")
			assert.Zero(t, got.Value)
			assert.Equal(t, []string{defaultReason}, got.Reasons)
		})
	}
}

func TestScorer_CheckSizeBoundsInclusive(t *testing.T) {
	scorer := NewScorer(nil)

	assert.Equal(t, checkSizePoints, scorer.Score(&domain.ProjectProfile{FundingNeeded: "$5M"}, accel(), "").Value)
	assert.Equal(t, checkSizePoints, scorer.Score(&domain.ProjectProfile{FundingNeeded: "$20M"}, accel(), "").Value)
}

func TestScorer_CheckSizeIgnoredWithoutRange(t *testing.T) {
	inv := accel()
	inv.CheckSize = domain.CheckSize{}

	got := NewScorer(nil).Score(&domain.ProjectProfile{FundingNeeded: "$0"}, inv, "")
	assert.Zero(t, got.Value)
}

func TestScorer_FocusAreas(t *testing.T) {
	scorer := NewScorer(nil)

	got := scorer.Score(nil, sequoia(), "Looking for b2b saas investors who know payments")

	assert.Equal(t, 2*focusPoints, got.Value)
	assert.Equal(t, []string{"Focus area match: B2B SaaS"}, got.Reasons)
}

func TestScorer_CapsAtMax(t *testing.T) {
	scorer := NewScorer(random.NewSequence(14))

	got := scorer.Score(finflowProfile(), sequoia(), "b2b saas, ai/ml and payments")

	assert.Equal(t, maxScore, got.Value)
}

func TestScorer_NoProfile(t *testing.T) {
	got := NewScorer(random.NewSequence(3)).Score(nil, sequoia(), "")

	assert.Equal(t, 3, got.Value)
	assert.Equal(t, []string{defaultReason}, got.Reasons)
}

func TestScorer_AlwaysInRange(t *testing.T) {
	scorer := NewScorer(random.New(1))
	profiles := []*domain.ProjectProfile{
		nil,
		{},
		finflowProfile(),
		{Industry: "Climate Tech", Stage: "Seed", FundingNeeded: "$2M"},
		{Industry: "Enterprise Software", Stage: "Series B", FundingNeeded: "$50M"},
	}
	preferences := []string{"", "sustainability", "b2b saas ai/ml payments developer tools"}

	for i := 0; i < 50; i++ {
		for _, p := range profiles {
			for _, pref := range preferences {
				for _, inv := range testCatalog().investors {
					got := scorer.Score(p, inv, pref)
					require.GreaterOrEqual(t, got.Value, 0)
					require.LessOrEqual(t, got.Value, maxScore)
					require.NotEmpty(t, got.Reasons)
				}
			}
		}
	}
}

func TestInsight(t *testing.T) {
	inv := sequoia()

	tests := []struct {
		score int
		want  string
	}{
		{98, "Excellent match!"},
		{80, "Excellent match!"},
		{79, "Good fit."},
		{60, "Good fit."},
		{59, "Moderate fit."},
		{40, "Moderate fit."},
		{39, "Sarah Chen invests in related sectors"},
	}
	for _, tt := range tests {
		assert.Contains(t, Insight(inv, tt.score), tt.want, tt.score)
	}
}
