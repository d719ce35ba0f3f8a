package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Scoring weights.
const (
	industryPoints  = 35
	stagePoints     = 30
	focusPoints     = 15
	checkSizePoints = 20
	maxBonus        = 14
	maxScore        = 98
	matchCutoff     = 20
)

const defaultReason = "Potential fit based on investment thesis"

// Scorer computes investor compatibility scores.
// A nil random source disables the random bonus.
type Scorer struct {
	random driven.RandomSource
}

// NewScorer creates a scorer drawing its bonus from random.
func NewScorer(random driven.RandomSource) *Scorer {
	return &Scorer{random: random}
}

// Score rates how well inv fits a project profile and a free-text preference.
// The result is always within [0, 98] and carries at least one reason.
func (s *Scorer) Score(profile *domain.ProjectProfile, inv domain.Investor, preference string) domain.Score {
	var p domain.ProjectProfile
	if profile != nil {
		p = *profile
	}

	score := 0
	var reasons []string

	if p.Industry != "" && inv.CoversIndustry(p.Industry) {
		score += industryPoints
		reasons = append(reasons, fmt.Sprintf("Strong industry alignment in %s", p.Industry))
	}

	if p.Stage != "" && inv.AcceptsStage(p.Stage) {
		score += stagePoints
		reasons = append(reasons, fmt.Sprintf("Actively investing in %s companies", p.Stage))
	}

	if preference != "" {
		lower := strings.ToLower(preference)
		matched := false
		for _, area := range inv.FocusAreas {
			if area == "" || !strings.Contains(lower, strings.ToLower(area)) {
				continue
			}
			score += focusPoints
			if !matched {
				reasons = append(reasons, fmt.Sprintf("Focus area match: %s", area))
				matched = true
			}
		}
	}

	if p.FundingNeeded != "" && inv.CheckSize.Max > 0 {
		if amount, err := domain.ParseAmount(p.FundingNeeded); err == nil && inv.CheckSize.Contains(amount) {
			score += checkSizePoints
			reasons = append(reasons, "Check size aligns with funding needs")
		}
	}

	score += between(s.random, 0, maxBonus)
	if score > maxScore {
		score = maxScore
	}

	if len(reasons) == 0 {
		reasons = []string{defaultReason}
	}
	return domain.Score{Value: score, Reasons: reasons}
}

// Insight summarises a score as one sentence about the investor.
func Insight(inv domain.Investor, score int) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Excellent match! %s at %s has a strong track record in this space "+
			"and actively seeks companies at this stage.", inv.Name, inv.Firm)
	case score >= 60:
		return fmt.Sprintf("Good fit. %s's investment focus and portfolio suggest strong alignment "+
			"with your company profile.", inv.Name)
	case score >= 40:
		return fmt.Sprintf("Moderate fit. While not a perfect match, %s has shown interest in adjacent "+
			"areas and could be worth exploring.", inv.Name)
	default:
		return fmt.Sprintf("%s invests in related sectors and may be interested depending on "+
			"specific differentiators.", inv.Name)
	}
}
