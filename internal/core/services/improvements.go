package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

const maxHighlights = 5

// ApplyImprovements rewrites the project with the selected enhancements.
// Kinds apply in a fixed order regardless of how they are listed.
func (s *ProjectService) ApplyImprovements(
	ctx context.Context,
	projectID string,
	kinds ...domain.ImprovementKind,
) (*domain.Project, error) {
	if s.projects == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: no improvements selected", domain.ErrInvalidInput)
	}
	for _, k := range kinds {
		if !k.IsValid() {
			return nil, fmt.Errorf("%w: unknown improvement %q", domain.ErrInvalidInput, k)
		}
	}
	if _, err := s.Get(ctx, projectID); err != nil {
		return nil, err
	}

	if err := wait(ctx, s.delayer, improveLatency); err != nil {
		return nil, err
	}

	project, err := s.projects.Update(ctx, projectID, func(p *domain.Project) error {
		p.Description, p.Profile = improve(p.Description, p.Profile, kinds)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", projectID, err)
	}
	logger.Info("Applied %d improvements to %s", len(kinds), project.ID)
	return project, nil
}

func improve(
	description string,
	original *domain.ProjectProfile,
	kinds []domain.ImprovementKind,
) (string, *domain.ProjectProfile) {
	profile := original.Clone()
	if profile == nil {
		profile = &domain.ProjectProfile{}
	}
	selected := func(k domain.ImprovementKind) bool { return slices.Contains(kinds, k) }

	if selected(domain.ImprovementDescription) {
		description = enhanceDescription(description, profile)
	}

	if selected(domain.ImprovementMetrics) {
		profile.Revenue = orDefault(profile.Revenue, "$500K ARR")
		profile.Growth = orDefault(profile.Growth, "40% MoM")
		if profile.Customers == 0 {
			profile.Customers = 150
		}
		profile.Retention = "94%"
		profile.NPS = 72
	}

	if selected(domain.ImprovementCompetitive) {
		profile.Highlights = capHighlights(append(profile.Highlights,
			"Proprietary AI technology with 3 patents pending",
			"Exclusive partnerships with industry leaders",
		))
	}

	if selected(domain.ImprovementTeam) {
		if profile.TeamSize == 0 {
			profile.TeamSize = 10
		}
		profile.TeamSize += 2
		profile.Highlights = capHighlights(append(profile.Highlights,
			"Founding team from Google, Stripe, and Stanford",
		))
	}

	if selected(domain.ImprovementVision) && !strings.Contains(description, "vision") {
		description += fmt.Sprintf("\n\nOur vision: Become the leading platform in %s, expanding from %s "+
			"to global markets within 3 years.",
			orDefault(profile.Industry, "our market"), orDefault(profile.Location, "our home market"))
	}

	return description, profile
}

func enhanceDescription(description string, p *domain.ProjectProfile) string {
	customers := p.Customers
	if customers == 0 {
		customers = 100
	}
	return strings.Join([]string{
		fmt.Sprintf("%s. With %d+ customers and %s growth, we're proving strong product-market fit.",
			firstSentence(description), customers, orDefault(p.Growth, "30% MoM")),
		"Unlike competitors, we leverage cutting-edge AI to deliver 10x better results at half the cost.",
		fmt.Sprintf("Our experienced team combines deep %s expertise with proven technical execution.",
			orDefault(p.Industry, "domain")),
	}, " ")
}

func capHighlights(h []string) []string {
	if len(h) > maxHighlights {
		return h[:maxHighlights]
	}
	return h
}
