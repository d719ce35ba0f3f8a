package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService ranks catalog investors for a project.
type MatchService struct {
	catalog  driven.InvestorCatalog
	projects driven.ProjectStore
	scorer   *Scorer
	delayer  driven.Delayer
	searches driven.SearchStore
	clock    driven.Clock
}

// NewMatchService creates a new match service.
func NewMatchService(
	catalog driven.InvestorCatalog,
	projects driven.ProjectStore,
	scorer *Scorer,
	delayer driven.Delayer,
) *MatchService {
	return &MatchService{
		catalog:  catalog,
		projects: projects,
		scorer:   scorer,
		delayer:  delayer,
	}
}

// SetSearchStore records every match run as the session's current search.
func (s *MatchService) SetSearchStore(searches driven.SearchStore, clock driven.Clock) {
	s.searches = searches
	s.clock = clock
}

// Match scores every catalog investor and returns those above the cutoff,
// best first.
func (s *MatchService) Match(ctx context.Context, req domain.MatchRequest) ([]domain.MatchResult, error) {
	if s.catalog == nil || s.scorer == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Match Execution")
	logger.Debug("Preference: %q", req.Preference)

	profile, err := s.resolveProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		logger.Debug("Profile: industry=%q stage=%q funding=%q", profile.Industry, profile.Stage, profile.FundingNeeded)
	}
	if kw := ExtractKeywords(req.Preference); len(kw) > 0 {
		logger.Debug("Keywords: %v", kw)
	}

	investors, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list investors: %w", err)
	}
	logger.Debug("Catalog size: %d", len(investors))

	if err := wait(ctx, s.delayer, matchLatency); err != nil {
		return nil, err
	}

	results := make([]domain.MatchResult, 0, len(investors))
	for i := range investors {
		sc := s.scorer.Score(profile, investors[i], req.Preference)
		if sc.Value <= matchCutoff {
			logger.Debug("Dropped %s (%d)", investors[i].ID, sc.Value)
			continue
		}
		results = append(results, domain.MatchResult{
			Investor: investors[i],
			Score:    sc.Value,
			Reasons:  sc.Reasons,
			Insight:  Insight(investors[i], sc.Value),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}
	logger.Info("Matches kept: %d", len(results))

	s.record(ctx, req, results)
	return results, nil
}

// CurrentSearch returns the most recent match run.
func (s *MatchService) CurrentSearch(ctx context.Context) (*domain.Search, error) {
	if s.searches == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.searches.Current(ctx)
}

func (s *MatchService) resolveProfile(ctx context.Context, req domain.MatchRequest) (*domain.ProjectProfile, error) {
	if req.ProjectID == "" {
		if req.Profile == nil {
			return nil, fmt.Errorf("%w: project id or profile required", domain.ErrInvalidInput)
		}
		return req.Profile, nil
	}
	if s.projects == nil {
		return nil, domain.ErrNotImplemented
	}
	project, err := s.projects.Get(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", req.ProjectID, err)
	}
	return project.Profile, nil
}

func (s *MatchService) record(ctx context.Context, req domain.MatchRequest, results []domain.MatchResult) {
	if s.searches == nil {
		return
	}
	search := domain.Search{
		ProjectID:  req.ProjectID,
		Preference: req.Preference,
		Results:    results,
	}
	if s.clock != nil {
		search.At = s.clock.Now()
	}
	if err := s.searches.SetCurrent(ctx, search); err != nil {
		logger.Warn("Failed to record search: %v", err)
	}
}
