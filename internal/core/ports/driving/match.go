package driving

import (
	"context"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// MatchService ranks catalog investors against a project.
type MatchService interface {
	// Match scores every catalog investor, keeps those above the cutoff
	// and returns them in descending score order.
	Match(ctx context.Context, req domain.MatchRequest) ([]domain.MatchResult, error)

	// CurrentSearch returns the most recent match run of the session.
	CurrentSearch(ctx context.Context) (*domain.Search, error)
}

// CatalogService exposes the investor catalog.
type CatalogService interface {
	// List returns every investor.
	List(ctx context.Context) ([]domain.Investor, error)

	// Get retrieves an investor by ID.
	Get(ctx context.Context, id string) (*domain.Investor, error)
}
