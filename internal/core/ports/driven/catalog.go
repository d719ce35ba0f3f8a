package driven

import (
	"context"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// InvestorCatalog provides read-only access to investor records.
type InvestorCatalog interface {
	// List returns every investor in catalog order.
	List(ctx context.Context) ([]domain.Investor, error)

	// Get retrieves an investor by ID.
	// Returns domain.ErrNotFound if the investor does not exist.
	Get(ctx context.Context, id string) (*domain.Investor, error)
}
