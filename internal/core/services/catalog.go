package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService exposes the investor catalog to driving adapters.
type CatalogService struct {
	catalog driven.InvestorCatalog
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog driven.InvestorCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// List returns every investor.
func (s *CatalogService) List(ctx context.Context) ([]domain.Investor, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}
	investors, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list investors: %w", err)
	}
	return investors, nil
}

// Get retrieves an investor by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Investor, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}
	inv, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get investor %s: %w", id, err)
	}
	return inv, nil
}
