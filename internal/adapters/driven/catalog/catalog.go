// Package catalog opens the investor catalog selected by settings.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/catalog/watch"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/catalog/yamlcatalog"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Handle is an opened catalog together with the resources backing it.
type Handle struct {
	driven.InvestorCatalog

	format  domain.CatalogFormat
	closers []func() error
}

// Format returns the catalog source type.
func (h *Handle) Format() domain.CatalogFormat {
	return h.format
}

// Close releases the database connection and stops any file watcher.
func (h *Handle) Close() error {
	var errs []error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	h.closers = nil
	return errors.Join(errs...)
}

// Open opens the catalog described by cfg.
// The watcher, when requested, runs until ctx is cancelled or the handle is closed.
func Open(ctx context.Context, cfg domain.CatalogSettings) (*Handle, error) {
	format := cfg.Format
	if format == "" {
		format = domain.CatalogFormatEmbedded
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: catalog format %q", domain.ErrUnsupportedType, format)
	}
	if format.RequiresPath() && cfg.Path == "" {
		return nil, fmt.Errorf("%w: %s catalog requires a path", domain.ErrInvalidInput, format)
	}

	logger.Debug("catalog: opening %s catalog %s", format, cfg.Path)

	switch format {
	case domain.CatalogFormatYAML:
		c, err := yamlcatalog.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		h := &Handle{InvestorCatalog: c, format: format}
		if cfg.Watch {
			w, err := watch.New(c)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
			}
			w.Start(ctx)
			h.closers = append(h.closers, w.Close)
		}
		return h, nil

	case domain.CatalogFormatSQLite:
		store, err := sqlite.NewStore(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		if cfg.Watch {
			logger.Debug("catalog: sqlite catalogs are read live, watch ignored")
		}
		return &Handle{InvestorCatalog: store, format: format, closers: []func() error{store.Close}}, nil

	default:
		c, err := yamlcatalog.Default()
		if err != nil {
			return nil, err
		}
		return &Handle{InvestorCatalog: c, format: format}, nil
	}
}

// Import copies every investor from src into the SQLite database at path,
// creating the database when needed. It returns the number of investors written.
func Import(ctx context.Context, src driven.InvestorCatalog, path string) (int, error) {
	investors, err := src.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source catalog: %w", err)
	}

	store, err := sqlite.NewStore(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer store.Close()

	if err := store.Import(ctx, investors); err != nil {
		return 0, err
	}
	return len(investors), nil
}
