// Package yamlcatalog loads the investor catalog from YAML documents.
//
// The built-in catalog ships embedded in the binary. A file-backed catalog
// can be reloaded in place, which is how hot reload is wired.
package yamlcatalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

//go:embed default.yaml
var defaultCatalog []byte

// Verify interface compliance.
var _ driven.InvestorCatalog = (*Catalog)(nil)

// record is the on-disk shape of one investor.
type record struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Firm       string   `yaml:"firm"`
	Role       string   `yaml:"role"`
	FocusAreas []string `yaml:"focus_areas"`
	Industries []string `yaml:"industries"`
	Stages     []string `yaml:"stages"`
	CheckSize  string   `yaml:"check_size"`
	Location   string   `yaml:"location"`
	Portfolio  []string `yaml:"portfolio"`
	Avatar     string   `yaml:"avatar,omitempty"`
}

type document struct {
	Investors []record `yaml:"investors"`
}

// Catalog is an in-memory investor catalog decoded from YAML.
type Catalog struct {
	mu        sync.RWMutex
	path      string
	investors []domain.Investor
	index     map[string]int
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	investors, err := Parse(defaultCatalog)
	if err != nil {
		return nil, err
	}
	c := &Catalog{}
	c.replace(investors)
	return c, nil
}

// Open loads a catalog from a YAML file.
func Open(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document.
// Unknown fields are rejected so typos surface at load time.
func Parse(data []byte) ([]domain.Investor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decoding yaml: %v", domain.ErrCatalogUnavailable, err)
	}

	investors := make([]domain.Investor, 0, len(doc.Investors))
	seen := make(map[string]bool, len(doc.Investors))
	for i, r := range doc.Investors {
		inv, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: investor %d: %v", domain.ErrCatalogUnavailable, i+1, err)
		}
		if seen[inv.ID] {
			return nil, fmt.Errorf("%w: duplicate investor id %q", domain.ErrCatalogUnavailable, inv.ID)
		}
		seen[inv.ID] = true
		investors = append(investors, inv)
	}
	return investors, nil
}

// Marshal encodes investors in the catalog file format.
func Marshal(investors []domain.Investor) ([]byte, error) {
	doc := document{Investors: make([]record, 0, len(investors))}
	for _, inv := range investors {
		doc.Investors = append(doc.Investors, fromDomain(inv))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func (r record) toDomain() (domain.Investor, error) {
	switch {
	case r.ID == "":
		return domain.Investor{}, errors.New("id is required")
	case r.Name == "":
		return domain.Investor{}, fmt.Errorf("%s: name is required", r.ID)
	case r.Firm == "":
		return domain.Investor{}, fmt.Errorf("%s: firm is required", r.ID)
	}

	var checkSize domain.CheckSize
	if r.CheckSize != "" {
		cs, err := domain.ParseCheckSize(r.CheckSize)
		if err != nil {
			return domain.Investor{}, fmt.Errorf("%s: %w", r.ID, err)
		}
		checkSize = cs
	}

	return domain.Investor{
		ID:         r.ID,
		Name:       r.Name,
		Firm:       r.Firm,
		Role:       r.Role,
		FocusAreas: nonNil(r.FocusAreas),
		Industries: nonNil(r.Industries),
		Stages:     nonNil(r.Stages),
		CheckSize:  checkSize,
		Location:   r.Location,
		Portfolio:  nonNil(r.Portfolio),
		Avatar:     r.Avatar,
	}, nil
}

func fromDomain(inv domain.Investor) record {
	r := record{
		ID:         inv.ID,
		Name:       inv.Name,
		Firm:       inv.Firm,
		Role:       inv.Role,
		FocusAreas: inv.FocusAreas,
		Industries: inv.Industries,
		Stages:     inv.Stages,
		Location:   inv.Location,
		Portfolio:  inv.Portfolio,
		Avatar:     inv.Avatar,
	}
	if inv.CheckSize.Max > 0 {
		r.CheckSize = inv.CheckSize.String()
	}
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Path returns the backing file, or "" for the embedded catalog.
func (c *Catalog) Path() string {
	return c.path
}

// Reload re-reads the backing file.
// On failure the previously loaded investors stay in place.
func (c *Catalog) Reload(_ context.Context) error {
	if c.path == "" {
		return nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", domain.ErrCatalogUnavailable, c.path, err)
	}
	investors, err := Parse(data)
	if err != nil {
		return err
	}
	c.replace(investors)
	logger.Debug("catalog: loaded %d investors from %s", len(investors), c.path)
	return nil
}

func (c *Catalog) replace(investors []domain.Investor) {
	index := make(map[string]int, len(investors))
	for i, inv := range investors {
		index[inv.ID] = i
	}
	c.mu.Lock()
	c.investors = investors
	c.index = index
	c.mu.Unlock()
}

// List returns every investor in file order.
func (c *Catalog) List(_ context.Context) ([]domain.Investor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Investor, len(c.investors))
	copy(out, c.investors)
	return out, nil
}

// Get retrieves an investor by ID.
func (c *Catalog) Get(_ context.Context, id string) (*domain.Investor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	inv := c.investors[i]
	return &inv, nil
}

// Len returns the number of loaded investors.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.investors)
}
