package yamlcatalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

const sample = `
investors:
  - id: a1
    name: Ada Lovelace
    firm: Engine Capital
    role: Partner
    focus_areas: [Compilers]
    industries: [Developer Tools]
    stages: [Seed]
    check_size: $500K-$2M
    location: London, UK
    portfolio: [Analytical]
  - id: a2
    name: Grace Hopper
    firm: Cobol Ventures
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "investors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 12, c.Len())
	assert.Empty(t, c.Path())

	inv, err := c.Get(context.Background(), "vc1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", inv.Name)
	assert.Equal(t, "Sequoia Capital", inv.Firm)
	assert.True(t, inv.CoversIndustry("FinTech"))
	assert.True(t, inv.AcceptsStage("Series A"))
	assert.True(t, inv.CheckSize.Contains(5_000_000))
}

func TestDefault_EveryInvestorHasCheckSize(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	investors, err := c.List(context.Background())
	require.NoError(t, err)
	for _, inv := range investors {
		assert.Positive(t, inv.CheckSize.Max, inv.ID)
		assert.NotEmpty(t, inv.Portfolio, inv.ID)
	}
}

func TestParse(t *testing.T) {
	investors, err := Parse([]byte(sample))
	require.NoError(t, err)

	want := []domain.Investor{
		{
			ID:         "a1",
			Name:       "Ada Lovelace",
			Firm:       "Engine Capital",
			Role:       "Partner",
			FocusAreas: []string{"Compilers"},
			Industries: []string{"Developer Tools"},
			Stages:     []string{"Seed"},
			CheckSize:  domain.CheckSize{Min: 500_000, Max: 2_000_000, Label: "$500K-$2M"},
			Location:   "London, UK",
			Portfolio:  []string{"Analytical"},
		},
		{
			ID:         "a2",
			Name:       "Grace Hopper",
			Firm:       "Cobol Ventures",
			FocusAreas: []string{},
			Industries: []string{},
			Stages:     []string{},
			Portfolio:  []string{},
		},
	}
	if diff := cmp.Diff(want, investors); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Empty(t *testing.T) {
	investors, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, investors)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing id", "investors:\n  - name: X\n    firm: Y\n"},
		{"missing name", "investors:\n  - id: x\n    firm: Y\n"},
		{"missing firm", "investors:\n  - id: x\n    name: X\n"},
		{"duplicate id", "investors:\n  - {id: x, name: X, firm: Y}\n  - {id: x, name: Z, firm: Y}\n"},
		{"bad check size", "investors:\n  - {id: x, name: X, firm: Y, check_size: lots}\n"},
		{"unknown field", "investors:\n  - {id: x, name: X, firm: Y, ticket: 5}\n"},
		{"malformed", "investors: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
		})
	}
}

func TestMarshal_RoundTripsDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	investors, err := c.List(context.Background())
	require.NoError(t, err)

	data, err := Marshal(investors)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(investors, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_AndReload(t *testing.T) {
	path := writeFile(t, sample)

	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path())
	assert.Equal(t, 2, c.Len())

	require.NoError(t, os.WriteFile(path, []byte("investors:\n  - {id: b1, name: B, firm: F}\n"), 0o600))
	require.NoError(t, c.Reload(context.Background()))

	_, err = c.Get(context.Background(), "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	inv, err := c.Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "B", inv.Name)
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	path := writeFile(t, sample)
	c, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("investors: [\n"), 0o600))
	err = c.Reload(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Equal(t, 2, c.Len())
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestList_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	first, err := c.List(context.Background())
	require.NoError(t, err)
	first[0] = domain.Investor{ID: "mutated"}

	again, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "vc1", again[0].ID)
}
