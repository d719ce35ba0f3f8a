package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

func TestCatalogList(t *testing.T) {
	setupTestCLI(t, false)

	out, err := runCLI(t, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "vc1")
	assert.Contains(t, out, "Sarah Chen")
	assert.Contains(t, out, "Benchmark")
}

func TestCatalogList_JSON(t *testing.T) {
	setupTestCLI(t, false)

	out, err := runCLI(t, "catalog", "list", "--json")
	require.NoError(t, err)

	var investors []domain.Investor
	require.NoError(t, json.Unmarshal([]byte(out), &investors))
	assert.Len(t, investors, 12)
}

func TestCatalogShow(t *testing.T) {
	setupTestCLI(t, false)

	out, err := runCLI(t, "catalog", "show", "vc4")
	require.NoError(t, err)
	assert.Contains(t, out, "David Kim, General Partner at Benchmark (vc4)")
	assert.Contains(t, out, "Check size:")

	_, err = runCLI(t, "catalog", "show", "vc404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogExport(t *testing.T) {
	setupTestCLI(t, false)

	path := filepath.Join(t.TempDir(), "investors.yaml")
	out, err := runCLI(t, "catalog", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 12 investors to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sarah Chen")
	assert.Contains(t, string(data), "focus_areas:")
}

func TestCatalogImport_ThenUseSQLite(t *testing.T) {
	setupTestCLI(t, false)

	db := filepath.Join(t.TempDir(), "investors.db")
	out, err := runCLI(t, "catalog", "import", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 12 investors into "+db)

	_, err = runCLI(t, "settings", "set", "catalog.path", db)
	require.NoError(t, err)
	_, err = runCLI(t, "settings", "set", "catalog.format", "sqlite")
	require.NoError(t, err)

	// A new invocation picks up the new catalog.
	closeSession()
	out, err = runCLI(t, "catalog", "show", "vc1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sarah Chen, Partner at Sequoia Capital (vc1)")
}

func TestCatalogYAMLRoundTrip(t *testing.T) {
	setupTestCLI(t, false)

	path := filepath.Join(t.TempDir(), "investors.yaml")
	_, err := runCLI(t, "catalog", "export", "-o", path)
	require.NoError(t, err)

	_, err = runCLI(t, "settings", "set", "catalog.path", path)
	require.NoError(t, err)
	_, err = runCLI(t, "settings", "set", "catalog.format", "yaml")
	require.NoError(t, err)

	closeSession()
	resetCatalogFlags()
	out, err := runCLI(t, "catalog", "list", "--json")
	require.NoError(t, err)

	var investors []domain.Investor
	require.NoError(t, json.Unmarshal([]byte(out), &investors))
	assert.Len(t, investors, 12)
}
