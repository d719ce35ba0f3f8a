package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "no file is written until a value is set")
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pitchmatch", "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not toml {{[["), 0o600))

	store, err := NewConfigStore(dir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set("founder.name", "Jamie Lee"))
	require.NoError(t, store.Set("rate_limit.burst", 3))
	require.NoError(t, store.Set("latency.scale", 0.25))
	require.NoError(t, store.Set("latency.enabled", false))

	assert.Equal(t, "Jamie Lee", store.GetString("founder.name"))
	assert.Equal(t, 3, store.GetInt("rate_limit.burst"))
	assert.InDelta(t, 0.25, store.GetFloat("latency.scale"), 1e-9)
	assert.InDelta(t, 3.0, store.GetFloat("rate_limit.burst"), 1e-9)
	assert.False(t, store.GetBool("latency.enabled"))

	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("founder.name"))
	assert.Zero(t, store.GetFloat("founder.name"))
	assert.False(t, store.GetBool("founder.name"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.format", "yaml"))
	require.NoError(t, store.Set("catalog.path", "/tmp/investors.yaml"))
	require.NoError(t, store.Set("seed", int64(42)))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[catalog]")
	assert.Contains(t, string(raw), "yaml")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "yaml", reloaded.GetString("catalog.format"))
	assert.Equal(t, "/tmp/investors.yaml", reloaded.GetString("catalog.path"))
	assert.Equal(t, 42, reloaded.GetInt("seed"))
}

func TestConfigStore_StringSliceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.tags", []string{"fintech", "climate"}))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"fintech", "climate"}, reloaded.GetStringSlice("catalog.tags"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("seed", 1))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_SetUnencodableValue(t *testing.T) {
	store := newStore(t)

	err := store.Set("channel", make(chan int))

	assert.Error(t, err)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("seed", 1))
	require.NoError(t, os.WriteFile(store.Path(), []byte("][}{"), 0o600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("rate_limit.burst", i)
			_ = store.GetInt("rate_limit.burst")
		}()
	}
	wg.Wait()
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"seed":            int64(7),
		"latency.scale":   1.5,
		"latency.enabled": true,
		"seed.extra":      "kept flat",
	}

	nested := nestMap(flat)

	assert.Equal(t, int64(7), nested["seed"])
	assert.Equal(t, "kept flat", nested["seed.extra"])
	latency, ok := nested["latency"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.5, latency["scale"])
	assert.Equal(t, flat, flattenMap(map[string]any{
		"seed":       int64(7),
		"latency":    latency,
		"seed.extra": "kept flat",
	}, ""))
}
