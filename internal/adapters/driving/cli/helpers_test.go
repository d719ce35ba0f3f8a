package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/clock"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/random"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/services"
	"github.com/custodia-labs/pitchmatch/internal/session"
)

var testNow = time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC)

// setupTestCLI points the commands at a temporary config directory and a
// deterministic session. All package state is restored on cleanup.
func setupTestCLI(t *testing.T, demo bool) {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	settingsService = services.NewSettingsService(store)

	origFactory := sessionFactory
	sessionFactory = func(ctx context.Context, s domain.AppSettings) (*session.Session, error) {
		return session.New(ctx, s, session.Options{
			Clock:   clock.NewFixed(testNow),
			Delayer: clock.Instant{},
			Random:  random.NewSequence(0),
		})
	}
	demoMode = demo

	t.Cleanup(func() {
		closeSession()
		settingsService = nil
		sessionFactory = origFactory
		demoMode = false
		verbose = false
		instant = false
		seedFlag = 0
		noConfig = false

		resetProjectFlags()
		resetMatchFlags()
		resetMessageFlags()
		resetInboxFlags()
		resetCatalogFlags()
		reportJSON = false
		tuiProject = ""

		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
}

// runCLI executes one command line. The session stays open between calls
// within a test, the way it does within one process.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// decodeID reads the id field of a JSON object printed with --json.
func decodeID(t *testing.T, out string) string {
	t.Helper()

	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.NotEmpty(t, v.ID)
	return v.ID
}
