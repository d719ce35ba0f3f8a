package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/clock"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/random"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC)

// newTestSession builds a demo session with no delays and no random bonus.
func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(context.Background(), domain.DefaultAppSettings(), session.Options{
		Clock:   clock.NewFixed(testNow),
		Delayer: clock.Instant{},
		Random:  random.NewSequence(0),
	})
	require.NoError(t, err)
	require.NoError(t, sess.SeedDemo(context.Background()))
	t.Cleanup(func() { assert.NoError(t, sess.Close()) })
	return sess
}

func portsFor(sess *session.Session) *Ports {
	return &Ports{
		Catalog:     sess.Catalog,
		Match:       sess.Matches,
		Project:     sess.Projects,
		Message:     sess.Messages,
		Report:      sess.Reports,
		Outreach:    sess.Outreach,
		FounderName: sess.FounderName(),
		Now:         sess.Clock.Now,
	}
}

func newTestServer(t *testing.T) (*Server, *session.Session) {
	t.Helper()
	sess := newTestSession(t)
	server, err := NewServer(portsFor(sess))
	require.NoError(t, err)
	return server, sess
}

// mockCatalogService fails every call.
type mockCatalogService struct {
	err error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Investor, error) {
	return nil, m.err
}

func (m *mockCatalogService) Get(_ context.Context, _ string) (*domain.Investor, error) {
	return nil, m.err
}
