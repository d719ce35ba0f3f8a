package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

func TestExtractProjectID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid activity URI",
			uri:      "pitchmatch://projects/proj1/activity",
			expected: "proj1",
		},
		{
			name:     "invalid prefix",
			uri:      "file://projects/proj1/activity",
			expected: "",
		},
		{
			name:     "missing activity suffix",
			uri:      "pitchmatch://projects/proj1",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractProjectID(tt.uri))
		})
	}
}

func TestExtractInvestorID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid investor URI",
			uri:      "pitchmatch://investors/vc3",
			expected: "vc3",
		},
		{
			name:     "invalid prefix",
			uri:      "file://investors/vc3",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractInvestorID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleInvestorsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the catalog", func(t *testing.T) {
		server, _ := newTestServer(t)

		result, err := server.handleInvestorsResource(ctx, makeReadResourceRequest("pitchmatch://investors"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var investors []domain.Investor
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &investors))
		assert.Len(t, investors, 12)
	})

	t.Run("catalog error", func(t *testing.T) {
		server, _ := newTestServer(t)
		server.ports.Catalog = &mockCatalogService{err: errors.New("offline")}

		_, err := server.handleInvestorsResource(ctx, makeReadResourceRequest("pitchmatch://investors"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing investors")
	})
}

func TestServer_handleInvestorResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	result, err := server.handleInvestorResource(ctx, makeReadResourceRequest("pitchmatch://investors/vc3"))
	require.NoError(t, err)
	assert.Contains(t, result.Contents[0].Text, "Emily Watson")

	_, err = server.handleInvestorResource(ctx, makeReadResourceRequest("pitchmatch://investors/ghost"))
	assert.Error(t, err)

	_, err = server.handleInvestorResource(ctx, makeReadResourceRequest("pitchmatch://elsewhere"))
	assert.Error(t, err)
}

func TestServer_handleProjectsResource(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	result, err := server.handleProjectsResource(ctx, makeReadResourceRequest("pitchmatch://projects"))

	require.NoError(t, err)
	var projects []domain.Project
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &projects))
	require.Len(t, projects, 2)
	names := []string{projects[0].Name, projects[1].Name}
	assert.ElementsMatch(t, []string{"FinFlow AI", "EcoTrack"}, names)
}

func TestServer_handleMessagesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists messages without reports", func(t *testing.T) {
		server, _ := newTestServer(t)

		result, err := server.handleMessagesResource(ctx, makeReadResourceRequest("pitchmatch://messages"))

		require.NoError(t, err)
		var messages []domain.OutreachMessage
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &messages))
		require.Len(t, messages, 2)
		for _, m := range messages {
			assert.Nil(t, m.Report)
		}
	})

	t.Run("nil outreach returns empty list", func(t *testing.T) {
		server, _ := newTestServer(t)
		server.ports.Outreach = nil

		result, err := server.handleMessagesResource(ctx, makeReadResourceRequest("pitchmatch://messages"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}

func TestServer_handleActivityResource(t *testing.T) {
	ctx := context.Background()
	server, sess := newTestServer(t)

	_, err := sess.Outreach.Reply(ctx, "msg1", "", "Let's talk next week.")
	require.NoError(t, err)

	result, err := server.handleActivityResource(ctx, makeReadResourceRequest("pitchmatch://projects/proj1/activity"))
	require.NoError(t, err)

	var activity []domain.Activity
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &activity))
	require.NotEmpty(t, activity)
	assert.Equal(t, domain.ActivityReply, activity[0].Kind)

	_, err = server.handleActivityResource(ctx, makeReadResourceRequest("pitchmatch://projects/ghost/activity"))
	assert.Error(t, err)
}
