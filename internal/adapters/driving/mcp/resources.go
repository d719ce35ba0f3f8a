package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for pitchmatch resources.
	uriScheme = "pitchmatch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "investors",
		Name:        "investors",
		Description: "The investor catalog",
		MIMEType:    "application/json",
	}, s.handleInvestorsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "projects",
		Name:        "projects",
		Description: "Projects of this session, newest first",
		MIMEType:    "application/json",
	}, s.handleProjectsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "messages",
		Name:        "messages",
		Description: "Outreach messages sent in this session",
		MIMEType:    "application/json",
	}, s.handleMessagesResource)

	// Template for a single investor.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "investors/{investorId}",
		Name:        "investor",
		Description: "One investor profile",
		MIMEType:    "application/json",
	}, s.handleInvestorResource)

	// Template for a project's activity feed.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "projects/{projectId}/activity",
		Name:        "project-activity",
		Description: "Replies, meetings and milestones of a project, newest first",
		MIMEType:    "application/json",
	}, s.handleActivityResource)
}

// handleInvestorsResource returns the full catalog.
func (s *Server) handleInvestorsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	investors, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing investors: %w", err)
	}
	return jsonResource(req.Params.URI, investors)
}

// handleProjectsResource returns a summary of every project.
func (s *Server) handleProjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	projects, err := s.ports.Project.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return jsonResource(req.Params.URI, projects)
}

// handleMessagesResource returns sent messages without their reports.
func (s *Server) handleMessagesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Outreach == nil {
		return jsonResource(req.Params.URI, []domain.OutreachMessage{})
	}

	messages, err := s.ports.Outreach.ListMessages(ctx, domain.MessageFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	for i := range messages {
		messages[i].Report = nil
	}
	return jsonResource(req.Params.URI, messages)
}

// handleInvestorResource returns one investor.
func (s *Server) handleInvestorResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract investorId from URI: pitchmatch://investors/{investorId}
	id := extractInvestorID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	inv, err := s.ports.Catalog.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting investor: %w", err)
	}
	return jsonResource(req.Params.URI, inv)
}

// handleActivityResource returns a project's activity feed.
func (s *Server) handleActivityResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract projectId from URI: pitchmatch://projects/{projectId}/activity
	id := extractProjectID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	activity, err := s.ports.Project.Activity(ctx, id, s.ports.now())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}
	return jsonResource(req.Params.URI, activity)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractProjectID extracts the project ID from a URI like pitchmatch://projects/{projectId}/activity.
func extractProjectID(uri string) string {
	const prefix = uriScheme + "projects/"
	const suffix = "/activity"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}

// extractInvestorID extracts the investor ID from a URI like pitchmatch://investors/{investorId}.
func extractInvestorID(uri string) string {
	const prefix = uriScheme + "investors/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
