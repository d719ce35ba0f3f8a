// Package mcp provides an MCP (Model Context Protocol) server adapter for pitchmatch.
// It lets AI assistants match investors, draft outreach and track replies
// within one long-lived session.
package mcp

import "errors"

// Errors returned when a required port is not provided.
var (
	ErrMissingCatalogService = errors.New("mcp: catalog service is required")
	ErrMissingMatchService   = errors.New("mcp: match service is required")
	ErrMissingProjectService = errors.New("mcp: project service is required")
	ErrMissingMessageService = errors.New("mcp: message service is required")
)

// errNotConfigured is returned by tools whose optional port is not set.
var errNotConfigured = errors.New("mcp: service not configured")
