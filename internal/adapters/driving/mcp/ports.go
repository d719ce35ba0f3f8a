package mcp

import (
	"time"

	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog lists investors.
	Catalog driving.CatalogService

	// Match ranks investors for a project.
	Match driving.MatchService

	// Project manages projects and shortlists.
	Project driving.ProjectService

	// Message drafts and analyzes outreach messages.
	Message driving.MessageService

	// Report builds investor reports. Optional.
	Report driving.ReportService

	// Outreach records messages, replies and meetings. Optional.
	Outreach driving.OutreachService

	// FounderName signs generated messages.
	FounderName string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Match == nil {
		return ErrMissingMatchService
	}
	if p.Project == nil {
		return ErrMissingProjectService
	}
	if p.Message == nil {
		return ErrMissingMessageService
	}
	// Report and Outreach are optional
	return nil
}

func (p *Ports) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
