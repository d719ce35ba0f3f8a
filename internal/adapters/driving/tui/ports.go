// Package tui provides an interactive terminal user interface for pitchmatch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Match ranks investors against a project or profile.
	Match driving.MatchService

	// Project lists the projects a search can target.
	Project driving.ProjectService

	// Message drafts and scores outreach messages.
	Message driving.MessageService

	// Report builds the investor report attached to sent messages.
	// Optional: sending goes out without a report when nil.
	Report driving.ReportService

	// Outreach sends messages. Optional: the send action is hidden when nil.
	Outreach driving.OutreachService

	// FounderName signs generated messages.
	FounderName string

	// ProjectID preselects a project for matching.
	ProjectID string
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Match == nil {
		return ErrMissingMatchService
	}
	if p.Project == nil {
		return ErrMissingProjectService
	}
	if p.Message == nil {
		return ErrMissingMessageService
	}
	return nil
}
