package driving

import (
	"context"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// MessageService drafts and reviews outreach messages.
type MessageService interface {
	// Generate drafts a message from one of several templates.
	// The result always names the investor's firm and the project.
	Generate(inv domain.Investor, project domain.Project, founderName string) string

	// Refine redrafts a message, keeping the signature of the original.
	Refine(ctx context.Context, message string, inv domain.Investor, project domain.Project) (string, error)

	// Analyze scores a draft and lists its strengths and suggestions.
	Analyze(message string) domain.MessageAnalysis
}

// ReportService builds founder reports for investors.
type ReportService interface {
	// Generate builds the report attached to an outreach message.
	Generate(ctx context.Context, project domain.Project, inv domain.Investor) (*domain.Report, error)
}
