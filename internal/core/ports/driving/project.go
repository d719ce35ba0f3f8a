package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// ProjectService manages founder projects within a session.
type ProjectService interface {
	// Create adds a new project. Name is required.
	Create(ctx context.Context, name, description string, profile *domain.ProjectProfile) (*domain.Project, error)

	// Get retrieves a project by ID.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// List returns all projects, newest first.
	List(ctx context.Context) ([]domain.Project, error)

	// Update applies a partial update to a project.
	Update(ctx context.Context, id string, update domain.ProjectUpdate) (*domain.Project, error)

	// Shortlist adds investors to the project's shortlist, skipping duplicates.
	Shortlist(ctx context.Context, projectID string, investorIDs ...string) (*domain.Project, error)

	// ApplyImprovements applies canned enhancements to the project.
	ApplyImprovements(ctx context.Context, projectID string, kinds ...domain.ImprovementKind) (*domain.Project, error)

	// ParseDocuments extracts a profile from uploaded pitch documents.
	// When projectID is set the profile is stored on that project.
	ParseDocuments(ctx context.Context, projectID string, files []domain.UploadedFile) (*domain.ProjectProfile, error)

	// Activity returns the project's activity feed, newest first.
	Activity(ctx context.Context, projectID string, now time.Time) ([]domain.Activity, error)
}
