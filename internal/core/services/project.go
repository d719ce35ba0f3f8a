package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService manages founder projects.
type ProjectService struct {
	projects driven.ProjectStore
	catalog  driven.InvestorCatalog
	clock    driven.Clock
	delayer  driven.Delayer

	// Read-only views used by the activity feed.
	messages driven.MessageStore
	replies  driven.ReplyStore
	meetings driven.MeetingStore

	// Optional. Without it uploaded documents are not read.
	normalisers driven.NormaliserRegistry
}

// NewProjectService creates a new project service.
func NewProjectService(
	projects driven.ProjectStore,
	catalog driven.InvestorCatalog,
	clock driven.Clock,
	delayer driven.Delayer,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		catalog:  catalog,
		clock:    clock,
		delayer:  delayer,
	}
}

// SetOutreachStores enables reply and meeting events in the activity feed.
func (s *ProjectService) SetOutreachStores(
	messages driven.MessageStore,
	replies driven.ReplyStore,
	meetings driven.MeetingStore,
) {
	s.messages = messages
	s.replies = replies
	s.meetings = meetings
}

// SetNormalisers enables reading the text of uploaded documents.
func (s *ProjectService) SetNormalisers(r driven.NormaliserRegistry) {
	s.normalisers = r
}

// Create adds a new project with empty shortlist and sent lists.
func (s *ProjectService) Create(
	ctx context.Context,
	name, description string,
	profile *domain.ProjectProfile,
) (*domain.Project, error) {
	if s.projects == nil || s.clock == nil {
		return nil, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}

	project := domain.Project{
		ID:                   newID(),
		Name:                 name,
		Description:          strings.TrimSpace(description),
		CreatedAt:            s.clock.Now(),
		Profile:              profile.Clone(),
		ShortlistedInvestors: []string{},
		SentMessages:         []string{},
	}
	if err := s.projects.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	logger.Info("Created project %s (%s)", project.ID, project.Name)
	return &project, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if s.projects == nil {
		return nil, domain.ErrNotImplemented
	}
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return project, nil
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.projects == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.projects.List(ctx)
}

// Update applies a partial update. A non-nil profile replaces the old one.
func (s *ProjectService) Update(ctx context.Context, id string, update domain.ProjectUpdate) (*domain.Project, error) {
	if s.projects == nil {
		return nil, domain.ErrNotImplemented
	}
	var name string
	if update.Name != nil {
		name = strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
		}
	}

	project, err := s.projects.Update(ctx, id, func(p *domain.Project) error {
		if update.Name != nil {
			p.Name = name
		}
		if update.Description != nil {
			p.Description = strings.TrimSpace(*update.Description)
		}
		if update.Profile != nil {
			p.Profile = update.Profile.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	return project, nil
}

// Shortlist appends investors to the shortlist. Investors already present,
// or repeated in the call, are added once.
func (s *ProjectService) Shortlist(ctx context.Context, projectID string, investorIDs ...string) (*domain.Project, error) {
	if s.projects == nil {
		return nil, domain.ErrNotImplemented
	}
	if s.catalog != nil {
		for _, id := range investorIDs {
			if _, err := s.catalog.Get(ctx, id); err != nil {
				return nil, fmt.Errorf("get investor %s: %w", id, err)
			}
		}
	}

	project, err := s.projects.Update(ctx, projectID, func(p *domain.Project) error {
		p.ShortlistedInvestors = appendMissing(p.ShortlistedInvestors, investorIDs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", projectID, err)
	}
	logger.Debug("Project %s shortlist: %v", project.ID, project.ShortlistedInvestors)
	return project, nil
}

// appendMissing appends the ids not yet in list, each once.
func appendMissing(list, ids []string) []string {
	seen := make(map[string]struct{}, len(list)+len(ids))
	for _, id := range list {
		seen[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		list = append(list, id)
	}
	return list
}
