package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure ProjectStore implements the interface.
var _ driven.ProjectStore = (*ProjectStore)(nil)

// ProjectStore is an in-memory implementation of driven.ProjectStore.
// Projects are cloned on the way in and out so callers never share slices.
type ProjectStore struct {
	projects *records[domain.Project]
}

// NewProjectStore creates a new in-memory project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: newRecords[domain.Project](),
	}
}

// Save stores or updates a project.
func (s *ProjectStore) Save(_ context.Context, project domain.Project) error {
	if project.ID == "" {
		return domain.ErrInvalidInput
	}
	s.projects.put(project.ID, project.Clone())
	return nil
}

// Get retrieves a project by ID.
func (s *ProjectStore) Get(_ context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.get(id)
	if err != nil {
		return nil, err
	}
	c := project.Clone()
	return &c, nil
}

// Update applies fn to the stored project atomically. fn works on a copy,
// so a failing fn leaves the project unchanged.
func (s *ProjectStore) Update(
	_ context.Context,
	id string,
	fn func(*domain.Project) error,
) (*domain.Project, error) {
	updated, err := s.projects.update(id, func(p *domain.Project) error {
		c := p.Clone()
		if err := fn(&c); err != nil {
			return err
		}
		*p = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	c := updated.Clone()
	return &c, nil
}

// List returns all projects, most recently created first. Projects created
// at the same instant are listed latest saved first.
func (s *ProjectStore) List(_ context.Context) ([]domain.Project, error) {
	all := s.projects.all(nil)
	for i := range all {
		all[i] = all[i].Clone()
	}
	slices.Reverse(all)
	sort.SliceStable(all, func(a, b int) bool {
		return all[a].CreatedAt.After(all[b].CreatedAt)
	})
	return all, nil
}
