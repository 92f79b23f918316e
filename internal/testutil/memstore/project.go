package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
)

type projectRepository struct {
	*Store
}

func (s *Store) Projects() project.ProjectRepository {
	return projectRepository{s}
}

func (r projectRepository) Create(_ context.Context, p project.Project) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.id()
	p.IsActive = true
	p.CreatedAt = r.now()
	r.projects[p.ID] = p
	return r.projectWithJoins(p), nil
}

func (s *Store) projectWithJoins(p project.Project) project.Project {
	if u, ok := s.users[p.CreatedBy]; ok {
		p.CreatedByName = ptr(u.Name)
	}
	return p
}

func (r projectRepository) GetByID(_ context.Context, id int64) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return r.projectWithJoins(p), nil
}

func (r projectRepository) ListActive(_ context.Context) ([]project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []project.Project{}
	for _, p := range r.projects {
		if p.IsActive {
			out = append(out, r.projectWithJoins(p))
		}
	}
	slices.SortFunc(out, func(a, b project.Project) int { return cmp.Compare(b.ID, a.ID) })
	return out, nil
}

func (r projectRepository) Deactivate(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return project.ErrProjectNotFound
	}
	p.IsActive = false
	r.projects[id] = p
	return nil
}

type subProjectRepository struct {
	*Store
}

func (s *Store) SubProjects() project.SubProjectRepository {
	return subProjectRepository{s}
}

func (s *Store) subProjectWithJoins(sp project.SubProject) project.SubProject {
	if p, ok := s.projects[sp.ProjectID]; ok {
		sp.ProjectName = ptr(p.Name)
	}
	if u, ok := s.users[sp.CreatedBy]; ok {
		sp.CreatedByName = ptr(u.Name)
	}
	return sp
}

func (r subProjectRepository) Create(_ context.Context, sp project.SubProject) (project.SubProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sp.ID = r.id()
	sp.IsActive = true
	sp.CreatedAt = r.now()
	r.subProjects[sp.ID] = sp
	return r.subProjectWithJoins(sp), nil
}

func (r subProjectRepository) GetByID(_ context.Context, id int64) (project.SubProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sp, ok := r.subProjects[id]
	if !ok {
		return project.SubProject{}, project.ErrSubProjectNotFound
	}
	return r.subProjectWithJoins(sp), nil
}

func (r subProjectRepository) ExistsByName(_ context.Context, projectID int64, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sp := range r.subProjects {
		if sp.ProjectID == projectID && sp.IsActive && strings.EqualFold(sp.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r subProjectRepository) ListActive(_ context.Context) ([]project.SubProject, error) {
	return r.filter(func(sp project.SubProject) bool {
		return sp.IsActive && r.projects[sp.ProjectID].IsActive
	}), nil
}

func (r subProjectRepository) ListActiveByProject(_ context.Context, projectID int64) ([]project.SubProject, error) {
	return r.filter(func(sp project.SubProject) bool {
		return sp.IsActive && sp.ProjectID == projectID
	}), nil
}

func (r subProjectRepository) filter(keep func(project.SubProject) bool) []project.SubProject {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []project.SubProject{}
	for _, sp := range r.subProjects {
		if keep(sp) {
			out = append(out, r.subProjectWithJoins(sp))
		}
	}
	slices.SortFunc(out, func(a, b project.SubProject) int { return cmp.Compare(b.ID, a.ID) })
	return out
}
