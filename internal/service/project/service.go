package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
)

type ProjectServiceImpl struct {
	tx database.Transactor
	project.ProjectRepository
	project.SubProjectRepository
}

func NewProjectService(tx database.Transactor, projectRepository project.ProjectRepository, subProjectRepository project.SubProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{
		tx:                   tx,
		ProjectRepository:    projectRepository,
		SubProjectRepository: subProjectRepository,
	}
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, actor access.Actor, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if !access.CanCreateProject(actor) {
		return project.ProjectResponse{}, access.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:      strings.TrimSpace(req.Name),
		CreatedBy: actor.ID,
	})
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}
	return project.NewProjectResponse(created), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	out := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, project.NewProjectResponse(p))
	}
	return out, nil
}

// DeactivateProject implements project.ProjectService.
func (s *ProjectServiceImpl) DeactivateProject(ctx context.Context, actor access.Actor, id int64) error {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return err
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if !access.CanDeactivateProject(actor, p.CreatedBy) {
		return access.ErrForbidden
	}
	if err := s.ProjectRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate project: %w", err)
	}
	return nil
}

func (s *ProjectServiceImpl) activeProject(ctx context.Context, id int64) (project.Project, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return project.Project{}, err
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	if !p.IsActive {
		return project.Project{}, project.ErrProjectInactive
	}
	return p, nil
}

// CreateSubProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateSubProject(ctx context.Context, actor access.Actor, req project.CreateSubProjectRequest) (project.SubProjectResponse, error) {
	if !access.CanCreateSubProject(actor) {
		return project.SubProjectResponse{}, access.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return project.SubProjectResponse{}, err
	}
	name := strings.TrimSpace(req.Name)

	var created project.SubProject
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.activeProject(ctx, req.ProjectID); err != nil {
			return err
		}

		exists, err := s.SubProjectRepository.ExistsByName(ctx, req.ProjectID, name)
		if err != nil {
			return fmt.Errorf("failed to check sub project name: %w", err)
		}
		if exists {
			return project.ErrSubProjectNameExists
		}

		created, err = s.SubProjectRepository.Create(ctx, project.SubProject{
			ProjectID: req.ProjectID,
			Name:      name,
			CreatedBy: actor.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create sub project: %w", err)
		}
		return nil
	})
	if err != nil {
		return project.SubProjectResponse{}, err
	}
	return project.NewSubProjectResponse(created), nil
}

// ListSubProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListSubProjects(ctx context.Context) ([]project.SubProjectResponse, error) {
	subProjects, err := s.SubProjectRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub projects: %w", err)
	}
	return subProjectResponses(subProjects), nil
}

// ListSubProjectsByProject implements project.ProjectService.
func (s *ProjectServiceImpl) ListSubProjectsByProject(ctx context.Context, projectID int64) ([]project.SubProjectResponse, error) {
	if _, err := s.ProjectRepository.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	subProjects, err := s.SubProjectRepository.ListActiveByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub projects: %w", err)
	}
	return subProjectResponses(subProjects), nil
}

func subProjectResponses(subProjects []project.SubProject) []project.SubProjectResponse {
	out := make([]project.SubProjectResponse, 0, len(subProjects))
	for _, sp := range subProjects {
		out = append(out, project.NewSubProjectResponse(sp))
	}
	return out
}

// ValidateReference implements project.ProjectService.
func (s *ProjectServiceImpl) ValidateReference(ctx context.Context, projectID, subProjectID *int64) error {
	if projectID == nil {
		if subProjectID != nil {
			return project.ErrSubProjectMismatch
		}
		return nil
	}
	if _, err := s.activeProject(ctx, *projectID); err != nil {
		return err
	}
	if subProjectID == nil {
		return nil
	}

	sp, err := s.SubProjectRepository.GetByID(ctx, *subProjectID)
	if err != nil {
		if errors.Is(err, project.ErrSubProjectNotFound) {
			return err
		}
		return fmt.Errorf("failed to get sub project: %w", err)
	}
	if !sp.IsActive {
		return project.ErrSubProjectNotFound
	}
	if sp.ProjectID != *projectID {
		return project.ErrSubProjectMismatch
	}
	return nil
}
