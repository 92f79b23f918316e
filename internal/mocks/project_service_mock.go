package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
)

type ProjectService struct{ mock.Mock }

func (m *ProjectService) CreateProject(ctx context.Context, actor access.Actor, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(project.ProjectResponse), args.Error(1)
}

func (m *ProjectService) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.ProjectResponse), args.Error(1)
}

func (m *ProjectService) DeactivateProject(ctx context.Context, actor access.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *ProjectService) CreateSubProject(ctx context.Context, actor access.Actor, req project.CreateSubProjectRequest) (project.SubProjectResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(project.SubProjectResponse), args.Error(1)
}

func (m *ProjectService) ListSubProjects(ctx context.Context) ([]project.SubProjectResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.SubProjectResponse), args.Error(1)
}

func (m *ProjectService) ListSubProjectsByProject(ctx context.Context, projectID int64) ([]project.SubProjectResponse, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.SubProjectResponse), args.Error(1)
}

func (m *ProjectService) ValidateReference(ctx context.Context, projectID, subProjectID *int64) error {
	return m.Called(ctx, projectID, subProjectID).Error(0)
}
