package project

import (
	"context"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type ProjectService interface {
	CreateProject(ctx context.Context, actor access.Actor, req CreateProjectRequest) (ProjectResponse, error)
	ListProjects(ctx context.Context) ([]ProjectResponse, error)
	DeactivateProject(ctx context.Context, actor access.Actor, id int64) error
	CreateSubProject(ctx context.Context, actor access.Actor, req CreateSubProjectRequest) (SubProjectResponse, error)
	ListSubProjects(ctx context.Context) ([]SubProjectResponse, error)
	ListSubProjectsByProject(ctx context.Context, projectID int64) ([]SubProjectResponse, error)
	// ValidateReference checks that a task may point at projectID/subProjectID.
	ValidateReference(ctx context.Context, projectID, subProjectID *int64) error
}
