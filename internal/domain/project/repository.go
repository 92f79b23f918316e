package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id int64) (Project, error)
	ListActive(ctx context.Context) ([]Project, error)
	Deactivate(ctx context.Context, id int64) error
}

type SubProjectRepository interface {
	Create(ctx context.Context, sp SubProject) (SubProject, error)
	GetByID(ctx context.Context, id int64) (SubProject, error)
	ExistsByName(ctx context.Context, projectID int64, name string) (bool, error)
	ListActive(ctx context.Context) ([]SubProject, error)
	ListActiveByProject(ctx context.Context, projectID int64) ([]SubProject, error)
}
