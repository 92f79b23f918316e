package task

import (
	"context"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type TaskService interface {
	List(ctx context.Context, actor access.Actor) ([]TaskResponse, error)
	Get(ctx context.Context, actor access.Actor, id int64) (TaskResponse, error)
	Create(ctx context.Context, actor access.Actor, req CreateTaskRequest) (TaskResponse, error)
	Update(ctx context.Context, actor access.Actor, id int64, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, actor access.Actor, id int64) error

	ListEmployeeTasks(ctx context.Context, actor access.Actor, employeeID int64) ([]TaskResponse, error)
	ListAllEmployeeTasks(ctx context.Context, actor access.Actor) ([]TaskResponse, error)
	ListAdminTasks(ctx context.Context, actor access.Actor) ([]TaskResponse, error)
}
