package task

import (
	"context"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id int64) error
	// List returns the tasks matching scope, newest first, with join fields.
	List(ctx context.Context, scope access.TaskScope) ([]Task, error)
}
