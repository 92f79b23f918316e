package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
)

type TaskService struct{ mock.Mock }

func taskList(args mock.Arguments) ([]task.TaskResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.TaskResponse), args.Error(1)
}

func (m *TaskService) List(ctx context.Context, actor access.Actor) ([]task.TaskResponse, error) {
	return taskList(m.Called(ctx, actor))
}

func (m *TaskService) Get(ctx context.Context, actor access.Actor, id int64) (task.TaskResponse, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(task.TaskResponse), args.Error(1)
}

func (m *TaskService) Create(ctx context.Context, actor access.Actor, req task.CreateTaskRequest) (task.TaskResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(task.TaskResponse), args.Error(1)
}

func (m *TaskService) Update(ctx context.Context, actor access.Actor, id int64, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	args := m.Called(ctx, actor, id, req)
	return args.Get(0).(task.TaskResponse), args.Error(1)
}

func (m *TaskService) Delete(ctx context.Context, actor access.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *TaskService) ListEmployeeTasks(ctx context.Context, actor access.Actor, employeeID int64) ([]task.TaskResponse, error) {
	return taskList(m.Called(ctx, actor, employeeID))
}

func (m *TaskService) ListAllEmployeeTasks(ctx context.Context, actor access.Actor) ([]task.TaskResponse, error) {
	return taskList(m.Called(ctx, actor))
}

func (m *TaskService) ListAdminTasks(ctx context.Context, actor access.Actor) ([]task.TaskResponse, error) {
	return taskList(m.Called(ctx, actor))
}
