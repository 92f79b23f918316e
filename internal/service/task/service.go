package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	task.TaskRepository
	users    user.UserRepository
	projects project.ProjectService
}

func NewTaskService(taskRepository task.TaskRepository, userRepository user.UserRepository, projectService project.ProjectService) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		users:          userRepository,
		projects:       projectService,
	}
}

func (s *TaskServiceImpl) lookupOwner(ctx context.Context, userID int64) (access.OwnerContext, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return access.OwnerContext{}, access.ErrOwnerNotFound
	}
	if err != nil {
		return access.OwnerContext{}, fmt.Errorf("failed to resolve task owner: %w", err)
	}
	return u.Owner(), nil
}

// authorized loads id and evaluates rule against it with a fresh owner
// resolver.
func (s *TaskServiceImpl) authorized(ctx context.Context, actor access.Actor, id int64, rule func(access.Actor, access.TaskRef, access.OwnerContext) bool) (task.Task, error) {
	if !actor.Valid() {
		return task.Task{}, access.ErrUnknownActor
	}
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return task.Task{}, err
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	ok, err := access.NewOwnerResolver(s.lookupOwner).AuthorizeTask(ctx, actor, t.Ref(), rule)
	if err != nil {
		return task.Task{}, err
	}
	if !ok {
		return task.Task{}, access.ErrForbidden
	}
	return t, nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, actor access.Actor) ([]task.TaskResponse, error) {
	scope, err := access.VisibleTasks(actor)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, scope)
}

func (s *TaskServiceImpl) list(ctx context.Context, scope access.TaskScope) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return task.NewTaskResponses(tasks), nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, actor access.Actor, id int64) (task.TaskResponse, error) {
	t, err := s.authorized(ctx, actor, id, access.CanAccessTask)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.NewTaskResponse(t), nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, actor access.Actor, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if !actor.Valid() {
		return task.TaskResponse{}, access.ErrUnknownActor
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	ownerID := actor.ID
	if req.OwnerUserID != nil {
		ownerID = *req.OwnerUserID
	}

	owner := access.OwnerContext{ID: actor.ID, Role: actor.Role, ReportingID: actor.ReportingID}
	if ownerID != actor.ID {
		var err error
		owner, err = s.lookupOwner(ctx, ownerID)
		if errors.Is(err, access.ErrOwnerNotFound) {
			return task.TaskResponse{}, task.ErrOwnerNotFound
		}
		if err != nil {
			return task.TaskResponse{}, err
		}
	}
	if !access.CanRecordTaskFor(actor, owner) {
		return task.TaskResponse{}, access.ErrForbidden
	}

	if err := s.projects.ValidateReference(ctx, req.ProjectID, req.SubProjectID); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		Title:        strings.TrimSpace(req.Title),
		Details:      req.Details,
		Mode:         req.Mode,
		Status:       task.Status(req.Status),
		StartDate:    req.Start,
		EndDate:      req.End,
		OwnerUserID:  ownerID,
		CreatedBy:    actor.ID,
		ProjectID:    req.ProjectID,
		SubProjectID: req.SubProjectID,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task.NewTaskResponse(created), nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, actor access.Actor, id int64, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.authorized(ctx, actor, id, access.CanAccessTask)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := req.Apply(&t); err != nil {
		return task.TaskResponse{}, err
	}
	if req.ProjectID != nil || req.SubProjectID != nil {
		if err := s.projects.ValidateReference(ctx, t.ProjectID, t.SubProjectID); err != nil {
			return task.TaskResponse{}, err
		}
	}
	t.UpdatedBy = &actor.ID

	updated, err := s.TaskRepository.Update(ctx, t)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return task.TaskResponse{}, err
		}
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}
	return task.NewTaskResponse(updated), nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, actor access.Actor, id int64) error {
	if _, err := s.authorized(ctx, actor, id, access.CanDeleteTask); err != nil {
		return err
	}
	if err := s.TaskRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListEmployeeTasks implements task.TaskService.
func (s *TaskServiceImpl) ListEmployeeTasks(ctx context.Context, actor access.Actor, employeeID int64) ([]task.TaskResponse, error) {
	scope, err := access.EmployeeTasks(actor, employeeID)
	if err != nil {
		return nil, err
	}

	employee, err := s.users.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if !access.CanManageSubordinate(actor, employee.Owner()) {
		return nil, access.ErrForbidden
	}

	return s.list(ctx, scope)
}

// ListAllEmployeeTasks implements task.TaskService.
func (s *TaskServiceImpl) ListAllEmployeeTasks(ctx context.Context, actor access.Actor) ([]task.TaskResponse, error) {
	scope, err := access.EmployeeTasks(actor, 0)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, scope)
}

// ListAdminTasks implements task.TaskService.
func (s *TaskServiceImpl) ListAdminTasks(ctx context.Context, actor access.Actor) ([]task.TaskResponse, error) {
	scope, err := access.AdminTasks(actor)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, scope)
}
