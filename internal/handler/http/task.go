package http

import (
	"net/http"

	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	ListEmployeeTasks(w http.ResponseWriter, r *http.Request)
	ListAllEmployeeTasks(w http.ResponseWriter, r *http.Request)
	ListAdminTasks(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, tasks)
}

// Get implements TaskHandler.
func (h *TaskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.taskService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, t)
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req task.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.taskService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Task created", created)
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req task.UpdateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.taskService.Update(r.Context(), actor, id, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Task updated", updated)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), actor, id); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Task deleted", nil)
}

// ListEmployeeTasks implements TaskHandler.
func (h *TaskHandlerImpl) ListEmployeeTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListEmployeeTasks(r.Context(), actor, employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, tasks)
}

// ListAllEmployeeTasks implements TaskHandler.
func (h *TaskHandlerImpl) ListAllEmployeeTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListAllEmployeeTasks(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, tasks)
}

// ListAdminTasks implements TaskHandler.
func (h *TaskHandlerImpl) ListAdminTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListAdminTasks(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, tasks)
}
