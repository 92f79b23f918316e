package http

import (
	"net/http"

	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	CreateProject(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	DeactivateProject(w http.ResponseWriter, r *http.Request)
	CreateSubProject(w http.ResponseWriter, r *http.Request)
	ListSubProjects(w http.ResponseWriter, r *http.Request)
	ListSubProjectsByProject(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// CreateProject implements ProjectHandler.
func (h *ProjectHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req project.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.projectService.CreateProject(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Project created", created)
}

// ListProjects implements ProjectHandler.
func (h *ProjectHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, projects)
}

// DeactivateProject implements ProjectHandler.
func (h *ProjectHandlerImpl) DeactivateProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeactivateProject(r.Context(), actor, id); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Project deactivated", nil)
}

// CreateSubProject implements ProjectHandler.
func (h *ProjectHandlerImpl) CreateSubProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req project.CreateSubProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.projectService.CreateSubProject(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Sub project created", created)
}

// ListSubProjects implements ProjectHandler.
func (h *ProjectHandlerImpl) ListSubProjects(w http.ResponseWriter, r *http.Request) {
	subProjects, err := h.projectService.ListSubProjects(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, subProjects)
}

// ListSubProjectsByProject implements ProjectHandler.
func (h *ProjectHandlerImpl) ListSubProjectsByProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	subProjects, err := h.projectService.ListSubProjectsByProject(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, subProjects)
}
