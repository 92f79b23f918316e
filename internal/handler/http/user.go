package http

import (
	"net/http"

	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListAdmins(w http.ResponseWriter, r *http.Request)
	CheckSubordinateEmail(w http.ResponseWriter, r *http.Request)
	ResetSubordinatePassword(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	users, err := h.userService.List(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, users)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	u, err := h.userService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, u)
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req user.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.userService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "User created", created)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req user.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.userService.Update(r.Context(), actor, id, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "User updated", updated)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), actor, id); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "User deleted", nil)
}

// ListEmployees implements UserHandler.
func (h *UserHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	users, err := h.userService.ListEmployees(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, users)
}

// ListAdmins implements UserHandler.
func (h *UserHandlerImpl) ListAdmins(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	users, err := h.userService.ListAdmins(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, users)
}

// CheckSubordinateEmail implements UserHandler.
func (h *UserHandlerImpl) CheckSubordinateEmail(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req user.CheckEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.userService.CheckSubordinateEmail(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, u)
}

// ResetSubordinatePassword implements UserHandler.
func (h *UserHandlerImpl) ResetSubordinatePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req user.ResetSubordinatePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.userService.ResetSubordinatePassword(r.Context(), actor, req); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Password has been reset", nil)
}
