package http

import (
	"net/http"

	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := l.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, types)
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req leave.ApplyLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := l.leaveService.Apply(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// ListMine implements LeaveHandler.
func (l *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	requests, err := l.leaveService.ListMine(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	requests, err := l.leaveService.ListOtherPending(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, requests)
}

// Decide implements LeaveHandler.
func (l *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req leave.DecideLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	decided, err := l.leaveService.Decide(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request "+decided.Status, decided)
}
