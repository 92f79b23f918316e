package memstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
)

// SeedLeaveType inserts a leave type and returns it with its id.
func (s *Store) SeedLeaveType(lt leave.LeaveType) leave.LeaveType {
	s.mu.Lock()
	defer s.mu.Unlock()

	lt.ID = s.id()
	s.leaveTypes[lt.ID] = lt
	return lt
}

type leaveTypeRepository struct {
	*Store
}

func (s *Store) LeaveTypes() leave.LeaveTypeRepository {
	return leaveTypeRepository{s}
}

func (r leaveTypeRepository) GetByID(_ context.Context, id int64) (leave.LeaveType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lt, ok := r.leaveTypes[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r leaveTypeRepository) ListActive(_ context.Context) ([]leave.LeaveType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []leave.LeaveType{}
	for _, lt := range r.leaveTypes {
		if lt.IsActive {
			out = append(out, lt)
		}
	}
	slices.SortFunc(out, func(a, b leave.LeaveType) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

type leaveRequestRepository struct {
	*Store
}

func (s *Store) LeaveRequests() leave.LeaveRequestRepository {
	return leaveRequestRepository{s}
}

func (s *Store) leaveWithJoins(lr leave.LeaveRequest) leave.LeaveRequest {
	if a, ok := s.users[lr.ApplicantUserID]; ok {
		lr.ApplicantName = ptr(a.Name)
		lr.ApplicantEmail = ptr(a.Email)
	}
	if lt, ok := s.leaveTypes[lr.LeaveTypeID]; ok {
		lr.LeaveTypeName = ptr(lt.Name)
	}
	if lr.ApprovedBy != nil {
		if ap, ok := s.users[*lr.ApprovedBy]; ok {
			lr.ApprovedByName = ptr(ap.Name)
		}
	}
	return lr
}

func (r leaveRequestRepository) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = r.id()
	request.Status = leave.StatusPending
	request.CreatedAt = r.now()
	r.leaveRequests[request.ID] = request
	return r.leaveWithJoins(request), nil
}

func (r leaveRequestRepository) GetByID(_ context.Context, id int64) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lr, ok := r.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r.leaveWithJoins(lr), nil
}

func (r leaveRequestRepository) ListByApplicant(_ context.Context, applicantID int64) ([]leave.LeaveRequest, error) {
	return r.filter(func(lr leave.LeaveRequest) bool { return lr.ApplicantUserID == applicantID }), nil
}

func (r leaveRequestRepository) ListPendingExcept(_ context.Context, applicantID int64) ([]leave.LeaveRequest, error) {
	return r.filter(func(lr leave.LeaveRequest) bool {
		return lr.Status == leave.StatusPending && lr.ApplicantUserID != applicantID
	}), nil
}

func (r leaveRequestRepository) CountPending(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, lr := range r.leaveRequests {
		if lr.Status == leave.StatusPending {
			n++
		}
	}
	return n, nil
}

func (r leaveRequestRepository) filter(keep func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []leave.LeaveRequest{}
	for _, lr := range r.leaveRequests {
		if keep(lr) {
			out = append(out, r.leaveWithJoins(lr))
		}
	}
	slices.SortFunc(out, func(a, b leave.LeaveRequest) int { return cmp.Compare(b.ID, a.ID) })
	return out
}

func (r leaveRequestRepository) Decide(_ context.Context, id int64, d leave.Decision) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lr, ok := r.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}
	lr.Status = d.Status
	lr.ApprovedBy = &d.ApprovedBy
	lr.ApprovedOn = &d.ApprovedOn
	lr.RejectReason = d.RejectReason
	r.leaveRequests[id] = lr
	return r.leaveWithJoins(lr), nil
}
