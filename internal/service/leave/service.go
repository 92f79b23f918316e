package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
)

// DecisionRecorder observes leave requests leaving PENDING.
type DecisionRecorder interface {
	RecordLeaveDecision(status string)
}

type LeaveServiceImpl struct {
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	recorder DecisionRecorder
	now      func() time.Time
}

func NewLeaveService(leaveTypeRepository leave.LeaveTypeRepository, leaveRequestRepository leave.LeaveRequestRepository, recorder DecisionRecorder) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		recorder:               recorder,
		now:                    time.Now,
	}
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.LeaveTypeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	out := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, leave.NewLeaveTypeResponse(t))
	}
	return out, nil
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, actor access.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !actor.Valid() {
		return leave.LeaveRequestResponse{}, access.ErrUnknownActor
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}
	if !leaveType.IsActive {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeInactive
	}

	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		req.Reason = &reason
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		ApplicantUserID: actor.ID,
		LeaveTypeID:     leaveType.ID,
		FromDate:        req.From,
		ToDate:          req.To,
		TotalDays:       req.TotalDays,
		SessionDay:      leave.SessionDay(req.SessionDay),
		Reason:          req.Reason,
		Status:          leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.InfoContext(ctx, "leave request submitted", "leave_id", created.ID, "applicant_id", actor.ID, "total_days", created.TotalDays)
	return leave.NewLeaveRequestResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, actor access.Actor) ([]leave.LeaveRequestResponse, error) {
	if !actor.Valid() {
		return nil, access.ErrUnknownActor
	}
	requests, err := s.LeaveRequestRepository.ListByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// ListOtherPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListOtherPending(ctx context.Context, actor access.Actor) ([]leave.LeaveRequestResponse, error) {
	if !access.CanReviewLeaves(actor) {
		return nil, access.ErrForbidden
	}
	requests, err := s.LeaveRequestRepository.ListPendingExcept(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// Decide implements leave.LeaveService. The repository re-checks PENDING in
// the statement that writes the decision.
func (s *LeaveServiceImpl) Decide(ctx context.Context, actor access.Actor, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !access.CanReviewLeaves(actor) {
		return leave.LeaveRequestResponse{}, access.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.LeaveID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if !access.CanDecideLeave(actor, request.ApplicantUserID) {
		return leave.LeaveRequestResponse{}, access.ErrForbidden
	}

	next := leave.Status(req.Status)
	if !request.Status.CanTransitionTo(next) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decision := leave.Decision{
		Status:     next,
		ApprovedBy: actor.ID,
		ApprovedOn: s.now(),
	}
	if next == leave.StatusRejected {
		reason := strings.TrimSpace(*req.RejectReason)
		decision.RejectReason = &reason
	}

	decided, err := s.LeaveRequestRepository.Decide(ctx, request.ID, decision)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) || errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to decide leave request: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordLeaveDecision(string(decided.Status))
	}
	slog.InfoContext(ctx, "leave request decided", "leave_id", decided.ID, "status", decided.Status, "decided_by", actor.ID)
	return leave.NewLeaveRequestResponse(decided), nil
}
