package leave

import "context"

type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id int64) (LeaveType, error)
	ListActive(ctx context.Context) ([]LeaveType, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]LeaveRequest, error)
	ListPendingExcept(ctx context.Context, applicantID int64) ([]LeaveRequest, error)
	CountPending(ctx context.Context) (int, error)
	// Decide moves a PENDING request to d.Status. It returns
	// ErrLeaveRequestAlreadyProcessed when the row is no longer PENDING.
	Decide(ctx context.Context, id int64, d Decision) (LeaveRequest, error)
}
