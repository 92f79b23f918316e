package leave

import (
	"context"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type LeaveService interface {
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	Apply(ctx context.Context, actor access.Actor, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	ListMine(ctx context.Context, actor access.Actor) ([]LeaveRequestResponse, error)
	ListOtherPending(ctx context.Context, actor access.Actor) ([]LeaveRequestResponse, error)
	Decide(ctx context.Context, actor access.Actor, req DecideLeaveRequest) (LeaveRequestResponse, error)
}
