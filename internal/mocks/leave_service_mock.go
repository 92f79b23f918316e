package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
)

type LeaveService struct{ mock.Mock }

func leaveList(args mock.Arguments) ([]leave.LeaveRequestResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leave.LeaveTypeResponse), args.Error(1)
}

func (m *LeaveService) Apply(ctx context.Context, actor access.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) ListMine(ctx context.Context, actor access.Actor) ([]leave.LeaveRequestResponse, error) {
	return leaveList(m.Called(ctx, actor))
}

func (m *LeaveService) ListOtherPending(ctx context.Context, actor access.Actor) ([]leave.LeaveRequestResponse, error) {
	return leaveList(m.Called(ctx, actor))
}

func (m *LeaveService) Decide(ctx context.Context, actor access.Actor, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}
