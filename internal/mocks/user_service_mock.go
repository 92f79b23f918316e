package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
)

type UserService struct{ mock.Mock }

func userList(args mock.Arguments) ([]user.UserResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.UserResponse), args.Error(1)
}

func (m *UserService) Create(ctx context.Context, actor access.Actor, req user.CreateUserRequest) (user.UserResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *UserService) List(ctx context.Context, actor access.Actor) ([]user.UserResponse, error) {
	return userList(m.Called(ctx, actor))
}

func (m *UserService) Get(ctx context.Context, actor access.Actor, id int64) (user.UserResponse, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *UserService) Update(ctx context.Context, actor access.Actor, id int64, req user.UpdateUserRequest) (user.UserResponse, error) {
	args := m.Called(ctx, actor, id, req)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *UserService) Delete(ctx context.Context, actor access.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *UserService) ListEmployees(ctx context.Context, actor access.Actor) ([]user.UserResponse, error) {
	return userList(m.Called(ctx, actor))
}

func (m *UserService) ListAdmins(ctx context.Context, actor access.Actor) ([]user.UserResponse, error) {
	return userList(m.Called(ctx, actor))
}

func (m *UserService) CheckSubordinateEmail(ctx context.Context, actor access.Actor, req user.CheckEmailRequest) (user.UserResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *UserService) ResetSubordinatePassword(ctx context.Context, actor access.Actor, req user.ResetSubordinatePasswordRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}
