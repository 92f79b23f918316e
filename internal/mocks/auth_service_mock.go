package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/auth"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
)

type AuthService struct{ mock.Mock }

func (m *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *AuthService) Me(ctx context.Context, actor access.Actor) (user.UserResponse, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *AuthService) Profile(ctx context.Context, actor access.Actor) (auth.ProfileResponse, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(auth.ProfileResponse), args.Error(1)
}

func (m *AuthService) Roles(ctx context.Context, actor access.Actor) ([]auth.RoleResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]auth.RoleResponse), args.Error(1)
}

func (m *AuthService) UpdateMobile(ctx context.Context, actor access.Actor, req auth.UpdateMobileRequest) error {
	return m.Called(ctx, actor, req).Error(0)
}

func (m *AuthService) UploadAvatar(ctx context.Context, actor access.Actor, file io.Reader) (auth.AvatarResponse, error) {
	args := m.Called(ctx, actor, file)
	return args.Get(0).(auth.AvatarResponse), args.Error(1)
}

func (m *AuthService) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *AuthService) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *AuthService) SeedSuperAdmin(ctx context.Context, req auth.SeedSuperAdminRequest) error {
	return m.Called(ctx, req).Error(0)
}
