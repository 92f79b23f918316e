package auth

import (
	"context"
	"io"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, actor access.Actor) (user.UserResponse, error)
	Profile(ctx context.Context, actor access.Actor) (ProfileResponse, error)
	Roles(ctx context.Context, actor access.Actor) ([]RoleResponse, error)
	UpdateMobile(ctx context.Context, actor access.Actor, req UpdateMobileRequest) error
	UploadAvatar(ctx context.Context, actor access.Actor, file io.Reader) (AvatarResponse, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	SeedSuperAdmin(ctx context.Context, req SeedSuperAdminRequest) error
}
