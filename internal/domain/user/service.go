package user

import (
	"context"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type UserService interface {
	Create(ctx context.Context, actor access.Actor, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context, actor access.Actor) ([]UserResponse, error)
	Get(ctx context.Context, actor access.Actor, id int64) (UserResponse, error)
	Update(ctx context.Context, actor access.Actor, id int64, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, actor access.Actor, id int64) error

	ListEmployees(ctx context.Context, actor access.Actor) ([]UserResponse, error)
	ListAdmins(ctx context.Context, actor access.Actor) ([]UserResponse, error)
	CheckSubordinateEmail(ctx context.Context, actor access.Actor, req CheckEmailRequest) (UserResponse, error)
	ResetSubordinatePassword(ctx context.Context, actor access.Actor, req ResetSubordinatePasswordRequest) error
}
