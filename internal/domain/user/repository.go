package user

import (
	"context"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ExistsByEmail ignores the row with id excludeID; pass 0 to check all rows.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	// Update writes name, email, mobile and updated_by.
	Update(ctx context.Context, u User) (User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string, updatedBy int64) error
	UpdateMobile(ctx context.Context, id int64, mobile string) error
	UpdateProfileImage(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
	// CountSubordinates counts the other users that report to id or were
	// created by id.
	CountSubordinates(ctx context.Context, id int64) (int, error)
	List(ctx context.Context, scope access.UserScope) ([]User, error)
	ListByRole(ctx context.Context, role access.Role) ([]User, error)
}
