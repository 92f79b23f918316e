package user

import (
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	Mobile       *string
	PasswordHash string
	Role         access.Role
	ReportingID  int64
	CreatedBy    int64
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UpdatedBy    *int64

	// Join
	ReportingName *string
	CreatedByName *string
}

// Owner returns the fields the access rules evaluate.
func (u User) Owner() access.OwnerContext {
	return access.OwnerContext{
		ID:          u.ID,
		Role:        u.Role,
		CreatedBy:   u.CreatedBy,
		ReportingID: u.ReportingID,
	}
}

// Actor returns the identity u acts under once authenticated.
func (u User) Actor() access.Actor {
	return access.Actor{ID: u.ID, Role: u.Role, ReportingID: u.ReportingID}
}

func (u User) IsSuperAdmin() bool {
	return u.Role == access.RoleSuperAdmin
}
