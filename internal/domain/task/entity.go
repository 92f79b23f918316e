package task

import (
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func Statuses() []string {
	return []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}
}

type Task struct {
	ID           int64
	Title        string
	Details      *string
	Mode         *string
	Status       Status
	StartDate    time.Time
	EndDate      time.Time
	OwnerUserID  int64
	CreatedBy    int64
	ProjectID    *int64
	SubProjectID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UpdatedBy    *int64

	// Join
	OwnerName      *string
	OwnerEmail     *string
	CreatedByName  *string
	ProjectName    *string
	SubProjectName *string
}

// Ref returns the fields the access rules evaluate.
func (t Task) Ref() access.TaskRef {
	return access.TaskRef{OwnerUserID: t.OwnerUserID, CreatedBy: t.CreatedBy}
}
