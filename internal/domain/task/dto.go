package task

import (
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/pkg/validator"
)

type TaskResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Details        *string `json:"details,omitempty"`
	Mode           *string `json:"mode,omitempty"`
	Status         string  `json:"status"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	OwnerUserID    int64   `json:"owner_user_id"`
	OwnerName      *string `json:"owner_name,omitempty"`
	OwnerEmail     *string `json:"owner_email,omitempty"`
	CreatedBy      int64   `json:"created_by"`
	CreatedByName  *string `json:"created_by_name,omitempty"`
	ProjectID      *int64  `json:"project_id,omitempty"`
	ProjectName    *string `json:"project_name,omitempty"`
	SubProjectID   *int64  `json:"sub_project_id,omitempty"`
	SubProjectName *string `json:"sub_project_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Details:        t.Details,
		Mode:           t.Mode,
		Status:         string(t.Status),
		StartDate:      t.StartDate.Format(time.RFC3339),
		EndDate:        t.EndDate.Format(time.RFC3339),
		OwnerUserID:    t.OwnerUserID,
		OwnerName:      t.OwnerName,
		OwnerEmail:     t.OwnerEmail,
		CreatedBy:      t.CreatedBy,
		CreatedByName:  t.CreatedByName,
		ProjectID:      t.ProjectID,
		ProjectName:    t.ProjectName,
		SubProjectID:   t.SubProjectID,
		SubProjectName: t.SubProjectName,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt.Format(time.RFC3339),
	}
}

func NewTaskResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}

type CreateTaskRequest struct {
	Title        string  `json:"title"`
	Details      *string `json:"details,omitempty"`
	Mode         *string `json:"mode,omitempty"`
	Status       string  `json:"status"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	OwnerUserID  *int64  `json:"owner_user_id,omitempty"`
	ProjectID    *int64  `json:"project_id,omitempty"`
	SubProjectID *int64  `json:"sub_project_id,omitempty"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}

	if validator.IsEmpty(r.Status) {
		r.Status = string(StatusPending)
	} else if !validator.IsInSlice(r.Status, Statuses()) {
		errs.Add("status", "status must be one of PENDING, IN_PROGRESS, COMPLETED")
	}

	start, startOK := validator.IsValidDateTime(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be an RFC3339 timestamp")
	}
	end, endOK := validator.IsValidDateTime(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be an RFC3339 timestamp")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}
	r.Start, r.End = start, end

	if r.OwnerUserID != nil && *r.OwnerUserID <= 0 {
		errs.Add("owner_user_id", "owner_user_id must be positive")
	}

	if r.SubProjectID != nil && r.ProjectID == nil {
		errs.Add("project_id", "project_id is required with sub_project_id")
	}

	return errs.Err()
}

type UpdateTaskRequest struct {
	Title        *string `json:"title,omitempty"`
	Details      *string `json:"details,omitempty"`
	Mode         *string `json:"mode,omitempty"`
	Status       *string `json:"status,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	ProjectID    *int64  `json:"project_id,omitempty"`
	SubProjectID *int64  `json:"sub_project_id,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs.Add("title", "title must not be empty")
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses()) {
		errs.Add("status", "status must be one of PENDING, IN_PROGRESS, COMPLETED")
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDateTime(*r.StartDate); !ok {
			errs.Add("start_date", "start_date must be an RFC3339 timestamp")
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDateTime(*r.EndDate); !ok {
			errs.Add("end_date", "end_date must be an RFC3339 timestamp")
		}
	}

	return errs.Err()
}

// Apply merges the patch into t. Dates are validated by Validate, and the
// merged range is checked here.
func (r *UpdateTaskRequest) Apply(t *Task) error {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Details != nil {
		t.Details = r.Details
	}
	if r.Mode != nil {
		t.Mode = r.Mode
	}
	if r.Status != nil {
		t.Status = Status(*r.Status)
	}
	if r.StartDate != nil {
		t.StartDate, _ = validator.IsValidDateTime(*r.StartDate)
	}
	if r.EndDate != nil {
		t.EndDate, _ = validator.IsValidDateTime(*r.EndDate)
	}
	if r.ProjectID != nil {
		t.ProjectID = r.ProjectID
		t.SubProjectID = nil
	}
	if r.SubProjectID != nil {
		t.SubProjectID = r.SubProjectID
	}

	if t.EndDate.Before(t.StartDate) {
		var errs validator.ValidationErrors
		errs.Add("end_date", "end_date must not be before start_date")
		return errs
	}
	return nil
}
