package project

import (
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/pkg/validator"
)

type ProjectResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	CreatedBy     int64   `json:"created_by"`
	CreatedByName *string `json:"created_by_name,omitempty"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		CreatedBy:     p.CreatedBy,
		CreatedByName: p.CreatedByName,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

type SubProjectResponse struct {
	ID            int64   `json:"id"`
	ProjectID     int64   `json:"project_id"`
	ProjectName   *string `json:"project_name,omitempty"`
	Name          string  `json:"name"`
	CreatedBy     int64   `json:"created_by"`
	CreatedByName *string `json:"created_by_name,omitempty"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}

func NewSubProjectResponse(sp SubProject) SubProjectResponse {
	return SubProjectResponse{
		ID:            sp.ID,
		ProjectID:     sp.ProjectID,
		ProjectName:   sp.ProjectName,
		Name:          sp.Name,
		CreatedBy:     sp.CreatedBy,
		CreatedByName: sp.CreatedByName,
		IsActive:      sp.IsActive,
		CreatedAt:     sp.CreatedAt.Format(time.RFC3339),
	}
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	return errs.Err()
}

type CreateSubProjectRequest struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
}

func (r *CreateSubProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ProjectID <= 0 {
		errs.Add("project_id", "project_id is required")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	return errs.Err()
}
