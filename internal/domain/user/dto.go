package user

import (
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/validator"
)

const MinPasswordLength = 6

// UserResponse is the sanitized view of an account.
type UserResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Mobile        *string `json:"mobile,omitempty"`
	RoleID        int     `json:"role_id"`
	Role          string  `json:"role"`
	ReportingID   int64   `json:"reporting_id"`
	ReportingName *string `json:"reporting_name,omitempty"`
	CreatedBy     int64   `json:"created_by"`
	CreatedByName *string `json:"created_by_name,omitempty"`
	ProfileImage  *string `json:"profile_image,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Mobile:        u.Mobile,
		RoleID:        int(u.Role),
		Role:          u.Role.String(),
		ReportingID:   u.ReportingID,
		ReportingName: u.ReportingName,
		CreatedBy:     u.CreatedBy,
		CreatedByName: u.CreatedByName,
		ProfileImage:  u.ProfileImage,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     u.UpdatedAt.Format(time.RFC3339),
	}
}

func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type CreateUserRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Mobile      *string `json:"mobile,omitempty"`
	RoleID      int     `json:"role_id"`
	ReportingID int64   `json:"reporting_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	r.Email = validator.NormalizeEmail(r.Email)
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < MinPasswordLength {
		errs.Add("password", "password must be at least 6 characters")
	}

	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs.Add("mobile", "mobile must be 10 to 15 digits")
	}

	if r.RoleID == 0 {
		errs.Add("role_id", "role_id is required")
	} else if !access.Role(r.RoleID).Valid() {
		errs.Add("role_id", "invalid role")
	}

	if r.ReportingID < 0 {
		errs.Add("reporting_id", "reporting_id must not be negative")
	}

	return errs.Err()
}

// UpdateUserRequest carries the only fields a profile edit may change.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Mobile *string `json:"mobile,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Email == nil && r.Mobile == nil {
		errs.Add("body", "nothing to update")
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}

	if r.Email != nil {
		*r.Email = validator.NormalizeEmail(*r.Email)
		if validator.IsEmpty(*r.Email) {
			errs.Add("email", "email must not be empty")
		} else if !validator.IsValidEmail(*r.Email) {
			errs.Add("email", "invalid email format")
		}
	}

	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs.Add("mobile", "mobile must be 10 to 15 digits")
	}

	return errs.Err()
}

type CheckEmailRequest struct {
	Email string `json:"email"`
}

func (r *CheckEmailRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = validator.NormalizeEmail(r.Email)
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	return errs.Err()
}

type ResetSubordinatePasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

func (r *ResetSubordinatePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = validator.NormalizeEmail(r.Email)
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if len(r.NewPassword) < MinPasswordLength {
		errs.Add("new_password", "new_password must be at least 6 characters")
	}

	return errs.Err()
}
