package auth

import (
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = validator.NormalizeEmail(r.Email)
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type TokenResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   int64             `json:"expires_at"`
	User        user.UserResponse `json:"user"`
}

type ProfileResponse struct {
	user.UserResponse
	ReportingEmail *string `json:"reporting_email,omitempty"`
	ReportingRole  *string `json:"reporting_role,omitempty"`
}

type RoleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AvatarResponse struct {
	ProfileImage string `json:"profile_image"`
}

type UpdateMobileRequest struct {
	Mobile string `json:"mobile"`
}

func (r *UpdateMobileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Mobile) {
		errs.Add("mobile", "mobile is required")
	} else if !validator.IsValidMobile(r.Mobile) {
		errs.Add("mobile", "mobile must be 10 to 15 digits")
	}

	return errs.Err()
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ForgotPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = validator.NormalizeEmail(r.Email)
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	return errs.Err()
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs.Add("token", "token is required")
	}

	if len(r.NewPassword) < user.MinPasswordLength {
		errs.Add("new_password", "new_password must be at least 6 characters")
	} else if r.ConfirmPassword != r.NewPassword {
		errs.Add("confirm_password", "passwords do not match")
	}

	return errs.Err()
}

type SeedSuperAdminRequest struct {
	Name     string
	Email    string
	Password string
	Mobile   string
}

func (r *SeedSuperAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	r.Email = validator.NormalizeEmail(r.Email)
	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}
	if len(r.Password) < user.MinPasswordLength {
		errs.Add("password", "password must be at least 6 characters")
	}
	if r.Mobile != "" && !validator.IsValidMobile(r.Mobile) {
		errs.Add("mobile", "mobile must be 10 to 15 digits")
	}

	return errs.Err()
}
