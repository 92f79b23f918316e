package http

import (
	"net/http"

	"github.com/taskmate/taskmate-backend-go/internal/domain/auth"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
	"github.com/taskmate/taskmate-backend-go/internal/service/file"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Roles(w http.ResponseWriter, r *http.Request)
	UpdateMobile(w http.ResponseWriter, r *http.Request)
	UploadAvatar(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Login successful", resp)
}

// ForgotPassword implements AuthHandler.
func (a *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := a.authService.ForgotPassword(r.Context(), req); err != nil {
		response.HandleError(w, r, err)
		return
	}

	// Same answer whether or not the address exists
	response.SuccessWithMessage(w, "If the email is registered, a reset link has been sent", nil)
}

// ResetPassword implements AuthHandler.
func (a *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := a.authService.ResetPassword(r.Context(), req); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Password has been reset", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	me, err := a.authService.Me(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, me)
}

// Profile implements AuthHandler.
func (a *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	profile, err := a.authService.Profile(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, profile)
}

// Roles implements AuthHandler.
func (a *AuthHandlerImpl) Roles(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	roles, err := a.authService.Roles(r.Context(), actor)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, roles)
}

// UpdateMobile implements AuthHandler.
func (a *AuthHandlerImpl) UpdateMobile(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	var req auth.UpdateMobileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := a.authService.UpdateMobile(r.Context(), actor, req); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Mobile number updated", nil)
}

// UploadAvatar implements AuthHandler. The image arrives as the multipart
// field "avatar".
func (a *AuthHandlerImpl) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, file.MaxAvatarBytes+(1<<20))
	if err := r.ParseMultipartForm(file.MaxAvatarBytes); err != nil {
		response.BadRequest(w, "Avatar upload must be multipart/form-data under 5MB", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	upload, _, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "Avatar file is required", map[string]string{"avatar": "required"})
		return
	}
	defer upload.Close()

	resp, err := a.authService.UploadAvatar(r.Context(), actor, upload)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Avatar updated", resp)
}
