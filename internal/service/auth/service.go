package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/auth"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/email"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/jwt"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/password"
	"github.com/taskmate/taskmate-backend-go/internal/service/file"
)

// LoginRecorder observes login outcomes.
type LoginRecorder interface {
	RecordLogin(success bool)
}

type AuthServiceImpl struct {
	tx database.Transactor
	user.UserRepository
	jwtService  jwt.Service
	fileService file.FileService
	mailer      email.EmailService
	recorder    LoginRecorder
	frontendURL string
}

func NewAuthService(tx database.Transactor, userRepository user.UserRepository, jwtService jwt.Service, fileService file.FileService, mailer email.EmailService, recorder LoginRecorder, frontendURL string) auth.AuthService {
	return &AuthServiceImpl{
		tx:             tx,
		UserRepository: userRepository,
		jwtService:     jwtService,
		fileService:    fileService,
		mailer:         mailer,
		recorder:       recorder,
		frontendURL:    strings.TrimRight(frontendURL, "/"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AuthServiceImpl) recordLogin(success bool) {
	if a.recorder != nil {
		a.recorder.RecordLogin(success)
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := a.UserRepository.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			a.recordLogin(false)
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !password.Matches(u.PasswordHash, req.Password) {
		a.recordLogin(false)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(u.Actor(), u.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	a.recordLogin(true)
	slog.InfoContext(ctx, "user logged in", "user_id", u.ID, "role", u.Role.String())
	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user.NewUserResponse(u),
	}, nil
}

// current loads the account behind a token. A token whose account is gone is
// treated as invalid.
func (a *AuthServiceImpl) current(ctx context.Context, actor access.Actor) (user.User, error) {
	if !actor.Valid() {
		return user.User{}, access.ErrUnknownActor
	}
	u, err := a.UserRepository.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.ErrInvalidToken
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, actor access.Actor) (user.UserResponse, error) {
	u, err := a.current(ctx, actor)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context, actor access.Actor) (auth.ProfileResponse, error) {
	u, err := a.current(ctx, actor)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	profile := auth.ProfileResponse{UserResponse: user.NewUserResponse(u)}
	if u.ReportingID == access.NoSuperior {
		return profile, nil
	}

	superior, err := a.UserRepository.GetByID(ctx, u.ReportingID)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		slog.WarnContext(ctx, "reporting user missing", "user_id", u.ID, "reporting_id", u.ReportingID)
	case err != nil:
		return auth.ProfileResponse{}, fmt.Errorf("failed to get reporting user: %w", err)
	default:
		role := superior.Role.String()
		profile.ReportingEmail = &superior.Email
		profile.ReportingRole = &role
	}
	return profile, nil
}

// Roles implements auth.AuthService.
func (a *AuthServiceImpl) Roles(ctx context.Context, actor access.Actor) ([]auth.RoleResponse, error) {
	if !actor.Valid() {
		return nil, access.ErrUnknownActor
	}
	roles := access.AssignableRoles(actor)
	out := make([]auth.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, auth.RoleResponse{ID: int(r), Name: r.String()})
	}
	return out, nil
}

// UpdateMobile implements auth.AuthService.
func (a *AuthServiceImpl) UpdateMobile(ctx context.Context, actor access.Actor, req auth.UpdateMobileRequest) error {
	if !actor.Valid() {
		return access.ErrUnknownActor
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := a.UserRepository.UpdateMobile(ctx, actor.ID, strings.TrimSpace(req.Mobile)); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.ErrInvalidToken
		}
		return fmt.Errorf("failed to update mobile: %w", err)
	}
	return nil
}

// UploadAvatar implements auth.AuthService.
func (a *AuthServiceImpl) UploadAvatar(ctx context.Context, actor access.Actor, upload io.Reader) (auth.AvatarResponse, error) {
	if !actor.Valid() {
		return auth.AvatarResponse{}, access.ErrUnknownActor
	}

	imageURL, err := a.fileService.UploadAvatar(ctx, actor.ID, upload)
	if err != nil {
		if errors.Is(err, file.ErrUnsupportedImage) {
			return auth.AvatarResponse{}, auth.ErrInvalidImage
		}
		return auth.AvatarResponse{}, err
	}

	if err := a.UserRepository.UpdateProfileImage(ctx, actor.ID, imageURL); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AvatarResponse{}, auth.ErrInvalidToken
		}
		return auth.AvatarResponse{}, fmt.Errorf("failed to save profile image: %w", err)
	}
	return auth.AvatarResponse{ProfileImage: imageURL}, nil
}

// ForgotPassword implements auth.AuthService. Unknown addresses and mail
// failures are only logged.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := a.UserRepository.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			slog.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	token, expiresAt, err := a.jwtService.GenerateResetToken(u.ID, u.Email)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	link := a.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
	if err := a.mailer.SendPasswordReset(ctx, u.Email, u.Name, link, time.Unix(expiresAt, 0)); err != nil {
		slog.ErrorContext(ctx, "failed to send password reset email", "user_id", u.ID, "error", err)
	}
	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := a.jwtService.ValidateResetToken(req.Token)
	if err != nil {
		return auth.ErrInvalidToken
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, userID, hash, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.ErrInvalidToken
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	slog.InfoContext(ctx, "password reset", "user_id", userID)
	return nil
}

// SeedSuperAdmin implements auth.AuthService. It does nothing once any
// superadmin exists.
func (a *AuthServiceImpl) SeedSuperAdmin(ctx context.Context, req auth.SeedSuperAdminRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	emailAddr := normalizeEmail(req.Email)

	return a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := a.UserRepository.ListByRole(ctx, access.RoleSuperAdmin)
		if err != nil {
			return fmt.Errorf("failed to list superadmins: %w", err)
		}
		if len(existing) > 0 {
			slog.InfoContext(ctx, "superadmin already present, skipping seed", "user_id", existing[0].ID)
			return nil
		}

		exists, err := a.UserRepository.ExistsByEmail(ctx, emailAddr, 0)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return user.ErrUserEmailExists
		}

		hash, err := password.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		var mobile *string
		if m := strings.TrimSpace(req.Mobile); m != "" {
			mobile = &m
		}

		created, err := a.UserRepository.Create(ctx, user.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        emailAddr,
			Mobile:       mobile,
			PasswordHash: hash,
			Role:         access.RoleSuperAdmin,
			ReportingID:  access.NoSuperior,
		})
		if err != nil {
			return fmt.Errorf("failed to create superadmin: %w", err)
		}

		slog.InfoContext(ctx, "superadmin seeded", "user_id", created.ID, "email", created.Email)
		return nil
	})
}
