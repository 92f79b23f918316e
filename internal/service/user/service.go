package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/password"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/validator"
)

type UserServiceImpl struct {
	tx          database.Transactor
	emailDomain string
	user.UserRepository
}

func NewUserService(tx database.Transactor, userRepository user.UserRepository, emailDomain string) user.UserService {
	return &UserServiceImpl{
		tx:             tx,
		emailDomain:    emailDomain,
		UserRepository: userRepository,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) checkDomain(email string) error {
	if validator.HasEmailDomain(email, s.emailDomain) {
		return nil
	}
	var errs validator.ValidationErrors
	errs.Add("email", fmt.Sprintf("email must belong to the %s domain", strings.TrimPrefix(s.emailDomain, "@")))
	return errs
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, actor access.Actor, req user.CreateUserRequest) (user.UserResponse, error) {
	if !actor.Valid() {
		return user.UserResponse{}, access.ErrUnknownActor
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	email := normalizeEmail(req.Email)
	if err := s.checkDomain(email); err != nil {
		return user.UserResponse{}, err
	}

	role := access.Role(req.RoleID)
	reportingID, err := access.AssignableReportingID(actor, role, req.ReportingID)
	if err != nil {
		return user.UserResponse{}, err
	}

	var created user.User
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if actor.Role == access.RoleSuperAdmin && role == access.RoleEmployee {
			if err := s.checkReportingUser(ctx, reportingID); err != nil {
				return err
			}
		}

		exists, err := s.UserRepository.ExistsByEmail(ctx, email, 0)
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

		created, err = s.UserRepository.Create(ctx, user.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Mobile:       req.Mobile,
			PasswordHash: hash,
			Role:         role,
			ReportingID:  reportingID,
			CreatedBy:    actor.ID,
		})
		if err != nil {
			if errors.Is(err, user.ErrUserEmailExists) {
				return err
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	slog.InfoContext(ctx, "user created",
		"user_id", created.ID,
		"role", created.Role.String(),
		"reporting_id", created.ReportingID,
		"created_by", actor.ID,
	)
	return user.NewUserResponse(created), nil
}

// checkReportingUser verifies the superior a superadmin names for an employee.
func (s *UserServiceImpl) checkReportingUser(ctx context.Context, reportingID int64) error {
	if reportingID == access.NoSuperior {
		var errs validator.ValidationErrors
		errs.Add("reporting_id", "reporting_id is required when placing an employee")
		return errs
	}
	superior, err := s.UserRepository.GetByID(ctx, reportingID)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.ErrReportingUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get reporting user: %w", err)
	}
	if !superior.Role.In(access.RoleSuperAdmin, access.RoleAdmin) {
		var errs validator.ValidationErrors
		errs.Add("reporting_id", "employees must report to an admin")
		return errs
	}
	return nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, actor access.Actor) ([]user.UserResponse, error) {
	scope, err := access.VisibleUsers(actor)
	if err != nil {
		return nil, err
	}
	users, err := s.UserRepository.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.NewUserResponses(users), nil
}

// getAccessible loads id and applies CanAccessUser.
func (s *UserServiceImpl) getAccessible(ctx context.Context, actor access.Actor, id int64) (user.User, error) {
	if !actor.Valid() {
		return user.User{}, access.ErrUnknownActor
	}
	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !access.CanAccessUser(actor, target.Owner()) {
		return user.User{}, access.ErrForbidden
	}
	return target, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, actor access.Actor, id int64) (user.UserResponse, error) {
	target, err := s.getAccessible(ctx, actor, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(target), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, actor access.Actor, id int64, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.getAccessible(ctx, actor, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		target.Name = strings.TrimSpace(*req.Name)
	}
	if req.Mobile != nil {
		target.Mobile = req.Mobile
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != target.Email {
			if err := s.checkDomain(email); err != nil {
				return user.UserResponse{}, err
			}
			exists, err := s.UserRepository.ExistsByEmail(ctx, email, target.ID)
			if err != nil {
				return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return user.UserResponse{}, user.ErrUserEmailExists
			}
			target.Email = email
		}
	}
	target.UpdatedBy = &actor.ID

	updated, err := s.UserRepository.Update(ctx, target)
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) || errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user.NewUserResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, actor access.Actor, id int64) error {
	if !actor.Valid() {
		return access.ErrUnknownActor
	}
	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !access.CanDeleteUser(actor, target.Owner()) {
		return access.ErrForbidden
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		subordinates, err := s.UserRepository.CountSubordinates(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count subordinates: %w", err)
		}
		if subordinates > 0 {
			return user.ErrUserHasSubordinates
		}
		return s.UserRepository.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, user.ErrUserHasSubordinates) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", id, "deleted_by", actor.ID)
	return nil
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context, actor access.Actor) ([]user.UserResponse, error) {
	scope, err := access.EmployeeDirectory(actor)
	if err != nil {
		return nil, err
	}
	users, err := s.UserRepository.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return user.NewUserResponses(users), nil
}

// ListAdmins implements user.UserService.
func (s *UserServiceImpl) ListAdmins(ctx context.Context, actor access.Actor) ([]user.UserResponse, error) {
	if !actor.Valid() {
		return nil, access.ErrUnknownActor
	}
	if actor.Role != access.RoleSuperAdmin {
		return nil, access.ErrForbidden
	}
	users, err := s.UserRepository.ListByRole(ctx, access.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return user.NewUserResponses(users), nil
}

func (s *UserServiceImpl) getSubordinate(ctx context.Context, actor access.Actor, email string) (user.User, error) {
	if !actor.Valid() {
		return user.User{}, access.ErrUnknownActor
	}
	target, err := s.UserRepository.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !access.CanManageSubordinate(actor, target.Owner()) {
		return user.User{}, access.ErrForbidden
	}
	return target, nil
}

// CheckSubordinateEmail implements user.UserService.
func (s *UserServiceImpl) CheckSubordinateEmail(ctx context.Context, actor access.Actor, req user.CheckEmailRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	target, err := s.getSubordinate(ctx, actor, req.Email)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(target), nil
}

// ResetSubordinatePassword implements user.UserService.
func (s *UserServiceImpl) ResetSubordinatePassword(ctx context.Context, actor access.Actor, req user.ResetSubordinatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		target, err := s.getSubordinate(ctx, actor, req.Email)
		if err != nil {
			return err
		}

		hash, err := password.Hash(req.NewPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.UserRepository.UpdatePassword(ctx, target.ID, hash, actor.ID); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}

		slog.InfoContext(ctx, "subordinate password reset", "user_id", target.ID, "reset_by", actor.ID)
		return nil
	})
}
