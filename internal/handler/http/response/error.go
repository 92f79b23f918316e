package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/auth"
	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, access.ErrUnknownActor):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidImage):
		BadRequest(w, "Avatar must be a jpeg or png image", nil)

	// Access
	case errors.Is(err, access.ErrForbidden), errors.Is(err, access.ErrPermissionDenied):
		Forbidden(w, "You do not have access to this resource")

	// User
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrReportingUserNotFound):
		NotFound(w, "Reporting user not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserHasSubordinates):
		Conflict(w, "Reassign or remove this user's subordinates first")

	// Task
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrOwnerNotFound):
		NotFound(w, "Task owner not found")

	// Project
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrSubProjectNotFound):
		NotFound(w, "Sub project not found")
	case errors.Is(err, project.ErrProjectInactive):
		Conflict(w, "Project is inactive")
	case errors.Is(err, project.ErrSubProjectNameExists):
		Conflict(w, "Sub project name already exists in this project")
	case errors.Is(err, project.ErrSubProjectMismatch):
		BadRequest(w, "Sub project does not belong to the project", nil)

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeInactive):
		BadRequest(w, "Leave type is inactive", nil)
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	default:
		errorID := uuid.NewString()
		slog.ErrorContext(r.Context(), "unhandled error",
			"error_id", errorID,
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		InternalServerError(w, "An unexpected error occurred", errorID)
	}
}
