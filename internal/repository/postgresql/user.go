package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
)

const emailUniqueConstraint = "users_email_key"

const userSelect = `
	SELECT u.id, u.name, u.email, u.mobile, u.password_hash, u.role_id, u.reporting_id,
		   u.created_by, u.profile_image, u.created_at, u.updated_at, u.updated_by,
		   rep.name, cre.name
	FROM users u
	LEFT JOIN users rep ON rep.id = u.reporting_id
	LEFT JOIN users cre ON cre.id = u.created_by
`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		u      user.User
		roleID int16
	)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Mobile,
		&u.PasswordHash,
		&roleID,
		&u.ReportingID,
		&u.CreatedBy,
		&u.ProfileImage,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.UpdatedBy,
		&u.ReportingName,
		&u.CreatedByName,
	)
	if err != nil {
		return user.User{}, err
	}
	u.Role = access.Role(roleID)
	return u, nil
}

func (r *userRepositoryImpl) getOne(ctx context.Context, where string, arg any) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanUser(q.QueryRow(ctx, userSelect+where, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.User{}, err
	}
	return found, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	return r.getOne(ctx, `WHERE u.id = $1`, id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, `WHERE LOWER(u.email) = LOWER($1)`, email)
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND id <> $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, mobile, password_hash, role_id, reporting_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.Mobile,
		newUser.PasswordHash,
		int16(newUser.Role),
		newUser.ReportingID,
		newUser.CreatedBy,
	).Scan(&id)
	if database.IsUniqueViolation(err, emailUniqueConstraint) {
		return user.User{}, user.ErrUserEmailExists
	}
	if err != nil {
		return user.User{}, err
	}

	return r.GetByID(ctx, id)
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1, email = $2, mobile = $3, updated_by = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, u.Name, u.Email, u.Mobile, u.UpdatedBy, u.ID)
	if database.IsUniqueViolation(err, emailUniqueConstraint) {
		return user.User{}, user.ErrUserEmailExists
	}
	if err != nil {
		return user.User{}, err
	}
	if tag.RowsAffected() == 0 {
		return user.User{}, user.ErrUserNotFound
	}

	return r.GetByID(ctx, u.ID)
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string, updatedBy int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_by = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, passwordHash, updatedBy, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdateMobile implements user.UserRepository.
func (r *userRepositoryImpl) UpdateMobile(ctx context.Context, id int64, mobile string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET mobile = $1, updated_by = $2, updated_at = NOW() WHERE id = $2`, mobile, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdateProfileImage implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfileImage(ctx context.Context, id int64, url string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET profile_image = $1, updated_by = $2, updated_at = NOW() WHERE id = $2`, url, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// CountSubordinates implements user.UserRepository.
func (r *userRepositoryImpl) CountSubordinates(ctx context.Context, id int64) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE id <> $1 AND (reporting_id = $1 OR created_by = $1)`,
		id,
	).Scan(&n)
	return n, err
}

// userScopeClause renders scope as a WHERE clause over the users alias u.
func userScopeClause(scope access.UserScope) (string, []any, error) {
	switch scope.Kind {
	case access.UsersAllExceptSelf:
		return `WHERE u.id <> $1`, []any{scope.ActorID}, nil
	case access.UsersSelfAndCreated:
		return `WHERE (u.id = $1 OR u.created_by = $1)`, []any{scope.ActorID}, nil
	case access.UsersSelf:
		return `WHERE u.id = $1`, []any{scope.ActorID}, nil
	case access.UsersReportingEmployees:
		return `WHERE u.reporting_id = $1 AND u.role_id = $2`, []any{scope.ActorID, int16(access.RoleEmployee)}, nil
	case access.UsersAdminsAndEmployees:
		return `WHERE u.role_id IN ($1, $2)`, []any{int16(access.RoleAdmin), int16(access.RoleEmployee)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported user scope %d", scope.Kind)
	}
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, scope access.UserScope) ([]user.User, error) {
	where, args, err := userScopeClause(scope)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, where, args...)
}

// ListByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListByRole(ctx context.Context, role access.Role) ([]user.User, error) {
	return r.list(ctx, `WHERE u.role_id = $1`, int16(role))
}

func (r *userRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, userSelect+where+` ORDER BY u.created_at DESC, u.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
