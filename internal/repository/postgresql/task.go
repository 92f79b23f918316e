package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
)

const taskSelect = `
	SELECT t.id, t.title, t.details, t.mode, t.status, t.start_date, t.end_date,
		   t.owner_user_id, t.created_by, t.project_id, t.sub_project_id,
		   t.created_at, t.updated_at, t.updated_by,
		   o.name, o.email, c.name, p.name, sp.name
	FROM tasks t
	JOIN users o ON o.id = t.owner_user_id
	LEFT JOIN users c ON c.id = t.created_by
	LEFT JOIN projects p ON p.id = t.project_id
	LEFT JOIN sub_projects sp ON sp.id = t.sub_project_id
`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row pgx.Row) (task.Task, error) {
	var (
		t      task.Task
		status string
	)
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Details,
		&t.Mode,
		&status,
		&t.StartDate,
		&t.EndDate,
		&t.OwnerUserID,
		&t.CreatedBy,
		&t.ProjectID,
		&t.SubProjectID,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.UpdatedBy,
		&t.OwnerName,
		&t.OwnerEmail,
		&t.CreatedByName,
		&t.ProjectName,
		&t.SubProjectName,
	)
	if err != nil {
		return task.Task{}, err
	}
	t.Status = task.Status(status)
	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanTask(q.QueryRow(ctx, taskSelect+`WHERE t.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return task.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return task.Task{}, err
	}
	return found, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			title, details, mode, status, start_date, end_date,
			owner_user_id, created_by, project_id, sub_project_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		newTask.Title,
		newTask.Details,
		newTask.Mode,
		string(newTask.Status),
		newTask.StartDate,
		newTask.EndDate,
		newTask.OwnerUserID,
		newTask.CreatedBy,
		newTask.ProjectID,
		newTask.SubProjectID,
	).Scan(&id)
	if err != nil {
		return task.Task{}, err
	}

	return r.GetByID(ctx, id)
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, details = $2, mode = $3, status = $4, start_date = $5, end_date = $6,
			project_id = $7, sub_project_id = $8, updated_by = $9, updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		t.Title,
		t.Details,
		t.Mode,
		string(t.Status),
		t.StartDate,
		t.EndDate,
		t.ProjectID,
		t.SubProjectID,
		t.UpdatedBy,
		t.ID,
	)
	if err != nil {
		return task.Task{}, err
	}
	if tag.RowsAffected() == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}

	return r.GetByID(ctx, t.ID)
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// taskScopeClause renders scope as a WHERE clause over tasks t joined with
// their owner o.
func taskScopeClause(scope access.TaskScope) (string, []any, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch scope.Kind {
	case access.TasksAll:
	case access.TasksOwnedCreatedOrReporting:
		p := arg(scope.ActorID)
		conds = append(conds, fmt.Sprintf("(t.owner_user_id = %[1]s OR t.created_by = %[1]s OR o.reporting_id = %[1]s)", p))
	case access.TasksOwned:
		conds = append(conds, "t.owner_user_id = "+arg(scope.ActorID))
	case access.TasksOfReportingEmployees:
		conds = append(conds, "o.reporting_id = "+arg(scope.ActorID))
		conds = append(conds, "o.role_id = "+arg(int16(access.RoleEmployee)))
	case access.TasksOfAdmins:
		conds = append(conds, "o.role_id = "+arg(int16(access.RoleAdmin)))
	default:
		return "", nil, fmt.Errorf("unsupported task scope %d", scope.Kind)
	}

	if scope.OwnerID != 0 {
		conds = append(conds, "t.owner_user_id = "+arg(scope.OwnerID))
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args, nil
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, scope access.TaskScope) ([]task.Task, error) {
	where, args, err := taskScopeClause(scope)
	if err != nil {
		return nil, err
	}

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, taskSelect+where+` ORDER BY t.created_at DESC, t.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
