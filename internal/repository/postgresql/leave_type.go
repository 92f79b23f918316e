package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	var lt leave.LeaveType
	err := q.QueryRow(ctx,
		`SELECT id, name, leave_count, is_active FROM leave_types WHERE id = $1`, id,
	).Scan(&lt.ID, &lt.Name, &lt.LeaveCount, &lt.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	if err != nil {
		return leave.LeaveType{}, err
	}
	return lt, nil
}

// ListActive implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) ListActive(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, leave_count, is_active FROM leave_types WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []leave.LeaveType{}
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.LeaveCount, &lt.IsActive); err != nil {
			return nil, err
		}
		types = append(types, lt)
	}
	return types, rows.Err()
}
