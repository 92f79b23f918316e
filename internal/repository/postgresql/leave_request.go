package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
)

const leaveRequestSelect = `
	SELECT lr.id, lr.applicant_user_id, lr.leave_type_id, lr.from_date, lr.to_date,
		   lr.total_days, lr.session_day, lr.reason, lr.status, lr.approved_by,
		   lr.approved_on, lr.reject_reason, lr.created_at,
		   a.name, a.email, lt.name, ap.name
	FROM leave_requests lr
	JOIN users a ON a.id = lr.applicant_user_id
	JOIN leave_types lt ON lt.id = lr.leave_type_id
	LEFT JOIN users ap ON ap.id = lr.approved_by
`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var (
		lr      leave.LeaveRequest
		session int16
		status  string
	)
	err := row.Scan(
		&lr.ID,
		&lr.ApplicantUserID,
		&lr.LeaveTypeID,
		&lr.FromDate,
		&lr.ToDate,
		&lr.TotalDays,
		&session,
		&lr.Reason,
		&status,
		&lr.ApprovedBy,
		&lr.ApprovedOn,
		&lr.RejectReason,
		&lr.CreatedAt,
		&lr.ApplicantName,
		&lr.ApplicantEmail,
		&lr.LeaveTypeName,
		&lr.ApprovedByName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.SessionDay = leave.SessionDay(session)
	lr.Status = leave.Status(status)
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			applicant_user_id, leave_type_id, from_date, to_date,
			total_days, session_day, reason, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		request.ApplicantUserID,
		request.LeaveTypeID,
		request.FromDate,
		request.ToDate,
		request.TotalDays,
		int16(request.SessionDay),
		request.Reason,
		string(leave.StatusPending),
	).Scan(&id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+`WHERE lr.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// ListByApplicant implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByApplicant(ctx context.Context, applicantID int64) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `WHERE lr.applicant_user_id = $1`, applicantID)
}

// ListPendingExcept implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPendingExcept(ctx context.Context, applicantID int64) ([]leave.LeaveRequest, error) {
	return r.list(ctx, `WHERE lr.status = $1 AND lr.applicant_user_id <> $2`, string(leave.StatusPending), applicantID)
}

// CountPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountPending(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, string(leave.StatusPending)).Scan(&n)
	return n, err
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveRequestSelect+where+` ORDER BY lr.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// Decide implements leave.LeaveRequestRepository. The update only matches a
// PENDING row, so of two concurrent deciders exactly one wins.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id int64, d leave.Decision) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_on = $3, reject_reason = $4
		WHERE id = $5 AND status = $6
	`

	tag, err := q.Exec(ctx, query,
		string(d.Status),
		d.ApprovedBy,
		d.ApprovedOn,
		d.RejectReason,
		id,
		string(leave.StatusPending),
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	return r.GetByID(ctx, id)
}
