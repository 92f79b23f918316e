package leave

import (
	"math"
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/pkg/validator"
)

// MaxTotalDays is the largest value the total_days NUMERIC(5,2) column holds.
const MaxTotalDays = 999.99

type LeaveTypeResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	LeaveCount float64 `json:"leave_count"`
	IsActive   bool    `json:"is_active"`
}

func NewLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{ID: t.ID, Name: t.Name, LeaveCount: t.LeaveCount, IsActive: t.IsActive}
}

type LeaveRequestResponse struct {
	ID              int64   `json:"id"`
	ApplicantUserID int64   `json:"applicant_user_id"`
	ApplicantName   *string `json:"applicant_name,omitempty"`
	ApplicantEmail  *string `json:"applicant_email,omitempty"`
	LeaveTypeID     int64   `json:"leave_type_id"`
	LeaveTypeName   *string `json:"leave_type_name,omitempty"`
	FromDate        string  `json:"from_date"`
	ToDate          string  `json:"to_date"`
	TotalDays       float64 `json:"total_days"`
	SessionDay      int     `json:"session_day"`
	Reason          *string `json:"reason,omitempty"`
	Status          string  `json:"status"`
	ApprovedBy      *int64  `json:"approved_by,omitempty"`
	ApprovedByName  *string `json:"approved_by_name,omitempty"`
	ApprovedOn      *string `json:"approved_on,omitempty"`
	RejectReason    *string `json:"reject_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              r.ID,
		ApplicantUserID: r.ApplicantUserID,
		ApplicantName:   r.ApplicantName,
		ApplicantEmail:  r.ApplicantEmail,
		LeaveTypeID:     r.LeaveTypeID,
		LeaveTypeName:   r.LeaveTypeName,
		FromDate:        r.FromDate.Format(time.DateOnly),
		ToDate:          r.ToDate.Format(time.DateOnly),
		TotalDays:       r.TotalDays,
		SessionDay:      int(r.SessionDay),
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApprovedBy:      r.ApprovedBy,
		ApprovedByName:  r.ApprovedByName,
		RejectReason:    r.RejectReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.ApprovedOn != nil {
		on := r.ApprovedOn.Format(time.RFC3339)
		resp.ApprovedOn = &on
	}
	return resp
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveRequestResponse(r))
	}
	return out
}

type ApplyLeaveRequest struct {
	LeaveTypeID int64   `json:"leave_type_id"`
	FromDate    string  `json:"from_date"`
	ToDate      string  `json:"to_date"`
	TotalDays   float64 `json:"total_days"`
	SessionDay  int     `json:"session_day"`
	Reason      *string `json:"reason,omitempty"`

	// Parsed by Validate
	From time.Time `json:"-"`
	To   time.Time `json:"-"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveTypeID <= 0 {
		errs.Add("leave_type_id", "leave_type_id is required")
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs.Add("from_date", "from_date must be YYYY-MM-DD")
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs.Add("to_date", "to_date must be YYYY-MM-DD")
	}
	datesOK := fromOK && toOK
	if datesOK && to.Before(from) {
		errs.Add("to_date", "to_date must not be before from_date")
		datesOK = false
	}
	r.From, r.To = from, to

	session := SessionDay(r.SessionDay)
	if !session.Valid() {
		errs.Add("session_day", "session_day must be 0, 1 or 2")
	}

	switch {
	case r.TotalDays <= 0:
		errs.Add("total_days", "total_days must be greater than 0")
	case r.TotalDays > MaxTotalDays:
		errs.Add("total_days", "total_days must not exceed 999.99")
	case math.Mod(r.TotalDays*2, 1) != 0:
		errs.Add("total_days", "total_days must be a multiple of 0.5")
	case datesOK && r.TotalDays > CalendarSpan(from, to):
		errs.Add("total_days", "total_days exceeds the requested date range")
	}

	if session.IsHalf() {
		if datesOK && !from.Equal(to) {
			errs.Add("session_day", "half day leave must start and end on the same date")
		}
		if r.TotalDays != 0.5 {
			errs.Add("total_days", "half day leave must be 0.5 days")
		}
	}

	return errs.Err()
}

type DecideLeaveRequest struct {
	LeaveID      int64   `json:"leave_id"`
	Status       string  `json:"status"`
	RejectReason *string `json:"reject_reason,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveID <= 0 {
		errs.Add("leave_id", "leave_id is required")
	}

	switch Status(r.Status) {
	case StatusApproved:
	case StatusRejected:
		if r.RejectReason == nil || validator.IsEmpty(*r.RejectReason) {
			errs.Add("reject_reason", "reject_reason is required when rejecting")
		}
	default:
		errs.Add("status", "status must be APPROVED or REJECTED")
	}

	return errs.Err()
}
