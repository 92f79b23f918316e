package leave

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether s may move to next. Only PENDING moves,
// and only once.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

// SessionDay marks which part of the day a request covers.
type SessionDay int

const (
	SessionFullDay    SessionDay = 0
	SessionFirstHalf  SessionDay = 1
	SessionSecondHalf SessionDay = 2
)

func (s SessionDay) Valid() bool {
	return s >= SessionFullDay && s <= SessionSecondHalf
}

func (s SessionDay) IsHalf() bool {
	return s == SessionFirstHalf || s == SessionSecondHalf
}

type LeaveType struct {
	ID         int64
	Name       string
	LeaveCount float64
	IsActive   bool
}

type LeaveRequest struct {
	ID              int64
	ApplicantUserID int64
	LeaveTypeID     int64
	FromDate        time.Time
	ToDate          time.Time
	TotalDays       float64
	SessionDay      SessionDay
	Reason          *string
	Status          Status
	ApprovedBy      *int64
	ApprovedOn      *time.Time
	RejectReason    *string
	CreatedAt       time.Time

	// Join
	ApplicantName  *string
	ApplicantEmail *string
	LeaveTypeName  *string
	ApprovedByName *string
}

// Decision is the outcome written when a request leaves PENDING.
type Decision struct {
	Status       Status
	ApprovedBy   int64
	ApprovedOn   time.Time
	RejectReason *string
}

// CalendarSpan returns the inclusive number of calendar days from..to.
func CalendarSpan(from, to time.Time) float64 {
	if to.Before(from) {
		return 0
	}
	return math.Round(to.Sub(from).Hours()/24) + 1
}
