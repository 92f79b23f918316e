package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveTypeNotFound            = errors.New("leave type not found")
	ErrLeaveTypeInactive            = errors.New("leave type is inactive")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
)
