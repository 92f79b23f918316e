package task

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrOwnerNotFound = errors.New("task owner not found")
)
