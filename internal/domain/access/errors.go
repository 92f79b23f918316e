package access

import "errors"

var (
	ErrForbidden        = errors.New("access denied")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnknownActor     = errors.New("unknown or missing actor")
)
