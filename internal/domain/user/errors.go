package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrReportingUserNotFound = errors.New("reporting user not found")
	ErrUserHasSubordinates   = errors.New("user still has subordinates")
)
