package project

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectInactive      = errors.New("project is inactive")
	ErrSubProjectNotFound   = errors.New("sub project not found")
	ErrSubProjectMismatch   = errors.New("sub project does not belong to project")
	ErrSubProjectNameExists = errors.New("sub project name already exists in project")
)
