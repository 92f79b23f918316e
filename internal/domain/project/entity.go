package project

import "time"

type Project struct {
	ID        int64
	Name      string
	CreatedBy int64
	IsActive  bool
	CreatedAt time.Time

	// Join
	CreatedByName *string
}

type SubProject struct {
	ID        int64
	ProjectID int64
	Name      string
	CreatedBy int64
	IsActive  bool
	CreatedAt time.Time

	// Join
	ProjectName   *string
	CreatedByName *string
}
