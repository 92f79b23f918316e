package access

// Actor is the identity attached to an authenticated request.
type Actor struct {
	ID          int64
	Role        Role
	ReportingID int64
}

// Valid reports whether the actor carries a usable id and a known role.
func (a Actor) Valid() bool {
	return a.ID > 0 && a.Role.Valid()
}

// OwnerContext is the slice of a user row the access rules depend on.
type OwnerContext struct {
	ID          int64
	Role        Role
	CreatedBy   int64
	ReportingID int64
}

// TaskRef is the slice of a task row the access rules depend on.
type TaskRef struct {
	OwnerUserID int64
	CreatedBy   int64
}
