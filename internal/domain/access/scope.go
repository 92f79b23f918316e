package access

// UserScopeKind names a row filter over accounts.
type UserScopeKind int

const (
	UsersAllExceptSelf UserScopeKind = iota + 1
	UsersSelfAndCreated
	UsersSelf
	UsersReportingEmployees
	UsersAdminsAndEmployees
)

// UserScope is a predicate over accounts, relative to ActorID. Repositories
// translate it into a WHERE clause; Match evaluates it in memory.
type UserScope struct {
	Kind    UserScopeKind
	ActorID int64
}

func (s UserScope) Match(u OwnerContext) bool {
	switch s.Kind {
	case UsersAllExceptSelf:
		return u.ID != s.ActorID
	case UsersSelfAndCreated:
		return u.ID == s.ActorID || u.CreatedBy == s.ActorID
	case UsersSelf:
		return u.ID == s.ActorID
	case UsersReportingEmployees:
		return u.ReportingID == s.ActorID && u.Role == RoleEmployee
	case UsersAdminsAndEmployees:
		return u.Role == RoleAdmin || u.Role == RoleEmployee
	default:
		return false
	}
}

// TaskScopeKind names a row filter over tasks joined with their owner.
type TaskScopeKind int

const (
	TasksAll TaskScopeKind = iota + 1
	TasksOwnedCreatedOrReporting
	TasksOwned
	TasksOfReportingEmployees
	TasksOfAdmins
)

// TaskScope is a predicate over tasks. OwnerID, when non-zero, further
// restricts the result to one owner.
type TaskScope struct {
	Kind    TaskScopeKind
	ActorID int64
	OwnerID int64
}

func (s TaskScope) Match(t TaskRef, owner OwnerContext) bool {
	if s.OwnerID != 0 && t.OwnerUserID != s.OwnerID {
		return false
	}
	switch s.Kind {
	case TasksAll:
		return true
	case TasksOwnedCreatedOrReporting:
		return t.OwnerUserID == s.ActorID || t.CreatedBy == s.ActorID || owner.ReportingID == s.ActorID
	case TasksOwned:
		return t.OwnerUserID == s.ActorID
	case TasksOfReportingEmployees:
		return owner.ReportingID == s.ActorID && owner.Role == RoleEmployee
	case TasksOfAdmins:
		return owner.Role == RoleAdmin
	default:
		return false
	}
}

// VisibleUsers returns the accounts actor may list. A superadmin sees every
// account except its own.
func VisibleUsers(actor Actor) (UserScope, error) {
	if !actor.Valid() {
		return UserScope{}, ErrUnknownActor
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return UserScope{Kind: UsersAllExceptSelf, ActorID: actor.ID}, nil
	case RoleAdmin:
		return UserScope{Kind: UsersSelfAndCreated, ActorID: actor.ID}, nil
	case RoleEmployee:
		return UserScope{Kind: UsersSelf, ActorID: actor.ID}, nil
	case RoleHR:
		return UserScope{}, ErrForbidden
	default:
		return UserScope{}, ErrForbidden
	}
}

// EmployeeDirectory returns the accounts listed on the admin employee screen.
func EmployeeDirectory(actor Actor) (UserScope, error) {
	if !actor.Valid() {
		return UserScope{}, ErrUnknownActor
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return UserScope{Kind: UsersAdminsAndEmployees, ActorID: actor.ID}, nil
	case RoleAdmin:
		return UserScope{Kind: UsersReportingEmployees, ActorID: actor.ID}, nil
	case RoleEmployee, RoleHR:
		return UserScope{}, ErrForbidden
	default:
		return UserScope{}, ErrForbidden
	}
}

// VisibleTasks returns the tasks actor may list.
func VisibleTasks(actor Actor) (TaskScope, error) {
	if !actor.Valid() {
		return TaskScope{}, ErrUnknownActor
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return TaskScope{Kind: TasksAll, ActorID: actor.ID}, nil
	case RoleAdmin:
		return TaskScope{Kind: TasksOwnedCreatedOrReporting, ActorID: actor.ID}, nil
	case RoleEmployee:
		return TaskScope{Kind: TasksOwned, ActorID: actor.ID}, nil
	case RoleHR:
		return TaskScope{}, ErrForbidden
	default:
		return TaskScope{}, ErrForbidden
	}
}

// EmployeeTasks returns the tasks shown on the admin task screens. A zero
// employeeID lists every employee the actor oversees.
func EmployeeTasks(actor Actor, employeeID int64) (TaskScope, error) {
	if !actor.Valid() {
		return TaskScope{}, ErrUnknownActor
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return TaskScope{Kind: TasksAll, ActorID: actor.ID, OwnerID: employeeID}, nil
	case RoleAdmin:
		return TaskScope{Kind: TasksOfReportingEmployees, ActorID: actor.ID, OwnerID: employeeID}, nil
	case RoleEmployee, RoleHR:
		return TaskScope{}, ErrForbidden
	default:
		return TaskScope{}, ErrForbidden
	}
}

// AdminTasks returns the tasks owned by admins; superadmin only.
func AdminTasks(actor Actor) (TaskScope, error) {
	if !actor.Valid() {
		return TaskScope{}, ErrUnknownActor
	}
	if actor.Role != RoleSuperAdmin {
		return TaskScope{}, ErrForbidden
	}
	return TaskScope{Kind: TasksOfAdmins, ActorID: actor.ID}, nil
}
