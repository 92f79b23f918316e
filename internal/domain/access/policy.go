package access

// CanAccessUser decides whether actor may read or edit the target account.
func CanAccessUser(actor Actor, target OwnerContext) bool {
	if !actor.Valid() || target.ID == 0 {
		return false
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return target.ID == actor.ID || target.CreatedBy == actor.ID
	case RoleEmployee:
		return target.ID == actor.ID
	case RoleHR:
		return false
	default:
		return false
	}
}

// CanDeleteUser decides whether actor may remove the target account.
func CanDeleteUser(actor Actor, target OwnerContext) bool {
	if !actor.Valid() || target.ID == 0 {
		return false
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return target.Role == RoleEmployee && target.CreatedBy == actor.ID
	case RoleEmployee, RoleHR:
		return false
	default:
		return false
	}
}

// CanManageSubordinate decides whether actor may look up or reset the
// password of target.
func CanManageSubordinate(actor Actor, target OwnerContext) bool {
	if !actor.Valid() || target.ID == 0 {
		return false
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return target.Role == RoleEmployee && target.ReportingID == actor.ID
	case RoleEmployee, RoleHR:
		return false
	default:
		return false
	}
}

// taskDirect evaluates the task checks that need no owner row. decided is
// false when the answer depends on the owner.
func taskDirect(actor Actor, task TaskRef) (allowed, decided bool) {
	if !actor.Valid() || task.OwnerUserID == 0 {
		return false, true
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return true, true
	case RoleAdmin:
		if task.OwnerUserID == actor.ID || task.CreatedBy == actor.ID {
			return true, true
		}
		return false, false
	case RoleEmployee:
		return task.OwnerUserID == actor.ID, true
	case RoleHR:
		return false, true
	default:
		return false, true
	}
}

// CanAccessTask decides whether actor may read or edit task, whose owner
// account is owner.
func CanAccessTask(actor Actor, task TaskRef, owner OwnerContext) bool {
	if allowed, decided := taskDirect(actor, task); decided {
		return allowed
	}
	return owner.ID == task.OwnerUserID && owner.CreatedBy == actor.ID
}

// CanDeleteTask decides whether actor may remove task. Admins additionally
// reach tasks of employees placed under them by a superadmin.
func CanDeleteTask(actor Actor, task TaskRef, owner OwnerContext) bool {
	if allowed, decided := taskDirect(actor, task); decided {
		return allowed
	}
	if owner.ID != task.OwnerUserID {
		return false
	}
	if owner.CreatedBy == actor.ID {
		return true
	}
	return owner.ReportingID == actor.ID && owner.Role == RoleEmployee
}

// CanRecordTaskFor decides whether actor may create a task owned by owner.
func CanRecordTaskFor(actor Actor, owner OwnerContext) bool {
	if !actor.Valid() || owner.ID == 0 {
		return false
	}
	if owner.ID == actor.ID {
		return true
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return owner.Role == RoleEmployee &&
			(owner.CreatedBy == actor.ID || owner.ReportingID == actor.ID)
	case RoleEmployee, RoleHR:
		return false
	default:
		return false
	}
}

// CanReviewLeaves reports whether actor works the leave approval queue.
func CanReviewLeaves(actor Actor) bool {
	if !actor.Valid() {
		return false
	}
	switch actor.Role {
	case RoleSuperAdmin, RoleHR:
		return true
	case RoleAdmin, RoleEmployee:
		return false
	default:
		return false
	}
}

// CanDecideLeave reports whether actor may approve or reject a request
// filed by applicantID. Reviewers never decide their own requests.
func CanDecideLeave(actor Actor, applicantID int64) bool {
	return CanReviewLeaves(actor) && applicantID != actor.ID
}

// CanCreateProject reports whether actor may add a project.
func CanCreateProject(actor Actor) bool {
	return actor.Valid() && actor.Role == RoleAdmin
}

// CanCreateSubProject reports whether actor may add a sub project.
func CanCreateSubProject(actor Actor) bool {
	return actor.Valid() && actor.Role.In(RoleAdmin, RoleEmployee)
}

// CanDeactivateProject reports whether actor may retire a project created
// by createdBy.
func CanDeactivateProject(actor Actor, createdBy int64) bool {
	if !actor.Valid() {
		return false
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return createdBy == actor.ID
	case RoleEmployee, RoleHR:
		return false
	default:
		return false
	}
}

// AssignableReportingID computes the reporting id of an account created by
// creator with role newRole. A superadmin placing an employee names the
// superior explicitly through requested.
func AssignableReportingID(creator Actor, newRole Role, requested int64) (int64, error) {
	if !creator.Valid() {
		return NoSuperior, ErrUnknownActor
	}
	if !newRole.Valid() {
		return NoSuperior, ErrPermissionDenied
	}
	switch creator.Role {
	case RoleSuperAdmin:
		switch newRole {
		case RoleAdmin, RoleHR:
			return creator.ID, nil
		case RoleEmployee:
			return requested, nil
		case RoleSuperAdmin:
			return NoSuperior, ErrPermissionDenied
		default:
			return NoSuperior, ErrPermissionDenied
		}
	case RoleAdmin:
		if newRole == RoleEmployee {
			return creator.ID, nil
		}
		return NoSuperior, ErrPermissionDenied
	case RoleEmployee, RoleHR:
		return NoSuperior, ErrPermissionDenied
	default:
		return NoSuperior, ErrPermissionDenied
	}
}
