package access

import (
	"slices"
	"strings"
)

// Role is the closed set of account roles. The numeric values match the
// role ids stored in the roles table.
type Role int

const (
	RoleSuperAdmin Role = 1
	RoleAdmin      Role = 2
	RoleEmployee   Role = 3
	RoleHR         Role = 4
)

// NoSuperior is the reporting id of an account that reports to nobody.
const NoSuperior int64 = 0

var roleNames = map[Role]string{
	RoleSuperAdmin: "superadmin",
	RoleAdmin:      "admin",
	RoleEmployee:   "employee",
	RoleHR:         "hr",
}

// Roles returns every known role ordered by id.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleEmployee, RoleHR}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole maps a role name, case-insensitively, to a Role.
func ParseRole(name string) (Role, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for role, n := range roleNames {
		if n == name {
			return role, true
		}
	}
	return 0, false
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	return slices.Contains(roles, r)
}

// AssignableRoles lists the roles an actor may hand out when provisioning
// an account.
func AssignableRoles(actor Actor) []Role {
	switch actor.Role {
	case RoleSuperAdmin:
		return []Role{RoleAdmin, RoleEmployee, RoleHR}
	case RoleAdmin:
		return []Role{RoleEmployee}
	case RoleEmployee, RoleHR:
		return nil
	default:
		return nil
	}
}
