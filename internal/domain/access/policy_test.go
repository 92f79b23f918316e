package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A small org chart reused across the tests:
//
//	root (superadmin, 1)
//	├── alice (admin, 2)   created by root
//	│   └── erin (employee, 4)  created by alice
//	├── bob (admin, 3)     created by root
//	│   └── frank (employee, 5) created by bob
//	├── gina (employee, 6) created by root, reporting to alice
//	└── hana (hr, 7)       created by root
var (
	root  = OwnerContext{ID: 1, Role: RoleSuperAdmin}
	alice = OwnerContext{ID: 2, Role: RoleAdmin, CreatedBy: 1, ReportingID: 1}
	bob   = OwnerContext{ID: 3, Role: RoleAdmin, CreatedBy: 1, ReportingID: 1}
	erin  = OwnerContext{ID: 4, Role: RoleEmployee, CreatedBy: 2, ReportingID: 2}
	frank = OwnerContext{ID: 5, Role: RoleEmployee, CreatedBy: 3, ReportingID: 3}
	gina  = OwnerContext{ID: 6, Role: RoleEmployee, CreatedBy: 1, ReportingID: 2}
	hana  = OwnerContext{ID: 7, Role: RoleHR, CreatedBy: 1, ReportingID: 1}

	everyone = []OwnerContext{root, alice, bob, erin, frank, gina, hana}
)

func actorOf(u OwnerContext) Actor {
	return Actor{ID: u.ID, Role: u.Role, ReportingID: u.ReportingID}
}

func TestCanAccessUser(t *testing.T) {
	tests := []struct {
		name   string
		actor  OwnerContext
		target OwnerContext
		want   bool
	}{
		{"superadmin reaches admin", root, alice, true},
		{"superadmin reaches hr", root, hana, true},
		{"admin reaches self", alice, alice, true},
		{"admin reaches created employee", alice, erin, true},
		{"admin cannot reach other admin", alice, bob, false},
		{"admin cannot reach other admin's employee", alice, frank, false},
		{"admin cannot reach employee placed by superadmin", alice, gina, false},
		{"employee reaches self", erin, erin, true},
		{"employee cannot reach sibling", erin, gina, false},
		{"employee cannot reach superior", erin, alice, false},
		{"hr cannot reach anyone", hana, erin, false},
		{"hr cannot reach self", hana, hana, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessUser(actorOf(tt.actor), tt.target))
		})
	}
}

func TestCanAccessUser_ClosedWorld(t *testing.T) {
	unknown := Actor{ID: 99, Role: Role(42)}
	for _, target := range everyone {
		assert.False(t, CanAccessUser(unknown, target))
		assert.False(t, CanDeleteUser(unknown, target))
		assert.False(t, CanManageSubordinate(unknown, target))
	}

	assert.False(t, CanAccessUser(Actor{}, erin), "missing actor")
	assert.False(t, CanAccessUser(actorOf(root), OwnerContext{}), "missing target")
}

func TestCanDeleteUser(t *testing.T) {
	tests := []struct {
		name   string
		actor  OwnerContext
		target OwnerContext
		want   bool
	}{
		{"superadmin deletes admin", root, bob, true},
		{"admin deletes created employee", alice, erin, true},
		{"admin cannot delete self", alice, alice, false},
		{"admin cannot delete other admin", alice, bob, false},
		{"admin cannot delete reporting employee it did not create", alice, gina, false},
		{"employee cannot delete self", erin, erin, false},
		{"hr cannot delete", hana, erin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDeleteUser(actorOf(tt.actor), tt.target))
		})
	}
}

func TestCanManageSubordinate(t *testing.T) {
	assert.True(t, CanManageSubordinate(actorOf(root), alice))
	assert.True(t, CanManageSubordinate(actorOf(alice), erin))
	assert.True(t, CanManageSubordinate(actorOf(alice), gina))
	assert.False(t, CanManageSubordinate(actorOf(alice), frank))
	assert.False(t, CanManageSubordinate(actorOf(alice), bob))
	assert.False(t, CanManageSubordinate(actorOf(erin), erin))
	assert.False(t, CanManageSubordinate(actorOf(hana), erin))
}

func TestCanAccessTask(t *testing.T) {
	tests := []struct {
		name  string
		actor OwnerContext
		task  TaskRef
		owner OwnerContext
		want  bool
	}{
		{"superadmin any task", root, TaskRef{OwnerUserID: frank.ID, CreatedBy: frank.ID}, frank, true},
		{"admin own task", alice, TaskRef{OwnerUserID: alice.ID, CreatedBy: alice.ID}, alice, true},
		{"admin task it created for someone", alice, TaskRef{OwnerUserID: gina.ID, CreatedBy: alice.ID}, gina, true},
		{"admin task of created employee", alice, TaskRef{OwnerUserID: erin.ID, CreatedBy: erin.ID}, erin, true},
		{"admin task of other admin's employee", alice, TaskRef{OwnerUserID: frank.ID, CreatedBy: frank.ID}, frank, false},
		{"admin task of reporting employee it did not create", alice, TaskRef{OwnerUserID: gina.ID, CreatedBy: gina.ID}, gina, false},
		{"employee own task", erin, TaskRef{OwnerUserID: erin.ID, CreatedBy: alice.ID}, erin, true},
		{"employee task it created for another", erin, TaskRef{OwnerUserID: gina.ID, CreatedBy: erin.ID}, gina, false},
		{"hr own task", hana, TaskRef{OwnerUserID: hana.ID, CreatedBy: hana.ID}, hana, false},
		{"unknown role", OwnerContext{ID: 9, Role: Role(0)}, TaskRef{OwnerUserID: 9, CreatedBy: 9}, OwnerContext{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessTask(actorOf(tt.actor), tt.task, tt.owner))
		})
	}
}

func TestCanDeleteTask(t *testing.T) {
	tests := []struct {
		name  string
		actor OwnerContext
		task  TaskRef
		owner OwnerContext
		want  bool
	}{
		{"superadmin", root, TaskRef{OwnerUserID: erin.ID, CreatedBy: erin.ID}, erin, true},
		{"admin, owner created by admin", alice, TaskRef{OwnerUserID: erin.ID, CreatedBy: erin.ID}, erin, true},
		{"admin, owner reports to admin", alice, TaskRef{OwnerUserID: gina.ID, CreatedBy: gina.ID}, gina, true},
		{"admin, other admin's employee", alice, TaskRef{OwnerUserID: frank.ID, CreatedBy: frank.ID}, frank, false},
		{"admin, other admin", alice, TaskRef{OwnerUserID: bob.ID, CreatedBy: bob.ID}, bob, false},
		{"employee own", erin, TaskRef{OwnerUserID: erin.ID, CreatedBy: erin.ID}, erin, true},
		{"employee sibling", erin, TaskRef{OwnerUserID: gina.ID, CreatedBy: gina.ID}, gina, false},
		{"hr", hana, TaskRef{OwnerUserID: erin.ID, CreatedBy: erin.ID}, erin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDeleteTask(actorOf(tt.actor), tt.task, tt.owner))
		})
	}
}

func TestCanDeleteTask_ReportingNeedsEmployeeOwner(t *testing.T) {
	// an admin reporting to another admin is not reachable through reporting
	nested := OwnerContext{ID: 8, Role: RoleAdmin, CreatedBy: root.ID, ReportingID: alice.ID}
	task := TaskRef{OwnerUserID: nested.ID, CreatedBy: nested.ID}

	assert.False(t, CanDeleteTask(actorOf(alice), task, nested))
}

func TestCanRecordTaskFor(t *testing.T) {
	assert.True(t, CanRecordTaskFor(actorOf(erin), erin))
	assert.False(t, CanRecordTaskFor(actorOf(erin), gina))
	assert.True(t, CanRecordTaskFor(actorOf(alice), erin))
	assert.True(t, CanRecordTaskFor(actorOf(alice), gina))
	assert.False(t, CanRecordTaskFor(actorOf(alice), frank))
	assert.False(t, CanRecordTaskFor(actorOf(alice), bob))
	assert.True(t, CanRecordTaskFor(actorOf(root), frank))
	assert.False(t, CanRecordTaskFor(actorOf(hana), erin))
}

func TestLeaveReview(t *testing.T) {
	assert.True(t, CanReviewLeaves(actorOf(root)))
	assert.True(t, CanReviewLeaves(actorOf(hana)))
	assert.False(t, CanReviewLeaves(actorOf(alice)))
	assert.False(t, CanReviewLeaves(actorOf(erin)))

	assert.True(t, CanDecideLeave(actorOf(hana), erin.ID))
	assert.False(t, CanDecideLeave(actorOf(hana), hana.ID), "own request")
	assert.False(t, CanDecideLeave(actorOf(alice), erin.ID))
}

func TestProjectRules(t *testing.T) {
	assert.True(t, CanCreateProject(actorOf(alice)))
	assert.False(t, CanCreateProject(actorOf(root)))
	assert.False(t, CanCreateProject(actorOf(erin)))

	assert.True(t, CanCreateSubProject(actorOf(alice)))
	assert.True(t, CanCreateSubProject(actorOf(erin)))
	assert.False(t, CanCreateSubProject(actorOf(hana)))

	assert.True(t, CanDeactivateProject(actorOf(root), alice.ID))
	assert.True(t, CanDeactivateProject(actorOf(alice), alice.ID))
	assert.False(t, CanDeactivateProject(actorOf(bob), alice.ID))
	assert.False(t, CanDeactivateProject(actorOf(erin), erin.ID))
}

func TestAssignableReportingID(t *testing.T) {
	tests := []struct {
		name      string
		creator   OwnerContext
		newRole   Role
		requested int64
		want      int64
		wantErr   error
	}{
		{"superadmin creates admin", root, RoleAdmin, 0, root.ID, nil},
		{"superadmin creates admin ignores requested", root, RoleAdmin, alice.ID, root.ID, nil},
		{"superadmin creates hr", root, RoleHR, 0, root.ID, nil},
		{"superadmin places employee", root, RoleEmployee, alice.ID, alice.ID, nil},
		{"superadmin places employee without superior", root, RoleEmployee, 0, NoSuperior, nil},
		{"superadmin cannot create superadmin", root, RoleSuperAdmin, 0, NoSuperior, ErrPermissionDenied},
		{"admin creates employee", alice, RoleEmployee, bob.ID, alice.ID, nil},
		{"admin cannot create admin", alice, RoleAdmin, 0, NoSuperior, ErrPermissionDenied},
		{"admin cannot create hr", alice, RoleHR, 0, NoSuperior, ErrPermissionDenied},
		{"employee cannot create", erin, RoleEmployee, 0, NoSuperior, ErrPermissionDenied},
		{"hr cannot create", hana, RoleEmployee, 0, NoSuperior, ErrPermissionDenied},
		{"unknown new role", root, Role(9), 0, NoSuperior, ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssignableReportingID(actorOf(tt.creator), tt.newRole, tt.requested)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := AssignableReportingID(Actor{}, RoleEmployee, 0)
	assert.ErrorIs(t, err, ErrUnknownActor)
}

func TestAssignableRoles(t *testing.T) {
	assert.Equal(t, []Role{RoleAdmin, RoleEmployee, RoleHR}, AssignableRoles(actorOf(root)))
	assert.Equal(t, []Role{RoleEmployee}, AssignableRoles(actorOf(alice)))
	assert.Empty(t, AssignableRoles(actorOf(erin)))
	assert.Empty(t, AssignableRoles(actorOf(hana)))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" SuperAdmin ")
	assert.True(t, ok)
	assert.Equal(t, RoleSuperAdmin, r)

	_, ok = ParseRole("owner")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Role(12).String())
	assert.Equal(t, "hr", RoleHR.String())
}
