package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	projectservice "github.com/taskmate/taskmate-backend-go/internal/service/project"
	"github.com/taskmate/taskmate-backend-go/internal/testutil/memstore"
)

type fixture struct {
	store    *memstore.Store
	svc      task.TaskService
	projects project.ProjectService

	root, alice, bob, erin, frank, gina, hana access.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	seed := func(id int64, name string, role access.Role, reportingID, createdBy int64) access.Actor {
		return store.SeedUser(user.User{
			ID:          id,
			Name:        name,
			Email:       name + "@5nance.com",
			Role:        role,
			ReportingID: reportingID,
			CreatedBy:   createdBy,
		}).Actor()
	}

	f := &fixture{store: store}
	f.root = seed(1, "root", access.RoleSuperAdmin, 0, 0)
	f.alice = seed(2, "alice", access.RoleAdmin, 1, 1)
	f.bob = seed(3, "bob", access.RoleAdmin, 1, 1)
	f.erin = seed(4, "erin", access.RoleEmployee, 2, 2)
	f.frank = seed(5, "frank", access.RoleEmployee, 3, 3)
	f.gina = seed(6, "gina", access.RoleEmployee, 2, 1)
	f.hana = seed(7, "hana", access.RoleHR, 1, 1)

	f.projects = projectservice.NewProjectService(store.Transactor(), store.Projects(), store.SubProjects())
	f.svc = NewTaskService(store.Tasks(), store.Users(), f.projects)
	return f
}

func (f *fixture) create(t *testing.T, actor access.Actor, owner *int64) task.TaskResponse {
	t.Helper()
	created, err := f.svc.Create(context.Background(), actor, task.CreateTaskRequest{
		Title:       "Write report",
		StartDate:   "2024-01-01T09:00:00Z",
		EndDate:     "2024-01-01T17:00:00Z",
		OwnerUserID: owner,
	})
	require.NoError(t, err)
	return created
}

func TestTaskService_EmployeeCannotDeleteSiblingTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	siblingTask := f.create(t, f.gina, nil)

	err := f.svc.Delete(ctx, f.erin, siblingTask.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	still, err := f.svc.Get(ctx, f.gina, siblingTask.ID)
	require.NoError(t, err)
	assert.Equal(t, siblingTask.ID, still.ID)
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	own := f.create(t, f.erin, nil)
	assert.Equal(t, f.erin.ID, own.OwnerUserID)
	assert.Equal(t, f.erin.ID, own.CreatedBy)
	assert.Equal(t, string(task.StatusPending), own.Status)

	onBehalf := f.create(t, f.alice, &f.erin.ID)
	assert.Equal(t, f.erin.ID, onBehalf.OwnerUserID)
	assert.Equal(t, f.alice.ID, onBehalf.CreatedBy)

	_, err := f.svc.Create(ctx, f.alice, task.CreateTaskRequest{
		Title: "x", StartDate: "2024-01-01T09:00:00Z", EndDate: "2024-01-01T10:00:00Z", OwnerUserID: &f.frank.ID,
	})
	assert.ErrorIs(t, err, access.ErrForbidden)

	_, err = f.svc.Create(ctx, f.erin, task.CreateTaskRequest{
		Title: "x", StartDate: "2024-01-01T09:00:00Z", EndDate: "2024-01-01T10:00:00Z", OwnerUserID: &f.gina.ID,
	})
	assert.ErrorIs(t, err, access.ErrForbidden)

	missing := int64(404)
	_, err = f.svc.Create(ctx, f.root, task.CreateTaskRequest{
		Title: "x", StartDate: "2024-01-01T09:00:00Z", EndDate: "2024-01-01T10:00:00Z", OwnerUserID: &missing,
	})
	assert.ErrorIs(t, err, task.ErrOwnerNotFound)

	_, err = f.svc.Create(ctx, f.erin, task.CreateTaskRequest{
		Title: "x", StartDate: "2024-01-02T09:00:00Z", EndDate: "2024-01-01T10:00:00Z",
	})
	assert.Error(t, err)
}

func TestTaskService_CreateWithProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p, err := f.projects.CreateProject(ctx, f.alice, project.CreateProjectRequest{Name: "Payments"})
	require.NoError(t, err)
	sp, err := f.projects.CreateSubProject(ctx, f.alice, project.CreateSubProjectRequest{ProjectID: p.ID, Name: "API"})
	require.NoError(t, err)

	created, err := f.svc.Create(ctx, f.erin, task.CreateTaskRequest{
		Title:        "Endpoint",
		StartDate:    "2024-01-01T09:00:00Z",
		EndDate:      "2024-01-01T17:00:00Z",
		ProjectID:    &p.ID,
		SubProjectID: &sp.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.ProjectName)
	assert.Equal(t, "Payments", *created.ProjectName)

	missing := int64(999)
	_, err = f.svc.Create(ctx, f.erin, task.CreateTaskRequest{
		Title: "x", StartDate: "2024-01-01T09:00:00Z", EndDate: "2024-01-01T10:00:00Z", ProjectID: &missing,
	})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestTaskService_Access(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	erinTask := f.create(t, f.erin, nil)
	ginaTask := f.create(t, f.gina, nil)
	frankTask := f.create(t, f.frank, nil)

	_, err := f.svc.Get(ctx, f.alice, erinTask.ID)
	assert.NoError(t, err, "owner created by admin")

	_, err = f.svc.Get(ctx, f.alice, ginaTask.ID)
	assert.ErrorIs(t, err, access.ErrForbidden, "reporting only grants delete")

	assert.NoError(t, f.svc.Delete(ctx, f.alice, ginaTask.ID))

	_, err = f.svc.Get(ctx, f.alice, frankTask.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	_, err = f.svc.Get(ctx, f.hana, erinTask.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	_, err = f.svc.Get(ctx, f.root, 999)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskService_OwnerResolvedAtMostOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	erinTask := f.create(t, f.erin, nil)

	before := f.store.UserLookups
	_, err := f.svc.Get(ctx, f.erin, erinTask.ID)
	require.NoError(t, err)
	assert.Equal(t, before, f.store.UserLookups, "direct ownership needs no lookup")

	_, err = f.svc.Get(ctx, f.alice, erinTask.ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, f.store.UserLookups)
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	erinTask := f.create(t, f.erin, nil)

	status := string(task.StatusInProgress)
	updated, err := f.svc.Update(ctx, f.alice, erinTask.ID, task.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)

	_, err = f.svc.Update(ctx, f.bob, erinTask.ID, task.UpdateTaskRequest{Status: &status})
	assert.ErrorIs(t, err, access.ErrForbidden)

	bad := "DONE"
	_, err = f.svc.Update(ctx, f.erin, erinTask.ID, task.UpdateTaskRequest{Status: &bad})
	assert.Error(t, err)

	early := "2023-12-31T00:00:00Z"
	_, err = f.svc.Update(ctx, f.erin, erinTask.ID, task.UpdateTaskRequest{EndDate: &early})
	assert.Error(t, err)
}

func TestTaskService_Listings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	erinTask := f.create(t, f.erin, nil)
	ginaTask := f.create(t, f.gina, nil)
	f.create(t, f.frank, nil)
	bobTask := f.create(t, f.bob, nil)

	ids := func(tasks []task.TaskResponse) []int64 {
		var out []int64
		for _, tk := range tasks {
			out = append(out, tk.ID)
		}
		return out
	}

	visible, err := f.svc.List(ctx, f.alice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{erinTask.ID, ginaTask.ID}, ids(visible))

	mine, err := f.svc.List(ctx, f.erin)
	require.NoError(t, err)
	assert.Equal(t, []int64{erinTask.ID}, ids(mine))

	all, err := f.svc.List(ctx, f.root)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = f.svc.List(ctx, f.hana)
	assert.ErrorIs(t, err, access.ErrForbidden)

	reporting, err := f.svc.ListAllEmployeeTasks(ctx, f.alice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{erinTask.ID, ginaTask.ID}, ids(reporting))

	one, err := f.svc.ListEmployeeTasks(ctx, f.alice, f.gina.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{ginaTask.ID}, ids(one))

	_, err = f.svc.ListEmployeeTasks(ctx, f.alice, f.frank.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	admins, err := f.svc.ListAdminTasks(ctx, f.root)
	require.NoError(t, err)
	assert.Equal(t, []int64{bobTask.ID}, ids(admins))

	_, err = f.svc.ListAdminTasks(ctx, f.alice)
	assert.ErrorIs(t, err, access.ErrForbidden)
}
