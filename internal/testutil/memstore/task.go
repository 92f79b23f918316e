package memstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
)

type taskRepository struct {
	*Store
}

func (s *Store) Tasks() task.TaskRepository {
	return taskRepository{s}
}

func (s *Store) taskWithJoins(t task.Task) task.Task {
	if o, ok := s.users[t.OwnerUserID]; ok {
		t.OwnerName = ptr(o.Name)
		t.OwnerEmail = ptr(o.Email)
	}
	if c, ok := s.users[t.CreatedBy]; ok {
		t.CreatedByName = ptr(c.Name)
	}
	if t.ProjectID != nil {
		if p, ok := s.projects[*t.ProjectID]; ok {
			t.ProjectName = ptr(p.Name)
		}
	}
	if t.SubProjectID != nil {
		if sp, ok := s.subProjects[*t.SubProjectID]; ok {
			t.SubProjectName = ptr(sp.Name)
		}
	}
	return t
}

func (r taskRepository) GetByID(_ context.Context, id int64) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return r.taskWithJoins(t), nil
}

func (r taskRepository) Create(_ context.Context, newTask task.Task) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newTask.ID = r.id()
	newTask.CreatedAt = r.now()
	newTask.UpdatedAt = newTask.CreatedAt
	r.tasks[newTask.ID] = newTask
	return r.taskWithJoins(newTask), nil
}

func (r taskRepository) Update(_ context.Context, t task.Task) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[t.ID]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	t.OwnerUserID = existing.OwnerUserID
	t.CreatedBy = existing.CreatedBy
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = r.now()
	r.tasks[t.ID] = t
	return r.taskWithJoins(t), nil
}

func (r taskRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return task.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r taskRepository) List(_ context.Context, scope access.TaskScope) ([]task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []task.Task{}
	for _, t := range r.tasks {
		owner, ok := r.users[t.OwnerUserID]
		if !ok {
			continue
		}
		if scope.Match(t.Ref(), owner.Owner()) {
			out = append(out, r.taskWithJoins(t))
		}
	}
	slices.SortFunc(out, func(a, b task.Task) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}
