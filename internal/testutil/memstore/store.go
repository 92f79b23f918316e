// Package memstore provides in-memory repositories for service tests. They
// evaluate access scopes with the same Match predicates the SQL mirrors.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
)

type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	nextID int64
	now    func() time.Time

	users         map[int64]user.User
	tasks         map[int64]task.Task
	projects      map[int64]project.Project
	subProjects   map[int64]project.SubProject
	leaveTypes    map[int64]leave.LeaveType
	leaveRequests map[int64]leave.LeaveRequest

	// UserLookups counts GetByID calls on the user repository.
	UserLookups int
}

func New() *Store {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int64
	return &Store{
		users:         make(map[int64]user.User),
		tasks:         make(map[int64]task.Task),
		projects:      make(map[int64]project.Project),
		subProjects:   make(map[int64]project.SubProject),
		leaveTypes:    make(map[int64]leave.LeaveType),
		leaveRequests: make(map[int64]leave.LeaveRequest),
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

type transactor struct {
	mu *sync.Mutex
}

// WithinTransaction serializes fn against other transactions. Writes are not
// rolled back on error.
func (t transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

func (s *Store) Transactor() database.Transactor {
	return transactor{mu: &s.txMu}
}

func ptr[T any](v T) *T {
	return &v
}
