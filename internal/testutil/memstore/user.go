package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
)

type userRepository struct {
	*Store
}

func (s *Store) Users() user.UserRepository {
	return userRepository{s}
}

// SeedUser inserts u as is, assigning an id when missing.
func (s *Store) SeedUser(u user.User) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.id()
	} else if u.ID > s.nextID {
		s.nextID = u.ID
	}
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = u
	return u
}

func (s *Store) withJoins(u user.User) user.User {
	if rep, ok := s.users[u.ReportingID]; ok {
		u.ReportingName = ptr(rep.Name)
	}
	if cre, ok := s.users[u.CreatedBy]; ok {
		u.CreatedByName = ptr(cre.Name)
	}
	return u
}

func (r userRepository) GetByID(_ context.Context, id int64) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.UserLookups++
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return r.withJoins(u), nil
}

func (r userRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return r.withJoins(u), nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r userRepository) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.emailTaken(email, excludeID), nil
}

func (r userRepository) emailTaken(email string, excludeID int64) bool {
	for _, u := range r.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r userRepository) Create(_ context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(newUser.Email, 0) {
		return user.User{}, user.ErrUserEmailExists
	}
	newUser.ID = r.id()
	newUser.CreatedAt = r.now()
	newUser.UpdatedAt = newUser.CreatedAt
	r.users[newUser.ID] = newUser
	return r.withJoins(newUser), nil
}

func (r userRepository) Update(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[u.ID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return user.User{}, user.ErrUserEmailExists
	}
	existing.Name = u.Name
	existing.Email = u.Email
	existing.Mobile = u.Mobile
	existing.UpdatedBy = u.UpdatedBy
	existing.UpdatedAt = r.now()
	r.users[u.ID] = existing
	return r.withJoins(existing), nil
}

func (r userRepository) modify(id int64, fn func(*user.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	fn(&u)
	u.UpdatedAt = r.now()
	r.users[id] = u
	return nil
}

func (r userRepository) UpdatePassword(_ context.Context, id int64, passwordHash string, updatedBy int64) error {
	return r.modify(id, func(u *user.User) {
		u.PasswordHash = passwordHash
		u.UpdatedBy = &updatedBy
	})
}

func (r userRepository) UpdateMobile(_ context.Context, id int64, mobile string) error {
	return r.modify(id, func(u *user.User) { u.Mobile = &mobile })
}

func (r userRepository) UpdateProfileImage(_ context.Context, id int64, url string) error {
	return r.modify(id, func(u *user.User) { u.ProfileImage = &url })
}

func (r userRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	for taskID, t := range r.tasks {
		if t.OwnerUserID == id {
			delete(r.tasks, taskID)
		}
	}
	for leaveID, lr := range r.leaveRequests {
		if lr.ApplicantUserID == id {
			delete(r.leaveRequests, leaveID)
		}
	}
	return nil
}

func (r userRepository) CountSubordinates(_ context.Context, id int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, u := range r.users {
		if u.ID != id && (u.ReportingID == id || u.CreatedBy == id) {
			n++
		}
	}
	return n, nil
}

func (r userRepository) List(_ context.Context, scope access.UserScope) ([]user.User, error) {
	return r.filter(func(u user.User) bool { return scope.Match(u.Owner()) }), nil
}

func (r userRepository) ListByRole(_ context.Context, role access.Role) ([]user.User, error) {
	return r.filter(func(u user.User) bool { return u.Role == role }), nil
}

func (r userRepository) filter(keep func(user.User) bool) []user.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []user.User{}
	for _, u := range r.users {
		if keep(u) {
			out = append(out, r.withJoins(u))
		}
	}
	slices.SortFunc(out, func(a, b user.User) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return out
}
