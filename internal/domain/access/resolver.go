package access

import (
	"context"
	"errors"
)

// ErrOwnerNotFound is returned by an OwnerLookup when the account is gone.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerLookup loads the access-relevant fields of one account.
type OwnerLookup func(ctx context.Context, userID int64) (OwnerContext, error)

// OwnerResolver memoizes owner lookups for the lifetime of one request.
// It is not safe for concurrent use.
type OwnerResolver struct {
	lookup OwnerLookup
	cache  map[int64]OwnerContext
}

func NewOwnerResolver(lookup OwnerLookup) *OwnerResolver {
	return &OwnerResolver{lookup: lookup, cache: make(map[int64]OwnerContext)}
}

// Resolve returns the owner context of userID, hitting the store at most once.
func (r *OwnerResolver) Resolve(ctx context.Context, userID int64) (OwnerContext, error) {
	if owner, ok := r.cache[userID]; ok {
		return owner, nil
	}
	owner, err := r.lookup(ctx, userID)
	if err != nil {
		return OwnerContext{}, err
	}
	r.cache[userID] = owner
	return owner, nil
}

// AuthorizeTask evaluates rule against task, resolving the owner only when
// the direct ownership checks leave the answer open. A vanished owner denies.
func (r *OwnerResolver) AuthorizeTask(ctx context.Context, actor Actor, task TaskRef, rule func(Actor, TaskRef, OwnerContext) bool) (bool, error) {
	if allowed, decided := taskDirect(actor, task); decided {
		return allowed, nil
	}
	owner, err := r.Resolve(ctx, task.OwnerUserID)
	if errors.Is(err, ErrOwnerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return rule(actor, task, owner), nil
}
