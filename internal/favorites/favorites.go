// Package favorites persists the set of culture item ids the user has saved.
package favorites

import (
	"context"
	"fmt"
	"slices"
)

// Store is a durable set of favorited culture item ids. Implementations
// serialize writes through their storage engine; Add and Remove are idempotent.
type Store interface {
	AllIDs(ctx context.Context) ([]string, error)
	IsFavorite(ctx context.Context, id string) (bool, error)
	Add(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	// Toggle flips the state of id and returns the new state.
	Toggle(ctx context.Context, id string) (bool, error)
	Close() error
}

// PersistenceError reports a failed round trip to the backing store.
type PersistenceError struct {
	Op  string
	ID  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("favorites %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("favorites %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func wrap(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, ID: id, Err: err}
}

// sortedIDs returns ids sorted ascending, never nil.
func sortedIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	slices.Sort(ids)
	return ids
}
