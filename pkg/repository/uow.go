package repository

import (
	"context"
	"slices"
)

// UnitOfWork defines the transaction boundary of a transfer.
//
// Do acquires exclusive write access to every account in accountIDs, then runs
// fn with a repository bound to that scope. When fn returns nil the changes are
// committed; when it returns an error (or panics) they are rolled back and the
// error is returned as is. Access is released on every exit path.
//
// Units of work over disjoint account sets must not block each other; units
// sharing an account serialize on it.
type UnitOfWork interface {
	Do(ctx context.Context, accountIDs []string, fn func(repo AccountRepository) error) error
}

// LockOrder returns the ids sorted and de-duplicated. Implementations acquire
// account locks in this order so that two units of work never wait on each
// other in a cycle.
func LockOrder(ids []string) []string {
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	return slices.Compact(ordered)
}
