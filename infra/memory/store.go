// Package memory provides an in-process account store.
//
// Every account has its own lock. A unit of work takes the locks of the
// existing accounts it names in repository.LockOrder, stages its writes, and applies
// them only when its callback succeeds, so transfers over disjoint accounts
// run in parallel while transfers sharing an account serialize on it.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/amirasaad/banktransfer/pkg/domain/account"
	"github.com/amirasaad/banktransfer/pkg/repository"
	"github.com/shopspring/decimal"
)

// Store keeps balances in memory. The zero value is not usable; call NewStore.
type Store struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
	locks    map[string]*sync.Mutex
}

var _ repository.UnitOfWork = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		balances: make(map[string]decimal.Decimal),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Put creates the account or overwrites its balance.
func (s *Store) Put(id string, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[id] = balance
}

// FindByID returns the committed state of an account.
func (s *Store) FindByID(_ context.Context, id string) (*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	balance, ok := s.balances[id]
	if !ok {
		return nil, &domain.AccountNotFoundError{ID: id}
	}
	return account.New(id, balance), nil
}

// Balances returns a copy of every committed balance.
func (s *Store) Balances() map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]decimal.Decimal, len(s.balances))
	for id, b := range s.balances {
		out[id] = b
	}
	return out
}

// Do implements repository.UnitOfWork.
func (s *Store) Do(
	ctx context.Context,
	accountIDs []string,
	fn func(repo repository.AccountRepository) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ids := repository.LockOrder(accountIDs)
	held, unlock := s.lock(ids)
	defer unlock()

	u := &unit{
		store:  s,
		staged: make(map[string]decimal.Decimal, len(held)),
		locked: make(map[string]struct{}, len(held)),
	}
	for _, id := range held {
		u.locked[id] = struct{}{}
	}

	if err := fn(u); err != nil {
		return err
	}
	s.commit(u.staged)
	return nil
}

// lock takes the locks of the ids that name existing accounts and returns
// those ids. Unknown ids get no lock; the unit fails when it looks them up.
func (s *Store) lock(ids []string) (held []string, unlock func()) {
	mutexes := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		l, ok := s.lockFor(id)
		if !ok {
			continue
		}
		l.Lock()
		mutexes = append(mutexes, l)
		held = append(held, id)
	}
	return held, func() {
		for i := len(mutexes) - 1; i >= 0; i-- {
			mutexes[i].Unlock()
		}
	}
}

func (s *Store) lockFor(id string) (*sync.Mutex, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.balances[id]; !ok {
		return nil, false
	}
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l, true
}

func (s *Store) commit(staged map[string]decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, b := range staged {
		s.balances[id] = b
	}
}

// unit is the repository handed to a unit of work callback.
type unit struct {
	store  *Store
	staged map[string]decimal.Decimal
	locked map[string]struct{}
}

func (u *unit) FindByID(ctx context.Context, id string) (*account.Account, error) {
	if b, ok := u.staged[id]; ok {
		return account.New(id, b), nil
	}
	return u.store.FindByID(ctx, id)
}

func (u *unit) UpdateBalance(ctx context.Context, a *account.Account) error {
	if _, ok := u.locked[a.ID]; !ok {
		return fmt.Errorf("memory: account %s is not held by this unit of work", a.ID)
	}
	if _, err := u.store.FindByID(ctx, a.ID); err != nil {
		return err
	}
	u.staged[a.ID] = a.Balance
	return nil
}
