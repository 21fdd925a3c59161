package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirasaad/banktransfer/infra/memory"
	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/amirasaad/banktransfer/pkg/domain/account"
	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/amirasaad/banktransfer/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memory.Store {
	s := memory.NewStore()
	s.Put("A123", money.Must("1000.00"))
	s.Put("C456", money.Must("1000.00"))
	s.Put("E789", money.Must("50.00"))
	s.Put("G012", money.Must("50.00"))
	return s
}

func TestStore_FindByID(t *testing.T) {
	t.Parallel()
	s := newStore()

	a, err := s.FindByID(context.Background(), "A123")
	require.NoError(t, err)
	assert.Equal(t, "A123", a.ID)
	assert.Equal(t, "1000.00", money.Format(a.Balance))

	_, err = s.FindByID(context.Background(), "Z999")
	var notFound *domain.AccountNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Z999", notFound.ID)
}

func TestStore_DoCommits(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()

	err := s.Do(ctx, []string{"A123", "C456"}, func(repo repository.AccountRepository) error {
		a, err := repo.FindByID(ctx, "A123")
		require.NoError(t, err)
		a.Credit(money.Must("5.00"))
		require.NoError(t, repo.UpdateBalance(ctx, a))

		// Reads inside the unit see its own writes; readers outside do not.
		again, err := repo.FindByID(ctx, "A123")
		require.NoError(t, err)
		assert.Equal(t, "1005.00", money.Format(again.Balance))
		assert.Equal(t, "1000.00", money.Format(s.Balances()["A123"]))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "1005.00", money.Format(s.Balances()["A123"]))
}

func TestStore_DoRollsBackOnError(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := s.Do(ctx, []string{"A123", "C456"}, func(repo repository.AccountRepository) error {
		a, _ := repo.FindByID(ctx, "A123")
		a.Credit(money.Must("5.00"))
		require.NoError(t, repo.UpdateBalance(ctx, a))
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, "1000.00", money.Format(s.Balances()["A123"]))
}

func TestStore_DoRollsBackOnPanic(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.Do(ctx, []string{"A123"}, func(repo repository.AccountRepository) error {
			a, _ := repo.FindByID(ctx, "A123")
			a.Credit(money.Must("5.00"))
			_ = repo.UpdateBalance(ctx, a)
			panic("boom")
		})
	})
	assert.Equal(t, "1000.00", money.Format(s.Balances()["A123"]))

	// The lock was released.
	require.NoError(t, s.Do(ctx, []string{"A123"}, func(repository.AccountRepository) error { return nil }))
}

func TestStore_UpdateBalanceOutsideUnit(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()

	err := s.Do(ctx, []string{"A123"}, func(repo repository.AccountRepository) error {
		c, err := repo.FindByID(ctx, "C456")
		require.NoError(t, err)
		return repo.UpdateBalance(ctx, c)
	})
	assert.Error(t, err)
}

func TestStore_DoCancelledContext(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Do(ctx, []string{"A123"}, func(repository.AccountRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_DisjointUnitsDoNotBlock(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()

	inside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.Do(ctx, []string{"A123", "C456"}, func(repository.AccountRepository) error {
			close(inside)
			<-release
			return nil
		})
	}()
	<-inside

	finished := make(chan error, 1)
	go func() {
		finished <- s.Do(ctx, []string{"E789", "G012"}, func(repository.AccountRepository) error { return nil })
	}()

	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("unit over disjoint accounts was blocked")
	}
	close(release)
	require.NoError(t, <-done)
}

func TestStore_OverlappingUnitsSerialize(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()

	inside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.Do(ctx, []string{"A123", "C456"}, func(repository.AccountRepository) error {
			close(inside)
			<-release
			return nil
		})
	}()
	<-inside

	var entered atomic.Bool
	finished := make(chan error, 1)
	go func() {
		// Reverse order must not deadlock.
		finished <- s.Do(ctx, []string{"E789", "C456"}, func(repository.AccountRepository) error {
			entered.Store(true)
			return nil
		})
	}()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, entered.Load(), "unit sharing C456 ran while it was held")

	close(release)
	require.NoError(t, <-done)
	require.NoError(t, <-finished)
	assert.True(t, entered.Load())
}

func TestStore_UnknownAccountsGetNoLock(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()

	for i := range 1000 {
		unknown := fmt.Sprintf("X%04d", i)
		err := s.Do(ctx, []string{"A123", unknown}, func(repo repository.AccountRepository) error {
			if _, err := repo.FindByID(ctx, "A123"); err != nil {
				return err
			}
			_, err := repo.FindByID(ctx, unknown)
			return err
		})
		var notFound *domain.AccountNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, unknown, notFound.ID)
	}
	assert.Equal(t, 1, s.LockCount())
}

func TestStore_UpdateUnknownAccountFails(t *testing.T) {
	t.Parallel()
	s := newStore()
	ctx := context.Background()

	err := s.Do(ctx, []string{"Z999"}, func(repo repository.AccountRepository) error {
		return repo.UpdateBalance(ctx, account.New("Z999", money.Must("1.00")))
	})
	assert.Error(t, err)
	_, err = s.FindByID(ctx, "Z999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Zero(t, s.LockCount())
}
