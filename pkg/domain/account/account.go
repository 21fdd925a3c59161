package account

import (
	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/shopspring/decimal"
)

// Account is a balance holder identified by a unique string id.
//
// Invariants:
//   - Debit never leaves the balance negative; a failing debit changes nothing.
//   - Credit has no upper bound.
type Account struct {
	ID      string
	Balance decimal.Decimal
}

// New returns an account hydrated from a store.
func New(id string, balance decimal.Decimal) *Account {
	return &Account{ID: id, Balance: balance}
}

// Debit removes amount from the balance. It fails with a
// *domain.InsufficientFundsError when the balance cannot cover amount.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return &domain.InsufficientFundsError{
			AccountID: a.ID,
			Overage:   amount.Sub(a.Balance),
		}
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Snapshot returns the account's current state as a value.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{ID: a.ID, Balance: a.Balance}
}

// Snapshot is an immutable copy of an account's state at one point of a transfer.
type Snapshot struct {
	ID      string
	Balance decimal.Decimal
}
