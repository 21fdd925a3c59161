package repository

import (
	"context"

	"github.com/amirasaad/banktransfer/pkg/domain/account"
)

// AccountFinder resolves accounts by id.
type AccountFinder interface {
	// FindByID returns the account or a *domain.AccountNotFoundError.
	FindByID(ctx context.Context, id string) (*account.Account, error)
}

// AccountRepository is the account store the transfer engine works against
// inside a unit of work.
type AccountRepository interface {
	AccountFinder

	// UpdateBalance persists the account's current balance. Storage errors
	// are returned unmodified in kind and abort the unit of work.
	UpdateBalance(ctx context.Context, a *account.Account) error
}
