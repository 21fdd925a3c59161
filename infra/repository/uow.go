package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/banktransfer/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UoW runs units of work as database transactions.
//
// Before the callback runs, the rows of every named account are locked with
// SELECT ... FOR UPDATE in id order. Concurrent transfers sharing an account
// wait on its row; transfers over other rows proceed. The transaction commits
// when the callback returns nil and rolls back otherwise.
type UoW struct {
	db *gorm.DB
}

var _ repository.UnitOfWork = (*UoW)(nil)

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do implements repository.UnitOfWork.
func (u *UoW) Do(
	ctx context.Context,
	accountIDs []string,
	fn func(repo repository.AccountRepository) error,
) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockAccounts(tx, accountIDs); err != nil {
			return err
		}
		return fn(NewAccountRepository(tx))
	})
}

func lockAccounts(tx *gorm.DB, ids []string) error {
	var locked []Account
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", repository.LockOrder(ids)).
		Order("id").
		Find(&locked).Error
	if err != nil {
		return fmt.Errorf("lock accounts: %w", err)
	}
	return nil
}
