package repository

import (
	"context"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/amirasaad/banktransfer/pkg/domain/account"
	"github.com/amirasaad/banktransfer/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository on db. Inside a unit of
// work db is the transaction session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID implements repository.AccountRepository.
func (r *accountRepository) FindByID(ctx context.Context, id string) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).Take(&m, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err, id)
	}
	return account.New(m.ID, m.Balance), nil
}

// UpdateBalance implements repository.AccountRepository.
func (r *accountRepository) UpdateBalance(ctx context.Context, a *account.Account) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", a.ID).
		Update("balance", a.Balance)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error, a.ID)
	}
	if res.RowsAffected == 0 {
		return &domain.AccountNotFoundError{ID: a.ID}
	}
	return nil
}
