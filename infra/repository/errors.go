package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors about accountID to domain errors.
// This keeps database errors within the infrastructure layer: a missing row
// becomes a *domain.AccountNotFoundError, anything else is wrapped and
// returned as a storage failure.
func MapGormErrorToDomain(err error, accountID string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.AccountNotFoundError{ID: accountID}
	}
	return fmt.Errorf("account %s: %w", accountID, err)
}
