package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailErrorsMatchTheirKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "invalid amount",
			err:     &domain.InvalidAmountError{Amount: money.Must("0.5"), Minimum: money.Must("1")},
			kind:    domain.ErrInvalidAmount,
			message: "transfer amount must be at least $1.00, got $0.5",
		},
		{
			name:    "account not found",
			err:     &domain.AccountNotFoundError{ID: "Z999"},
			kind:    domain.ErrAccountNotFound,
			message: "account not found: Z999",
		},
		{
			name:    "insufficient funds",
			err:     &domain.InsufficientFundsError{AccountID: "A123", Overage: money.Must("0.01")},
			kind:    domain.ErrInsufficientFunds,
			message: "insufficient funds in account A123: short by $0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.kind)
			assert.EqualError(t, tt.err, tt.message)
			for _, other := range []error{
				domain.ErrServiceUnavailable,
				domain.ErrInvalidAmount,
				domain.ErrAccountNotFound,
				domain.ErrInsufficientFunds,
				domain.ErrSameAccount,
			} {
				if other != tt.kind {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestDetailErrorsAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("transfer: %w", &domain.InsufficientFundsError{AccountID: "A123", Overage: money.Must("12.50")})

	var insufficient *domain.InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "A123", insufficient.AccountID)
	assert.Equal(t, "12.50", money.Format(insufficient.Overage))
}
