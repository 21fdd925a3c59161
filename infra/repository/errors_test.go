package repository

import (
	"errors"
	"testing"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	errConn := errors.New("connection reset")

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "nil error returns nil",
			input:    nil,
			expected: nil,
		},
		{
			name:     "record not found error maps to ErrAccountNotFound",
			input:    gorm.ErrRecordNotFound,
			expected: domain.ErrAccountNotFound,
		},
		{
			name:     "wrapped record not found error maps correctly",
			input:    errors.Join(errors.New("outer error"), gorm.ErrRecordNotFound),
			expected: domain.ErrAccountNotFound,
		},
		{
			name:     "other errors are wrapped",
			input:    errConn,
			expected: errConn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input, "A123")

			if tt.expected == nil {
				require.NoError(t, result)
				return
			}
			require.Error(t, result)
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestMapGormErrorToDomain_CarriesAccountID(t *testing.T) {
	t.Parallel()

	var notFound *domain.AccountNotFoundError
	require.ErrorAs(t, MapGormErrorToDomain(gorm.ErrRecordNotFound, "Z999"), &notFound)
	assert.Equal(t, "Z999", notFound.ID)

	err := MapGormErrorToDomain(errors.New("connection reset"), "A123")
	assert.EqualError(t, err, "account A123: connection reset")
	assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
}
