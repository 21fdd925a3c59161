package domain

import (
	"errors"
	"fmt"

	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/shopspring/decimal"
)

// Transfer failure kinds. Detail types below match them through errors.Is.
var (
	// ErrServiceUnavailable is returned when a transfer is requested outside the service window.
	ErrServiceUnavailable = errors.New("transfer service is not available at this time")
	// ErrInvalidAmount is returned when a transfer amount is non-positive or below the minimum.
	ErrInvalidAmount = errors.New("invalid transfer amount")
	// ErrAccountNotFound is returned when an account id cannot be resolved.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientFunds is returned when a debit would leave an account negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrSameAccount is returned when the source and destination of a transfer are the same account.
	ErrSameAccount = errors.New("cannot transfer to same account")
)

// InvalidAmountError reports a rejected transfer amount and the minimum in force.
type InvalidAmountError struct {
	Amount  decimal.Decimal
	Minimum decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("transfer amount must be at least $%s, got $%s", money.Format(e.Minimum), e.Amount.String())
}

// Is makes errors.Is(err, ErrInvalidAmount) hold.
func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }

// AccountNotFoundError carries the id that could not be resolved.
type AccountNotFoundError struct {
	ID string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.ID)
}

// Is makes errors.Is(err, ErrAccountNotFound) hold.
func (e *AccountNotFoundError) Is(target error) bool { return target == ErrAccountNotFound }

// InsufficientFundsError carries the debited account and the shortfall.
type InsufficientFundsError struct {
	AccountID string
	// Overage is the amount by which the debit exceeds the available balance.
	Overage decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account %s: short by $%s", e.AccountID, money.Format(e.Overage))
}

// Is makes errors.Is(err, ErrInsufficientFunds) hold.
func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }
