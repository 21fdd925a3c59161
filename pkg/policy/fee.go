// Package policy holds the pluggable business rules of a transfer: how much
// fee a transfer costs and when transfers are allowed.
package policy

import (
	"errors"
	"fmt"

	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/shopspring/decimal"
)

// Fee strategies selectable from configuration.
const (
	FeeStrategyZero       = "zero"
	FeeStrategyFlat       = "flat"
	FeeStrategyPercentage = "percentage"
)

// ErrUnknownFeeStrategy is returned by NewFeePolicy for an unsupported strategy name.
var ErrUnknownFeeStrategy = errors.New("unknown fee strategy")

// FeePolicy computes the fee charged to the source account of a transfer.
// Implementations are pure and return a non-negative fee.
type FeePolicy interface {
	CalculateFee(amount decimal.Decimal) decimal.Decimal
}

// FeeFunc adapts a function to FeePolicy.
type FeeFunc func(amount decimal.Decimal) decimal.Decimal

// CalculateFee calls f(amount).
func (f FeeFunc) CalculateFee(amount decimal.Decimal) decimal.Decimal { return f(amount) }

// ZeroFee charges nothing.
type ZeroFee struct{}

// CalculateFee always returns zero.
func (ZeroFee) CalculateFee(decimal.Decimal) decimal.Decimal { return decimal.Zero }

// FlatFee charges the same amount for every transfer.
type FlatFee struct {
	Amount decimal.Decimal
}

// CalculateFee returns the flat amount.
func (f FlatFee) CalculateFee(decimal.Decimal) decimal.Decimal { return f.Amount }

// PercentageFee charges Rate (0.01 is one percent) of the transfer amount,
// rounded to whole cents.
type PercentageFee struct {
	Rate decimal.Decimal
}

// CalculateFee returns amount*Rate rounded to cents.
func (f PercentageFee) CalculateFee(amount decimal.Decimal) decimal.Decimal {
	return money.Round(amount.Mul(f.Rate))
}

// NewFeePolicy builds the policy named by strategy. flat is used by the flat
// strategy and rate by the percentage strategy.
func NewFeePolicy(strategy string, flat, rate decimal.Decimal) (FeePolicy, error) {
	switch strategy {
	case "", FeeStrategyZero:
		return ZeroFee{}, nil
	case FeeStrategyFlat:
		if flat.IsNegative() {
			return nil, fmt.Errorf("flat fee must not be negative: %s", flat)
		}
		return FlatFee{Amount: flat}, nil
	case FeeStrategyPercentage:
		if rate.IsNegative() {
			return nil, fmt.Errorf("fee rate must not be negative: %s", rate)
		}
		return PercentageFee{Rate: rate}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeeStrategy, strategy)
	}
}
