// Package money provides helpers for handling monetary values.
//
// Amounts are exact decimals (github.com/shopspring/decimal), never binary
// floating point.
// Invariants:
//   - The smallest currency unit is one cent (Scale fractional digits).
//   - Parsing never rounds; callers decide what to do with sub-cent precision.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits of the smallest currency unit.
const Scale int32 = 2

var (
	// ErrInvalidAmount is returned when a textual amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// Cent is the smallest currency unit.
	Cent = decimal.New(1, -Scale)
)

// Parse converts a textual amount such as "100.00" to a decimal.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Must is like Parse but panics if s is not a valid amount.
// It is meant for constants and test fixtures.
func Must(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%q): %v", s, err))
	}
	return d
}

// HasSubunit reports whether d carries precision finer than one cent.
func HasSubunit(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(Scale))
}

// Round rounds d half away from zero to whole cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Format renders d with exactly Scale fractional digits, e.g. "985.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
