package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of fractional digits carried by every
// monetary amount. The ledger operates in a dinar-based currency whose
// minor unit is one thousandth of the main unit, so all amounts are
// fixed-point values with exactly three decimal places. Balance
// comparisons are exact; floating point never enters the arithmetic.
const MinorUnitPlaces = 3

// ParseAmount parses a user-supplied amount string into a decimal,
// rejecting values that carry more precision than the minor unit allows.
// A malformed or over-precise amount is a user-input error, not a system
// fault.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	if !HasValidScale(d) {
		return decimal.Zero, fmt.Errorf("amount %q has more than %d decimal places", s, MinorUnitPlaces)
	}
	return d, nil
}

// HasValidScale reports whether d is representable in whole minor units.
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MinorUnitPlaces))
}
