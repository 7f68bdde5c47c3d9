package domain

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// ParseTokens converts a decimal token string such as "12.5" into base
// units. More than Decimals fractional digits is an error.
func ParseTokens(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: amount %q: %v", ErrInvalidParameter, s, err)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: negative amount %q", ErrInvalidParameter, s)
	}
	scaled := d.Shift(Decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return Amount{}, fmt.Errorf("%w: amount %q has more than %d decimals", ErrInvalidParameter, s, Decimals)
	}
	v, overflow := uint256.FromBig(scaled.BigInt())
	if overflow {
		return Amount{}, fmt.Errorf("%w: amount %q overflows", ErrInvalidParameter, s)
	}
	return *v, nil
}

// FormatTokens renders base units as a decimal token string without
// trailing zeros.
func FormatTokens(a Amount) string {
	return decimal.NewFromBigInt(a.ToBig(), -Decimals).String()
}
