package domain

import (
	"github.com/holiman/uint256"
)

// Amount is a quantity of fungible value in base units. One whole token is
// Unit base units. The zero value is a valid zero amount and copies are
// independent, so Amount can be stored by value inside the model.
type Amount = uint256.Int

// Decimals is the number of decimal places of a whole token.
const Decimals = 18

// Unit is one whole token in base units.
var Unit = uint256.NewInt(1_000_000_000_000_000_000)

// Units returns n base units.
func Units(n uint64) Amount {
	return *uint256.NewInt(n)
}

// Tokens returns n whole tokens expressed in base units.
func Tokens(n uint64) Amount {
	var a Amount
	a.Mul(uint256.NewInt(n), Unit)
	return a
}

// Milli returns n thousandths of a token.
func Milli(n uint64) Amount {
	var a Amount
	a.Mul(uint256.NewInt(n), uint256.NewInt(1_000_000_000_000_000))
	return a
}

// ParseAmount parses a base-unit decimal string.
func ParseAmount(s string) (Amount, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, err
	}
	return *v, nil
}

func add(a, b Amount) Amount {
	var r Amount
	r.Add(&a, &b)
	return r
}

func sub(a, b Amount) Amount {
	var r Amount
	r.Sub(&a, &b)
	return r
}

func mulU(a Amount, n uint64) Amount {
	var r Amount
	r.Mul(&a, uint256.NewInt(n))
	return r
}

func mulA(a, b Amount) Amount {
	var r Amount
	r.Mul(&a, &b)
	return r
}

func divU(a Amount, n uint64) Amount {
	var r Amount
	r.Div(&a, uint256.NewInt(n))
	return r
}

// Sum adds amounts.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for i := range amounts {
		total.Add(&total, &amounts[i])
	}
	return total
}
