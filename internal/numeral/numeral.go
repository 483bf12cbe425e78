package numeral

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	MinBase = 2
	MaxBase = 36
)

var (
	ErrInvalidBase  = errors.New("numeral: base out of range")
	ErrInvalidDigit = errors.New("numeral: invalid digit")
)

// Decode interprets digits as a positional numeral in the given base and returns its exact value.
// Digits are 0-9 followed by A-Z (case-insensitive). The value is accumulated as a big.Int from
// the first digit, so numerals of any length are exact.
func Decode(digits string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidBase, base, MinBase, MaxBase)
	}

	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty numeral", ErrInvalidDigit)
	}

	radix := big.NewInt(int64(base))
	x := new(big.Int)
	d := new(big.Int) // reused for every digit.

	for i, r := range digits {
		v, ok := digitValue(r)
		if !ok || v >= base {
			return nil, fmt.Errorf("%w: %q at position %d for base %d", ErrInvalidDigit, r, i, base)
		}

		d.SetInt64(int64(v))
		x.Mul(x, radix)
		x.Add(x, d)
	}

	return x, nil
}

func digitValue(r rune) (int, bool) {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0'), true
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10, true
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10, true
	}

	return 0, false
}
