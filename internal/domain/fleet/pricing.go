package fleet

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Amount is a value in the currency's smallest unit.
type Amount = uint128.Uint128

// RentalFee is hours × rate. A product that does not fit in 128 bits cannot
// be priced and is rejected as an invalid interval.
func RentalFee(hours uint64, hourlyRate Amount) (Amount, error) {
	if hours == 0 || hourlyRate.IsZero() {
		return uint128.Zero, nil
	}
	if uint128.Max.Div(hourlyRate).Cmp64(hours) < 0 {
		return uint128.Zero, ErrInvalidInterval
	}
	return hourlyRate.Mul64(hours), nil
}

// RequiredDeposit is 90% of the fee, dividing before multiplying:
// a fee of 1005 requires 900, not 904.
func RequiredDeposit(fee Amount) Amount {
	return fee.Div64(10).Mul64(9)
}

// ParseAmount reads a plain decimal integer; "" is zero.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return uint128.Zero, nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return uint128.Zero, fmt.Errorf("amount %q is not a decimal integer", s)
		}
	}
	return uint128.FromString(s)
}
