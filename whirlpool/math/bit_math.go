package math

import (
	"errors"
	"fmt"
	"math/big"
)

// Rounding selects the direction a quotient is rounded. Every operation in
// this package rounds in the direction the caller asks for, never to nearest;
// the on-chain program rounds charges up and payouts down and a quote that
// rounds differently will not match execution.
type Rounding int

const (
	RoundingDown Rounding = iota
	RoundingUp
)

var (
	ErrMulOverflow           = errors.New("multiplication overflow")
	ErrMulDivOverflow        = errors.New("mul-div overflow")
	ErrMulShiftRightOverflow = errors.New("mul-shift-right overflow")
	ErrDivideByZero          = errors.New("division by zero")
)

var (
	oneBig  = big.NewInt(1)
	MaxU64  = new(big.Int).Sub(new(big.Int).Lsh(oneBig, 64), oneBig)
	MaxU128 = new(big.Int).Sub(new(big.Int).Lsh(oneBig, 128), oneBig)
)

// IsOverLimit reports whether n does not fit in an unsigned integer of the
// given bit width.
func IsOverLimit(n *big.Int, limit uint) bool {
	return n.BitLen() > int(limit)
}

// CheckedMul returns a*b, failing if the product exceeds 2^limit - 1.
func CheckedMul(a, b *big.Int, limit uint) (*big.Int, error) {
	result := new(big.Int).Mul(a, b)
	if IsOverLimit(result, limit) {
		return nil, fmt.Errorf("%w: %s * %s exceeds u%d", ErrMulOverflow, a, b, limit)
	}
	return result, nil
}

// MulDiv returns a*b/denominator rounded in the requested direction. The
// intermediate product is bounded by limit.
func MulDiv(a, b, denominator *big.Int, limit uint, rounding Rounding) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, fmt.Errorf("%w: MulDiv(%s, %s, 0)", ErrDivideByZero, a, b)
	}
	prod, err := CheckedMul(a, b, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s * %s / %s", ErrMulDivOverflow, a, b, denominator)
	}
	quotient := new(big.Int).Div(prod, denominator)
	if rounding == RoundingUp && new(big.Int).Mod(prod, denominator).Sign() != 0 {
		quotient.Add(quotient, oneBig)
	}
	return quotient, nil
}

// MulShr returns (a*b) >> 64, moving a Q64.64 product back to integer scale.
// With RoundingUp the result is bumped when any shifted-out bit is set.
// Fails if the pre-shift product exceeds 2^limit - 1 or the rounded result
// exceeds u64.
func MulShr(a, b *big.Int, limit uint, rounding Rounding) (*big.Int, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int), nil
	}
	prod, err := CheckedMul(a, b, limit)
	if err != nil {
		return nil, err
	}
	result := new(big.Int).Rsh(prod, 64)
	if rounding == RoundingUp && new(big.Int).And(prod, MaxU64).Sign() != 0 {
		result.Add(result, oneBig)
	}
	if IsOverLimit(result, 64) {
		return nil, fmt.Errorf("%w: result %s exceeds u64", ErrMulShiftRightOverflow, result)
	}
	return result, nil
}

// DivRoundUp returns n/d rounded toward positive infinity.
func DivRoundUp(n, d *big.Int) (*big.Int, error) {
	return DivRoundUpIf(n, d, true)
}

// DivRoundUpIf returns n/d, rounding up only when roundUp is set.
func DivRoundUpIf(n, d *big.Int, roundUp bool) (*big.Int, error) {
	if d.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s / 0", ErrDivideByZero, n)
	}
	quotient := new(big.Int).Div(n, d)
	if roundUp && new(big.Int).Mod(n, d).Sign() != 0 {
		quotient.Add(quotient, oneBig)
	}
	return quotient, nil
}
