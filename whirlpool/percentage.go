package whirlpool

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var decimalOne = decimal.NewFromInt(1)

// Percentage is an exact fraction used for slippage and fee percentages.
type Percentage struct {
	Numerator   *big.Int
	Denominator *big.Int
}

// PercentageFromFraction builds a percentage from an integer fraction.
func PercentageFromFraction(numerator, denominator uint64) Percentage {
	return Percentage{
		Numerator:   new(big.Int).SetUint64(numerator),
		Denominator: new(big.Int).SetUint64(denominator),
	}
}

// PercentageFromBps builds a percentage from basis points. 100 bps is 1%.
func PercentageFromBps(bps uint64) Percentage {
	return PercentageFromFraction(bps, 10_000)
}

// PercentageFromDecimal converts a human readable ratio such as 0.01 into an
// exact fraction.
func PercentageFromDecimal(d decimal.Decimal) Percentage {
	rat := d.Rat()
	return Percentage{
		Numerator:   new(big.Int).Set(rat.Num()),
		Denominator: new(big.Int).Set(rat.Denom()),
	}
}

// ToDecimal renders the fraction as a decimal ratio.
func (p Percentage) ToDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(p.Numerator, 0).
		Div(decimal.NewFromBigInt(p.Denominator, 0))
}

func (p Percentage) String() string {
	return fmt.Sprintf("%s/%s", p.Numerator.String(), p.Denominator.String())
}

// AdjustUp returns n scaled by (1 + p), floored.
func (p Percentage) AdjustUp(n *big.Int) *big.Int {
	result := new(big.Int).Add(p.Denominator, p.Numerator)
	result.Mul(result, n)
	return result.Div(result, p.Denominator)
}

// AdjustDown returns n scaled by (1 - p), floored.
func (p Percentage) AdjustDown(n *big.Int) *big.Int {
	result := new(big.Int).Sub(p.Denominator, p.Numerator)
	result.Mul(result, n)
	return result.Div(result, p.Denominator)
}
