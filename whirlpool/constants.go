package whirlpool

import (
	"math/big"

	whirlpoolgen "github.com/krazyTry/whirlpool-go/gen/whirlpool"
	"github.com/krazyTry/whirlpool-go/whirlpool/math"
)

const (
	// TickArraySize is the number of tick records held by one tick array
	// account.
	TickArraySize = 88

	// MaxSwapTickArrays is the number of tick array accounts a single swap
	// instruction can touch, and therefore the crossing budget of a quote.
	MaxSwapTickArrays = 3

	MinTickIndex = math.MinTickIndex
	MaxTickIndex = math.MaxTickIndex
)

var (
	ProgramID = whirlpoolgen.ProgramID

	MinSqrtPrice = math.MinSqrtPrice
	MaxSqrtPrice = math.MaxSqrtPrice

	// MaxU64 is the default other-amount threshold for output-specified
	// quotes.
	MaxU64 = math.MaxU64
)

// DefaultSqrtPriceLimit returns the widest legal price limit for a trade
// direction.
func DefaultSqrtPriceLimit(aToB bool) *big.Int {
	if aToB {
		return new(big.Int).Set(MinSqrtPrice)
	}
	return new(big.Int).Set(MaxSqrtPrice)
}

// DefaultOtherAmountThreshold returns the no-op acceptance threshold: zero
// minimum output for input-specified trades, unlimited input otherwise.
func DefaultOtherAmountThreshold(amountSpecifiedIsInput bool) *big.Int {
	if amountSpecifiedIsInput {
		return new(big.Int)
	}
	return new(big.Int).Set(MaxU64)
}
