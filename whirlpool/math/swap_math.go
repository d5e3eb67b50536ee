package math

import (
	"math/big"
)

var (
	// FeeRateMulValue is the denominator of the pool fee rate (parts per
	// million).
	FeeRateMulValue = big.NewInt(1_000_000)
	// ProtocolFeeRateMulValue is the denominator of the protocol fee rate
	// (basis points).
	ProtocolFeeRateMulValue = big.NewInt(10_000)
)

// SwapStep is the result of one bounded price movement. AmountIn excludes
// the fee; FeeAmount is charged on top of it.
type SwapStep struct {
	AmountIn      *big.Int
	AmountOut     *big.Int
	NextSqrtPrice *big.Int
	FeeAmount     *big.Int
}

// ComputeSwapStep advances the price from currSqrtPrice toward
// targetSqrtPrice as far as amountRemaining allows. The target is expected
// to already be clamped by the caller's price limit. amountRemaining is
// denominated in the input token when amountSpecifiedIsInput, in the output
// token otherwise.
func ComputeSwapStep(amountRemaining *big.Int, feeRate uint16, currLiquidity, currSqrtPrice, targetSqrtPrice *big.Int, amountSpecifiedIsInput, aToB bool) (SwapStep, error) {
	amountFixedDelta, err := getAmountFixedDelta(currSqrtPrice, targetSqrtPrice, currLiquidity, amountSpecifiedIsInput, aToB)
	if err != nil {
		return SwapStep{}, err
	}

	feeRateBig := big.NewInt(int64(feeRate))
	amountCalc := amountRemaining
	if amountSpecifiedIsInput {
		// Fee comes off the top before the curve sees the amount.
		amountCalc, err = MulDiv(amountRemaining, new(big.Int).Sub(FeeRateMulValue, feeRateBig), FeeRateMulValue, 128, RoundingDown)
		if err != nil {
			return SwapStep{}, err
		}
	}

	var nextSqrtPrice *big.Int
	if amountCalc.Cmp(amountFixedDelta) >= 0 {
		nextSqrtPrice = new(big.Int).Set(targetSqrtPrice)
	} else {
		nextSqrtPrice, err = GetNextSqrtPrice(currSqrtPrice, currLiquidity, amountCalc, amountSpecifiedIsInput, aToB)
		if err != nil {
			return SwapStep{}, err
		}
	}
	isMaxSwap := nextSqrtPrice.Cmp(targetSqrtPrice) == 0

	amountUnfixedDelta, err := getAmountUnfixedDelta(currSqrtPrice, nextSqrtPrice, currLiquidity, amountSpecifiedIsInput, aToB)
	if err != nil {
		return SwapStep{}, err
	}

	// When the target is not reached the fixed delta must be recomputed
	// against the price actually attained.
	if !isMaxSwap {
		amountFixedDelta, err = getAmountFixedDelta(currSqrtPrice, nextSqrtPrice, currLiquidity, amountSpecifiedIsInput, aToB)
		if err != nil {
			return SwapStep{}, err
		}
	}

	amountIn, amountOut := amountFixedDelta, amountUnfixedDelta
	if !amountSpecifiedIsInput {
		amountIn, amountOut = amountUnfixedDelta, amountFixedDelta
	}

	if !amountSpecifiedIsInput && amountOut.Cmp(amountRemaining) > 0 {
		amountOut = new(big.Int).Set(amountRemaining)
	}

	var feeAmount *big.Int
	if amountSpecifiedIsInput && !isMaxSwap {
		// Whatever remains after the curve consumed its share is the fee.
		feeAmount = new(big.Int).Sub(amountRemaining, amountIn)
	} else {
		feeAmount, err = MulDiv(amountIn, feeRateBig, new(big.Int).Sub(FeeRateMulValue, feeRateBig), 128, RoundingUp)
		if err != nil {
			return SwapStep{}, err
		}
	}

	return SwapStep{
		AmountIn:      amountIn,
		AmountOut:     amountOut,
		NextSqrtPrice: nextSqrtPrice,
		FeeAmount:     feeAmount,
	}, nil
}

// The fixed side is the token pinned by the amount-specified choice; its
// delta is rounded up (charged) for inputs and down (paid) for outputs.
func getAmountFixedDelta(currSqrtPrice, targetSqrtPrice, currLiquidity *big.Int, amountSpecifiedIsInput, aToB bool) (*big.Int, error) {
	rounding := RoundingDown
	if amountSpecifiedIsInput {
		rounding = RoundingUp
	}
	if aToB == amountSpecifiedIsInput {
		return GetAmountDeltaA(currSqrtPrice, targetSqrtPrice, currLiquidity, rounding)
	}
	return GetAmountDeltaB(currSqrtPrice, targetSqrtPrice, currLiquidity, rounding)
}

func getAmountUnfixedDelta(currSqrtPrice, targetSqrtPrice, currLiquidity *big.Int, amountSpecifiedIsInput, aToB bool) (*big.Int, error) {
	rounding := RoundingUp
	if amountSpecifiedIsInput {
		rounding = RoundingDown
	}
	if aToB == amountSpecifiedIsInput {
		return GetAmountDeltaB(currSqrtPrice, targetSqrtPrice, currLiquidity, rounding)
	}
	return GetAmountDeltaA(currSqrtPrice, targetSqrtPrice, currLiquidity, rounding)
}
