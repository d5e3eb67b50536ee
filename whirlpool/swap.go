package whirlpool

import (
	"fmt"
	"math/big"

	"github.com/krazyTry/whirlpool-go/whirlpool/math"
)

// SwapResult is the raw outcome of a swap simulation before quote assembly.
type SwapResult struct {
	AmountA          *big.Int
	AmountB          *big.Int
	NextTickIndex    int32
	NextSqrtPrice    *big.Int
	TotalFeeAmount   *big.Int
	ProtocolFee      *big.Int
	FeeGrowthGlobalX *big.Int
}

// computeSwap runs the step loop across the tick array sequence until the
// trade amount is consumed or the price limit is reached.
func computeSwap(
	pool *Whirlpool,
	sequence *TickArraySequence,
	tokenAmount *big.Int,
	sqrtPriceLimit *big.Int,
	amountSpecifiedIsInput bool,
	aToB bool,
) (*SwapResult, error) {
	amountRemaining := new(big.Int).Set(tokenAmount)
	amountCalculated := new(big.Int)

	currSqrtPrice := math.U128ToBig(pool.SqrtPrice)
	currLiquidity := math.U128ToBig(pool.Liquidity)
	currTickIndex := pool.TickCurrentIndex

	totalFeeAmount := new(big.Int)
	protocolFee := new(big.Int)
	feeGrowthGlobal := math.U128ToBig(pool.FeeGrowthGlobalA)
	if !aToB {
		feeGrowthGlobal = math.U128ToBig(pool.FeeGrowthGlobalB)
	}
	protocolFeeRate := new(big.Int).SetUint64(uint64(pool.ProtocolFeeRate))

	for amountRemaining.Sign() > 0 && currSqrtPrice.Cmp(sqrtPriceLimit) != 0 {
		if sequence.GetNumOfTouchedArrays() > MaxSwapTickArrays {
			return nil, fmt.Errorf("%w: swap crossed more than %d tick arrays",
				ErrTooManyTickArraysCrossed, MaxSwapTickArrays)
		}

		nextTickIndex, nextTick, err := sequence.FindNextInitializedTickIndex(currTickIndex)
		if err != nil {
			return nil, err
		}

		nextTickPrice, err := math.SqrtPriceFromTickIndex(nextTickIndex)
		if err != nil {
			return nil, err
		}

		targetSqrtPrice := nextTickPrice
		if aToB {
			if sqrtPriceLimit.Cmp(nextTickPrice) > 0 {
				targetSqrtPrice = sqrtPriceLimit
			}
		} else {
			if sqrtPriceLimit.Cmp(nextTickPrice) < 0 {
				targetSqrtPrice = sqrtPriceLimit
			}
		}

		step, err := math.ComputeSwapStep(
			amountRemaining,
			pool.FeeRate,
			currLiquidity,
			currSqrtPrice,
			targetSqrtPrice,
			amountSpecifiedIsInput,
			aToB,
		)
		if err != nil {
			return nil, err
		}

		totalFeeAmount.Add(totalFeeAmount, step.FeeAmount)

		if amountSpecifiedIsInput {
			amountRemaining.Sub(amountRemaining, step.AmountIn)
			amountRemaining.Sub(amountRemaining, step.FeeAmount)
			amountCalculated.Add(amountCalculated, step.AmountOut)
		} else {
			amountRemaining.Sub(amountRemaining, step.AmountOut)
			amountCalculated.Add(amountCalculated, step.AmountIn)
			amountCalculated.Add(amountCalculated, step.FeeAmount)
		}

		feeGrowthGlobal = applyFees(step.FeeAmount, protocolFeeRate, currLiquidity, protocolFee, feeGrowthGlobal)

		if step.NextSqrtPrice.Cmp(nextTickPrice) == 0 {
			if nextTick != nil && nextTick.Initialized {
				liquidityNet := math.I128ToBig(nextTick.LiquidityNet)
				if aToB {
					currLiquidity = new(big.Int).Sub(currLiquidity, liquidityNet)
				} else {
					currLiquidity = new(big.Int).Add(currLiquidity, liquidityNet)
				}
				if currLiquidity.Sign() < 0 {
					return nil, fmt.Errorf("%w: liquidity net at tick %d exceeds pool liquidity",
						ErrLiquidityUnderflow, nextTickIndex)
				}
			}
			if aToB {
				currTickIndex = nextTickIndex - 1
			} else {
				currTickIndex = nextTickIndex
			}
		} else {
			currTickIndex, err = math.TickIndexFromSqrtPrice(step.NextSqrtPrice)
			if err != nil {
				return nil, err
			}
		}

		currSqrtPrice = step.NextSqrtPrice
	}

	amountSpecified := new(big.Int).Sub(tokenAmount, amountRemaining)

	var amountA, amountB *big.Int
	if aToB == amountSpecifiedIsInput {
		amountA, amountB = amountSpecified, amountCalculated
	} else {
		amountA, amountB = amountCalculated, amountSpecified
	}

	return &SwapResult{
		AmountA:          amountA,
		AmountB:          amountB,
		NextTickIndex:    currTickIndex,
		NextSqrtPrice:    currSqrtPrice,
		TotalFeeAmount:   totalFeeAmount,
		ProtocolFee:      protocolFee,
		FeeGrowthGlobalX: feeGrowthGlobal,
	}, nil
}

// applyFees splits a step fee between the protocol cut and liquidity
// providers, accumulating protocolFee in place and returning the updated fee
// growth accumulator.
func applyFees(feeAmount, protocolFeeRate, currLiquidity, protocolFee, feeGrowthGlobal *big.Int) *big.Int {
	globalFee := new(big.Int).Set(feeAmount)

	if protocolFeeRate.Sign() > 0 {
		delta := new(big.Int).Mul(globalFee, protocolFeeRate)
		delta.Div(delta, math.ProtocolFeeRateMulValue)
		globalFee.Sub(globalFee, delta)
		protocolFee.Add(protocolFee, delta)
	}

	if currLiquidity.Sign() > 0 {
		growth := new(big.Int).Lsh(globalFee, 64)
		growth.Div(growth, currLiquidity)
		return new(big.Int).Add(feeGrowthGlobal, growth)
	}
	return feeGrowthGlobal
}
