package whirlpool

import (
	"fmt"
	"math/big"

	solana "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/whirlpool-go/whirlpool/math"
)

// SwapQuoteParam is the full input to a swap simulation.
type SwapQuoteParam struct {
	Whirlpool              *Whirlpool
	TickArrays             []TickArray
	TokenAmount            *big.Int
	SqrtPriceLimit         *big.Int
	OtherAmountThreshold   *big.Int
	AmountSpecifiedIsInput bool
	AToB                   bool
}

// SwapQuote is the simulated outcome of a swap plus the parameters needed to
// build the matching instruction.
type SwapQuote struct {
	EstimatedAmountIn     *big.Int
	EstimatedAmountOut    *big.Int
	EstimatedEndTickIndex int32
	EstimatedEndSqrtPrice *big.Int
	EstimatedFeeAmount    *big.Int

	Amount                 *big.Int
	OtherAmountThreshold   *big.Int
	SqrtPriceLimit         *big.Int
	AmountSpecifiedIsInput bool
	AToB                   bool

	TickArray0 solana.PublicKey
	TickArray1 solana.PublicKey
	TickArray2 solana.PublicKey
}

// DevFeeSwapQuote extends a swap quote with a developer fee taken from the
// input amount before the swap.
type DevFeeSwapQuote struct {
	SwapQuote
	DevFeeAmount           *big.Int
	EstimatedSwapFeeAmount *big.Int
}

// SimulateSwap validates the parameters and runs the swap loop, producing a
// quote with no slippage applied.
func SimulateSwap(param SwapQuoteParam) (*SwapQuote, error) {
	pool := param.Whirlpool

	if param.SqrtPriceLimit.Cmp(MaxSqrtPrice) > 0 || param.SqrtPriceLimit.Cmp(MinSqrtPrice) < 0 {
		return nil, fmt.Errorf("%w: sqrt price limit %s", ErrSqrtPriceOutOfBounds, param.SqrtPriceLimit)
	}

	currSqrtPrice := math.U128ToBig(pool.SqrtPrice)
	if param.AToB && param.SqrtPriceLimit.Cmp(currSqrtPrice) > 0 {
		return nil, fmt.Errorf("%w: limit above current price for an a to b swap", ErrInvalidSqrtPriceLimitDirection)
	}
	if !param.AToB && param.SqrtPriceLimit.Cmp(currSqrtPrice) < 0 {
		return nil, fmt.Errorf("%w: limit below current price for a b to a swap", ErrInvalidSqrtPriceLimitDirection)
	}

	if param.TokenAmount.Sign() <= 0 {
		return nil, ErrZeroTradableAmount
	}

	sequence, err := NewTickArraySequence(param.TickArrays, pool.TickSpacing, param.AToB)
	if err != nil {
		return nil, err
	}
	if !sequence.IsValidTickArray0(pool.TickCurrentIndex) {
		return nil, fmt.Errorf("%w: first tick array does not cover the current tick %d",
			ErrTickArraySequenceInvalid, pool.TickCurrentIndex)
	}

	result, err := computeSwap(pool, sequence, param.TokenAmount, param.SqrtPriceLimit, param.AmountSpecifiedIsInput, param.AToB)
	if err != nil {
		return nil, err
	}

	var estimatedAmountIn, estimatedAmountOut *big.Int
	if param.AToB {
		estimatedAmountIn, estimatedAmountOut = result.AmountA, result.AmountB
	} else {
		estimatedAmountIn, estimatedAmountOut = result.AmountB, result.AmountA
	}

	if param.AmountSpecifiedIsInput {
		if estimatedAmountOut.Cmp(param.OtherAmountThreshold) < 0 {
			return nil, fmt.Errorf("%w: estimated %s below threshold %s",
				ErrAmountOutBelowMinimum, estimatedAmountOut, param.OtherAmountThreshold)
		}
	} else {
		if estimatedAmountIn.Cmp(param.OtherAmountThreshold) > 0 {
			return nil, fmt.Errorf("%w: estimated %s above threshold %s",
				ErrAmountInAboveMaximum, estimatedAmountIn, param.OtherAmountThreshold)
		}
	}

	if sequence.GetNumOfTouchedArrays() > MaxSwapTickArrays {
		return nil, fmt.Errorf("%w: swap touched more than %d tick arrays",
			ErrTooManyTickArraysCrossed, MaxSwapTickArrays)
	}
	touched := sequence.GetTouchedArrays(MaxSwapTickArrays)

	quote := &SwapQuote{
		EstimatedAmountIn:      estimatedAmountIn,
		EstimatedAmountOut:     estimatedAmountOut,
		EstimatedEndTickIndex:  result.NextTickIndex,
		EstimatedEndSqrtPrice:  result.NextSqrtPrice,
		EstimatedFeeAmount:     result.TotalFeeAmount,
		Amount:                 param.TokenAmount,
		OtherAmountThreshold:   param.OtherAmountThreshold,
		SqrtPriceLimit:         param.SqrtPriceLimit,
		AmountSpecifiedIsInput: param.AmountSpecifiedIsInput,
		AToB:                   param.AToB,
	}
	if len(touched) >= MaxSwapTickArrays {
		quote.TickArray0 = touched[0]
		quote.TickArray1 = touched[1]
		quote.TickArray2 = touched[2]
	}
	return quote, nil
}

// SwapQuoteWithParams simulates the swap and applies the slippage tolerance
// to the unfixed amount, producing the on-chain threshold.
func SwapQuoteWithParams(param SwapQuoteParam, slippageTolerance Percentage) (*SwapQuote, error) {
	quote, err := SimulateSwap(param)
	if err != nil {
		return nil, err
	}
	if param.AmountSpecifiedIsInput {
		quote.OtherAmountThreshold = slippageTolerance.AdjustDown(quote.EstimatedAmountOut)
	} else {
		quote.OtherAmountThreshold = slippageTolerance.AdjustUp(quote.EstimatedAmountIn)
	}
	return quote, nil
}

// SwapQuoteByInputToken quotes an exact-in swap of the given input mint with
// the default price limit and threshold.
func SwapQuoteByInputToken(
	pool *Whirlpool,
	tickArrays []TickArray,
	inputTokenMint solana.PublicKey,
	tokenAmount *big.Int,
	slippageTolerance Percentage,
) (*SwapQuote, error) {
	aToB, err := swapDirection(pool, inputTokenMint)
	if err != nil {
		return nil, err
	}
	return SwapQuoteWithParams(SwapQuoteParam{
		Whirlpool:              pool,
		TickArrays:             tickArrays,
		TokenAmount:            tokenAmount,
		SqrtPriceLimit:         DefaultSqrtPriceLimit(aToB),
		OtherAmountThreshold:   DefaultOtherAmountThreshold(true),
		AmountSpecifiedIsInput: true,
		AToB:                   aToB,
	}, slippageTolerance)
}

// SwapQuoteByOutputToken quotes an exact-out swap for the given output mint
// with the default price limit and threshold.
func SwapQuoteByOutputToken(
	pool *Whirlpool,
	tickArrays []TickArray,
	outputTokenMint solana.PublicKey,
	tokenAmount *big.Int,
	slippageTolerance Percentage,
) (*SwapQuote, error) {
	outIsA, err := swapDirection(pool, outputTokenMint)
	if err != nil {
		return nil, err
	}
	aToB := !outIsA
	return SwapQuoteWithParams(SwapQuoteParam{
		Whirlpool:              pool,
		TickArrays:             tickArrays,
		TokenAmount:            tokenAmount,
		SqrtPriceLimit:         DefaultSqrtPriceLimit(aToB),
		OtherAmountThreshold:   DefaultOtherAmountThreshold(false),
		AmountSpecifiedIsInput: false,
		AToB:                   aToB,
	}, slippageTolerance)
}

// SwapQuoteByInputTokenWithDevFees quotes an exact-in swap with a developer
// fee carved out of the input before simulation.
func SwapQuoteByInputTokenWithDevFees(
	pool *Whirlpool,
	tickArrays []TickArray,
	inputTokenMint solana.PublicKey,
	tokenAmount *big.Int,
	slippageTolerance Percentage,
	devFeePercentage Percentage,
) (*DevFeeSwapQuote, error) {
	if devFeePercentage.ToDecimal().GreaterThanOrEqual(decimalOne) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDevFeePercentage, devFeePercentage)
	}

	devFeeAmount := new(big.Int).Mul(tokenAmount, devFeePercentage.Numerator)
	devFeeAmount.Div(devFeeAmount, devFeePercentage.Denominator)

	swapAmount := new(big.Int).Sub(tokenAmount, devFeeAmount)
	quote, err := SwapQuoteByInputToken(pool, tickArrays, inputTokenMint, swapAmount, slippageTolerance)
	if err != nil {
		return nil, err
	}

	devQuote := &DevFeeSwapQuote{
		SwapQuote:              *quote,
		DevFeeAmount:           devFeeAmount,
		EstimatedSwapFeeAmount: quote.EstimatedFeeAmount,
	}
	devQuote.EstimatedAmountIn = new(big.Int).Add(quote.EstimatedAmountIn, devFeeAmount)
	devQuote.EstimatedFeeAmount = new(big.Int).Add(quote.EstimatedFeeAmount, devFeeAmount)
	return devQuote, nil
}

// swapDirection reports whether trading the given mint into the pool moves
// price from token A to token B.
func swapDirection(pool *Whirlpool, mint solana.PublicKey) (bool, error) {
	switch {
	case mint.Equals(pool.TokenMintA):
		return true, nil
	case mint.Equals(pool.TokenMintB):
		return false, nil
	default:
		return false, fmt.Errorf("mint %s is not a token of this whirlpool", mint)
	}
}
