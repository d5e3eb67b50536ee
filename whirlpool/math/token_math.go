package math

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrTokenMaxExceeded  = errors.New("token amount exceeds u64")
	ErrTokenMinSubceeded = errors.New("sqrt price below minimum")
)

func orderSqrtPrices(a, b *big.Int) (lower, upper *big.Int) {
	if a.Cmp(b) < 0 {
		return a, b
	}
	return b, a
}

// GetAmountDeltaA returns |delta A| between two sqrt prices for the given
// liquidity: L * (upper - lower) / (upper * lower), at integer token scale.
func GetAmountDeltaA(sqrtPrice0, sqrtPrice1, liquidity *big.Int, rounding Rounding) (*big.Int, error) {
	lower, upper := orderSqrtPrices(sqrtPrice0, sqrtPrice1)
	sqrtPriceDiff := new(big.Int).Sub(upper, lower)

	numerator := new(big.Int).Mul(liquidity, sqrtPriceDiff)
	numerator.Lsh(numerator, 64)
	denominator := new(big.Int).Mul(lower, upper)

	quotient := new(big.Int).Div(numerator, denominator)
	remainder := new(big.Int).Mod(numerator, denominator)
	if rounding == RoundingUp && remainder.Sign() != 0 {
		quotient.Add(quotient, oneBig)
	}
	if IsOverLimit(quotient, 64) {
		return nil, fmt.Errorf("%w: amount A delta %s", ErrTokenMaxExceeded, quotient)
	}
	return quotient, nil
}

// GetAmountDeltaB returns |delta B| between two sqrt prices for the given
// liquidity: L * (upper - lower) >> 64.
func GetAmountDeltaB(sqrtPrice0, sqrtPrice1, liquidity *big.Int, rounding Rounding) (*big.Int, error) {
	lower, upper := orderSqrtPrices(sqrtPrice0, sqrtPrice1)
	sqrtPriceDiff := new(big.Int).Sub(upper, lower)
	return MulShr(liquidity, sqrtPriceDiff, 128, rounding)
}

// GetNextSqrtPrice solves for the sqrt price reached by trading the given
// amount against the current liquidity. Which token the amount denominates
// follows from the swap direction and which side is specified.
func GetNextSqrtPrice(sqrtPrice, liquidity, amount *big.Int, amountSpecifiedIsInput, aToB bool) (*big.Int, error) {
	if amountSpecifiedIsInput == aToB {
		return getNextSqrtPriceFromAmountARoundUp(sqrtPrice, liquidity, amount, amountSpecifiedIsInput)
	}
	return getNextSqrtPriceFromAmountBRoundDown(sqrtPrice, liquidity, amount, amountSpecifiedIsInput)
}

// sqrtPrice' = (L * sqrtPrice << 64) / (L << 64 +/- amount * sqrtPrice),
// rounded up so the trader never gets a better price than on chain.
func getNextSqrtPriceFromAmountARoundUp(sqrtPrice, liquidity, amount *big.Int, amountSpecifiedIsInput bool) (*big.Int, error) {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPrice), nil
	}

	product, err := CheckedMul(sqrtPrice, amount, 256)
	if err != nil {
		return nil, err
	}
	numerator := new(big.Int).Mul(liquidity, sqrtPrice)
	numerator.Lsh(numerator, 64)
	if IsOverLimit(numerator, 256) {
		return nil, fmt.Errorf("%w: next sqrt price numerator exceeds u256", ErrMulOverflow)
	}

	liquidityShifted := new(big.Int).Lsh(liquidity, 64)
	var denominator *big.Int
	if amountSpecifiedIsInput {
		denominator = new(big.Int).Add(liquidityShifted, product)
	} else {
		if liquidityShifted.Cmp(product) <= 0 {
			return nil, fmt.Errorf("%w: amount out drains the liquidity at this price", ErrDivideByZero)
		}
		denominator = new(big.Int).Sub(liquidityShifted, product)
	}

	price, err := DivRoundUp(numerator, denominator)
	if err != nil {
		return nil, err
	}
	if price.Cmp(MinSqrtPrice) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTokenMinSubceeded, price)
	}
	if price.Cmp(MaxSqrtPrice) > 0 {
		return nil, fmt.Errorf("%w: next sqrt price %s", ErrTokenMaxExceeded, price)
	}
	return price, nil
}

// sqrtPrice' = sqrtPrice +/- (amount << 64) / L, with the quotient rounded
// against the trader when the amount is an output.
func getNextSqrtPriceFromAmountBRoundDown(sqrtPrice, liquidity, amount *big.Int, amountSpecifiedIsInput bool) (*big.Int, error) {
	amountX64 := new(big.Int).Lsh(amount, 64)
	delta, err := DivRoundUpIf(amountX64, liquidity, !amountSpecifiedIsInput)
	if err != nil {
		return nil, err
	}
	if amountSpecifiedIsInput {
		return new(big.Int).Add(sqrtPrice, delta), nil
	}
	return new(big.Int).Sub(sqrtPrice, delta), nil
}
