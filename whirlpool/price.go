package whirlpool

import (
	"fmt"
	stdmath "math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/whirlpool-go/whirlpool/math"
)

// SqrtPriceToPrice converts an x64 sqrt price into a human readable token B
// per token A price.
// (sqrtPrice^2 * 10^(decimalsA - decimalsB)) / 2^128
func SqrtPriceToPrice(sqrtPriceX64 *big.Int, decimalsA, decimalsB uint8) decimal.Decimal {
	price := decimal.NewFromBigInt(sqrtPriceX64, 0)
	price = price.Mul(price)

	expDiff := int64(decimalsA) - int64(decimalsB)
	if expDiff != 0 {
		price = price.Mul(decimal.New(1, int32(expDiff)))
	}

	denominator := new(big.Int).Lsh(big.NewInt(1), 128)
	return price.Div(decimal.NewFromBigInt(denominator, 0))
}

// PriceToSqrtPrice converts a human readable price into an x64 sqrt price.
// sqrt(price / 10^(decimalsA - decimalsB)) * 2^64
func PriceToSqrtPrice(price decimal.Decimal, decimalsA, decimalsB uint8) (*big.Int, error) {
	if price.Sign() <= 0 {
		return nil, fmt.Errorf("price must be positive, got %s", price)
	}

	decimalPrice, ok := new(big.Float).SetPrec(256).SetString(price.String())
	if !ok {
		return nil, fmt.Errorf("invalid price: %s", price)
	}

	decDiff := int(decimalsA) - int(decimalsB)
	pow10 := new(big.Float).SetFloat64(stdmath.Pow10(decDiff))

	adjusted := new(big.Float).Quo(decimalPrice, pow10)
	sqrtValue := new(big.Float).SetPrec(256).Sqrt(adjusted)

	scale := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 64))
	sqrtValueX64 := new(big.Float).Mul(sqrtValue, scale)

	result := new(big.Int)
	sqrtValueX64.Int(result)
	return result, nil
}

// TickIndexToPrice converts a tick index into a human readable price.
func TickIndexToPrice(tickIndex int32, decimalsA, decimalsB uint8) (decimal.Decimal, error) {
	sqrtPrice, err := math.SqrtPriceFromTickIndex(tickIndex)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return SqrtPriceToPrice(sqrtPrice, decimalsA, decimalsB), nil
}

// PriceToTickIndex converts a human readable price into the closest tick
// index at or below it.
func PriceToTickIndex(price decimal.Decimal, decimalsA, decimalsB uint8) (int32, error) {
	sqrtPrice, err := PriceToSqrtPrice(price, decimalsA, decimalsB)
	if err != nil {
		return 0, err
	}
	return math.TickIndexFromSqrtPrice(sqrtPrice)
}

// PriceToInitializableTickIndex converts a price into the nearest tick index
// usable at the given tick spacing.
func PriceToInitializableTickIndex(price decimal.Decimal, decimalsA, decimalsB uint8, tickSpacing uint16) (int32, error) {
	tickIndex, err := PriceToTickIndex(price, decimalsA, decimalsB)
	if err != nil {
		return 0, err
	}
	ts := int32(tickSpacing)
	return floorDiv(tickIndex, ts) * ts, nil
}
