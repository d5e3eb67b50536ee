package math

import (
	"errors"
	"fmt"
	"math/big"
)

// Tick and sqrt price bounds of the Whirlpool program. Prices are Q64.64;
// MinSqrtPrice and MaxSqrtPrice are the prices of MinTickIndex and
// MaxTickIndex respectively.
const (
	MinTickIndex int32 = -443636
	MaxTickIndex int32 = 443636
)

var (
	MinSqrtPrice = mustBigFromString("4295048016")
	MaxSqrtPrice = mustBigFromString("79226673515401279992447579055")
)

var (
	ErrTickIndexOutOfBounds = errors.New("tick index out of bounds")
	ErrSqrtPriceOutOfBounds = errors.New("sqrt price out of bounds")
)

const tickSearchBitPrecision = 14

var (
	logB2X32               = big.NewInt(59543866431248)
	logBPErrMarginLowerX64 = mustBigFromString("184467440737095516")
	logBPErrMarginUpperX64 = mustBigFromString("15793534762490258745")
)

// Per-bit sqrt price ratios, Q64.64. Index i is sqrt(1.0001)^-(2^i) << 64,
// starting at bit 0.
var tickBitRatios = [...]*big.Int{
	mustBigFromString("18445821805675395072"),
	mustBigFromString("18444899583751176192"),
	mustBigFromString("18443055278223355904"),
	mustBigFromString("18439367220385607680"),
	mustBigFromString("18431993317065453568"),
	mustBigFromString("18417254355718170624"),
	mustBigFromString("18387811781193609216"),
	mustBigFromString("18329067761203558400"),
	mustBigFromString("18212142134806163456"),
	mustBigFromString("17980523815641700352"),
	mustBigFromString("17526086738831433728"),
	mustBigFromString("16651378430235570176"),
	mustBigFromString("15030750278694412288"),
	mustBigFromString("12247334978884435968"),
	mustBigFromString("8131365268886854656"),
	mustBigFromString("3584323654725218816"),
	mustBigFromString("696457651848324352"),
	mustBigFromString("26294789957507116"),
	mustBigFromString("37481735321082"),
}

var q64One = new(big.Int).Lsh(oneBig, 64)

func mustBigFromString(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big integer literal: " + s)
	}
	return v
}

func mulRightShift64(a, b *big.Int) *big.Int {
	return new(big.Int).Rsh(new(big.Int).Mul(a, b), 64)
}

// SqrtPriceFromTickIndex returns the exact Q64.64 sqrt price of a tick.
func SqrtPriceFromTickIndex(tick int32) (*big.Int, error) {
	if tick < MinTickIndex || tick > MaxTickIndex {
		return nil, fmt.Errorf("%w: %d", ErrTickIndexOutOfBounds, tick)
	}
	tickAbs := tick
	if tickAbs < 0 {
		tickAbs = -tickAbs
	}

	var ratio *big.Int
	if tickAbs&1 != 0 {
		ratio = new(big.Int).Set(tickBitRatios[0])
	} else {
		ratio = new(big.Int).Set(q64One)
	}
	for i := 1; i < len(tickBitRatios); i++ {
		if tickAbs&(1<<uint(i)) != 0 {
			ratio = mulRightShift64(ratio, tickBitRatios[i])
		}
	}

	if tick > 0 {
		ratio = new(big.Int).Div(MaxU128, ratio)
	}
	return ratio, nil
}

// TickIndexFromSqrtPrice returns the largest tick whose sqrt price is less
// than or equal to the given Q64.64 sqrt price.
func TickIndexFromSqrtPrice(sqrtPrice *big.Int) (int32, error) {
	if sqrtPrice.Cmp(MinSqrtPrice) < 0 || sqrtPrice.Cmp(MaxSqrtPrice) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrSqrtPriceOutOfBounds, sqrtPrice)
	}

	msb := sqrtPrice.BitLen() - 1
	log2pIntegerX32 := big.NewInt(int64(msb-64) << 32)

	var r *big.Int
	if msb >= 64 {
		r = new(big.Int).Rsh(sqrtPrice, uint(msb-63))
	} else {
		r = new(big.Int).Lsh(sqrtPrice, uint(63-msb))
	}

	bit := new(big.Int).Lsh(oneBig, 63)
	log2pFractionX64 := new(big.Int)
	for precision := 0; bit.Sign() > 0 && precision < tickSearchBitPrecision; precision++ {
		r.Mul(r, r)
		rMoreThanTwo := new(big.Int).Rsh(r, 127)
		r.Rsh(r, uint(63+rMoreThanTwo.Int64()))
		log2pFractionX64.Add(log2pFractionX64, new(big.Int).Mul(bit, rMoreThanTwo))
		bit.Rsh(bit, 1)
	}

	log2pFractionX32 := new(big.Int).Rsh(log2pFractionX64, 32)
	log2pX32 := new(big.Int).Add(log2pIntegerX32, log2pFractionX32)
	logbpX64 := new(big.Int).Mul(log2pX32, logB2X32)

	// Rsh on a negative big.Int floors, which is exactly the arithmetic
	// shift the fixed-point log needs.
	tickLow := int32(new(big.Int).Rsh(new(big.Int).Sub(logbpX64, logBPErrMarginLowerX64), 64).Int64())
	tickHigh := int32(new(big.Int).Rsh(new(big.Int).Add(logbpX64, logBPErrMarginUpperX64), 64).Int64())

	if tickLow == tickHigh {
		return tickLow, nil
	}
	derived, err := SqrtPriceFromTickIndex(tickHigh)
	if err != nil {
		return 0, err
	}
	if derived.Cmp(sqrtPrice) <= 0 {
		return tickHigh, nil
	}
	return tickLow, nil
}
