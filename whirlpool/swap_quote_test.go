package whirlpool

import (
	"errors"
	"math/big"
	"testing"

	solana "github.com/gagliardetto/solana-go"
	"github.com/tidwall/gjson"

	"github.com/krazyTry/whirlpool-go/u128"
)

func testQuotePool(t *testing.T) *Whirlpool {
	t.Helper()
	pool := testPool(t, 1_000_000_000_000, 3000, 300)
	pool.TokenMintA = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	pool.TokenMintB = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	return pool
}

func TestSimulateSwapValidations(t *testing.T) {
	pool := testQuotePool(t)
	arrays := emptyDownArrays(t)

	base := SwapQuoteParam{
		Whirlpool:              pool,
		TickArrays:             arrays,
		TokenAmount:            big.NewInt(1000),
		SqrtPriceLimit:         DefaultSqrtPriceLimit(true),
		OtherAmountThreshold:   DefaultOtherAmountThreshold(true),
		AmountSpecifiedIsInput: true,
		AToB:                   true,
	}

	t.Run("limit out of bounds", func(t *testing.T) {
		param := base
		param.SqrtPriceLimit = new(big.Int).Add(MaxSqrtPrice, big.NewInt(1))
		_, err := SimulateSwap(param)
		if !errors.Is(err, ErrSqrtPriceOutOfBounds) {
			t.Fatalf("expected ErrSqrtPriceOutOfBounds, got %v", err)
		}
	})

	t.Run("limit on wrong side", func(t *testing.T) {
		param := base
		param.SqrtPriceLimit = new(big.Int).Set(MaxSqrtPrice)
		_, err := SimulateSwap(param)
		if !errors.Is(err, ErrInvalidSqrtPriceLimitDirection) {
			t.Fatalf("expected ErrInvalidSqrtPriceLimitDirection, got %v", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		param := base
		param.TokenAmount = new(big.Int)
		_, err := SimulateSwap(param)
		if !errors.Is(err, ErrZeroTradableAmount) {
			t.Fatalf("expected ErrZeroTradableAmount, got %v", err)
		}
	})

	t.Run("first array does not cover current tick", func(t *testing.T) {
		param := base
		param.TickArrays = []TickArray{testTickArray(t, -5632, nil)}
		_, err := SimulateSwap(param)
		if !errors.Is(err, ErrTickArraySequenceInvalid) {
			t.Fatalf("expected ErrTickArraySequenceInvalid, got %v", err)
		}
	})

	t.Run("output below minimum", func(t *testing.T) {
		param := base
		param.OtherAmountThreshold = big.NewInt(10_000)
		_, err := SimulateSwap(param)
		if !errors.Is(err, ErrAmountOutBelowMinimum) {
			t.Fatalf("expected ErrAmountOutBelowMinimum, got %v", err)
		}
	})

	t.Run("input above maximum", func(t *testing.T) {
		param := base
		param.AmountSpecifiedIsInput = false
		param.OtherAmountThreshold = big.NewInt(1)
		_, err := SimulateSwap(param)
		if !errors.Is(err, ErrAmountInAboveMaximum) {
			t.Fatalf("expected ErrAmountInAboveMaximum, got %v", err)
		}
	})
}

func TestSimulateSwapQuote(t *testing.T) {
	pool := testQuotePool(t)
	arrays := emptyDownArrays(t)

	quote, err := SimulateSwap(SwapQuoteParam{
		Whirlpool:              pool,
		TickArrays:             arrays,
		TokenAmount:            big.NewInt(1000),
		SqrtPriceLimit:         DefaultSqrtPriceLimit(true),
		OtherAmountThreshold:   DefaultOtherAmountThreshold(true),
		AmountSpecifiedIsInput: true,
		AToB:                   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if quote.EstimatedAmountIn.Int64() != 1000 {
		t.Fatalf("estimated in = %s, want 1000", quote.EstimatedAmountIn)
	}
	if quote.EstimatedAmountOut.Int64() != 996 {
		t.Fatalf("estimated out = %s, want 996", quote.EstimatedAmountOut)
	}
	if quote.EstimatedFeeAmount.Int64() != 3 {
		t.Fatalf("estimated fee = %s, want 3", quote.EstimatedFeeAmount)
	}
	if quote.EstimatedEndTickIndex != -1 {
		t.Fatalf("end tick = %d, want -1", quote.EstimatedEndTickIndex)
	}

	// The step search walked into all three arrays; the reported accounts
	// follow traversal order.
	if !quote.TickArray0.Equals(arrays[0].Address) ||
		!quote.TickArray1.Equals(arrays[1].Address) ||
		!quote.TickArray2.Equals(arrays[2].Address) {
		t.Fatal("tick array accounts not reported in traversal order")
	}
}

func TestSimulateSwapPadsTouchedArrays(t *testing.T) {
	pool := testQuotePool(t)
	// Large liquidity keeps the whole trade inside the first array.
	pool.Liquidity = u128.GenUint128FromString("1000000000000000000")
	arrays := []TickArray{
		testTickArray(t, 0, map[int32]int64{3: 1}),
		testTickArray(t, 5632, nil),
		testTickArray(t, 11264, nil),
	}

	quote, err := SimulateSwap(SwapQuoteParam{
		Whirlpool:              pool,
		TickArrays:             arrays,
		TokenAmount:            big.NewInt(1000),
		SqrtPriceLimit:         DefaultSqrtPriceLimit(false),
		OtherAmountThreshold:   DefaultOtherAmountThreshold(true),
		AmountSpecifiedIsInput: true,
		AToB:                   false,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !quote.TickArray0.Equals(arrays[0].Address) ||
		!quote.TickArray1.Equals(arrays[0].Address) ||
		!quote.TickArray2.Equals(arrays[0].Address) {
		t.Fatal("a single touched array must be repeated to fill all three account slots")
	}
	if quote.EstimatedEndTickIndex != 0 {
		t.Fatalf("a trade too small to reach the next tick ended at %d", quote.EstimatedEndTickIndex)
	}
}

func TestSimulateSwapMonotonicOutput(t *testing.T) {
	pool := testQuotePool(t)

	prevOut := big.NewInt(-1)
	for _, amount := range []int64{1000, 5000, 25_000, 1_000_000, 500_000_000} {
		quote, err := SimulateSwap(SwapQuoteParam{
			Whirlpool:              pool,
			TickArrays:             emptyDownArrays(t),
			TokenAmount:            big.NewInt(amount),
			SqrtPriceLimit:         DefaultSqrtPriceLimit(true),
			OtherAmountThreshold:   DefaultOtherAmountThreshold(true),
			AmountSpecifiedIsInput: true,
			AToB:                   true,
		})
		if err != nil {
			t.Fatalf("amount %d: %v", amount, err)
		}
		if quote.EstimatedAmountOut.Cmp(prevOut) < 0 {
			t.Fatalf("output decreased to %s at input %d", quote.EstimatedAmountOut, amount)
		}
		prevOut = quote.EstimatedAmountOut
	}
}

func TestSwapQuoteWithParamsSlippage(t *testing.T) {
	pool := testQuotePool(t)

	quote, err := SwapQuoteWithParams(SwapQuoteParam{
		Whirlpool:              pool,
		TickArrays:             emptyDownArrays(t),
		TokenAmount:            big.NewInt(1000),
		SqrtPriceLimit:         DefaultSqrtPriceLimit(true),
		OtherAmountThreshold:   DefaultOtherAmountThreshold(true),
		AmountSpecifiedIsInput: true,
		AToB:                   true,
	}, PercentageFromBps(50))
	if err != nil {
		t.Fatal(err)
	}
	// floor(996 * 9950 / 10000)
	if quote.OtherAmountThreshold.Int64() != 991 {
		t.Fatalf("slippage threshold = %s, want 991", quote.OtherAmountThreshold)
	}

	outQuote, err := SwapQuoteWithParams(SwapQuoteParam{
		Whirlpool:              pool,
		TickArrays:             emptyUpArrays(t),
		TokenAmount:            big.NewInt(996),
		SqrtPriceLimit:         DefaultSqrtPriceLimit(false),
		OtherAmountThreshold:   DefaultOtherAmountThreshold(false),
		AmountSpecifiedIsInput: false,
		AToB:                   false,
	}, PercentageFromBps(50))
	if err != nil {
		t.Fatal(err)
	}
	expected := PercentageFromBps(50).AdjustUp(outQuote.EstimatedAmountIn)
	if outQuote.OtherAmountThreshold.Cmp(expected) != 0 {
		t.Fatalf("slippage threshold = %s, want %s", outQuote.OtherAmountThreshold, expected)
	}
}

func TestSwapQuoteByInputToken(t *testing.T) {
	pool := testQuotePool(t)

	quote, err := SwapQuoteByInputToken(pool, emptyDownArrays(t), pool.TokenMintA, big.NewInt(1000), PercentageFromBps(50))
	if err != nil {
		t.Fatal(err)
	}
	if !quote.AToB {
		t.Fatal("selling mint A must trade a to b")
	}
	if quote.EstimatedAmountOut.Int64() != 996 {
		t.Fatalf("estimated out = %s, want 996", quote.EstimatedAmountOut)
	}

	quote, err = SwapQuoteByInputToken(pool, emptyUpArrays(t), pool.TokenMintB, big.NewInt(1000), PercentageFromBps(50))
	if err != nil {
		t.Fatal(err)
	}
	if quote.AToB {
		t.Fatal("selling mint B must trade b to a")
	}

	_, err = SwapQuoteByInputToken(pool, emptyDownArrays(t), solana.NewWallet().PublicKey(), big.NewInt(1000), PercentageFromBps(50))
	if err == nil {
		t.Fatal("a mint that is not in the pool must be rejected")
	}
}

func TestSwapQuoteByOutputToken(t *testing.T) {
	pool := testQuotePool(t)

	quote, err := SwapQuoteByOutputToken(pool, emptyUpArrays(t), pool.TokenMintA, big.NewInt(5_000_000), PercentageFromBps(50))
	if err != nil {
		t.Fatal(err)
	}
	if quote.AToB {
		t.Fatal("buying mint A must trade b to a")
	}
	if quote.AmountSpecifiedIsInput {
		t.Fatal("output token quote must be output specified")
	}
	if quote.EstimatedAmountOut.Int64() != 5_000_000 {
		t.Fatalf("estimated out = %s, want the requested 5000000", quote.EstimatedAmountOut)
	}
}

func TestSwapQuoteByInputTokenWithDevFees(t *testing.T) {
	pool := testQuotePool(t)

	quote, err := SwapQuoteByInputTokenWithDevFees(
		pool, emptyDownArrays(t), pool.TokenMintA, big.NewInt(1000),
		PercentageFromBps(50), PercentageFromFraction(1, 100))
	if err != nil {
		t.Fatal(err)
	}
	if quote.DevFeeAmount.Int64() != 10 {
		t.Fatalf("dev fee = %s, want 10", quote.DevFeeAmount)
	}
	// The curve swaps 990; the reported input includes the dev fee again.
	if quote.EstimatedAmountIn.Int64() != 1000 {
		t.Fatalf("estimated in = %s, want 1000", quote.EstimatedAmountIn)
	}
	if quote.EstimatedAmountOut.Int64() != 986 {
		t.Fatalf("estimated out = %s, want 986", quote.EstimatedAmountOut)
	}
	if quote.EstimatedSwapFeeAmount.Int64() != 3 {
		t.Fatalf("swap fee = %s, want 3", quote.EstimatedSwapFeeAmount)
	}
	if quote.EstimatedFeeAmount.Int64() != 13 {
		t.Fatalf("total fee = %s, want 13", quote.EstimatedFeeAmount)
	}
}

func TestSwapQuoteDevFeeTooLarge(t *testing.T) {
	pool := testQuotePool(t)
	_, err := SwapQuoteByInputTokenWithDevFees(
		pool, emptyDownArrays(t), pool.TokenMintA, big.NewInt(1000),
		PercentageFromBps(50), PercentageFromFraction(100, 100))
	if !errors.Is(err, ErrInvalidDevFeePercentage) {
		t.Fatalf("expected ErrInvalidDevFeePercentage, got %v", err)
	}
}

// Quote scenarios defined as JSON, the shape integration fixtures come in.
const swapQuoteFixtures = `{
  "scenarios": [
    {"name": "small exact in", "amount": "1000", "aToB": true, "expectedOut": "996", "expectedFee": "3"},
    {"name": "crossing exact in", "amount": "6439520289", "aToB": true, "expectedOut": "6379245683", "expectedFee": "19318561"}
  ]
}`

func TestSwapQuoteFixtures(t *testing.T) {
	gjson.Get(swapQuoteFixtures, "scenarios").ForEach(func(_, scenario gjson.Result) bool {
		name := scenario.Get("name").String()
		t.Run(name, func(t *testing.T) {
			pool := testQuotePool(t)
			arrays := []TickArray{
				testTickArray(t, 0, nil),
				testTickArray(t, -5632, map[int32]int64{86: -100_000_000_000}),
				testTickArray(t, -11264, nil),
			}
			amount, ok := new(big.Int).SetString(scenario.Get("amount").String(), 10)
			if !ok {
				t.Fatalf("bad amount in fixture %q", name)
			}
			quote, err := SimulateSwap(SwapQuoteParam{
				Whirlpool:              pool,
				TickArrays:             arrays,
				TokenAmount:            amount,
				SqrtPriceLimit:         DefaultSqrtPriceLimit(scenario.Get("aToB").Bool()),
				OtherAmountThreshold:   DefaultOtherAmountThreshold(true),
				AmountSpecifiedIsInput: true,
				AToB:                   scenario.Get("aToB").Bool(),
			})
			if err != nil {
				t.Fatal(err)
			}
			if quote.EstimatedAmountOut.String() != scenario.Get("expectedOut").String() {
				t.Fatalf("estimated out = %s, want %s", quote.EstimatedAmountOut, scenario.Get("expectedOut").String())
			}
			if quote.EstimatedFeeAmount.String() != scenario.Get("expectedFee").String() {
				t.Fatalf("estimated fee = %s, want %s", quote.EstimatedFeeAmount, scenario.Get("expectedFee").String())
			}
		})
		return true
	})
}
