package whirlpoolgo

import (
	"github.com/krazyTry/whirlpool-go/whirlpool"
)

// SwapQuoteByInput quotes an exact-in swap against decoded pool state.
//
// Example:
//
// quote, _ := SwapQuoteByInput(pool, tickArrays, pool.TokenMintA, amountIn, whirlpool.PercentageFromBps(50))
//
// quote.EstimatedAmountOut is the expected output, quote.OtherAmountThreshold
// the slippage adjusted minimum.
var SwapQuoteByInput = whirlpool.SwapQuoteByInputToken

// SwapQuoteByOutput quotes an exact-out swap against decoded pool state.
//
// Example:
//
// quote, _ := SwapQuoteByOutput(pool, tickArrays, pool.TokenMintB, amountOut, whirlpool.PercentageFromBps(50))
var SwapQuoteByOutput = whirlpool.SwapQuoteByOutputToken

// SwapQuoteWithParams runs a swap simulation with explicit parameters.
//
// Example:
//
// quote, _ := SwapQuoteWithParams(param, whirlpool.PercentageFromBps(100))
var SwapQuoteWithParams = whirlpool.SwapQuoteWithParams
