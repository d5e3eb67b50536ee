package whirlpool

import "errors"

// Quote failures. All are fatal for the call that raised them; none are
// retried internally. Traversal errors mean the caller's tick array window
// is incomplete or mis-ordered and must be re-fetched before re-quoting.
var (
	ErrSqrtPriceOutOfBounds           = errors.New("sqrt price limit out of bounds")
	ErrInvalidSqrtPriceLimitDirection = errors.New("sqrt price limit on wrong side of current price")
	ErrZeroTradableAmount             = errors.New("token amount is zero")

	ErrTickArrayIndexNotInitialized = errors.New("tick array not initialized")
	ErrTickArraySequenceInvalid     = errors.New("tick array sequence invalid")
	ErrTooManyTickArraysCrossed     = errors.New("too many tick arrays crossed")

	ErrAmountOutBelowMinimum = errors.New("amount out below minimum threshold")
	ErrAmountInAboveMaximum  = errors.New("amount in above maximum threshold")

	ErrLiquidityUnderflow      = errors.New("liquidity underflow")
	ErrInvalidDevFeePercentage = errors.New("dev fee percentage must be below 100%")
)
