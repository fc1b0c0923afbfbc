package money

import "errors"

// Sentinel errors returned by this package.
// Errors produced by operations are wrapped with context, so callers should
// classify them with [errors.Is] rather than direct comparison.
var (
	// ErrInvalidCurrency indicates a malformed currency code or an
	// out-of-range numeric code, decimal-places count, or country code.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrUnknownCurrency indicates a lookup for a currency that has not
	// been registered in the catalog.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrDuplicateCurrency indicates a registration that collides with an
	// already registered code, numeric code, or country code.
	ErrDuplicateCurrency = errors.New("currency already registered")

	// ErrCurrencyMismatch indicates arithmetic or comparison between
	// amounts denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrAmountOverflow indicates that the coefficient of the result does
	// not fit into the supported precision.
	ErrAmountOverflow = errors.New("amount overflow")

	// ErrDivisionByZero indicates division of an amount by a zero factor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRate indicates a non-positive exchange rate or an identity
	// pair whose rate is not exactly 1.
	ErrInvalidRate = errors.New("invalid exchange rate")

	// ErrNotExchangeable indicates that the currency of an amount matches
	// neither side of the exchange rate.
	ErrNotExchangeable = errors.New("amount not exchangeable")

	// ErrNoCommonCurrency indicates two exchange rates that do not share
	// a currency and therefore cannot be combined.
	ErrNoCommonCurrency = errors.New("no common currency")

	// ErrCorruptedStream indicates a binary stream with an unrecognized
	// type tag or a truncated payload.
	ErrCorruptedStream = errors.New("corrupted stream")

	// ErrCodecMismatch indicates a decoded currency whose numeric code or
	// decimal places disagree with the locally registered descriptor.
	ErrCodecMismatch = errors.New("serialized currency mismatch")
)
