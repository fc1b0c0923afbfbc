package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Converter performs derived-rate operations on a single held exchange rate:
// inversion, conversion of amounts in either direction, and combination with
// another rate through a shared currency.
//
// The scale and rounding mode used for every derived rate are fixed when the
// converter is constructed, not passed per call, so repeated operations on
// the same converter are comparable. Transforming calls ([Converter.Invert],
// [Converter.Combine]) return the newly computed rate and replace the held
// one; the previous [ExchangeRate] value remains valid, it is simply no
// longer held.
//
// A Converter is a small state machine and is not safe for concurrent use.
type Converter struct {
	rate     ExchangeRate
	scale    int
	rounding Rounding
}

// NewConverter returns a converter holding the given rate.
// Derived rates are computed to the given scale using the given rounding
// mode.
func NewConverter(rate ExchangeRate, scale int, rounding Rounding) (*Converter, error) {
	if rate.Rate().IsZero() {
		return nil, fmt.Errorf("creating converter: %w: zero rate", ErrInvalidRate)
	}
	if scale < 0 || scale > decimal.MaxScale {
		return nil, fmt.Errorf("creating converter: scale %d out of range [0, %d]", scale, decimal.MaxScale)
	}
	return &Converter{rate: rate, scale: scale, rounding: rounding}, nil
}

// Rate returns the currently held exchange rate.
func (v *Converter) Rate() ExchangeRate {
	return v.rate
}

// Invert replaces the held rate (base, counter, rate) with
// (counter, base, 1/rate), computed to the converter's scale and rounding
// mode, and returns the new rate.
func (v *Converter) Invert() (ExchangeRate, error) {
	inv, err := v.invert(v.rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", v.rate, err)
	}
	v.rate = inv
	return inv, nil
}

func (v *Converter) invert(r ExchangeRate) (ExchangeRate, error) {
	one := decimal.MustNew(1, 0)
	d, err := one.Quo(r.rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	d, err = v.rounding.apply(d, v.scale)
	if err != nil {
		return ExchangeRate{}, err
	}
	if !d.IsPos() {
		return ExchangeRate{}, fmt.Errorf("%w: inverse rounds to zero at scale %d", ErrInvalidRate, v.scale)
	}
	return NewExchRate(r.counter, r.base, d)
}

// Exchange converts the amount to the other side of the held rate, rounding
// the result to the scale of the target currency with the converter's
// rounding mode.
//
// If the amount is denominated in the base currency, the result is
// denominated in the counter currency and equals amount * rate. If it is
// denominated in the counter currency, the rate is inverted for this call
// only (the held rate is not modified) and the result is denominated in the
// base currency. Otherwise Exchange fails with [ErrNotExchangeable].
func (v *Converter) Exchange(a Amount) (Amount, error) {
	b, err := v.exchange(a)
	if err != nil {
		return Amount{}, fmt.Errorf("exchanging %v with %v: %w", a, v.rate, err)
	}
	return b, nil
}

func (v *Converter) exchange(a Amount) (Amount, error) {
	r := v.rate
	switch a.Curr() {
	case r.base:
		return v.apply(r.rate, a, r.counter)
	case r.counter:
		inv, err := v.invert(r)
		if err != nil {
			return Amount{}, err
		}
		return v.apply(inv.rate, a, r.base)
	}
	return Amount{}, ErrNotExchangeable
}

// apply multiplies the amount by the rate and rounds to the scale of the
// target currency.
func (v *Converter) apply(rate decimal.Decimal, a Amount, target *Currency) (Amount, error) {
	d, err := rate.Mul(a.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	d, err = v.rounding.apply(d, target.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(target, d)
}

// Combine derives the rate between the two currencies that the held rate and
// the other rate do not share, replaces the held rate with it, and returns
// it.
//
// Both rates are first normalized so that the shared currency is their
// counter (inverting whichever rate does not already have it there). The
// derived rate is heldNormalized / otherNormalized at the converter's scale,
// with trailing zeros stripped; its base is the held rate's normalized base
// and its counter is the other rate's normalized base.
//
// If the two rates involve the same currency pair, the result is the
// identity rate for the held rate's base, regardless of the rate magnitudes.
// If the rates share no currency, Combine fails with [ErrNoCommonCurrency]
// and the held rate is unchanged.
func (v *Converter) Combine(other ExchangeRate) (ExchangeRate, error) {
	res, err := v.combine(other)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("combining %v with %v: %w", v.rate, other, err)
	}
	v.rate = res
	return res, nil
}

func (v *Converter) combine(other ExchangeRate) (ExchangeRate, error) {
	if other.Rate().IsZero() {
		return ExchangeRate{}, fmt.Errorf("%w: zero rate", ErrInvalidRate)
	}
	common := v.rate.commonCurrencies(other)
	switch len(common) {
	case 0:
		return ExchangeRate{}, ErrNoCommonCurrency
	case 2:
		// Same currency pair in either orientation: the rates cancel out
		// even if their magnitudes disagree.
		return identityRate(v.rate.base), nil
	}

	held, err := v.normalize(v.rate, common[0])
	if err != nil {
		return ExchangeRate{}, err
	}
	norm, err := v.normalize(other, common[0])
	if err != nil {
		return ExchangeRate{}, err
	}
	if held.base == norm.base {
		return identityRate(held.base), nil
	}

	d, err := held.rate.Quo(norm.rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	d, err = v.rounding.apply(d, v.scale)
	if err != nil {
		return ExchangeRate{}, err
	}
	d = d.Trim(0)
	if !d.IsPos() {
		return ExchangeRate{}, fmt.Errorf("%w: combined rate rounds to zero at scale %d", ErrInvalidRate, v.scale)
	}
	return NewExchRate(held.base, norm.base, d)
}

// normalize returns the rate re-oriented so that the given currency is its
// counter.
func (v *Converter) normalize(r ExchangeRate, common *Currency) (ExchangeRate, error) {
	if r.counter == common {
		return r, nil
	}
	return v.invert(r)
}
