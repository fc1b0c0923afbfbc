package money

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// ErrInvalidRounding indicates an unrecognized rounding mode name.
var ErrInvalidRounding = errors.New("invalid rounding mode")

// Rounding selects the rule applied when an operation reduces the scale of
// a decimal value. Operations in this package never round implicitly: every
// scale-reducing call either takes a Rounding argument or uses the mode fixed
// at construction time (see [Converter]).
type Rounding int

const (
	// RoundHalfEven rounds to the nearest neighbor, ties to even
	// (banker's rounding).
	RoundHalfEven Rounding = iota

	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp

	// RoundDown rounds toward zero (truncation).
	RoundDown

	// RoundUp rounds away from zero.
	RoundUp

	// RoundCeil rounds toward positive infinity.
	RoundCeil

	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

// ParseRounding converts a string to a rounding mode.
// Accepted values are "half-even", "half-up", "down", "up", "ceil", "floor".
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "half-even":
		return RoundHalfEven, nil
	case "half-up":
		return RoundHalfUp, nil
	case "down":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	case "ceil":
		return RoundCeil, nil
	case "floor":
		return RoundFloor, nil
	}
	return 0, fmt.Errorf("parsing rounding mode %q: %w", s, ErrInvalidRounding)
}

// String implements the [fmt.Stringer] interface.
func (r Rounding) String() string {
	switch r {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfUp:
		return "half-up"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundCeil:
		return "ceil"
	case RoundFloor:
		return "floor"
	}
	return fmt.Sprintf("Rounding(%d)", int(r))
}

// apply rescales d to the given scale using the selected rule.
// The result always carries exactly the requested scale.
func (r Rounding) apply(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	var (
		e   decimal.Decimal
		err error
	)
	switch r {
	case RoundHalfEven:
		e = d.Round(scale)
	case RoundDown:
		e = d.Trunc(scale)
	case RoundCeil:
		e = d.Ceil(scale)
	case RoundFloor:
		e = d.Floor(scale)
	case RoundUp:
		e, err = roundAway(d, scale)
	case RoundHalfUp:
		e, err = roundHalfAway(d, scale)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidRounding, r)
	}
	if err != nil {
		return decimal.Decimal{}, err
	}
	e = e.Pad(scale)
	if e.Scale() < scale {
		return decimal.Decimal{}, ErrAmountOverflow
	}
	return e, nil
}

// roundAway truncates to the given scale and, if anything was discarded,
// steps one unit in the last place away from zero.
func roundAway(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	t := d.Trunc(scale)
	if t.Cmp(d) == 0 {
		return t, nil
	}
	u, err := decimal.New(1, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return t.Add(u.CopySign(d))
}

// roundHalfAway rounds to the nearest neighbor, resolving ties away from zero.
func roundHalfAway(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	t := d.Trunc(scale)
	rem, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	twice, err := rem.Add(rem)
	if err != nil {
		return decimal.Decimal{}, err
	}
	u, err := decimal.New(1, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if twice.Abs().Cmp(u) < 0 {
		return t, nil
	}
	return t.Add(u.CopySign(d))
}
