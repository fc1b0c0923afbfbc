package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Amount represents an immutable monetary value: a currency and a decimal.
//
// The decimal value is stored as an integer coefficient and a non-negative
// scale; no binary floating point is involved at any point. The scale of an
// amount is always at least the scale of its currency, so a freshly
// constructed USD amount carries at least 2 decimal places. Arithmetic keeps
// the full precision of its operands (the unrounded form); use
// [Amount.RoundToCurr] or [Amount.Rescale] to normalize to currency-native
// scale with an explicit rounding mode.
//
// The zero value corresponds to "XXX 0" with an unknown currency and is not
// usable in arithmetic against registered currencies.
type Amount struct {
	curr  *Currency
	value decimal.Decimal
}

// newAmountUnsafe creates a new amount without checking the scale.
func newAmountUnsafe(c *Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe creates a new amount, zero-padding the value to the scale of
// the currency.
func newAmountSafe(c *Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", ErrAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// NewAmount returns an amount with the given currency and value.
// If the scale of the value is less than the scale of the currency, the
// result is zero-padded to the right.
func NewAmount(curr *Currency, value decimal.Decimal) (Amount, error) {
	if curr == nil {
		return Amount{}, fmt.Errorf("creating amount: %w: nil currency", ErrInvalidCurrency)
	}
	return newAmountSafe(curr, value)
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be
// constructed. It simplifies initialization of variables holding amounts.
func MustNewAmount(curr *Currency, value decimal.Decimal) Amount {
	a, err := NewAmount(curr, value)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", curr, value, err))
	}
	return a
}

// NewAmountFromMinorUnits converts an integer representing minor units of
// the currency (e.g. cents, pennies, baisa) to an amount.
// See also method [Amount.MinorUnits].
func NewAmountFromMinorUnits(curr *Currency, units int64) (Amount, error) {
	if curr == nil {
		return Amount{}, fmt.Errorf("creating amount: %w: nil currency", ErrInvalidCurrency)
	}
	d, err := decimal.New(units, curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	return newAmountSafe(curr, d)
}

// ParseAmount resolves the currency code through the catalog and converts
// the decimal string to an amount.
// If the scale of the amount is less than the scale of the currency, the
// result is zero-padded to the right.
func ParseAmount(cat *Catalog, curr, amount string) (Amount, error) {
	c, err := cat.Resolve(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings
// cannot be parsed. It simplifies construction of test fixtures.
func MustParseAmount(cat *Catalog, curr, amount string) Amount {
	a, err := ParseAmount(cat, curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() *Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsNeg returns true if the amount is less than zero.
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns true if the amount is greater than zero.
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// IsZero returns true if the amount is equal to zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.curr, a.value.Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.curr, a.value.Neg())
}

// Zero returns an amount with a value of 0, having the same currency and
// scale as amount a.
func (a Amount) Zero() Amount {
	return newAmountUnsafe(a.curr, a.value.Zero())
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// MinScale returns the smallest scale that the amount can be rescaled to
// without rounding.
func (a Amount) MinScale() int {
	return a.value.MinScale()
}

// SameCurr returns true if amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// SameScale returns true if amounts have the same scale.
func (a Amount) SameScale(b Amount) bool {
	return a.value.SameScale(b.value)
}

// SameScaleAsCurr returns true if the scale of the amount is equal to the
// scale of its currency.
func (a Amount) SameScaleAsCurr() bool {
	return a.Scale() == a.curr.Scale()
}

// Add returns the sum of amounts a and b at the scale of the wider operand.
//
// Add returns an error if the amounts are denominated in different
// currencies or if the coefficient of the result overflows the supported
// precision.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	d, err := a.value.AddExact(b.value, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	return newAmountSafe(a.curr, d)
}

// Sub returns the difference between amounts a and b at the scale of the
// wider operand.
//
// Sub returns an error if the amounts are denominated in different
// currencies or if the coefficient of the result overflows the supported
// precision.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	d, err := a.value.SubExact(b.value, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	return newAmountSafe(a.curr, d)
}

// Mul returns the product of amount a and factor e, keeping the full
// precision of the result (the unrounded form).
// See also method [Amount.MulRound].
//
// Mul returns an error if the coefficient of the result overflows the
// supported precision.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	d, err := a.value.MulExact(e, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w: %v", a, e, ErrAmountOverflow, err)
	}
	return newAmountSafe(a.curr, d)
}

// MulRound returns the product of amount a and factor e rounded to the scale
// of the currency using the given rounding mode.
func (a Amount) MulRound(e decimal.Decimal, r Rounding) (Amount, error) {
	c, err := a.Mul(e)
	if err != nil {
		return Amount{}, err
	}
	return c.Rescale(a.curr.Scale(), r)
}

// Quo returns the quotient of amount a and divisor e, keeping as much
// precision of the result as representable (the unrounded form).
// See also method [Amount.QuoRound].
//
// Quo returns an error if the divisor is zero or if the coefficient of the
// result overflows the supported precision.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	d, err := a.value.QuoExact(e, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w: %v", a, e, ErrAmountOverflow, err)
	}
	return newAmountSafe(a.curr, d)
}

// QuoRound returns the quotient of amount a and divisor e rounded to the
// scale of the currency using the given rounding mode.
func (a Amount) QuoRound(e decimal.Decimal, r Rounding) (Amount, error) {
	c, err := a.Quo(e)
	if err != nil {
		return Amount{}, err
	}
	return c.Rescale(a.curr.Scale(), r)
}

// Rescale re-expresses the amount at the given scale, rounding discarded
// digits with the given mode. The scale is never reduced below the scale of
// the currency.
func (a Amount) Rescale(scale int, r Rounding) (Amount, error) {
	scale = max(scale, a.curr.Scale())
	d, err := r.apply(a.value, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("rescaling %v to %d: %w", a, scale, err)
	}
	return newAmountUnsafe(a.curr, d), nil
}

// RoundToCurr returns the amount rounded to the scale of its currency using
// the given rounding mode, producing the currency-scaled form.
func (a Amount) RoundToCurr(r Rounding) (Amount, error) {
	return a.Rescale(a.curr.Scale(), r)
}

// Trim returns an amount with trailing zeros removed up to the given scale.
// The scale is never reduced below the scale of the currency.
func (a Amount) Trim(scale int) Amount {
	scale = max(scale, a.curr.Scale())
	return newAmountUnsafe(a.curr, a.value.Trim(scale))
}

// TrimToCurr returns an amount with trailing zeros removed up to the scale
// of its currency.
func (a Amount) TrimToCurr() Amount {
	return a.Trim(a.curr.Scale())
}

// MinorUnits returns the amount expressed in minor units of its currency
// (e.g. cents), rounding any extra fractional digits with the given mode.
// See also constructor [NewAmountFromMinorUnits].
//
// MinorUnits returns an error if the result cannot be represented as int64.
func (a Amount) MinorUnits(r Rounding) (int64, error) {
	b, err := a.RoundToCurr(r)
	if err != nil {
		return 0, err
	}
	d := b.Decimal()
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, fmt.Errorf("converting %v to minor units: %w", a, ErrAmountOverflow)
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("converting %v to minor units: %w", a, ErrAmountOverflow)
	}
	return int64(u), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if the amounts are denominated in different
// currencies; amounts of different currencies have no order.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// CmpAbs compares the absolute values of amounts.
// See also method [Amount.Cmp].
func (a Amount) CmpAbs(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [abs(%v)] and [abs(%v)]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.CmpAbs(b.value), nil
}

// Min returns the smaller amount.
//
// Min returns an error if the amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0:
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if the amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0:
		return a, nil
	default:
		return b, nil
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount, e.g. "USD 12.34".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	var buf [32]byte
	pos := len(buf) - 1
	coef := a.value.Coef()
	scale := a.value.Scale()

	// Coefficient
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef == 0 && scale == 0 {
			break
		}
	}

	// Sign
	if a.value.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	// Delimiter
	buf[pos] = ' '
	pos--

	// Currency
	curr := a.curr.Code()
	for i := len(curr) - 1; i >= 0; i-- {
		buf[pos] = curr[i]
		pos--
	}

	return string(buf[pos+1:])
}
