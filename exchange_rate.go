package money

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two
// currencies: one unit of the base currency is worth Rate units of the
// counter currency.
//
// An exchange rate is immutable once constructed. The rate is always
// positive, and an identity pair (base equal to counter) must carry a rate
// of exactly 1. Deriving new rates (inversion, combination) is the job of
// [Converter], which replaces its held rate instead of mutating one.
//
// The zero value corresponds to "XXX/XXX 0" and cannot be produced by
// [NewExchRate] or [ParseExchRate].
type ExchangeRate struct {
	base    *Currency
	counter *Currency
	rate    decimal.Decimal
}

// NewExchRate returns a new exchange rate between the base and counter
// currencies.
//
// NewExchRate returns an error if either currency is nil, if the rate is not
// positive, or if base equals counter and the rate is not exactly 1.
func NewExchRate(base, counter *Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if base == nil || counter == nil {
		return ExchangeRate{}, fmt.Errorf("creating exchange rate: %w: nil currency", ErrInvalidCurrency)
	}
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("creating exchange rate %v/%v: %w: rate must be positive", base, counter, ErrInvalidRate)
	}
	if base == counter && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("creating exchange rate %v/%v: %w: identity rate must be equal to 1", base, counter, ErrInvalidRate)
	}
	return ExchangeRate{base: base, counter: counter, rate: rate}, nil
}

// identityRate returns the identity rate for the given currency.
func identityRate(c *Currency) ExchangeRate {
	return ExchangeRate{base: c, counter: c, rate: decimal.MustNew(1, 0)}
}

// ParseExchRate converts the textual form "<base>/<counter> <rate>" to an
// exchange rate, resolving both currency codes through the catalog.
// Codes are case-sensitive and the rate is a plain decimal string, so
// "USD/PLN 3.50" parses and formats back to the identical string.
func ParseExchRate(cat *Catalog, s string) (ExchangeRate, error) {
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate %q: %w: missing '/'", s, ErrInvalidRate)
	}
	space := strings.IndexByte(s[slash:], ' ')
	if space < 0 {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate %q: %w: missing rate", s, ErrInvalidRate)
	}
	space += slash
	b, err := cat.Resolve(s[:slash])
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate %q: base: %w", s, err)
	}
	q, err := cat.Resolve(s[slash+1 : space])
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate %q: counter: %w", s, err)
	}
	d, err := decimal.Parse(s[space+1:])
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate %q: rate: %w", s, err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate %q: %w", s, err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if the string cannot
// be parsed. It simplifies construction of test fixtures.
func MustParseExchRate(cat *Catalog, s string) ExchangeRate {
	r, err := ParseExchRate(cat, s)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q) failed: %v", s, err))
	}
	return r
}

// Base returns the currency being priced.
func (r ExchangeRate) Base() *Currency {
	return r.base
}

// Counter returns the currency the base is priced in.
func (r ExchangeRate) Counter() *Currency {
	return r.counter
}

// Rate returns the decimal value of the exchange rate.
func (r ExchangeRate) Rate() decimal.Decimal {
	return r.rate
}

// IsIdentity returns true if base and counter are the same currency.
func (r ExchangeRate) IsIdentity() bool {
	return r.base == r.counter && r.base != nil
}

// Involves returns true if the given currency is the base or the counter of
// the rate.
func (r ExchangeRate) Involves(c *Currency) bool {
	return c != nil && (c == r.base || c == r.counter)
}

// CanConv returns true if [ExchangeRate.Conv] can convert the given amount,
// that is, if the amount is denominated in the base currency.
func (r ExchangeRate) CanConv(a Amount) bool {
	return a.Curr() == r.base && r.base != nil && r.counter != nil && r.rate.IsPos()
}

// Conv converts an amount denominated in the base currency to the counter
// currency, keeping the full precision of the product (the unrounded form).
// For conversion in either direction with explicit rounding, see
// [Converter.Exchange].
//
// Conv returns an error if the currency of the amount is not the base
// currency or if the coefficient of the result overflows the supported
// precision.
func (r ExchangeRate) Conv(a Amount) (Amount, error) {
	if !r.CanConv(a) {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", a, r, ErrNotExchangeable)
	}
	d, err := r.rate.MulExact(a.Decimal(), r.counter.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v with %v: %w: %v", a, r, ErrAmountOverflow, err)
	}
	return newAmountSafe(r.counter, d)
}

// SameCurr returns true if exchange rates have the same base and the same
// counter currencies.
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return r.base == q.base && r.counter == q.counter
}

// commonCurrencies returns the currencies shared between two rates.
func (r ExchangeRate) commonCurrencies(q ExchangeRate) []*Currency {
	var res []*Currency
	for _, c := range []*Currency{r.base, r.counter} {
		if r.base == r.counter && c == r.counter {
			continue // identity pair contributes one currency
		}
		if q.Involves(c) {
			res = append(res, c)
		}
	}
	return res
}

// String implements the [fmt.Stringer] interface and returns the textual
// form of the exchange rate, e.g. "USD/PLN 3.50".
// The rate is printed as a plain decimal string, never in exponential
// notation, so the output parses back with [ParseExchRate].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.base.Code() + "/" + r.counter.Code() + " " + r.rate.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r ExchangeRate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
