package money

import (
	"fmt"
)

// Currency describes a registered currency: its 3-letter alphabetic code,
// its optional ISO 4217 numeric code, and the number of decimal places used
// by its minor unit.
//
// Currencies are created only by [Catalog.Register], are immutable, and are
// never removed. A catalog hands out exactly one *Currency per code, so two
// descriptors are the same currency if and only if their pointers are equal.
// A nil *Currency behaves as the unknown currency "XXX" with no numeric code
// and no minor unit.
type Currency struct {
	code   string
	num    int16 // ISO 4217 numeric code, -1 if none
	places int8  // decimal places, -1 for pseudo-currencies
}

// maxConstructedPlaces caps decimal places at construction time.
// The registry-facing limit is 30, but every circulating currency uses at
// most 3 decimal places, so descriptors reject anything above that.
const maxConstructedPlaces = 3

// newCurrency validates the descriptor attributes.
// The code must already be checked to be 3 uppercase ASCII letters.
func newCurrency(code string, num, places int) (*Currency, error) {
	if places < -1 || places > maxConstructedPlaces {
		return nil, fmt.Errorf("%w: decimal places %d out of range [-1, %d]", ErrInvalidCurrency, places, maxConstructedPlaces)
	}
	if num < -1 || num > 999 {
		return nil, fmt.Errorf("%w: numeric code %d out of range [-1, 999]", ErrInvalidCurrency, num)
	}
	return &Currency{code: code, num: int16(num), places: int8(places)}, nil
}

// Code returns the 3-letter alphabetic code of the currency.
func (c *Currency) Code() string {
	if c == nil {
		return "XXX"
	}
	return c.code
}

// NumericCode returns the ISO 4217 numeric code, or -1 if the currency does
// not have one.
func (c *Currency) NumericCode() int {
	if c == nil {
		return -1
	}
	return int(c.num)
}

// Num returns the numeric code as a zero-padded 3-digit string, or an empty
// string if the currency does not have a numeric code.
func (c *Currency) Num() string {
	if c == nil || c.num < 0 {
		return ""
	}
	return fmt.Sprintf("%03d", c.num)
}

// DecimalPlaces returns the number of decimal places of the minor unit,
// or -1 for pseudo-currencies such as precious metals.
func (c *Currency) DecimalPlaces() int {
	if c == nil {
		return 0
	}
	return int(c.places)
}

// IsPseudo returns true if the currency has no meaningful minor unit.
func (c *Currency) IsPseudo() bool {
	return c != nil && c.places < 0
}

// Scale returns the number of digits after the decimal point required to
// represent the minor unit of the currency. Pseudo-currencies have scale 0.
func (c *Currency) Scale() int {
	if c == nil || c.places < 0 {
		return 0
	}
	return int(c.places)
}

// String implements the [fmt.Stringer] interface and returns the alphabetic
// code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c *Currency) String() string {
	return c.Code()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the 3-letter code.
// There is no UnmarshalText counterpart: decoding a currency requires the
// catalog that owns its singleton, see [Catalog.Resolve].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c *Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c *Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c *Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	currlen := len(curr)

	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	width := lquote + currlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}
	for i := 0; i < tquote; i++ {
		buf[pos] = '"'
		pos--
	}
	for i := 0; i < currlen; i++ {
		buf[pos] = curr[currlen-i-1]
		pos--
	}
	for i := 0; i < lquote; i++ {
		buf[pos] = '"'
		pos--
	}
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// validCode reports whether s is exactly 3 uppercase ASCII letters.
func validCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// validCountry reports whether s is exactly 2 uppercase ASCII letters.
func validCountry(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= 'A' && s[0] <= 'Z' && s[1] >= 'A' && s[1] <= 'Z'
}
