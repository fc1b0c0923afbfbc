// Package format renders money.Amount values for display.
//
// It is a thin adapter over the stable outputs of the money package
// (currency code, currency scale, and the decimal value) and performs no
// arithmetic of its own. Separator defaults are derived from a BCP 47 locale
// tag; every setting can be overridden explicitly.
package format

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/ledgerkit/money"
)

// Style configures a [Formatter]. The zero value formats like the "en"
// locale: "." decimal point, "," grouping, grouping enabled, pattern "¤ #".
type Style struct {
	// Locale selects default grouping and decimal characters. Explicit
	// Grouping/Decimal values below take precedence.
	Locale language.Tag

	// Grouping is the thousands separator; 0 means the locale default.
	Grouping rune

	// Decimal is the decimal point character; 0 means the locale default.
	Decimal rune

	// NoGrouping disables digit grouping.
	NoGrouping bool

	// ForceDecimal emits the decimal point even when the amount has no
	// fractional digits.
	ForceDecimal bool

	// Positive and Negative are display patterns where '#' stands for the
	// formatted number and '¤' for the currency code. Empty patterns
	// default to "¤ #" and "¤ -#".
	Positive string
	Negative string
}

// Formatter renders amounts according to a fixed style.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	grouping     rune
	decimal      rune
	noGrouping   bool
	forceDecimal bool
	positive     string
	negative     string
}

// separators holds per-locale default characters.
type separators struct {
	grouping rune
	decimal  rune
}

// Locales with distinct separator conventions. Unlisted locales match the
// closest supported tag per BCP 47 matching, falling back to English.
var (
	supported = []language.Tag{
		language.English,            // 1,234.56
		language.German,             // 1.234,56
		language.French,             // 1 234,56
		language.Polish,             // 1 234,56
		language.Swedish,            // 1 234,56
		language.Italian,            // 1.234,56
		language.Spanish,            // 1.234,56
		language.Portuguese,         // 1.234,56
		language.Dutch,              // 1.234,56
		language.Japanese,           // 1,234
		language.MustParse("de-CH"), // 1'234.56
	}

	defaults = map[language.Tag]separators{
		language.English:            {',', '.'},
		language.German:             {'.', ','},
		language.French:             {' ', ','},
		language.Polish:             {' ', ','},
		language.Swedish:            {' ', ','},
		language.Italian:            {'.', ','},
		language.Spanish:            {'.', ','},
		language.Portuguese:         {'.', ','},
		language.Dutch:              {'.', ','},
		language.Japanese:           {',', '.'},
		language.MustParse("de-CH"): {'\'', '.'},
	}

	matcher = language.NewMatcher(supported)
)

// localeSeparators resolves separator defaults for the given locale.
func localeSeparators(tag language.Tag) separators {
	if tag == language.Und {
		return defaults[language.English]
	}
	_, idx, _ := matcher.Match(tag)
	return defaults[supported[idx]]
}

// New returns a formatter for the given style.
func New(style Style) *Formatter {
	sep := localeSeparators(style.Locale)
	f := &Formatter{
		grouping:     sep.grouping,
		decimal:      sep.decimal,
		noGrouping:   style.NoGrouping,
		forceDecimal: style.ForceDecimal,
		positive:     style.Positive,
		negative:     style.Negative,
	}
	if style.Grouping != 0 {
		f.grouping = style.Grouping
	}
	if style.Decimal != 0 {
		f.decimal = style.Decimal
	}
	if f.positive == "" {
		f.positive = "¤ #"
	}
	if f.negative == "" {
		f.negative = "¤ -#"
	}
	return f
}

// Format renders the amount. The numeric part is taken from the amount
// as-is; round to the currency scale first if a fixed number of decimals is
// wanted.
func (f *Formatter) Format(a money.Amount) string {
	pattern := f.positive
	if a.IsNeg() {
		pattern = f.negative
	}
	num := f.number(a)
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '#':
			b.WriteString(num)
		case '¤':
			b.WriteString(a.Curr().Code())
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// number renders the unsigned decimal digits with grouping applied.
func (f *Formatter) number(a money.Amount) string {
	s := a.Decimal().Abs().String()
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	n := len(intPart)
	for i, c := range intPart {
		if !f.noGrouping && i > 0 && (n-i)%3 == 0 {
			b.WriteRune(f.grouping)
		}
		b.WriteRune(c)
	}
	if hasFrac || f.forceDecimal {
		b.WriteRune(f.decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}
