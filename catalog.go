package money

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Catalog is a registry of currency descriptors indexed by alphabetic code,
// numeric code, and country code.
//
// A catalog is append-mostly: currencies are registered once, typically at
// startup, and are never removed or replaced. Registration is serialized by
// a mutex, while lookups read an immutable snapshot that is swapped
// atomically on each successful registration. Lookups therefore never block
// and never observe a half-registered currency.
//
// Construct catalogs with [NewCatalog] and pass them explicitly to the
// components that need currency resolution; there is no package-level
// default.
type Catalog struct {
	mu   sync.Mutex // serializes Register
	snap atomic.Pointer[catalogSnapshot]
}

// catalogSnapshot holds the committed state of a catalog.
// Snapshots are immutable: Register builds a new one and swaps the pointer.
type catalogSnapshot struct {
	byCode    map[string]*Currency
	byNum     map[int16]*Currency
	byCountry map[string]*Currency
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	t := &Catalog{}
	t.snap.Store(&catalogSnapshot{
		byCode:    map[string]*Currency{},
		byNum:     map[int16]*Currency{},
		byCountry: map[string]*Currency{},
	})
	return t
}

// Register adds a currency to the catalog and returns its descriptor.
//
// The code must be exactly 3 uppercase ASCII letters, the numeric code must
// be in [-1, 999] (-1 meaning none), the decimal places must be in [-1, 30]
// (-1 meaning a pseudo-currency), and every country code must be exactly
// 2 uppercase ASCII letters. Descriptor construction further restricts
// decimal places to at most 3, the widest scale used by circulating
// currencies.
//
// Register fails with [ErrDuplicateCurrency] if the code, the numeric code
// (when present), or any of the country codes is already taken. Registration
// is atomic across all three indexes: on failure the catalog is unchanged.
func (t *Catalog) Register(code string, numericCode, decimalPlaces int, countryCodes ...string) (*Currency, error) {
	c, err := t.register(code, numericCode, decimalPlaces, countryCodes)
	if err != nil {
		return nil, fmt.Errorf("registering currency %q: %w", code, err)
	}
	return c, nil
}

func (t *Catalog) register(code string, numericCode, decimalPlaces int, countryCodes []string) (*Currency, error) {
	if !validCode(code) {
		return nil, fmt.Errorf("%w: code must be 3 uppercase letters", ErrInvalidCurrency)
	}
	if decimalPlaces < -1 || decimalPlaces > 30 {
		return nil, fmt.Errorf("%w: decimal places %d out of range [-1, 30]", ErrInvalidCurrency, decimalPlaces)
	}
	for _, cc := range countryCodes {
		if !validCountry(cc) {
			return nil, fmt.Errorf("%w: country code %q must be 2 uppercase letters", ErrInvalidCurrency, cc)
		}
	}
	c, err := newCurrency(code, numericCode, decimalPlaces)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	old := t.snap.Load()
	if _, ok := old.byCode[code]; ok {
		return nil, fmt.Errorf("%w: code %q", ErrDuplicateCurrency, code)
	}
	if c.num >= 0 {
		if d, ok := old.byNum[c.num]; ok {
			return nil, fmt.Errorf("%w: numeric code %d used by %q", ErrDuplicateCurrency, c.num, d.Code())
		}
	}
	for _, cc := range countryCodes {
		if d, ok := old.byCountry[cc]; ok {
			return nil, fmt.Errorf("%w: country %q mapped to %q", ErrDuplicateCurrency, cc, d.Code())
		}
	}

	next := &catalogSnapshot{
		byCode:    make(map[string]*Currency, len(old.byCode)+1),
		byNum:     make(map[int16]*Currency, len(old.byNum)+1),
		byCountry: make(map[string]*Currency, len(old.byCountry)+len(countryCodes)),
	}
	for k, v := range old.byCode {
		next.byCode[k] = v
	}
	for k, v := range old.byNum {
		next.byNum[k] = v
	}
	for k, v := range old.byCountry {
		next.byCountry[k] = v
	}
	next.byCode[code] = c
	if c.num >= 0 {
		next.byNum[c.num] = c
	}
	for _, cc := range countryCodes {
		next.byCountry[cc] = c
	}
	t.snap.Store(next)
	return c, nil
}

// MustRegister is like [Catalog.Register] but panics on failure.
// It simplifies construction of test fixtures with private currency sets.
func (t *Catalog) MustRegister(code string, numericCode, decimalPlaces int, countryCodes ...string) *Currency {
	c, err := t.Register(code, numericCode, decimalPlaces, countryCodes...)
	if err != nil {
		panic(fmt.Sprintf("Register(%q, %v, %v, %v) failed: %v", code, numericCode, decimalPlaces, countryCodes, err))
	}
	return c
}

// Resolve returns the currency registered under the given alphabetic code.
// Resolve fails with [ErrUnknownCurrency] if the code is not registered.
func (t *Catalog) Resolve(code string) (*Currency, error) {
	if c, ok := t.snap.Load().byCode[code]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("resolving %q: %w", code, ErrUnknownCurrency)
}

// MustResolve is like [Catalog.Resolve] but panics if the code is unknown.
func (t *Catalog) MustResolve(code string) *Currency {
	c, err := t.Resolve(code)
	if err != nil {
		panic(fmt.Sprintf("Resolve(%q) failed: %v", code, err))
	}
	return c
}

// ResolveNumeric returns the currency registered under the given numeric
// code. The input is a 1- to 3-digit decimal string; leading zeros are
// accepted, so "40", "040", and "0040" are not distinguished beyond the
// 3-digit length limit.
func (t *Catalog) ResolveNumeric(num string) (*Currency, error) {
	if len(num) < 1 || len(num) > 3 {
		return nil, fmt.Errorf("resolving numeric code %q: %w", num, ErrUnknownCurrency)
	}
	n := 0
	for i := 0; i < len(num); i++ {
		b := num[i]
		if b < '0' || b > '9' {
			return nil, fmt.Errorf("resolving numeric code %q: %w", num, ErrUnknownCurrency)
		}
		n = n*10 + int(b-'0')
	}
	if c, ok := t.snap.Load().byNum[int16(n)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("resolving numeric code %q: %w", num, ErrUnknownCurrency)
}

// ResolveCountry returns the currency used in the given country, identified
// by its 2-letter country code.
func (t *Catalog) ResolveCountry(countryCode string) (*Currency, error) {
	if c, ok := t.snap.Load().byCountry[countryCode]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("resolving country %q: %w", countryCode, ErrUnknownCurrency)
}

// Currencies returns all registered currencies sorted by alphabetic code.
// The result is a snapshot: registrations made after the call are not
// reflected in the returned slice.
func (t *Catalog) Currencies() []*Currency {
	snap := t.snap.Load()
	res := make([]*Currency, 0, len(snap.byCode))
	for _, c := range snap.byCode {
		res = append(res, c)
	}
	slices.SortFunc(res, func(a, b *Currency) int {
		return strings.Compare(a.code, b.code)
	})
	return res
}

// Len returns the number of registered currencies.
func (t *Catalog) Len() int {
	return len(t.snap.Load().byCode)
}
