/*
Package money implements exact monetary values tied to registered currencies.
It builds on the [decimal] package for decimal floating-point arithmetic and
adds a catalog of currency descriptors, currency-checked amounts, exchange
rates, and a compact binary codec.

# Catalog

Unlike libraries that ship a compiled-in currency table, this package keeps
all currency knowledge in an explicitly constructed [Catalog]. Applications
register currencies once at startup (usually through the isodata subpackage)
and resolve them by alphabetic code, numeric code, or country code. A catalog
hands out exactly one [Currency] pointer per code, so currency identity is
pointer identity and descriptors are safe to compare with ==.

# Amounts

An [Amount] is an immutable pair of a currency and a decimal value. All
arithmetic between two amounts requires the same currency; mixing currencies
is reported with [ErrCurrencyMismatch], never silently resolved. Operations
that reduce scale take an explicit [Rounding] mode. The coefficient is a
fixed-width 19-digit integer, so additions and multiplications can fail with
[ErrAmountOverflow].

# Exchange rates

An [ExchangeRate] is an immutable (base, counter, rate) triple where one unit
of the base currency buys rate units of the counter currency. A [Converter]
wraps a single rate together with a fixed scale and rounding mode and
supports inversion, amount conversion in either direction, and combining two
rates through their shared currency.

# Serialization

[Encoder] and [Decoder] implement a private tagged binary format for
currencies and amounts. Decoding always resolves currencies through the local
catalog and cross-checks the embedded numeric code and decimal places, so a
stream produced against a different currency table is rejected instead of
silently importing stale descriptors.

# Errors

All failures are synchronous and wrapped around the exported sentinel errors
in this package, so callers can classify them with [errors.Is].
*/
package money
