package money

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// Binary type tags. The wire format is a private contract between instances
// of this library and must stay stable across versions that need
// interoperable persistence.
const (
	tagCurrency        byte = 0x01 // currency descriptor
	tagAmount          byte = 0x02 // amount at currency-native scale
	tagAmountUnrounded byte = 0x03 // amount carrying extra precision
)

// Encoder writes currencies and amounts in a compact binary form.
//
// Each value is written as one type tag byte followed by a type-specific
// payload. A currency payload is its code (1-byte length plus bytes), its
// numeric code as a big-endian int16, and its decimal places as one signed
// byte. An amount payload is the currency payload followed by the
// coefficient as length-prefixed big-endian two's-complement bytes and the
// scale as a big-endian int32.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// EncodeCurrency writes the currency descriptor.
func (e *Encoder) EncodeCurrency(c *Currency) error {
	if c == nil {
		return fmt.Errorf("encoding currency: %w: nil currency", ErrInvalidCurrency)
	}
	buf := []byte{tagCurrency}
	buf = appendCurrency(buf, c)
	_, err := e.w.Write(buf)
	return err
}

// EncodeAmount writes the amount. Amounts at their currency-native scale are
// tagged as scaled; amounts carrying extra precision are tagged as
// unrounded. Both forms round-trip exactly.
func (e *Encoder) EncodeAmount(a Amount) error {
	if a.Curr() == nil {
		return fmt.Errorf("encoding amount: %w: nil currency", ErrInvalidCurrency)
	}
	tag := tagAmountUnrounded
	if a.SameScaleAsCurr() {
		tag = tagAmount
	}
	buf := []byte{tag}
	buf = appendCurrency(buf, a.Curr())

	coef := new(big.Int).SetUint64(a.Decimal().Coef())
	if a.Decimal().IsNeg() {
		coef.Neg(coef)
	}
	mant := twosComplement(coef)
	buf = append(buf, byte(len(mant)))
	buf = append(buf, mant...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(a.Scale()))

	_, err := e.w.Write(buf)
	return err
}

func appendCurrency(buf []byte, c *Currency) []byte {
	buf = append(buf, byte(len(c.code)))
	buf = append(buf, c.code...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(c.num))
	buf = append(buf, byte(c.places))
	return buf
}

// Decoder reads values written by [Encoder], resolving every embedded
// currency through the local catalog.
//
// Currency codes are never trusted blindly: the decoded *Currency is always
// the locally registered singleton, and decoding fails with
// [ErrCodecMismatch] if the embedded numeric code or decimal places disagree
// with the local registration.
type Decoder struct {
	r   io.Reader
	cat *Catalog
}

// NewDecoder returns a decoder reading from r and resolving currencies
// through cat.
func NewDecoder(r io.Reader, cat *Catalog) *Decoder {
	return &Decoder{r: r, cat: cat}
}

// Decode reads the next value from the stream and returns either a
// *Currency or an Amount. Decode returns io.EOF at a clean end of stream and
// an error wrapping [ErrCorruptedStream] on an unrecognized type tag or a
// truncated payload.
func (d *Decoder) Decode() (any, error) {
	var tag [1]byte
	if _, err := io.ReadFull(d.r, tag[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("decoding: %w: %v", ErrCorruptedStream, err)
	}
	switch tag[0] {
	case tagCurrency:
		return d.decodeCurrency()
	case tagAmount, tagAmountUnrounded:
		return d.decodeAmount(tag[0])
	}
	return nil, fmt.Errorf("decoding: %w: unknown type tag 0x%02x", ErrCorruptedStream, tag[0])
}

// DecodeCurrency reads a currency from the stream.
func (d *Decoder) DecodeCurrency() (*Currency, error) {
	v, err := d.Decode()
	if err != nil {
		return nil, err
	}
	c, ok := v.(*Currency)
	if !ok {
		return nil, fmt.Errorf("decoding currency: %w: unexpected %T", ErrCorruptedStream, v)
	}
	return c, nil
}

// DecodeAmount reads an amount from the stream.
func (d *Decoder) DecodeAmount() (Amount, error) {
	v, err := d.Decode()
	if err != nil {
		return Amount{}, err
	}
	a, ok := v.(Amount)
	if !ok {
		return Amount{}, fmt.Errorf("decoding amount: %w: unexpected %T", ErrCorruptedStream, v)
	}
	return a, nil
}

// decodeCurrency reads a currency payload and cross-validates it against
// the catalog.
func (d *Decoder) decodeCurrency() (*Currency, error) {
	var hdr [1]byte
	if err := d.readFull(hdr[:]); err != nil {
		return nil, err
	}
	code := make([]byte, hdr[0])
	if err := d.readFull(code); err != nil {
		return nil, err
	}
	var rest [3]byte // int16 numeric code, int8 decimal places
	if err := d.readFull(rest[:]); err != nil {
		return nil, err
	}
	num := int16(binary.BigEndian.Uint16(rest[:2]))
	places := int8(rest[2])

	c, err := d.cat.Resolve(string(code))
	if err != nil {
		return nil, fmt.Errorf("decoding currency: %w", err)
	}
	if c.num != num {
		return nil, fmt.Errorf("decoding currency %q: %w: numeric code %d, registered %d", c.Code(), ErrCodecMismatch, num, c.num)
	}
	if c.places != places {
		return nil, fmt.Errorf("decoding currency %q: %w: decimal places %d, registered %d", c.Code(), ErrCodecMismatch, places, c.places)
	}
	return c, nil
}

// decodeAmount reads an amount payload following the given tag.
func (d *Decoder) decodeAmount(tag byte) (Amount, error) {
	c, err := d.decodeCurrency()
	if err != nil {
		return Amount{}, err
	}
	var hdr [1]byte
	if err := d.readFull(hdr[:]); err != nil {
		return Amount{}, err
	}
	if hdr[0] == 0 {
		return Amount{}, fmt.Errorf("decoding amount: %w: empty coefficient", ErrCorruptedStream)
	}
	mant := make([]byte, hdr[0])
	if err := d.readFull(mant); err != nil {
		return Amount{}, err
	}
	var sc [4]byte
	if err := d.readFull(sc[:]); err != nil {
		return Amount{}, err
	}
	scale := int32(binary.BigEndian.Uint32(sc[:]))
	if scale < 0 || int(scale) > decimal.MaxScale {
		return Amount{}, fmt.Errorf("decoding amount: %w: scale %d out of range", ErrCorruptedStream, scale)
	}

	value, err := decimal.Parse(plainDecimalString(fromTwosComplement(mant), int(scale)))
	if err != nil {
		return Amount{}, fmt.Errorf("decoding amount: %w", err)
	}
	if tag == tagAmount && value.Scale() != c.Scale() {
		return Amount{}, fmt.Errorf("decoding amount: %w: scale %d for scaled %q amount", ErrCodecMismatch, value.Scale(), c.Code())
	}
	return newAmountSafe(c, value)
}

func (d *Decoder) readFull(buf []byte) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return fmt.Errorf("decoding: %w: %v", ErrCorruptedStream, err)
	}
	return nil
}

// twosComplement returns the minimal big-endian two's-complement
// representation of x, one byte at minimum.
func twosComplement(x *big.Int) []byte {
	var bits int
	if x.Sign() < 0 {
		bits = new(big.Int).Not(x).BitLen()
	} else {
		bits = x.BitLen()
	}
	n := bits/8 + 1
	t := new(big.Int).Set(x)
	if x.Sign() < 0 {
		t.Add(t, new(big.Int).Lsh(big.NewInt(1), uint(8*n)))
	}
	buf := make([]byte, n)
	t.FillBytes(buf)
	return buf
}

// fromTwosComplement interprets big-endian two's-complement bytes.
func fromTwosComplement(b []byte) *big.Int {
	x := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return x
}

// plainDecimalString renders coef * 10^-scale as a plain decimal string.
func plainDecimalString(coef *big.Int, scale int) string {
	s := coef.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if scale > 0 {
		if len(s) <= scale {
			s = strings.Repeat("0", scale-len(s)+1) + s
		}
		s = s[:len(s)-scale] + "." + s[len(s)-scale:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
