package num

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// Decimal input is parsed to this many bits, truncated, before rounding to
// the format. Anything below is folded into a sticky bit.
const f256ParsePrec = 1024

func F256FromInt64(v int64) F256 {
	if v == 0 {
		return F256Zero
	}
	var sign uint
	m := uint64(v)
	if v < 0 {
		sign = 1
		m = ^m + 1
	}
	return F256Encode(sign, 0, U256From64(m))
}

func F256FromUint64(v uint64) F256 {
	if v == 0 {
		return F256Zero
	}
	return F256Encode(0, 0, U256From64(v))
}

// F256FromU128 converts v exactly; every U128 fits in the significand.
func F256FromU128(v U128) F256 {
	if v.IsZero() {
		return F256Zero
	}
	return F256Encode(0, 0, U256FromU128(v))
}

// F256FromU256 converts v, rounding to nearest with ties to even if it needs
// more than 237 bits.
func F256FromU256(v U256) F256 {
	if v.IsZero() {
		return F256Zero
	}
	return F256Encode(0, 0, v)
}

// F256FromFloat64 converts v exactly. NaN payloads are not preserved.
func F256FromFloat64(v float64) F256 {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	bits := math.Float64bits(v)
	sign := uint(bits >> 63)
	exp := int(bits>>shift) & mask
	frac := bits & (1<<shift - 1)

	switch {
	case exp == mask && frac != 0:
		return F256NaN
	case exp == mask:
		return f256SignedInf(sign)
	case exp == 0 && frac == 0:
		return f256SignedZero(sign)
	case exp == 0:
		exp = 1
	default:
		frac |= 1 << shift
	}
	return F256Encode(sign, exp-bias-shift, U256From64(frac))
}

// AsFloat64 returns the float64 nearest to f, rounding ties to even.
func (f F256) AsFloat64() float64 {
	if f.IsNaN() {
		return math.NaN()
	}
	v, _ := f.AsBigFloat().Float64()
	return v
}

var (
	// ErrNotInteger is returned when converting NaN, an infinity or a value
	// with a fractional part to an integer type.
	ErrNotInteger = errors.New("num: f256 value is not an integer")

	// ErrOutOfRange is returned when converting an integral value that the
	// integer type can not hold.
	ErrOutOfRange = errors.New("num: f256 value out of range")
)

// integer returns the magnitude of an integral f. Values of 2^256 and above
// are ErrOutOfRange. -0 is 0.
func (f F256) integer() (sign uint, v U256, err error) {
	if !f.IsFinite() {
		return 0, v, ErrNotInteger
	}
	if f.IsZero() {
		return 0, v, nil
	}
	sign, exp, signif := f.Decode()
	if exp < 0 {
		// The decoded significand is odd, so there are fraction bits.
		return sign, v, ErrNotInteger
	}
	if uint(exp) > signif.LeadingZeros() {
		return sign, v, ErrOutOfRange
	}
	return sign, signif.Lsh(uint(exp)), nil
}

// U256 converts an integral f to a U256. NaN, infinities and values with a
// fraction are ErrNotInteger; negative values and values of 2^256 or more are
// ErrOutOfRange.
func (f F256) U256() (U256, error) {
	sign, v, err := f.integer()
	if err != nil {
		return U256{}, err
	}
	if sign != 0 {
		return U256{}, ErrOutOfRange
	}
	return v, nil
}

// U128 converts an integral f to a U128, with the errors of U256.
func (f F256) U128() (U128, error) {
	v, err := f.U256()
	if err != nil {
		return U128{}, err
	}
	if !v.hi.IsZero() {
		return U128{}, ErrOutOfRange
	}
	return v.lo, nil
}

// Uint64 converts an integral f to a uint64, with the errors of U256.
func (f F256) Uint64() (uint64, error) {
	v, err := f.U128()
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, ErrOutOfRange
	}
	return v.lo, nil
}

// Int64 converts an integral f to an int64. NaN, infinities and values with
// a fraction are ErrNotInteger; values outside [math.MinInt64,
// math.MaxInt64] are ErrOutOfRange.
func (f F256) Int64() (int64, error) {
	sign, v, err := f.integer()
	if err != nil {
		return 0, err
	}
	if !v.hi.IsZero() || !v.lo.IsUint64() {
		return 0, ErrOutOfRange
	}
	m := v.lo.lo
	if sign != 0 {
		if m > 1<<63 {
			return 0, ErrOutOfRange
		}
		return int64(-m), nil
	}
	if m >= 1<<63 {
		return 0, ErrOutOfRange
	}
	return int64(m), nil
}

// AsBigFloat returns f as a big.Float with 237 bits of precision, which holds
// every finite F256 exactly. NaN has no big.Float equivalent and returns nil.
func (f F256) AsBigFloat() *big.Float {
	if f.IsNaN() {
		return nil
	}
	b := new(big.Float).SetPrec(F256SignificandBits)
	if f.IsInf() {
		return b.SetInf(f.Signbit())
	}
	sign, exp, signif := f.Decode()
	b.SetInt(signif.AsBigInt())
	b.SetMantExp(b, exp)
	if sign != 0 {
		b.Neg(b)
	}
	return b
}

// F256FromBigFloat returns the F256 nearest to b, rounding ties to even. The
// accuracy reports the direction of any rounding, as big.Float does.
func F256FromBigFloat(b *big.Float) (F256, big.Accuracy) {
	f := f256FromBigFloat(b, false)
	return f, big.Accuracy(f.AsBigFloat().Cmp(b))
}

// f256FromBigFloat rounds b to the nearest F256. If sticky is set, b is known
// to be a truncation of a slightly larger magnitude.
func f256FromBigFloat(b *big.Float, sticky bool) F256 {
	var sign uint
	if b.Signbit() {
		sign = 1
	}
	if b.IsInf() {
		return f256SignedInf(sign)
	}
	if b.Sign() == 0 {
		return f256SignedZero(sign)
	}

	// Scale the mantissa to an integer: b == m * 2^exp.
	m := new(big.Float)
	exp := b.MantExp(m)
	prec := int(m.MinPrec())
	m.SetMantExp(m, prec)
	exp -= prec

	c, _ := m.Int(nil)
	c.Abs(c)

	if n := c.BitLen(); n > roundingBits {
		shift := uint(n - roundingBits)
		if c.TrailingZeroBits() < shift {
			sticky = true
		}
		c.Rsh(c, shift)
		exp += int(shift)
	} else if sticky && n < roundingBits {
		// Make room for the sticky bit below the bits that are there.
		shift := uint(roundingBits - n)
		c.Lsh(c, shift)
		exp -= int(shift)
	}
	if sticky {
		c.SetBit(c, 0, 1)
	}

	signif, _ := U256FromBigInt(c)
	return F256Encode(sign, exp, signif)
}

// F256FromString parses a decimal or hexadecimal floating point string, in
// any of the forms accepted by big.ParseFloat, and rounds it to the nearest
// F256. "NaN", "Inf" and "Infinity" are accepted with any case and an
// optional sign.
func F256FromString(s string) (F256, error) {
	t := strings.TrimLeft(s, "+-")
	switch strings.ToLower(t) {
	case "nan":
		return F256NaN, nil
	case "inf", "infinity":
		if strings.HasPrefix(s, "-") {
			return F256NegInf, nil
		}
		return F256Inf, nil
	}

	b, _, err := big.ParseFloat(s, 0, f256ParsePrec, big.ToZero)
	if err != nil {
		return F256NaN, errors.Wrapf(err, "num: f256 string %q invalid", s)
	}
	return f256FromBigFloat(b, b.Acc() != big.Exact), nil
}

// String returns the shortest decimal that rounds back to f.
func (f F256) String() string {
	if f.IsNaN() {
		return "NaN"
	}
	b := f.AsBigFloat()
	if f.IsSubnormal() {
		// Subnormals are spaced by the smallest quantum, not by their own
		// leading bit.
		b.SetPrec(F256TotalBits - f.significand().LeadingZeros())
	}
	s := b.Text('g', -1)

	if f.IsNormal() && f.fractionIsZero() && f.biasedExp() > 1 {
		// The gap below a power of two is half the gap above it, but the
		// shortest search in big.Float assumes both are the same. When its
		// digits land in the lower half, search again with the narrow gap on
		// both sides.
		if g, err := F256FromString(s); err != nil || g.bits != f.bits {
			s = b.SetPrec(F256SignificandBits + 1).Text('g', -1)
		}
	}
	return s
}

// Format implements fmt.Formatter. 's' and 'v' print String with the width
// and flags applied; every other verb and flag is the same as for big.Float.
func (f F256) Format(s fmt.State, c rune) {
	if c == 's' || c == 'v' || f.IsNaN() {
		fmt.Fprintf(s, fmt.FormatString(s, 's'), f.String())
		return
	}
	f.AsBigFloat().Format(s, c)
}

func (f F256) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *F256) UnmarshalText(bts []byte) (err error) {
	*f, err = F256FromString(string(bts))
	return err
}
