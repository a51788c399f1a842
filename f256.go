package num

import (
	"encoding/binary"
	"fmt"
)

// F256 is an IEEE 754-2008 binary256 floating point value: 1 sign bit, 19
// exponent bits and 236 fraction bits, held in a single U256.
//
// The zero value is +0. F256 is a value type; all operations return new
// values and are safe for concurrent use.
type F256 struct {
	bits U256
}

// F256FromBits reinterprets a 256-bit pattern as an F256.
func F256FromBits(bits U256) F256 { return F256{bits: bits} }

// Bits returns the raw 256-bit pattern of f.
func (f F256) Bits() U256 { return f.bits }

func (f F256) top() uint64 { return f.bits.hi.hi }

func (f F256) sign() uint { return uint(f.top() >> 63) }

func (f F256) biasedExp() int {
	return int((f.top() & topExpMask) >> topFractionBits)
}

// fractionIsZero reports whether all 236 fraction bits are clear.
func (f F256) fractionIsZero() bool {
	return f.top()&topFractionMask == 0 && f.bits.hi.lo == 0 && f.bits.lo.IsZero()
}

// significand returns the integral significand of a finite f, including the
// hidden bit for normal values.
func (f F256) significand() U256 {
	c := f.bits
	c.hi.hi &= topFractionMask
	if f.biasedExp() != 0 {
		c.hi.hi |= topHiddenBit
	}
	return c
}

// exponent returns the quantum exponent of the significand of a finite f, so
// that |f| == significand * 2^exponent.
func (f F256) exponent() int {
	e := f.biasedExp()
	if e == 0 {
		e = 1
	}
	return e - F256ExpBias - F256FractionBits
}

// F256Encode returns the value closest to (-1)^sign * signif * 2^exp,
// rounding to nearest with ties to even.
//
// signif must not be zero and sign must be 0 or 1. Values too large for the
// format become infinite; values too small become subnormal or zero.
func F256Encode(sign uint, exp int, signif U256) F256 {
	if debugChecks {
		assertf(sign <= 1, "num: f256 sign %d is not 0 or 1", sign)
		assertf(!signif.IsZero(), "num: f256 encode of zero significand")
	}
	if signif.IsZero() {
		return f256SignedZero(sign)
	}

	// 1. Move from the integer convention (value = c * 2^exp) to the exponent
	// of the leading bit of c.
	nlz := int(signif.LeadingZeros())
	t := exp + (F256TotalBits - 1 - nlz)

	// 2. Normalise so the leading bit sits at the hidden bit position. The
	// quantum can not go below that of the subnormals.
	q := t - F256FractionBits
	if q < f256MinQExp {
		q = f256MinQExp
	}

	c := signif
	if shift := q - exp; shift > 0 {
		// Shift right and round. Rounding may carry into the next binade, in
		// which case the significand is exactly 2^237 and can be halved
		// without loss.
		c = c.RoundQuoPow2(uint(shift))
		if c.LeadingZeros() < F256ExponentBits {
			c = c.Rsh(1)
			q++
		}
	} else if shift < 0 {
		c = c.Lsh(uint(-shift))
	}

	if c.IsZero() {
		return f256SignedZero(sign)
	}
	if q > f256MaxQExp {
		return f256SignedInf(sign)
	}

	// 3. Bias the exponent. A significand without the hidden bit can only
	// come from the subnormal clamp above, and gets the zero exponent field.
	var biased uint64
	if c.hi.hi&topHiddenBit != 0 {
		biased = uint64(q + F256FractionBits + F256ExpBias)
	}

	// 4. Assemble.
	c.hi.hi = c.hi.hi&topFractionMask | biased<<topFractionBits | uint64(sign)<<63
	return F256{bits: c}
}

// Decode splits a finite f into sign, exponent and significand so that
// f == (-1)^sign * signif * 2^exp. Trailing zero bits are stripped from the
// significand, so each value has exactly one decoding. Zero decodes to a zero
// exponent and significand.
func (f F256) Decode() (sign uint, exp int, signif U256) {
	if debugChecks {
		assertf(f.IsFinite(), "num: decode of non-finite f256 %s", f)
	}
	sign = f.sign()
	if f.IsZero() {
		return sign, 0, signif
	}
	signif = f.significand()
	exp = f.exponent()
	ntz := signif.TrailingZeros()
	return sign, exp + int(ntz), signif.Rsh(ntz)
}

func f256SignedZero(sign uint) F256 {
	if sign != 0 {
		return F256NegZero
	}
	return F256Zero
}

func f256SignedInf(sign uint) F256 {
	if sign != 0 {
		return F256NegInf
	}
	return F256Inf
}

func (f F256) IsNaN() bool {
	return f.top()&topExpMask == topExpMask && !f.fractionIsZero()
}

// IsInf reports whether f is positive or negative infinity.
func (f F256) IsInf() bool {
	return f.top()&topAbsMask == topExpMask && f.bits.hi.lo == 0 && f.bits.lo.IsZero()
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f F256) IsFinite() bool {
	return f.top()&topExpMask != topExpMask
}

func (f F256) IsSubnormal() bool {
	return f.top()&topExpMask == 0 && !f.fractionIsZero()
}

// IsNormal reports whether f is neither zero, subnormal, infinite nor NaN.
func (f F256) IsNormal() bool {
	e := f.top() & topExpMask
	return e != 0 && e != topExpMask
}

// IsZero reports whether f is +0 or -0.
func (f F256) IsZero() bool {
	return f.top()<<1 == 0 && f.bits.hi.lo == 0 && f.bits.lo.IsZero()
}

// isSpecial reports whether f is NaN, infinite or zero; everything else
// takes the finite, non-zero path of the arithmetic operators.
func (f F256) isSpecial() bool {
	return f.IsZero() || !f.IsFinite()
}

// Signbit reports whether the sign bit of f is set. This is true for -0 and
// -Inf, and for NaNs with the sign bit set.
func (f F256) Signbit() bool { return f.top()&topSignMask != 0 }

// Sign returns -1 if f < 0, 0 if f is ±0 or NaN, and +1 if f > 0.
func (f F256) Sign() int {
	if f.IsZero() || f.IsNaN() {
		return 0
	} else if f.Signbit() {
		return -1
	}
	return 1
}

// F256Class is the category of an F256 value.
type F256Class int

const (
	ClassNaN F256Class = iota + 1
	ClassInf
	ClassZero
	ClassSubnormal
	ClassNormal
)

func (c F256Class) String() string {
	switch c {
	case ClassNaN:
		return "nan"
	case ClassInf:
		return "inf"
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	default:
		return fmt.Sprintf("F256Class(%d)", int(c))
	}
}

// Class returns the category of f. If only one property is needed, the
// matching predicate is cheaper.
func (f F256) Class() F256Class {
	switch e := f.top() & topExpMask; {
	case e == topExpMask && f.fractionIsZero():
		return ClassInf
	case e == topExpMask:
		return ClassNaN
	case e == 0 && f.fractionIsZero():
		return ClassZero
	case e == 0:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// Neg returns -f. The sign of NaN is flipped like any other value.
func (f F256) Neg() F256 {
	f.bits.hi.hi ^= topSignMask
	return f
}

// Abs returns |f|.
func (f F256) Abs() F256 {
	f.bits.hi.hi &= topAbsMask
	return f
}

// BigEndianBytes returns the 32-byte pattern of f, most significant byte
// first.
func (f F256) BigEndianBytes() (out [32]byte) {
	binary.BigEndian.PutUint64(out[0:], f.bits.hi.hi)
	binary.BigEndian.PutUint64(out[8:], f.bits.hi.lo)
	binary.BigEndian.PutUint64(out[16:], f.bits.lo.hi)
	binary.BigEndian.PutUint64(out[24:], f.bits.lo.lo)
	return out
}

// LittleEndianBytes returns the 32-byte pattern of f, least significant byte
// first.
func (f F256) LittleEndianBytes() (out [32]byte) {
	binary.LittleEndian.PutUint64(out[0:], f.bits.lo.lo)
	binary.LittleEndian.PutUint64(out[8:], f.bits.lo.hi)
	binary.LittleEndian.PutUint64(out[16:], f.bits.hi.lo)
	binary.LittleEndian.PutUint64(out[24:], f.bits.hi.hi)
	return out
}

func F256FromBigEndianBytes(b [32]byte) (f F256) {
	f.bits.hi.hi = binary.BigEndian.Uint64(b[0:])
	f.bits.hi.lo = binary.BigEndian.Uint64(b[8:])
	f.bits.lo.hi = binary.BigEndian.Uint64(b[16:])
	f.bits.lo.lo = binary.BigEndian.Uint64(b[24:])
	return f
}

func F256FromLittleEndianBytes(b [32]byte) (f F256) {
	f.bits.lo.lo = binary.LittleEndian.Uint64(b[0:])
	f.bits.lo.hi = binary.LittleEndian.Uint64(b[8:])
	f.bits.hi.lo = binary.LittleEndian.Uint64(b[16:])
	f.bits.hi.hi = binary.LittleEndian.Uint64(b[24:])
	return f
}

// MarshalBinary encodes f as its 32-byte big-endian pattern.
func (f F256) MarshalBinary() ([]byte, error) {
	b := f.BigEndianBytes()
	return b[:], nil
}

func (f *F256) UnmarshalBinary(bts []byte) error {
	if len(bts) != 32 {
		return fmt.Errorf("num: f256 binary length %d, expected 32", len(bts))
	}
	var b [32]byte
	copy(b[:], bts)
	*f = F256FromBigEndianBytes(b)
	return nil
}
