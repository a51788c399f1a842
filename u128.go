package num

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is the base limb of every wider integer in this package. All of its
// primitives report carries, borrows and the high half of products rather
// than discarding them, so that Uint can stack two of them (and then two of
// those) without losing bits at the seams.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }

// U128FromString creates a U128 from a string. Overflow truncates to MaxU128
// and sets accurate to 'false'. Only decimal strings are currently supported.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("num: unsupported bit size")
	}
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) width() uint  { return 128 }
func (u U128) IsZero() bool { return u == zeroU128 }
func (u U128) IsOdd() bool  { return u.lo&1 == 1 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u == zeroU128 {
		return "0"
	}
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	v := u.AsBigInt()
	return v.String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		if u.hi > 0 {
			b.SetUint64(u.hi)
			b.Lsh(b, 64)
		}
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) fromBigInt(b *big.Int) (U128, bool) { return U128FromBigInt(b) }

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

// AddCarry returns u+n+carry and the carry out of the top bit. carry must be
// 0 or 1.
func (u U128) AddCarry(n U128, carry uint) (v U128, carryOut uint) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, uint64(carry))
	v.hi, c = bits.Add64(u.hi, n.hi, c)
	return v, uint(c)
}

// SubBorrow returns u-n-borrow and the borrow out of the top bit. borrow must
// be 0 or 1.
func (u U128) SubBorrow(n U128, borrow uint) (v U128, borrowOut uint) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, uint64(borrow))
	v.hi, b = bits.Sub64(u.hi, n.hi, b)
	return v, uint(b)
}

func (u U128) Add(n U128) (v U128) {
	v, _ = u.AddCarry(n, 0)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v, _ = u.SubBorrow(n, 0)
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return !u.LessThan(n)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return !u.GreaterThan(n)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}

	return v
}

// LshWide shifts u left by n bits, 0 <= n <= 256, into a 256-bit result. lo
// holds the shifted value as Lsh would return it, hi holds the bits shifted
// out of the top.
func (u U128) LshWide(n uint) (hi, lo U128) {
	switch {
	case n == 0:
		return hi, u
	case n < 128:
		return u.Rsh(128 - n), u.Lsh(n)
	case n == 128:
		return u, lo
	default:
		return u.Lsh(n - 128), lo
	}
}

// RshWide shifts u right by n bits, 0 <= n <= 256. v is the shifted value as
// Rsh would return it, out holds the bits shifted out of the bottom, aligned
// to the top of the word, i.e. v:out == (u:0) >> n.
func (u U128) RshWide(n uint) (v, out U128) {
	switch {
	case n == 0:
		return u, out
	case n < 128:
		return u.Rsh(n), u.Lsh(128 - n)
	case n == 128:
		return v, u
	default:
		return v, u.Rsh(n - 128)
	}
}

// Mul returns the low 128 bits of u*n.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// MulWide returns the full 256-bit product of u and n as hi:lo.
func (u U128) MulWide(n U128) (hi, lo U128) {
	h0, l0 := bits.Mul64(u.lo, n.lo)
	h1, l1 := bits.Mul64(u.lo, n.hi)
	h2, l2 := bits.Mul64(u.hi, n.lo)
	h3, l3 := bits.Mul64(u.hi, n.hi)

	var c uint64
	lo.lo = l0
	lo.hi, c = bits.Add64(h0, l1, 0)
	hi.lo, c = bits.Add64(h1, l3, c)
	hi.hi = h3 + c

	lo.hi, c = bits.Add64(lo.hi, l2, 0)
	hi.lo, c = bits.Add64(hi.lo, h2, c)
	hi.hi += c
	return hi, lo
}

// MulCarry returns u*n+c as hi:lo. The sum can not overflow 256 bits.
func (u U128) MulCarry(n, c U128) (hi, lo U128) {
	hi, lo = u.MulWide(n)
	var carry uint
	lo, carry = lo.AddCarry(c, 0)
	hi, _ = hi.AddCarry(zeroU128, carry)
	return hi, lo
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.lo == 0 && by.hi == 0 {
		panic("u128: division by zero")
	}

	if u.hi|by.hi == 0 {
		// protected from div/0 because by.lo is guaranteed to be set if by.hi is 0:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 127 {
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 127 {
		q = u.Rsh(byTrailing0)
		by = by.Dec()
		r = by.And(u)
		return
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quorem128by128(u, by)
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// quoRemWord divides rem:u by d. rem must be less than d, so the quotient
// fits in 128 bits.
func (u U128) quoRemWord(rem, d U128) (q, r U128) {
	return U256{hi: rem, lo: u}.quoRemHalf(d)
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	} else {
		return uint(bits.LeadingZeros64(u.hi))
	}
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	} else {
		return uint(bits.TrailingZeros64(u.lo))
	}
}

func quorem128by128(m, v U128) (q, r U128) {
	if v.hi == 0 {
		if m.hi < v.lo {
			q.lo, r.lo = bits.Div64(m.hi, m.lo, v.lo)
			return q, r

		} else {
			q.hi = m.hi / v.lo
			r.hi = m.hi % v.lo
			q.lo, r.lo = bits.Div64(r.hi, m.lo, v.lo)
			r.hi = 0
			return q, r
		}

	} else {
		sh := uint(bits.LeadingZeros64(v.hi))

		v1 := v.Lsh(sh)
		u1 := m.Rsh(1)

		// u1.hi < 1<<63 <= v1.hi, so Div64 can not overflow:
		var q1 U128
		q1.lo, _ = bits.Div64(u1.hi, u1.lo, v1.hi)
		q1 = q1.Rsh(63 - sh)

		if q1.hi|q1.lo != 0 {
			q1 = q1.Dec()
		}
		q = q1
		q1 = q1.Mul(v)
		r = m.Sub(q1)

		if r.Cmp(v) >= 0 {
			q = q.Inc()
			r = r.Sub(v)
		}

		return q, r
	}
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
