package num

import (
	"fmt"
	"math/big"
)

// limb is the set of operations a half-width type must provide for Uint to
// double it. U128 is the base limb; every Uint[H] is itself a limb, so the
// construction nests to any power-of-two width.
type limb[T any] interface {
	comparable

	width() uint
	IsZero() bool
	IsOdd() bool
	Cmp(n T) int
	LeadingZeros() uint
	TrailingZeros() uint

	AddCarry(n T, carry uint) (T, uint)
	SubBorrow(n T, borrow uint) (T, uint)
	Add(n T) T
	Sub(n T) T
	Inc() T
	Dec() T
	Mul(n T) T
	MulWide(n T) (hi, lo T)
	MulCarry(n, c T) (hi, lo T)

	And(n T) T
	Or(n T) T
	Xor(n T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T
	LshWide(n uint) (hi, lo T)
	RshWide(n uint) (v, out T)

	QuoRem(d T) (q, r T)
	quoRemWord(rem, d U128) (T, U128)

	AsBigInt() *big.Int
	fromBigInt(b *big.Int) (T, bool)
}

// Uint is an unsigned integer twice as wide as H, holding hi*2^w + lo where
// w is the width of H. All bits are significant. Like U128, it is a value
// type and all operations return new values.
type Uint[H limb[H]] struct {
	hi, lo H
}

type (
	U256  = Uint[U128]
	U512  = Uint[U256]
	U1024 = Uint[U512]
)

func U256FromRaw(hi, lo U128) U256 { return U256{hi: hi, lo: lo} }
func U256FromU128(v U128) U256     { return U256{lo: v} }
func U256From64(v uint64) U256     { return U256{lo: U128{lo: v}} }
func U512FromRaw(hi, lo U256) U512 { return U512{hi: hi, lo: lo} }
func U512FromU256(v U256) U512     { return U512{lo: v} }

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to the
// maximum value and sets accurate to 'false'.
func U256FromBigInt(b *big.Int) (out U256, accurate bool) { return out.fromBigInt(b) }

func U512FromBigInt(b *big.Int) (out U512, accurate bool) { return out.fromBigInt(b) }

func U1024FromBigInt(b *big.Int) (out U1024, accurate bool) { return out.fromBigInt(b) }

// Raw returns the two halves of u.
func (u Uint[H]) Raw() (hi, lo H) { return u.hi, u.lo }

func (u Uint[H]) width() uint  { return u.lo.width() * 2 }
func (u Uint[H]) IsZero() bool { return u.hi.IsZero() && u.lo.IsZero() }
func (u Uint[H]) IsOdd() bool  { return u.lo.IsOdd() }

func (u Uint[H]) String() string {
	return u.AsBigInt().String()
}

func (u Uint[H]) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u Uint[H]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText parses a decimal string. Values too wide for u are an error
// rather than a truncation.
func (u *Uint[H]) UnmarshalText(bts []byte) error {
	b, ok := new(big.Int).SetString(string(bts), 10)
	if !ok {
		return fmt.Errorf("num: u%d string %q invalid", u.width(), string(bts))
	}
	v, accurate := u.fromBigInt(b)
	if !accurate {
		return fmt.Errorf("num: u%d string %q out of range", u.width(), string(bts))
	}
	*u = v
	return nil
}

func (u Uint[H]) AsBigInt() *big.Int {
	b := u.hi.AsBigInt()
	b.Lsh(b, u.lo.width())
	return b.Or(b, u.lo.AsBigInt())
}

func (u Uint[H]) fromBigInt(b *big.Int) (out Uint[H], accurate bool) {
	if b.Sign() < 0 {
		return out, false
	}
	if uint(b.BitLen()) > out.width() {
		return out.Not(), false
	}
	w := out.lo.width()
	hb := new(big.Int).Rsh(b, w)
	lb := new(big.Int).Lsh(hb, w)
	lb.Sub(b, lb)
	out.hi, _ = out.hi.fromBigInt(hb)
	out.lo, _ = out.lo.fromBigInt(lb)
	return out, true
}

func (u Uint[H]) Cmp(n Uint[H]) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

func (u Uint[H]) Equal(n Uint[H]) bool            { return u == n }
func (u Uint[H]) GreaterThan(n Uint[H]) bool      { return u.Cmp(n) > 0 }
func (u Uint[H]) GreaterOrEqualTo(n Uint[H]) bool { return u.Cmp(n) >= 0 }
func (u Uint[H]) LessThan(n Uint[H]) bool         { return u.Cmp(n) < 0 }
func (u Uint[H]) LessOrEqualTo(n Uint[H]) bool    { return u.Cmp(n) <= 0 }

func (u Uint[H]) LeadingZeros() uint {
	if u.hi.IsZero() {
		return u.lo.width() + u.lo.LeadingZeros()
	}
	return u.hi.LeadingZeros()
}

func (u Uint[H]) TrailingZeros() uint {
	if u.lo.IsZero() {
		return u.lo.width() + u.hi.TrailingZeros()
	}
	return u.lo.TrailingZeros()
}

// AddCarry returns u+n+carry and the carry out of the top bit. carry must be
// 0 or 1.
func (u Uint[H]) AddCarry(n Uint[H], carry uint) (v Uint[H], carryOut uint) {
	v.lo, carry = u.lo.AddCarry(n.lo, carry)
	v.hi, carryOut = u.hi.AddCarry(n.hi, carry)
	return v, carryOut
}

// SubBorrow returns u-n-borrow and the borrow out of the top bit. borrow must
// be 0 or 1.
func (u Uint[H]) SubBorrow(n Uint[H], borrow uint) (v Uint[H], borrowOut uint) {
	v.lo, borrow = u.lo.SubBorrow(n.lo, borrow)
	v.hi, borrowOut = u.hi.SubBorrow(n.hi, borrow)
	return v, borrowOut
}

// AddOverflow returns u+n, and whether the sum wrapped.
func (u Uint[H]) AddOverflow(n Uint[H]) (v Uint[H], overflow bool) {
	v, c := u.AddCarry(n, 0)
	return v, c != 0
}

// SubOverflow returns u-n, and whether the difference wrapped.
func (u Uint[H]) SubOverflow(n Uint[H]) (v Uint[H], overflow bool) {
	v, b := u.SubBorrow(n, 0)
	return v, b != 0
}

// Add returns u+n, wrapping on overflow. Use AddOverflow if the caller has
// not already proven the sum fits.
func (u Uint[H]) Add(n Uint[H]) (v Uint[H]) {
	v, _ = u.AddCarry(n, 0)
	return v
}

// Sub returns u-n, wrapping on underflow.
func (u Uint[H]) Sub(n Uint[H]) (v Uint[H]) {
	v, _ = u.SubBorrow(n, 0)
	return v
}

func (u Uint[H]) Inc() (v Uint[H]) {
	v, _ = u.AddCarry(Uint[H]{}, 1)
	return v
}

func (u Uint[H]) Dec() (v Uint[H]) {
	v, _ = u.SubBorrow(Uint[H]{}, 1)
	return v
}

func (u Uint[H]) And(n Uint[H]) Uint[H] { return Uint[H]{hi: u.hi.And(n.hi), lo: u.lo.And(n.lo)} }
func (u Uint[H]) Or(n Uint[H]) Uint[H]  { return Uint[H]{hi: u.hi.Or(n.hi), lo: u.lo.Or(n.lo)} }
func (u Uint[H]) Xor(n Uint[H]) Uint[H] { return Uint[H]{hi: u.hi.Xor(n.hi), lo: u.lo.Xor(n.lo)} }
func (u Uint[H]) Not() Uint[H]          { return Uint[H]{hi: u.hi.Not(), lo: u.lo.Not()} }

// Lsh returns u << n. Shifting by the width or more returns zero.
func (u Uint[H]) Lsh(n uint) (v Uint[H]) {
	w := u.lo.width()
	if n == 0 {
		return u
	} else if n >= 2*w {
		return v
	} else if n >= w {
		v.hi = u.lo.Lsh(n - w)
	} else {
		v.hi = u.hi.Lsh(n).Or(u.lo.Rsh(w - n))
		v.lo = u.lo.Lsh(n)
	}
	return v
}

// Rsh returns u >> n. Shifting by the width or more returns zero.
func (u Uint[H]) Rsh(n uint) (v Uint[H]) {
	w := u.lo.width()
	if n == 0 {
		return u
	} else if n >= 2*w {
		return v
	} else if n >= w {
		v.lo = u.hi.Rsh(n - w)
	} else {
		v.lo = u.lo.Rsh(n).Or(u.hi.Lsh(w - n))
		v.hi = u.hi.Rsh(n)
	}
	return v
}

// LshWide shifts u left by n bits, 0 <= n <= 2*width, into a result twice
// as wide as u: lo is u << n, hi holds the bits shifted out of the top.
func (u Uint[H]) LshWide(n uint) (hi, lo Uint[H]) {
	w := u.width()
	switch {
	case n == 0:
		return hi, u
	case n < w:
		return u.Rsh(w - n), u.Lsh(n)
	case n == w:
		return u, lo
	default:
		return u.Lsh(n - w), lo
	}
}

// RshWide shifts u right by n bits, 0 <= n <= 2*width. v is u >> n, out holds
// the bits shifted out of the bottom aligned to the top, so that
// v:out == (u:0) >> n.
func (u Uint[H]) RshWide(n uint) (v, out Uint[H]) {
	w := u.width()
	switch {
	case n == 0:
		return u, out
	case n < w:
		return u.Rsh(n), u.Lsh(w - n)
	case n == w:
		return v, u
	default:
		return v, u.Rsh(n - w)
	}
}

// MulWide returns the full product of u and n as hi:lo. This is the
// schoolbook method over the two halves; the sum of the cross terms can
// itself carry out of a half, which is tracked in ovf.
func (u Uint[H]) MulWide(n Uint[H]) (hi, lo Uint[H]) {
	c0, ll := u.lo.MulWide(n.lo)
	hl, lh := u.lo.MulCarry(n.hi, c0)
	c1, lh := u.hi.MulCarry(n.lo, lh)
	hl, ovf := hl.AddCarry(c1, 0)
	hh, hl := u.hi.MulCarry(n.hi, hl)

	var zero H
	hh, _ = hh.AddCarry(zero, ovf)
	return Uint[H]{hi: hh, lo: hl}, Uint[H]{hi: lh, lo: ll}
}

// MulCarry returns u*n+c as hi:lo. The sum can not overflow.
func (u Uint[H]) MulCarry(n, c Uint[H]) (hi, lo Uint[H]) {
	hi, lo = u.MulWide(n)
	var carry uint
	lo, carry = lo.AddCarry(c, 0)
	hi, _ = hi.AddCarry(Uint[H]{}, carry)
	return hi, lo
}

// Mul returns the low half of u*n, wrapping on overflow.
func (u Uint[H]) Mul(n Uint[H]) (v Uint[H]) {
	var ll H
	v.hi, ll = u.lo.MulWide(n.lo)
	v.hi = v.hi.Add(u.lo.Mul(n.hi)).Add(u.hi.Mul(n.lo))
	v.lo = ll
	return v
}

// MulOverflow returns the low half of u*n, and whether the high half was
// non-zero.
func (u Uint[H]) MulOverflow(n Uint[H]) (v Uint[H], overflow bool) {
	hi, lo := u.MulWide(n)
	return lo, !hi.IsZero()
}

// MulHi returns the high half of u*n, i.e. floor(u*n / 2^width).
func (u Uint[H]) MulHi(n Uint[H]) Uint[H] {
	hi, _ := u.MulWide(n)
	return hi
}
