package num

import "fmt"

// Cmp compares f and g and returns:
//
//	-1 if f <  g
//	 0 if f == g (including -0 == +0)
//	+1 if f >  g
//
// ok is false if either value is NaN, in which case the values are unordered
// and c is 0.
func (f F256) Cmp(g F256) (c int, ok bool) {
	if f.IsNaN() || g.IsNaN() {
		return 0, false
	}
	if f.IsZero() && g.IsZero() {
		return 0, true
	}
	return f.TotalCmp(g), true
}

func (f F256) Equal(g F256) bool {
	c, ok := f.Cmp(g)
	return ok && c == 0
}

func (f F256) LessThan(g F256) bool {
	c, ok := f.Cmp(g)
	return ok && c < 0
}

func (f F256) LessOrEqualTo(g F256) bool {
	c, ok := f.Cmp(g)
	return ok && c <= 0
}

func (f F256) GreaterThan(g F256) bool {
	c, ok := f.Cmp(g)
	return ok && c > 0
}

func (f F256) GreaterOrEqualTo(g F256) bool {
	c, ok := f.Cmp(g)
	return ok && c >= 0
}

// TotalCmp compares f and g using the IEEE 754 totalOrder predicate:
//
//	-NaN < -Inf < negative finite < -0 < +0 < positive finite < +Inf < +NaN
//
// NaNs of the same sign are ordered by payload.
func (f F256) TotalCmp(g F256) int {
	return f.totalKey().Cmp(g.totalKey())
}

// totalKey maps f to an unsigned integer that sorts in total order. Negative
// values have every bit flipped, so larger magnitudes sort lower; positive
// values have the sign bit set, so they sort above all negative values.
func (f F256) totalKey() U256 {
	if f.Signbit() {
		return f.bits.Not()
	}
	k := f.bits
	k.hi.hi |= topSignMask
	return k
}

type roundMode int

const (
	roundTrunc roundMode = iota
	roundFloor
	roundCeil
	roundHalfAway
	roundHalfEven
)

// Trunc returns the integer value of f, rounded towards zero.
func (f F256) Trunc() F256 { return f.roundIntegral(roundTrunc) }

// Floor returns the greatest integer value less than or equal to f.
func (f F256) Floor() F256 { return f.roundIntegral(roundFloor) }

// Ceil returns the least integer value greater than or equal to f.
func (f F256) Ceil() F256 { return f.roundIntegral(roundCeil) }

// Round returns the nearest integer, rounding half away from zero.
func (f F256) Round() F256 { return f.roundIntegral(roundHalfAway) }

// RoundToEven returns the nearest integer, rounding ties to even.
func (f F256) RoundToEven() F256 { return f.roundIntegral(roundHalfEven) }

func (f F256) roundIntegral(mode roundMode) F256 {
	if f.isSpecial() {
		return f
	}
	exp := f.exponent()
	if exp >= 0 {
		return f
	}

	// Split the significand into its integral part q and the fraction bits
	// shifted out, which RshWide leaves left-aligned in out.
	var q, out U256
	if n := uint(-exp); n <= F256TotalBits {
		q, out = f.significand().RshWide(n)
	} else {
		// Far below 1/2; any non-zero value will do as the fraction.
		out = U256From64(1)
	}

	if out.IsZero() {
		return f
	}

	var up bool
	half := out.LeadingZeros() == 0
	aboveHalf := half && out.TrailingZeros() < F256TotalBits-1
	exactHalf := half && !aboveHalf
	neg := f.Signbit()

	switch mode {
	case roundFloor:
		up = neg
	case roundCeil:
		up = !neg
	case roundHalfAway:
		up = half
	case roundHalfEven:
		up = aboveHalf || (exactHalf && q.IsOdd())
	}
	if up {
		q = q.Inc()
	}
	if q.IsZero() {
		return f256SignedZero(f.sign())
	}

	// q is below 2^237, so encoding it is exact.
	return F256Encode(f.sign(), 0, q)
}

// Fract returns the fractional part of f, f - f.Trunc(), which has the sign
// of f or is +0. Fract of an infinity is NaN.
func (f F256) Fract() F256 { return f.Sub(f.Trunc()) }

// Split returns the integral and fractional parts of f, as Trunc and Fract.
func (f F256) Split() (ipart, frac F256) {
	ipart = f.Trunc()
	return ipart, f.Sub(ipart)
}

// Clamp returns lo if f < lo, hi if f > hi, and f otherwise; NaN stays NaN.
// Clamp panics if either bound is NaN or lo > hi.
func (f F256) Clamp(lo, hi F256) F256 {
	if lo.IsNaN() || hi.IsNaN() || lo.GreaterThan(hi) {
		panic(fmt.Sprintf("num: f256 clamp bounds [%s, %s] invalid", lo, hi))
	}
	switch {
	case f.LessThan(lo):
		return lo
	case f.GreaterThan(hi):
		return hi
	}
	return f
}
