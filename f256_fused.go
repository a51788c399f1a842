package num

// Exponent gaps past which the smaller term of MulAdd can only affect the
// rounding as a sticky bit. The product has at most 474 bits and the addend
// at most 237, so either term shifted this far clears the other by more than
// a full significand, and the shifted sum still fits in a U1024.
const (
	mulAddAddendShift  = 600
	mulAddProductShift = 500
)

// sumSquaresShift plays the same part for SumSquares and Hypot: a square
// shifted this far above the other leaves it entirely below the rounding
// position of the sum or of its root.
const sumSquaresShift = 500

// MulAdd returns f*g + a, computed exactly and rounded once.
//
// An exact zero sum has the sign of the sum of zeros, so it is -0 only when
// f*g and a are both -0; cancellation of non-zero terms gives +0.
func (f F256) MulAdd(g, a F256) F256 {
	if f.isSpecial() || g.isSpecial() || a.isSpecial() {
		return mulAddSpecial(f, g, a)
	}

	sp, sa := f.sign()^g.sign(), a.sign()
	hi, lo := f.significand().MulWide(g.significand())
	p := U1024{lo: U512FromRaw(hi, lo)}
	ep := f.exponent() + g.exponent()
	c := U1024{lo: U512FromU256(a.significand())}
	ea := a.exponent()

	// Line both terms up on the quantum of the lower one.
	exp := ep
	switch d := ea - ep; {
	case d > mulAddAddendShift:
		c = c.Lsh(mulAddAddendShift)
		p = U1024{lo: U512{lo: U256{lo: U128{lo: 1}}}}
		exp = ea - mulAddAddendShift
	case d >= 0:
		c = c.Lsh(uint(d))
	case d >= -mulAddProductShift:
		p = p.Lsh(uint(-d))
		exp = ea
	default:
		p = p.Lsh(mulAddProductShift)
		c = U1024{lo: U512{lo: U256{lo: U128{lo: 1}}}}
		exp = ep - mulAddProductShift
	}

	var m U1024
	s := sp
	if sp == sa {
		m = p.Add(c)
	} else if cmp := p.Cmp(c); cmp > 0 {
		m = p.Sub(c)
	} else if cmp < 0 {
		m, s = c.Sub(p), sa
	} else {
		return F256Zero
	}

	r, shift := stickyReduceWide(m)
	return F256Encode(s, exp+shift, r)
}

func mulAddSpecial(x, y, a F256) F256 {
	sp := x.sign() ^ y.sign()
	switch {
	case x.IsNaN() || y.IsNaN() || a.IsNaN():
		return F256NaN

	case x.IsInf() && y.IsZero(), x.IsZero() && y.IsInf():
		return F256NaN

	case x.IsInf() || y.IsInf():
		if a.IsInf() && a.sign() != sp {
			return F256NaN
		}
		return f256SignedInf(sp)

	case a.IsInf():
		return a

	case x.IsZero() || y.IsZero():
		if a.IsZero() {
			return f256SignedZero(sp & a.sign())
		}
		return a

	default:
		// Only a is zero, and it can not change a non-zero product.
		return x.Mul(y)
	}
}

// stickyReduceWide is stickyReduce for the sums of MulAdd.
func stickyReduceWide(p U1024) (c U256, shift int) {
	if p.hi.IsZero() {
		return stickyReduce(p.lo)
	}
	n := p.width() - p.LeadingZeros()
	v, out := p.RshWide(n - roundingBits)
	c = v.lo.lo
	if !out.IsZero() {
		c.lo.lo |= 1
	}
	return c, int(n - roundingBits)
}

// Sqrt returns the square root of f, correctly rounded. Sqrt(±0) is ±0,
// Sqrt(+Inf) is +Inf, and any other negative value gives NaN.
func (f F256) Sqrt() F256 {
	switch {
	case f.IsNaN():
		return F256NaN
	case f.IsZero():
		return f
	case f.Signbit():
		return F256NaN
	case f.IsInf():
		return f
	}
	c, exp := normSignificand(f)
	return sqrtEncode(U1024{lo: U512FromU256(c)}, exp)
}

// Hypot returns sqrt(f*f + g*g), rounded once, without overflow or underflow
// in between. If either argument is infinite the result is +Inf, even if the
// other is NaN.
func (f F256) Hypot(g F256) F256 {
	switch {
	case f.IsInf() || g.IsInf():
		return F256Inf
	case f.IsNaN() || g.IsNaN():
		return F256NaN
	case f.IsZero():
		return g.Abs()
	case g.IsZero():
		return f.Abs()
	}

	m, exp := sumSquares(f, g)
	return sqrtEncode(m, exp)
}

// SumSquares returns f*f + g*g, rounded once.
func (f F256) SumSquares(g F256) F256 {
	switch {
	case f.IsNaN() || g.IsNaN():
		return F256NaN
	case f.IsInf() || g.IsInf():
		return F256Inf
	case f.IsZero():
		return g.Mul(g)
	case g.IsZero():
		return f.Mul(f)
	}
	m, exp := sumSquares(f, g)
	c, shift := stickyReduceWide(m)
	return F256Encode(0, exp+shift, c)
}

// sumSquares returns f*f + g*g as m * 2^exp for finite, non-zero f and g.
// exp is even. If the smaller square is too far down to be added exactly,
// the low bit of m stands in for it. The larger square shifted up is an even
// square, so one more can not be a square, and a root of m keeps its
// remainder.
func sumSquares(f, g F256) (m U1024, exp int) {
	cx, ex := normSignificand(f)
	cy, ey := normSignificand(g)
	if ex < ey {
		cx, ex, cy, ey = cy, ey, cx, ex
	}
	hi, lo := cx.MulWide(cx)
	x2 := U1024{lo: U512FromRaw(hi, lo)}
	hi, lo = cy.MulWide(cy)
	y2 := U1024{lo: U512FromRaw(hi, lo)}

	if d := uint(2 * (ex - ey)); d <= sumSquaresShift {
		exp = 2 * ey
		return x2.Lsh(d).Add(y2), exp
	}
	m = x2.Lsh(sumSquaresShift)
	m.lo.lo.lo.lo |= 1
	exp = 2*ex - sumSquaresShift
	return m, exp
}

// sqrtEncode returns the F256 nearest to sqrt(m * 2^exp), for m != 0.
func sqrtEncode(m U1024, exp int) F256 {
	if exp&1 != 0 {
		m = m.Lsh(1)
		exp--
	}

	// With at least 2*roundingBits bits under the root, the root has
	// roundingBits bits and a non-zero remainder only has to set the sticky
	// bit.
	if n := m.width() - m.LeadingZeros(); n < 2*roundingBits {
		k := (2*roundingBits - n + 1) &^ 1
		m = m.Lsh(k)
		exp -= int(k)
	}

	r, rem := m.SqrtRem()
	c, shift := stickyReduce(r.lo)
	if !rem.IsZero() {
		c.lo.lo |= 1
	}
	return F256Encode(0, exp/2+shift, c)
}
