package num

// Number of low bits reserved below the significand during addition: guard,
// round and sticky.
const addGuardBits = 3

// Quotients and products are reduced to this many bits before encoding. The
// three bits below the 237-bit significand are enough for correct rounding
// once the lowest of them is made sticky.
const roundingBits = F256SignificandBits + addGuardBits

// Add returns f+g, correctly rounded.
func (f F256) Add(g F256) F256 {
	if f.isSpecial() || g.isSpecial() {
		return addSpecial(f, g)
	}
	return add(f, g)
}

// Sub returns f-g, correctly rounded.
func (f F256) Sub(g F256) F256 {
	return f.Add(g.Neg())
}

func addSpecial(x, y F256) F256 {
	switch {
	case x.IsNaN() || y.IsNaN():
		return F256NaN

	case x.IsInf():
		if y.IsInf() && x.sign() != y.sign() {
			return F256NaN
		}
		return x

	case y.IsInf():
		return y

	case x.IsZero() && y.IsZero():
		// -0 + -0 is the only sum of zeros that is negative.
		return f256SignedZero(x.sign() & y.sign())

	case x.IsZero():
		return y

	default:
		return x
	}
}

// add handles finite, non-zero x and y.
func add(x, y F256) F256 {
	// Order the operands so that |x| >= |y|. For non-negative finite values
	// the bit patterns sort like the values they encode.
	if x.Abs().bits.Cmp(y.Abs().bits) < 0 {
		x, y = y, x
	}

	sx, sy := x.sign(), y.sign()
	ex, ey := x.exponent(), y.exponent()
	cx := x.significand().Lsh(addGuardBits)
	cy := y.significand().Lsh(addGuardBits)

	// Align y with x. Anything shifted out survives only as a sticky bit;
	// past the width of the significand plus the two guard bits nothing but
	// the sticky bit is left.
	if d := uint(ex - ey); d > 0 {
		if d > F256SignificandBits+2 {
			cy = U256From64(1)
		} else {
			var out U256
			cy, out = cy.RshWide(d)
			if !out.IsZero() {
				cy.lo.lo |= 1
			}
		}
	}

	var c U256
	if sx == sy {
		// cx, cy < 2^240, so the sum can not overflow.
		c = cx.Add(cy)
	} else {
		c = cx.Sub(cy)
		if c.IsZero() {
			return F256Zero
		}
	}
	return F256Encode(sx, ex-addGuardBits, c)
}

// Mul returns f*g, correctly rounded.
func (f F256) Mul(g F256) F256 {
	if f.isSpecial() || g.isSpecial() {
		return mulSpecial(f, g)
	}

	s := f.sign() ^ g.sign()
	hi, lo := f.significand().MulWide(g.significand())
	c, shift := stickyReduce(U512FromRaw(hi, lo))
	return F256Encode(s, f.exponent()+g.exponent()+shift, c)
}

func mulSpecial(x, y F256) F256 {
	s := x.sign() ^ y.sign()
	switch {
	case x.IsNaN() || y.IsNaN():
		return F256NaN
	case x.IsInf() && y.IsZero(), x.IsZero() && y.IsInf():
		return F256NaN
	case x.IsInf() || y.IsInf():
		return f256SignedInf(s)
	default:
		return f256SignedZero(s)
	}
}

// stickyReduce shifts p right until it fits in roundingBits bits and returns
// it with the shift applied. If any set bits are shifted out the lowest
// remaining bit is set, which is all the rounding in F256Encode needs to know
// about them.
func stickyReduce(p U512) (c U256, shift int) {
	n := p.width() - p.LeadingZeros()
	if n <= roundingBits {
		return p.lo, 0
	}
	v, out := p.RshWide(n - roundingBits)
	c = v.lo
	if !out.IsZero() {
		c.lo.lo |= 1
	}
	return c, int(n - roundingBits)
}

// Quo returns f/g, correctly rounded.
func (f F256) Quo(g F256) F256 {
	if f.isSpecial() || g.isSpecial() {
		return quoSpecial(f, g)
	}

	s := f.sign() ^ g.sign()
	cx, ex := normSignificand(f)
	cy, ey := normSignificand(g)

	// Both significands are in [2^236, 2^237), so the quotient of
	// cx*2^roundingBits by cy lies in (2^239, 2^241) and leaves at least
	// three bits below the final significand. The numerator's top half is
	// cx >> 16, below cy, which is the case the half-width division handles
	// directly.
	n := U512FromU256(cx).Lsh(roundingBits)
	q, r := n.QuoRemHalf(cy)

	c := q.lo
	if !r.IsZero() {
		c.lo.lo |= 1
	}
	return F256Encode(s, ex-ey-roundingBits, c)
}

func quoSpecial(x, y F256) F256 {
	s := x.sign() ^ y.sign()
	switch {
	case x.IsNaN() || y.IsNaN():
		return F256NaN
	case x.IsInf() && y.IsInf(), x.IsZero() && y.IsZero():
		return F256NaN
	case x.IsInf(), y.IsZero():
		return f256SignedInf(s)
	default:
		// finite / inf, or zero / finite
		return f256SignedZero(s)
	}
}

// normSignificand returns the significand of a finite, non-zero f shifted so
// its leading bit sits at the hidden bit position, along with the matching
// quantum exponent. Only subnormals move.
func normSignificand(f F256) (c U256, exp int) {
	c, exp = f.significand(), f.exponent()
	if shift := c.LeadingZeros() - F256ExponentBits; shift > 0 {
		c = c.Lsh(shift)
		exp -= int(shift)
	}
	return c, exp
}

// Rem returns the remainder of f/g with the quotient truncated towards zero,
// i.e. f - g*trunc(f/g), like math.Mod. The result is exact and has the sign
// of f.
func (f F256) Rem(g F256) F256 {
	if f.isSpecial() || g.isSpecial() {
		return remSpecial(f, g)
	}

	if f.Abs().bits.Cmp(g.Abs().bits) < 0 {
		return f
	}

	s := f.sign()
	cx, ex := f.significand(), f.exponent()
	cy, ey := g.significand(), g.exponent()

	// |f| >= |g| implies ex >= ey. Compute cx * 2^(ex-ey) mod cy, shifting
	// in at most one half-width of bits at a time so every step is a single
	// division of a U512 by a U256 whose top half is below the divisor.
	r := cx.Rem(cy)
	for d := uint(ex - ey); d > 0 && !r.IsZero(); {
		k := d
		if k > F256TotalBits {
			k = F256TotalBits
		}
		_, r = U512FromU256(r).Lsh(k).QuoRemHalf(cy)
		d -= k
	}

	if r.IsZero() {
		return f256SignedZero(s)
	}

	// r < cy, so r * 2^ey is exactly representable.
	return F256Encode(s, ey, r)
}

func remSpecial(x, y F256) F256 {
	switch {
	case x.IsNaN() || y.IsNaN():
		return F256NaN
	case x.IsInf() || y.IsZero():
		return F256NaN
	default:
		// x is zero, or y is infinite and x finite.
		return x
	}
}

// Recip returns 1/f.
func (f F256) Recip() F256 {
	return F256One.Quo(f)
}
