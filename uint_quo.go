package num

import "fmt"

func (u Uint[H]) divByZero() {
	panic(fmt.Sprintf("u%d: division by zero", u.width()))
}

// quoRemHalf divides u by the half-width divisor d. u.hi must be less than d,
// so the quotient fits in a half.
//
// This is Knuth's algorithm D specialised to a two-digit quotient, where a
// digit is half of H (Hacker's Delight 9-4, divlu). The numerator and the
// divisor are normalised so the divisor's top bit is set; each quotient digit
// is then estimated from the top digit of the divisor and corrected downward
// at most twice. The correction loop leaves the estimate exact, so there is
// no add-back step.
func (u Uint[H]) quoRemHalf(d H) (q, r H) {
	if debugChecks {
		assertf(u.hi.Cmp(d) < 0, "u%d: quoRemHalf numerator high half %v >= divisor %v", u.width(), u.hi, d)
	}

	var zero H
	hw := zero.width() / 2
	lowMask := zero.Not().Rsh(hw)
	b := zero.Inc().Lsh(hw)

	shift := d.LeadingZeros()
	x := u.Lsh(shift)
	y := d.Lsh(shift)

	y1, y0 := y.Rsh(hw), y.And(lowMask)
	x1, x0 := x.lo.Rsh(hw), x.lo.And(lowMask)

	// q1*y0 is only evaluated once q1 < b, so it can not overflow; rhat is
	// only shifted while it is below b.
	q1, rhat := x.hi.QuoRem(y1)
	for q1.Cmp(b) >= 0 || q1.Mul(y0).Cmp(rhat.Lsh(hw).Or(x1)) > 0 {
		q1 = q1.Dec()
		rhat = rhat.Add(y1)
		if rhat.Cmp(b) >= 0 {
			break
		}
	}

	// The true value of t is less than y, so the wrapped arithmetic is exact.
	t := x.hi.Lsh(hw).Or(x1).Sub(q1.Mul(y))

	q0, rhat := t.QuoRem(y1)
	for q0.Cmp(b) >= 0 || q0.Mul(y0).Cmp(rhat.Lsh(hw).Or(x0)) > 0 {
		q0 = q0.Dec()
		rhat = rhat.Add(y1)
		if rhat.Cmp(b) >= 0 {
			break
		}
	}

	q = q1.Lsh(hw).Or(q0)
	r = t.Lsh(hw).Or(x0).Sub(q0.Mul(y)).Rsh(shift)
	return q, r
}

// QuoRemHalf returns the quotient and remainder of u divided by the
// half-width divisor d. If d == 0, a division-by-zero run-time panic occurs.
func (u Uint[H]) QuoRemHalf(d H) (q Uint[H], r H) {
	if d.IsZero() {
		u.divByZero()
	}
	if u.hi.IsZero() {
		q.lo, r = u.lo.QuoRem(d)
		return q, r
	}
	if u.hi.Cmp(d) < 0 {
		q.lo, r = u.quoRemHalf(d)
		return q, r
	}

	var rh H
	q.hi, rh = u.hi.QuoRem(d)
	q.lo, r = Uint[H]{hi: rh, lo: u.lo}.quoRemHalf(d)
	return q, r
}

// QuoRemWord returns the quotient and remainder of u divided by a single
// U128. If d == 0, a division-by-zero run-time panic occurs.
func (u Uint[H]) QuoRemWord(d U128) (q Uint[H], r U128) {
	if d.IsZero() {
		u.divByZero()
	}
	return u.quoRemWord(zeroU128, d)
}

// quoRemWord divides rem:u by d, where rem < d. Each half is divided in
// turn, carrying the remainder down, so only the base limb ever performs a
// real division.
func (u Uint[H]) quoRemWord(rem, d U128) (q Uint[H], r U128) {
	q.hi, r = u.hi.quoRemWord(rem, d)
	q.lo, r = u.lo.quoRemWord(r, d)
	return q, r
}

// QuoRem returns the quotient q and remainder r for d != 0. If d == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/d      with the result truncated to zero
//	r = u - d*q
func (u Uint[H]) QuoRem(d Uint[H]) (q, r Uint[H]) {
	if d.IsZero() {
		u.divByZero()
	}

	if d.hi.IsZero() {
		q, r.lo = u.QuoRemHalf(d.lo)
		return q, r
	}

	if cmp := u.Cmp(d); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		return q.Inc(), r
	}

	w := d.width()
	dLeading0 := d.LeadingZeros()
	dTrailing0 := d.TrailingZeros()
	if dLeading0+dTrailing0 == w-1 {
		return u.Rsh(dTrailing0), u.And(d.Dec())
	}

	// Estimate the quotient from the top half of the normalised divisor.
	// Halving u keeps the estimating division from overflowing; the estimate
	// is then at most one too large after the decrement below, which the
	// final comparison corrects.
	hw := w / 2
	s := d.hi.LeadingZeros()
	d1 := d.Lsh(s)
	u1 := u.Rsh(1)

	q1, _ := u1.quoRemHalf(d1.hi)
	q1 = q1.Rsh(hw - 1 - s)
	if !q1.IsZero() {
		q1 = q1.Dec()
	}

	q.lo = q1
	r = u.Sub(q.Mul(d))
	if r.Cmp(d) >= 0 {
		q = q.Inc()
		r = r.Sub(d)
	}
	return q, r
}

// Quo returns the quotient u/d for d != 0, truncated towards zero.
func (u Uint[H]) Quo(d Uint[H]) (q Uint[H]) {
	q, _ = u.QuoRem(d)
	return q
}

// Rem returns the remainder u%d for d != 0.
func (u Uint[H]) Rem(d Uint[H]) (r Uint[H]) {
	_, r = u.QuoRem(d)
	return r
}

// SqrtRem returns the integer square root r = ⌊√u⌋ and the remainder
// u - r*r.
func (u Uint[H]) SqrtRem() (r, rem Uint[H]) {
	var one Uint[H]
	one = one.Inc()
	if u.Cmp(one) <= 0 {
		return u, rem
	}

	// Start above the root and repeat "r = ⌊(r + ⌊u/r⌋)/2⌋" until it stops
	// getting smaller. If u is one less than a perfect square the sequence
	// then oscillates, so the first r that does not shrink is the answer.
	r = one.Lsh((u.width() - u.LeadingZeros() + 1) / 2)
	for {
		next := r.Add(u.Quo(r)).Rsh(1)
		if next.Cmp(r) >= 0 {
			break
		}
		r = next
	}
	return r, u.Sub(r.Mul(r))
}
