package num

// pow10U128 holds 10^0 to 10^19; 10^19 is the largest power of ten that fits
// in a uint64, and so the chunk size RoundQuoPow10 divides by.
var pow10U128 = [...]U128{
	{lo: 1},
	{lo: 10},
	{lo: 100},
	{lo: 1000},
	{lo: 10000},
	{lo: 100000},
	{lo: 1000000},
	{lo: 10000000},
	{lo: 100000000},
	{lo: 1000000000},
	{lo: 10000000000},
	{lo: 100000000000},
	{lo: 1000000000000},
	{lo: 10000000000000},
	{lo: 100000000000000},
	{lo: 1000000000000000},
	{lo: 10000000000000000},
	{lo: 100000000000000000},
	{lo: 1000000000000000000},
	{lo: 10000000000000000000},
}

const pow10ChunkDigits = len(pow10U128) - 1

// RoundQuoPow2 returns u / 2^n, rounded to nearest with ties to even.
func (u Uint[H]) RoundQuoPow2(n uint) Uint[H] {
	w := u.width()
	if n == 0 {
		return u
	} else if n > w {
		// u < 2^w <= 2^(n-1), always below half.
		return Uint[H]{}
	}

	q, out := u.RshWide(n)

	// out holds the shifted-out bits left-aligned, so it is exactly half
	// when only its top bit is set.
	if out.LeadingZeros() == 0 {
		if out.TrailingZeros() < w-1 || q.IsOdd() {
			q = q.Inc()
		}
	}
	return q
}

// RoundQuo returns u / d, rounded to nearest with ties to even. If d == 0, a
// division-by-zero run-time panic occurs.
func (u Uint[H]) RoundQuo(d Uint[H]) Uint[H] {
	q, r := u.QuoRem(d)

	// Comparing r with d-r avoids halving d, which would lose the low bit of
	// an odd divisor and report ties that are not there.
	c := r.Cmp(d.Sub(r))
	if c > 0 || (c == 0 && q.IsOdd()) {
		q = q.Inc()
	}
	return q
}

// RoundQuoPow10 returns u / 10^n, rounded to nearest with ties to even.
//
// The division is done in chunks of 10^19 so each step is a single division
// by a word. A remainder of exactly half in the last chunk is only a tie if
// every earlier chunk also left nothing behind.
func (u Uint[H]) RoundQuoPow10(n uint) Uint[H] {
	if n == 0 {
		return u
	}

	chunks := (n - 1) / uint(pow10ChunkDigits)
	rest := n - chunks*uint(pow10ChunkDigits)

	q := u
	allZero := true
	for i := uint(0); i < chunks; i++ {
		var r U128
		q, r = q.QuoRemWord(pow10U128[pow10ChunkDigits])
		if !r.IsZero() {
			allZero = false
		}
		if q.IsZero() {
			return q
		}
	}

	d := pow10U128[rest]
	q, r := q.QuoRemWord(d)
	c := r.Cmp(d.Sub(r))
	if c > 0 || (c == 0 && (!allZero || q.IsOdd())) {
		q = q.Inc()
	}
	return q
}
