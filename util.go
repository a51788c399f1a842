package num

import "fmt"

type RandSource interface {
	Uint64() uint64
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) U256 {
	return U256{hi: RandU128(source), lo: RandU128(source)}
}

// RandU512 generates an unsigned 512-bit random integer from an external source.
func RandU512(source RandSource) U512 {
	return U512{hi: RandU256(source), lo: RandU256(source)}
}

// RandF256 returns a random bit pattern as an F256. The result may be any
// value, including NaN, infinities and subnormals.
func RandF256(source RandSource) F256 {
	return F256{bits: RandU256(source)}
}

// LargerF256 returns the larger of a and b. If only one is NaN, the other is
// returned; -0 is considered smaller than +0.
func LargerF256(a, b F256) F256 {
	if a.IsNaN() {
		return b
	} else if b.IsNaN() {
		return a
	}
	if a.TotalCmp(b) >= 0 {
		return a
	}
	return b
}

// SmallerF256 returns the smaller of a and b. If only one is NaN, the other is
// returned; -0 is considered smaller than +0.
func SmallerF256(a, b F256) F256 {
	if a.IsNaN() {
		return b
	} else if b.IsNaN() {
		return a
	}
	if a.TotalCmp(b) <= 0 {
		return a
	}
	return b
}

// debugChecks enables internal consistency checks. The tests switch it on.
var debugChecks = false

func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
