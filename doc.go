/*
Package num provides fixed-width unsigned integers (U128, U256, U512, U1024)
and a software IEEE 754 binary256 floating point type (F256).

All types are value types; all operations return new values.

U128 is the base word, built from two uint64 halves. Wider integers are the
generic Uint[H], which doubles any narrower width, so U256 is Uint[U128],
U512 is Uint[U256] and U1024 is Uint[U512]. Every width supports the same
API: wrapping and carry-aware add/sub, full-width multiplication (MulWide),
division with remainder, shifts that spill into a second word (LshWide,
RshWide), and round-to-nearest-even division (RoundQuo, RoundQuoPow2,
RoundQuoPow10).

Simple example:

	u1 := U256From64(math.MaxUint64)
	u2 := U256From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Division by zero panics.

F256 has a 1 bit sign, a 19 bit exponent and a 237 bit significand (236
stored). Add, Sub, Mul, Quo and Rem are correctly rounded to nearest, ties to
even, with gradual underflow to subnormals and overflow to infinity. Sqrt,
Hypot and the fused MulAdd round once in the same way:

	x := F256FromInt64(1)
	y := F256FromInt64(3)
	fmt.Println(x.Quo(y))
	// Output: 0.3333333333333333333333333333333333333333333333333333333333333333333333...

F256 values can be created from a variety of sources:

	F256FromBits(bits U256) F256
	F256FromInt64(v int64) F256
	F256FromUint64(v uint64) F256
	F256FromU128(v U128) F256
	F256FromU256(v U256) F256
	F256FromFloat64(v float64) F256
	F256FromBigFloat(b *big.Float) (F256, big.Accuracy)
	F256FromString(s string) (F256, error)
	F256Encode(sign uint, exp int, signif U256) F256

The integer types and F256 support the following formatting and marshalling
interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler

Integral F256 values convert back with Int64, Uint64, U128 and U256, which
return ErrNotInteger or ErrOutOfRange instead of rounding or wrapping.
*/
package num
