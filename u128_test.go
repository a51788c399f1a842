package num

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = U128From64

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func u128s(s string) U128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num: u128 string %q invalid", s))
	}
	out, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate u128 %s", s))
	}
	return out
}

func randU128(scratch []byte) U128 {
	rand.Read(scratch)
	u := U128{}
	u.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		u.hi = binary.LittleEndian.Uint64(scratch[8:])
	}
	return u
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, bigU64(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x1, 0x8AC7230489E7FFFF}, bigs("28446744073709551615")},
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{U128{0x8000000000000000, 0}, bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(1), u64(2), u64(3)},
		{u64(10), u64(3), u64(13)},
		{MaxU128, u64(1), u64(0)},                               // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616")}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestU128AddCarry(t *testing.T) {
	for idx, tc := range []struct {
		a, b     U128
		carryIn  uint
		sum      U128
		carryOut uint
	}{
		{u64(1), u64(2), 0, u64(3), 0},
		{u64(1), u64(2), 1, u64(4), 0},
		{MaxU128, u64(0), 1, u64(0), 1},
		{MaxU128, MaxU128, 1, MaxU128, 1},
		{u64(maxUint64), u64(0), 1, u128s("18446744073709551616"), 0},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s+%d", idx, tc.a, tc.b, tc.carryIn), func(t *testing.T) {
			tt := assert.WrapTB(t)
			sum, carry := tc.a.AddCarry(tc.b, tc.carryIn)
			tt.MustEqual(tc.sum, sum)
			tt.MustEqual(tc.carryOut, carry)

			// Subtracting undoes it, borrow for carry.
			diff, borrow := sum.SubBorrow(tc.b, tc.carryIn)
			tt.MustEqual(tc.a, diff)
			tt.MustEqual(tc.carryOut, borrow)
		})
	}
}

func TestU128Dec(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(0)},
		{u64(10), u64(9)},
		{u64(maxUint64), u128s("18446744073709551614")},
		{u64(0), MaxU128},
		{u64(maxUint64).Add(u64(1)), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			dec := tc.a.Dec()
			tt.MustAssert(tc.b.Equal(dec), "%s - 1 != %s, found %s", tc.a, tc.b, dec)
		})
	}
}

func TestU128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   U128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "1"},
		{u64(1), "%v", "1"},
		{MaxU128, "%d", "340282366920938463463374607431768211455"},
		{MaxU128, "%#d", "340282366920938463463374607431768211455"},
		{MaxU128, "%o", "3777777777777777777777777777777777777777777"},
		{MaxU128, "%b", strings.Repeat("1", 128)},
		{MaxU128, "%#o", "03777777777777777777777777777777777777777777"},
		{MaxU128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{MaxU128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128{hi: 0x1, lo: 0x0}, true},                // 1 << 64
		{bigs("36893488147419103231"), U128{hi: 0x1, lo: 0xFFFFFFFFFFFFFFFF}, true}, // (1<<65) - 1
		{bigs("28446744073709551615"), u128s("28446744073709551615"), true},
		{bigs("170141183460469231731687303715884105727"), u128s("170141183460469231731687303715884105727"), true},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, true},
		{bigs("0x 1 0000000000000000 00000000000000000"), MaxU128, false},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFFF"), MaxU128, false},
		{bigs("-1"), u64(0), false},
	} {
		t.Run(fmt.Sprintf("%d/%s=%d,%d", idx, tc.a, tc.b.lo, tc.b.hi), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(acc, tc.acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: (%d, %d), expected (%d, %d)", v.hi, v.lo, tc.b.hi, tc.b.lo)
		})
	}
}

func TestU128Inc(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(2)},
		{u64(10), u64(11)},
		{u64(maxUint64), u128s("18446744073709551616")},
		{u64(maxUint64), u64(maxUint64).Add(u64(1))},
		{MaxU128, u64(0)},
	} {
		t.Run(fmt.Sprintf("%s+1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			inc := tc.a.Inc()
			tt.MustAssert(tc.b.Equal(inc), "%s + 1 != %s, found %s", tc.a, tc.b, inc)
		})
	}
}

func TestU128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(4)},
		{u: u64(1), by: 2, r: u64(4)},
		{u: u128s("18446744073709551615"), by: 1, r: u128s("36893488147419103230")}, // (1<<64) - 1
		{u: u128s("5080864651895"), by: 57, r: u128s("732229764895815899943471677440")},
		{u: u128s("63669103"), by: 85, r: u128s("2463079120908903847397520463364096")},
		{u: u128s("0x1f1ecfd29cb51500c1a0699657"), by: 104, r: u128s("0x69965700000000000000000000000000")},
		{u: u128s("0x4ff0d215cf8c26f26344"), by: 58, r: u128s("0xc348573e309bc98d1000000000000000")},
		{u: u128s("213"), by: 65, r: u128s("7858312975400268988416")},
		{u: u128s("40625"), by: 55, r: u128s("1463669878895411200000")},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Lsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Lsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128ShiftWide(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u := randU128(scratch)
		n := uint(rand.Intn(257))

		hi, lo := u.LshWide(n % 129)
		exp := new(big.Int).Lsh(u.AsBigInt(), n%129)
		tt.MustEqual(exp.String(), joinBig(hi.AsBigInt(), lo.AsBigInt(), 128).String(), "%s <<wide %d", u, n)

		// Right: v is u >> n, and out holds the lost bits at the top.
		v, out := u.RshWide(n)
		full := new(big.Int).Lsh(u.AsBigInt(), 128)
		full.Rsh(full, n)
		tt.MustEqual(full.String(), joinBig(v.AsBigInt(), out.AsBigInt(), 128).String(), "%s >>wide %d", u, n)
	}
}

func TestU128Mul(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U128From64(maxUint64)
	v := u.Mul(U128From64(maxUint64))

	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)
	tt.MustEqual(v.String(), v1.Mul(&v1, &v2).String())
}

func TestU128MulWide(t *testing.T) {
	tt := assert.WrapTB(t)

	scratch := make([]byte, 16)

	for i := 0; i < 50000; i++ {
		u1, u2, c := randU128(scratch), randU128(scratch), randU128(scratch)
		b1, b2 := u1.AsBigInt(), u2.AsBigInt()

		rb := new(big.Int).Mul(b1, b2)
		hi, lo := u1.MulWide(u2)
		tt.MustEqual(rb.String(), joinBig(hi.AsBigInt(), lo.AsBigInt(), 128).String(), "failed at index %d", i)

		rb.Add(rb, c.AsBigInt())
		hi, lo = u1.MulCarry(u2, c)
		tt.MustEqual(rb.String(), joinBig(hi.AsBigInt(), lo.AsBigInt(), 128).String(), "failed at index %d", i)
	}
}

func TestU128QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},

		// Investigate possible div/0 where lo of divisor is 0:
		{u: U128{hi: 0, lo: 1}, by: U128{hi: 1, lo: 0}, q: u64(0), r: u64(1)},

		// 128-bit 'cmp == 0' shortcut branch:
		{u128s("0x1234567890123456"), u128s("0x1234567890123456"), u64(1), u64(0)},

		// 128-bit 'cmp < 0' shortcut branch:
		{u128s("0x123456789012345678901234"), u128s("0x222222229012345678901234"), u64(0), u128s("0x123456789012345678901234")},

		// 128-bit 'cmp == 0' shortcut branch:
		{u128s("0x123456789012345678901234"), u128s("0x123456789012345678901234"), u64(1), u64(0)},

		{u128s("3289699161974853443944280720275488"), u128s("9261249991223143249760"), u128s("355211139435"), u128s("96980854802329989888")},
		{u128s("555579170280843546177"), u128s("21475569273528505412"), u64(25), u128s("18689938442630910877")},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()

			qBig, rBig := new(big.Int).QuoRem(uBig, byBig, new(big.Int))
			tt.MustEqual(tc.q.String(), qBig.String())
			tt.MustEqual(tc.r.String(), rBig.String())

			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
		})
	}
}

func TestU128QuoByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustEqual("u128: division by zero", recover())
	}()
	u64(1).Quo(u64(0))
}

func TestU128Rsh(t *testing.T) {
	for _, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(1)},
		{u: u64(1), by: 2, r: u64(0)},
		{u: u128s("36893488147419103232"), by: 1, r: u128s("18446744073709551616")}, // (1<<65) - 1
		{u: u128s("2465608830469196860151950841431"), by: 104, r: u64(0)},
		{u: u128s("377509308958315595850564"), by: 58, r: u64(1309748)},
		{u: u128s("8504691434450337657905929307096"), by: 74, r: u128s("450234615")},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: u64(718)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Rsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Rsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Zeros(t *testing.T) {
	for _, tc := range []struct {
		u      U128
		lz, tz uint
	}{
		{u64(0), 128, 128},
		{u64(1), 127, 0},
		{MaxU128, 0, 0},
		{U128{hi: 1}, 63, 64},
		{U128{hi: 1 << 63}, 0, 127},
		{U128{lo: 1 << 63}, 64, 63},
	} {
		t.Run(fmt.Sprintf("%#x", tc.u), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.lz, tc.u.LeadingZeros())
			tt.MustEqual(tc.tz, tc.u.TrailingZeros())
		})
	}
}

func TestU128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u := randU128(bts)

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}

func TestU128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in       string
		out      U128
		accurate bool
		ok       bool
	}{
		{"0", U128{}, true, true},
		{"18446744073709551616", U128FromRaw(1, 0), true, true},
		{"340282366920938463463374607431768211455", MaxU128, true, true},
		{"340282366920938463463374607431768211456", MaxU128, false, true},
		{"0x10", U128{}, false, false},
		{"", U128{}, false, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, accurate, err := U128FromString(tc.in)
			tt.MustEqual(tc.ok, err == nil)
			if !tc.ok {
				return
			}
			tt.MustEqual(tc.out, out)
			tt.MustEqual(tc.accurate, accurate)
		})
	}
}

func TestU128Uint64(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U128From32(math.MaxUint32)
	tt.MustAssert(u.IsUint64())
	tt.MustEqual(uint64(math.MaxUint32), u.AsUint64())

	u = U128FromRaw(1, 2)
	tt.MustAssert(!u.IsUint64())
	tt.MustEqual(uint64(2), u.AsUint64())

	hi, lo := u.Raw()
	tt.MustEqual(uint64(1), hi)
	tt.MustEqual(uint64(2), lo)
}
