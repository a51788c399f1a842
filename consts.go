package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

// binary256 format parameters.
const (
	F256TotalBits       = 256
	F256ExponentBits    = 19
	F256SignificandBits = F256TotalBits - F256ExponentBits // p = 237
	F256FractionBits    = F256SignificandBits - 1          // 236

	f256ExpMax = 1<<F256ExponentBits - 1 // biased exponent of Inf and NaN

	F256ExpBias = f256ExpMax >> 1               // 262143
	F256MaxExp  = F256ExpBias                   // Emax
	F256MinExp  = 1 - F256MaxExp                // Emin
	f256MinQExp = F256MinExp - F256FractionBits // quantum exponent of subnormals
	f256MaxQExp = F256MaxExp - F256FractionBits // quantum exponent of the largest binade
)

// The layout of the top 64 bits of an F256, which hold the sign, the whole
// exponent field and the top 44 bits of the fraction.
const (
	topFractionBits = F256FractionBits - 192
	topFractionMask = 1<<topFractionBits - 1
	topHiddenBit    = 1 << topFractionBits
	topExpMask      = f256ExpMax << topFractionBits
	topSignMask     = 1 << 63
	topAbsMask      = topSignMask - 1
	topNaN          = topExpMask | 1<<(topFractionBits-1)
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxU256 = U256{hi: MaxU128, lo: MaxU128}

	zeroU128 U128

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)
)

var (
	F256NaN     = F256{bits: U256{hi: U128{hi: topNaN}}}
	F256Inf     = F256{bits: U256{hi: U128{hi: topExpMask}}}
	F256NegInf  = F256{bits: U256{hi: U128{hi: topSignMask | topExpMask}}}
	F256Zero    = F256{}
	F256NegZero = F256{bits: U256{hi: U128{hi: topSignMask}}}
	F256One     = F256{bits: U256{hi: U128{hi: F256ExpBias << topFractionBits}}}
	F256NegOne  = F256{bits: U256{hi: U128{hi: topSignMask | F256ExpBias<<topFractionBits}}}
	F256Two     = F256{bits: U256{hi: U128{hi: (F256ExpBias + 1) << topFractionBits}}}
	F256Ten     = F256{bits: U256{hi: U128{hi: (F256ExpBias+3)<<topFractionBits | 1<<(topFractionBits-2)}}}

	// F256Half is 0.5.
	F256Half = F256{bits: U256{hi: U128{hi: (F256ExpBias - 1) << topFractionBits}}}

	// F256Max is the largest finite value, (2 - 2^-236) * 2^262143.
	F256Max = F256{bits: U256{
		hi: U128{hi: (f256ExpMax-1)<<topFractionBits | topFractionMask, lo: maxUint64},
		lo: MaxU128,
	}}

	// F256Min is the most negative finite value, -F256Max.
	F256Min = F256{bits: U256{
		hi: U128{hi: topSignMask | (f256ExpMax-1)<<topFractionBits | topFractionMask, lo: maxUint64},
		lo: MaxU128,
	}}

	// F256Epsilon is the difference between 1.0 and the next larger
	// representable number, 2^-236.
	F256Epsilon = F256{bits: U256{hi: U128{hi: (F256ExpBias - F256FractionBits) << topFractionBits}}}

	// F256MinPositive is the smallest positive normal value, 2^-262142.
	F256MinPositive = F256{bits: U256{hi: U128{hi: 1 << topFractionBits}}}

	// F256MinGtZero is the smallest positive subnormal value, 2^-262378.
	F256MinGtZero = F256{bits: U256{lo: U128{lo: 1}}}
)
