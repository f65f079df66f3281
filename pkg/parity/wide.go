package parity

import (
	"math"

	"lukechampine.com/uint128"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 uint128.Uint128

// MaxUint128 is the largest value a Uint128 can hold.
var MaxUint128 = Uint128(uint128.Max)

// NewUint128 builds a Uint128 from its low and high 64-bit halves.
func NewUint128(lo, hi uint64) Uint128 {
	return Uint128(uint128.New(lo, hi))
}

// Uint128From64 converts v to a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128(uint128.From64(v))
}

// Bits returns u as a uint128.Uint128 for arithmetic.
func (u Uint128) Bits() uint128.Uint128 {
	return uint128.Uint128(u)
}

func (u Uint128) IsEven() bool {
	return IsEven(u.Lo)
}

func (u Uint128) IsOdd() bool {
	return IsOdd(u.Lo)
}

// Int128 is a signed 128-bit integer in two's-complement form.
// Hi carries the sign; Lo holds the low 64 bits.
type Int128 struct {
	Lo uint64
	Hi int64
}

var (
	// MinInt128 is the smallest value an Int128 can hold.
	MinInt128 = Int128{Lo: 0, Hi: math.MinInt64}
	// MaxInt128 is the largest value an Int128 can hold.
	MaxInt128 = Int128{Lo: math.MaxUint64, Hi: math.MaxInt64}
)

// NewInt128 builds an Int128 from its low and high 64-bit halves.
func NewInt128(lo uint64, hi int64) Int128 {
	return Int128{Lo: lo, Hi: hi}
}

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{Lo: uint64(v), Hi: v >> 63}
}

// Int128FromBits reinterprets the two's-complement bit pattern b as an Int128.
func Int128FromBits(b uint128.Uint128) Int128 {
	return Int128{Lo: b.Lo, Hi: int64(b.Hi)}
}

// Bits returns the two's-complement bit pattern of i.
func (i Int128) Bits() uint128.Uint128 {
	return uint128.New(i.Lo, uint64(i.Hi))
}

// IsEven reports whether i is even. The low bit decides parity in
// two's-complement exactly as it does for unsigned values.
func (i Int128) IsEven() bool {
	return IsEven(i.Lo)
}

// IsOdd reports whether i is odd.
func (i Int128) IsOdd() bool {
	return IsOdd(i.Lo)
}

var (
	_ Parity = Uint128{}
	_ Parity = Int128{}
)
