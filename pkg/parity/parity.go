package parity

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Parity reports whether a value is even or odd.
//
// For integer-backed implementations exactly one of IsEven and IsOdd is true.
// Float-backed implementations may return false from both when the value has
// a fractional part or is not finite.
type Parity interface {
	IsEven() bool
	IsOdd() bool
}

// Integer permits every signed and unsigned integer type.
type Integer interface {
	constraints.Integer
}

// Float permits the float32 and float64 types.
type Float interface {
	constraints.Float
}

// Number permits any integer or floating-point type.
type Number interface {
	Integer | Float
}

// IsEven reports whether the least significant bit of v is clear.
func IsEven[T Integer](v T) bool {
	return v&1 == 0
}

// IsOdd reports whether the least significant bit of v is set.
func IsOdd[T Integer](v T) bool {
	return v&1 != 0
}

// IsEvenFloat reports whether v has no fractional part and is divisible by 2.
// NaN and infinities are never even.
func IsEvenFloat[T Float](v T) bool {
	f := float64(v)
	return isIntegral(f) && math.Mod(f, 2) == 0
}

// IsOddFloat reports whether v has no fractional part and is not divisible by 2.
// NaN and infinities are never odd.
func IsOddFloat[T Float](v T) bool {
	f := float64(v)
	return isIntegral(f) && math.Mod(f, 2) != 0
}

// isIntegral reports whether f has a zero fractional part.
// math.Modf returns a NaN fraction for infinities, so they fail here as well.
func isIntegral(f float64) bool {
	_, frac := math.Modf(f)
	return frac == 0
}

// Int adapts an integer value to the Parity interface.
type Int[T Integer] struct {
	V T
}

// OfInt wraps v so it can be passed where a Parity is expected.
func OfInt[T Integer](v T) Int[T] {
	return Int[T]{V: v}
}

// IsEven reports whether the wrapped integer is even.
func (i Int[T]) IsEven() bool {
	return IsEven(i.V)
}

// IsOdd reports whether the wrapped integer is odd.
func (i Int[T]) IsOdd() bool {
	return IsOdd(i.V)
}

// Real adapts a floating-point value to the Parity interface.
type Real[T Float] struct {
	V T
}

// OfFloat wraps v so it can be passed where a Parity is expected.
func OfFloat[T Float](v T) Real[T] {
	return Real[T]{V: v}
}

// IsEven reports whether the wrapped value is an even integer.
func (r Real[T]) IsEven() bool {
	return IsEvenFloat(r.V)
}

// IsOdd reports whether the wrapped value is an odd integer.
func (r Real[T]) IsOdd() bool {
	return IsOddFloat(r.V)
}

var (
	_ Parity = Int[int]{}
	_ Parity = Real[float64]{}
)
