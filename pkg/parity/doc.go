// Package parity reports whether numbers are even or odd.
//
// Every primitive integer and floating-point type is covered, plus 128-bit
// signed and unsigned integers, so generic code can ask "is this value even"
// without switching on the concrete type.
//
// # Usage
//
//	import "github.com/dmitrymomot/numkit/pkg/parity"
//
//	parity.IsEven(2)           // true
//	parity.IsOdd(uint64(3))    // true
//	parity.IsEven(int8(-2))    // true
//	parity.IsEvenFloat(2.5)    // false
//	parity.IsOddFloat(2.5)     // false
//
// IsEven and IsOdd accept any integer type and compile down to a single bit
// test. IsEvenFloat and IsOddFloat accept float32 and float64.
//
// Where a value has to travel behind an interface, wrap it with OfInt or
// OfFloat; both return types that implement Parity, as do Uint128 and Int128.
//
//	var p parity.Parity = parity.OfFloat(3.0)
//	p.IsOdd() // true
//
// # Integers
//
// Parity is the least significant bit of the value. For signed types this is
// the two's-complement bit, so -1 is odd and -2 is even. Exactly one of
// IsEven and IsOdd is true for every representable value, minimum and maximum
// included.
//
// # Floating point
//
// A float is even when it has no fractional part and is divisible by 2, and
// odd when it has no fractional part and is not. Everything else is neither:
// 1.5, 1e-8, NaN, +Inf and -Inf all return false from both queries. Negative
// zero is even.
//
// Kind gives the three outcomes a name:
//
//	parity.ClassifyFloat(2.5)   // parity.Neither
//	parity.Of(parity.OfInt(7))  // parity.Odd
//
// Kind implements slog.LogValuer, and Attr builds a ready-made slog attribute.
//
// # Error handling
//
// Nothing in this package returns an error or panics. "Both false" is the
// answer for a float that is not integer-valued.
//
// # Thread Safety
//
// All functions are pure and hold no state; they are safe for concurrent use.
package parity
