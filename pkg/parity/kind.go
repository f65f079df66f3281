package parity

import "log/slog"

// Kind is the parity class of a value.
type Kind uint8

const (
	// Neither marks a value that is not integer-valued: a float with a
	// fractional part, NaN or an infinity.
	Neither Kind = iota
	Even
	Odd
)

func (k Kind) String() string {
	switch k {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "neither"
	}
}

// LogValue implements slog.LogValuer.
func (k Kind) LogValue() slog.Value {
	return slog.StringValue(k.String())
}

// Of classifies any Parity implementation.
func Of(p Parity) Kind {
	switch {
	case p.IsEven():
		return Even
	case p.IsOdd():
		return Odd
	default:
		return Neither
	}
}

// ClassifyInt classifies an integer. The result is never Neither.
func ClassifyInt[T Integer](v T) Kind {
	if IsEven(v) {
		return Even
	}
	return Odd
}

// ClassifyFloat classifies a floating-point value.
func ClassifyFloat[T Float](v T) Kind {
	switch {
	case IsEvenFloat(v):
		return Even
	case IsOddFloat(v):
		return Odd
	default:
		return Neither
	}
}

// Attr records k under the given key.
func Attr(key string, k Kind) slog.Attr {
	return slog.Any(key, k)
}
