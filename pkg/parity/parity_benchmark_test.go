package parity_test

import (
	"testing"

	"github.com/dmitrymomot/numkit/pkg/parity"
)

var sink bool

func BenchmarkIsEven(b *testing.B) {
	b.Run("int64", func(b *testing.B) {
		v := int64(-12345)
		for i := 0; i < b.N; i++ {
			sink = parity.IsEven(v)
		}
	})

	b.Run("uint8", func(b *testing.B) {
		v := uint8(201)
		for i := 0; i < b.N; i++ {
			sink = parity.IsEven(v)
		}
	})

	b.Run("int128", func(b *testing.B) {
		v := parity.MaxInt128
		for i := 0; i < b.N; i++ {
			sink = v.IsEven()
		}
	})
}

func BenchmarkIsEvenFloat(b *testing.B) {
	b.Run("float64", func(b *testing.B) {
		v := 1234.0
		for i := 0; i < b.N; i++ {
			sink = parity.IsEvenFloat(v)
		}
	})

	b.Run("float32", func(b *testing.B) {
		v := float32(1234.5)
		for i := 0; i < b.N; i++ {
			sink = parity.IsEvenFloat(v)
		}
	})
}

func BenchmarkOf(b *testing.B) {
	var p parity.Parity = parity.OfFloat(3.0)
	for i := 0; i < b.N; i++ {
		_ = parity.Of(p)
	}
}
