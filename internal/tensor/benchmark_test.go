package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkTensorCreation(b *testing.B) {
	backend := NewMockBackend()
	shape := Shape{100, 100}

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Zeros[float32](shape, backend)
		}
	})

	b.Run("Empty", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Empty[float32](shape, backend)
		}
	})
}

func BenchmarkMockCat(b *testing.B) {
	backend := NewMockBackend()

	for _, size := range []int{16, 64} {
		x := Arange[float32](Shape{size, size}, backend)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.Cat(1, x)
			}
		})
	}
}
