package rawvec

import (
	"testing"

	"github.com/rawvec/rawvec/allocator"
	"github.com/rawvec/rawvec/testutil"
)

func BenchmarkPush(b *testing.B) {
	elem := testutil.NewRNG(1).Element(16)

	b.Run("Heap", func(b *testing.B) {
		v, _ := New(16)
		defer v.Destroy()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = v.Push(elem)
		}
	})

	b.Run("Aligned", func(b *testing.B) {
		v, _ := New(16, WithAllocator(allocator.Aligned{}))
		defer v.Destroy()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = v.Push(elem)
		}
	})

	b.Run("Typed", func(b *testing.B) {
		v, _ := NewTyped[[16]byte]()
		var e [16]byte
		copy(e[:], elem)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Push(e)
		}
	})
}

func BenchmarkBinarySearch(b *testing.B) {
	v, _ := New(4, WithCapacity(1<<16))
	defer v.Destroy()
	for i := 0; i < 1<<16; i++ {
		_ = v.Push(testutil.Uint32Element(uint32(i * 2)))
	}
	needle := testutil.Uint32Element(1 << 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = v.BinarySearch(needle, uint32Compare)
	}
}

func BenchmarkInsertHead(b *testing.B) {
	elem := testutil.NewRNG(2).Element(8)
	v, _ := New(8, WithCapacity(b.N+1))
	defer v.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Insert(0, elem)
	}
}
