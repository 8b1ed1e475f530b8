package allocator

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap(t *testing.T) {
	t.Run("Allocate", func(t *testing.T) {
		buf, err := Heap{}.Allocate(4, 10)
		require.NoError(t, err)
		assert.Len(t, buf, 40)
	})

	t.Run("AllocateInvalid", func(t *testing.T) {
		_, err := Heap{}.Allocate(0, 10)
		assert.ErrorIs(t, err, ErrAllocationFailed)

		_, err = Heap{}.Allocate(4, -1)
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})

	t.Run("SizeOverflow", func(t *testing.T) {
		// elemSize × n wraps around int; the request must fail instead of
		// allocating a buffer smaller than claimed.
		_, err := Heap{}.Allocate(8, math.MaxInt/4)
		assert.ErrorIs(t, err, ErrAllocationFailed)

		_, err = Heap{}.Reallocate(nil, 8, math.MaxInt/4)
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})

	t.Run("ReallocatePreservesPrefix", func(t *testing.T) {
		buf, err := Heap{}.Allocate(1, 4)
		require.NoError(t, err)
		copy(buf, []byte{1, 2, 3, 4})

		grown, err := Heap{}.Reallocate(buf, 1, 8)
		require.NoError(t, err)
		assert.Len(t, grown, 8)
		assert.Equal(t, []byte{1, 2, 3, 4}, grown[:4])
	})

	t.Run("ReallocateShrink", func(t *testing.T) {
		buf, err := Heap{}.Allocate(1, 8)
		require.NoError(t, err)

		shrunk, err := Heap{}.Reallocate(buf, 1, 2)
		require.NoError(t, err)
		assert.Len(t, shrunk, 2)
	})

	t.Run("DeallocateIsNoop", func(t *testing.T) {
		buf, err := Heap{}.Allocate(4, 4)
		require.NoError(t, err)
		assert.NoError(t, Heap{}.Deallocate(buf, 4, 4))
	})

	t.Run("DefaultIsHeap", func(t *testing.T) {
		_, ok := Default().(Heap)
		assert.True(t, ok)
	})
}

func TestAligned(t *testing.T) {
	t.Run("AllocateAligned", func(t *testing.T) {
		for _, n := range []int{1, 3, 16, 17, 100} {
			buf, err := Aligned{}.Allocate(4, n)
			require.NoError(t, err)
			require.Len(t, buf, 4*n)

			addr := uintptr(unsafe.Pointer(&buf[0]))
			assert.Equal(t, uintptr(0), addr%Alignment, "address %d should be aligned to %d for n=%d", addr, Alignment, n)
		}
	})

	t.Run("SizeOverflow", func(t *testing.T) {
		_, err := Aligned{}.Allocate(8, math.MaxInt/4)
		assert.ErrorIs(t, err, ErrAllocationFailed)

		// A product that fits in int but not with the alignment headroom.
		_, err = Aligned{}.Allocate(1, math.MaxInt-1)
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})

	t.Run("ReallocateKeepsAlignmentAndPrefix", func(t *testing.T) {
		buf, err := Aligned{}.Allocate(1, 4)
		require.NoError(t, err)
		copy(buf, []byte{9, 8, 7, 6})

		grown, err := Aligned{}.Reallocate(buf, 1, 256)
		require.NoError(t, err)
		require.Len(t, grown, 256)
		assert.Equal(t, []byte{9, 8, 7, 6}, grown[:4])

		addr := uintptr(unsafe.Pointer(&grown[0]))
		assert.Equal(t, uintptr(0), addr%Alignment)
	})
}
