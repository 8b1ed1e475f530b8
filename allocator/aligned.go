package allocator

import (
	"math"
	"unsafe"
)

// Alignment is the byte alignment guaranteed by the Aligned allocator
// (AVX-512 friendly).
const Alignment = 64

// maxAlignedSize keeps the over-allocation headroom in allocAligned from
// overflowing.
const maxAlignedSize = math.MaxInt - Alignment

// Aligned allocates buffers whose first byte sits on a 64-byte boundary,
// which keeps element rows SIMD-friendly for power-of-two element sizes.
// Deallocate is a no-op, as with Heap.
type Aligned struct{}

// Allocate returns a zeroed, 64-byte-aligned buffer for n elements.
func (Aligned) Allocate(elemSize, n int) ([]byte, error) {
	if invalidRequest(elemSize, n) || elemSize*n > maxAlignedSize {
		return nil, ErrAllocationFailed
	}
	return allocAligned(elemSize * n), nil
}

// Reallocate resizes buf to hold n elements, preserving alignment of the
// returned buffer.
func (Aligned) Reallocate(buf []byte, elemSize, n int) ([]byte, error) {
	if invalidRequest(elemSize, n) || elemSize*n > maxAlignedSize {
		return nil, ErrAllocationFailed
	}
	size := elemSize * n
	if size <= cap(buf) {
		return buf[:size], nil
	}
	grown := allocAligned(size)
	copy(grown, buf)
	return grown, nil
}

// Deallocate is a no-op for aligned heap buffers.
func (Aligned) Deallocate(buf []byte, elemSize, n int) error {
	return nil
}

// allocAligned allocates a byte slice of the given size whose first byte is
// aligned to Alignment. It over-allocates by up to Alignment-1 bytes to find
// an aligned offset; the underlying array is kept alive by the returned
// slice.
func allocAligned(size int) []byte {
	if size == 0 {
		return []byte{}
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
