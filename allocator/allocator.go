// Package allocator provides pluggable memory allocators for rawvec
// containers.
//
// An Allocator manages raw byte buffers sized in whole elements. The default
// Heap allocator leans on the Go runtime; Aligned, Mmap, and Limited cover
// SIMD alignment, off-heap storage, and budget enforcement.
package allocator

import (
	"errors"
	"math"
)

var (
	// ErrAllocationFailed is returned when an allocation cannot be satisfied.
	ErrAllocationFailed = errors.New("allocator: allocation failed")
	// ErrForeignBuffer is returned when a buffer is handed back to an
	// allocator that did not allocate it.
	ErrForeignBuffer = errors.New("allocator: buffer not owned by this allocator")
	// ErrUnsupported is returned when the allocator is not available on the
	// current platform.
	ErrUnsupported = errors.New("allocator: not supported on this platform")
)

// Allocator is a capability object that manages element buffers.
//
// All sizes are expressed as (elemSize, n) pairs; the byte length of a
// buffer is always elemSize × n. Reallocate preserves the leading
// min(old, new) bytes of the buffer and may return a different slice.
// Failures leave the original buffer untouched.
type Allocator interface {
	Allocate(elemSize, n int) ([]byte, error)
	Reallocate(buf []byte, elemSize, n int) ([]byte, error)
	Deallocate(buf []byte, elemSize, n int) error
}

// Heap is the default allocator, backed by the Go runtime heap. Deallocate
// is a no-op; the garbage collector reclaims released buffers.
type Heap struct{}

var defaultAllocator Allocator = Heap{}

// Default returns the shared heap allocator.
func Default() Allocator { return defaultAllocator }

// invalidRequest reports whether (elemSize, n) describes a buffer that
// cannot exist, including products that overflow int.
func invalidRequest(elemSize, n int) bool {
	return elemSize <= 0 || n < 0 || (n > 0 && elemSize > math.MaxInt/n)
}

// Allocate returns a zeroed buffer for n elements.
func (Heap) Allocate(elemSize, n int) ([]byte, error) {
	if invalidRequest(elemSize, n) {
		return nil, ErrAllocationFailed
	}
	return make([]byte, elemSize*n), nil
}

// Reallocate resizes buf to hold n elements, reusing spare slice capacity
// where possible.
func (Heap) Reallocate(buf []byte, elemSize, n int) ([]byte, error) {
	if invalidRequest(elemSize, n) {
		return nil, ErrAllocationFailed
	}
	size := elemSize * n
	if size <= cap(buf) {
		return buf[:size], nil
	}
	grown := make([]byte, size)
	copy(grown, buf)
	return grown, nil
}

// Deallocate is a no-op for heap buffers.
func (Heap) Deallocate(buf []byte, elemSize, n int) error {
	return nil
}
