//go:build !windows

package allocator

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates buffers from anonymous memory mappings instead of the Go
// heap. Buffers are invisible to the garbage collector, which keeps large
// vectors out of GC scan work; Deallocate actually returns the memory to the
// operating system.
//
// Shrinking reallocations are served from the existing mapping; only growth
// maps a new region, copies, and unmaps the old one.
type Mmap struct{}

// Allocate maps an anonymous region for n elements.
func (Mmap) Allocate(elemSize, n int) ([]byte, error) {
	if invalidRequest(elemSize, n) {
		return nil, ErrAllocationFailed
	}
	return mapAnon(elemSize * n)
}

// Reallocate resizes buf to hold n elements.
func (m Mmap) Reallocate(buf []byte, elemSize, n int) ([]byte, error) {
	if invalidRequest(elemSize, n) {
		return nil, ErrAllocationFailed
	}
	size := elemSize * n
	if size <= cap(buf) {
		// Stay within the existing mapping. Munmap is keyed on the slice
		// capacity, so the shortened slice still unmaps cleanly later.
		return buf[:size], nil
	}

	grown, err := mapAnon(size)
	if err != nil {
		return nil, err
	}
	copy(grown, buf)
	if err := m.Deallocate(buf, 1, cap(buf)); err != nil {
		_ = unix.Munmap(grown)
		return nil, err
	}
	return grown, nil
}

// Deallocate unmaps the region backing buf.
func (Mmap) Deallocate(buf []byte, elemSize, n int) error {
	if cap(buf) == 0 {
		return nil
	}
	if err := unix.Munmap(buf[:cap(buf)]); err != nil {
		return fmt.Errorf("%w: munmap: %w", ErrForeignBuffer, err)
	}
	return nil
}

func mapAnon(size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %w", ErrAllocationFailed, err)
	}
	return data, nil
}
