//go:build windows

package allocator

// Mmap is not implemented on Windows; all operations fail with
// ErrUnsupported. Use Heap or Aligned instead.
type Mmap struct{}

func (Mmap) Allocate(elemSize, n int) ([]byte, error) {
	return nil, ErrUnsupported
}

func (Mmap) Reallocate(buf []byte, elemSize, n int) ([]byte, error) {
	return nil, ErrUnsupported
}

func (Mmap) Deallocate(buf []byte, elemSize, n int) error {
	return ErrUnsupported
}
