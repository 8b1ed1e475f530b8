package rawvec

import "fmt"

// At returns a view of the element at index.
//
// The returned slice aliases the internal buffer (no copy is made) and may
// be read or written through; it is invalidated by the next mutating
// operation on the vector.
func (v *Vector) At(index int) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}
	if index < 0 || index >= v.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, v.size)
	}

	return v.offset(index), nil
}

// Set overwrites the element at index with the given value. The value must
// be exactly one element wide.
func (v *Vector) Set(index int, value []byte) error {
	if v == nil || value == nil {
		return fmt.Errorf("%w: nil vector or value", ErrInvalidArgument)
	}
	if len(value) != v.elemSize {
		return fmt.Errorf("%w: value is %d bytes, element size is %d", ErrInvalidArgument, len(value), v.elemSize)
	}
	if index < 0 || index >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, v.size)
	}

	copy(v.offset(index), value)

	return nil
}
