package rawvec

import "fmt"

// Resize sets the logical size of the vector, growing or shrinking the
// buffer per policy first.
//
// Elements in a newly exposed range are not initialized by the container;
// callers relying on zeroed memory must initialize them explicitly.
func (v *Vector) Resize(size int) error {
	if v == nil || size < 0 {
		return fmt.Errorf("%w: nil vector or negative size", ErrInvalidArgument)
	}

	if v.shouldGrow(size) || v.shouldShrink(size) {
		if err := v.reallocate(v.growTarget(size)); err != nil {
			return err
		}
	}

	v.size = size

	return nil
}

// Reserve grows the buffer to hold at least capacity elements. It never
// shrinks.
func (v *Vector) Reserve(capacity int) error {
	if v == nil || capacity < 0 {
		return fmt.Errorf("%w: nil vector or negative capacity", ErrInvalidArgument)
	}

	if capacity > v.capacity {
		return v.reallocate(capacity)
	}

	return nil
}

// ShrinkToFit reallocates the buffer to exactly the current size, subject to
// the MinCapacity floor. Fixed-buffer vectors are unchanged.
func (v *Vector) ShrinkToFit() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}

	return v.reallocate(v.size)
}
