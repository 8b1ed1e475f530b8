package rawvec

import "fmt"

// Delete removes the element at index, shifting later elements left.
//
// Like DeleteRange, Delete cannot remove the last element: index must
// satisfy index+1 < Size(). Use Pop to drop the tail.
func (v *Vector) Delete(index int) error {
	return v.DeleteRange(index, 1)
}

// DeleteRange removes count elements starting at index, shifting later
// elements left, and triggers a shrink check.
//
// The range must satisfy index+count < Size(): deleting through the last
// element in one call is rejected with ErrOutOfRange. This boundary is
// deliberately asymmetric with Pop, which does remove the last element; see
// the pinned behavior in the tests.
func (v *Vector) DeleteRange(index, count int) error {
	if v == nil || count <= 0 {
		return fmt.Errorf("%w: nil vector or non-positive count", ErrInvalidArgument)
	}
	if index < 0 || index+count >= v.size {
		return fmt.Errorf("%w: range [%d, %d), size %d", ErrOutOfRange, index, index+count, v.size)
	}

	if index < v.size-1 {
		v.shiftLeft(index, count)
	}

	v.size -= count
	if v.shouldShrink(v.size) {
		return v.reallocate(v.growTarget(v.size))
	}

	return nil
}

// Pop removes the last element and triggers a shrink check. It fails with
// ErrOutOfRange on an empty vector.
func (v *Vector) Pop() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}
	if v.size == 0 {
		return fmt.Errorf("%w: pop on empty vector", ErrOutOfRange)
	}

	v.size--
	if v.shouldShrink(v.size) {
		return v.reallocate(v.growTarget(v.size))
	}

	return nil
}

// Clear removes all elements, honoring the shrink policy.
func (v *Vector) Clear() error {
	return v.Resize(0)
}
