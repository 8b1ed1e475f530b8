package rawvec

import "fmt"

// EqualityComparison reports whether two elements are equal. Both arguments
// are one-element byte views.
type EqualityComparison func(a, b []byte) bool

// Comparison is a three-way ordering over elements: negative if a < b, zero
// if a == b, positive if a > b.
type Comparison func(a, b []byte) int

// Find scans the whole vector in order and returns the index of the first
// element equal to the given one. It returns (-1, false, nil) if no element
// matches.
func (v *Vector) Find(element []byte, eq EqualityComparison) (int, bool, error) {
	if v == nil {
		return -1, false, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}

	return v.FindRange(element, eq, 0, v.size)
}

// FindRange scans [index, index+count) in order and returns the index of
// the first element equal to the given one.
//
// A count of zero always yields (-1, false, nil) regardless of contents.
// Ranges extending past the current size fail with ErrOutOfRange.
func (v *Vector) FindRange(element []byte, eq EqualityComparison, index, count int) (int, bool, error) {
	if v == nil || eq == nil {
		return -1, false, fmt.Errorf("%w: nil vector or comparison", ErrInvalidArgument)
	}
	if count == 0 {
		return -1, false, nil
	}
	if index < 0 || count < 0 || index+count > v.size {
		return -1, false, fmt.Errorf("%w: range [%d, %d), size %d", ErrOutOfRange, index, index+count, v.size)
	}

	for i := index; i < index+count; i++ {
		if eq(v.offset(i), element) {
			return i, true, nil
		}
	}

	return -1, false, nil
}

// BinarySearch searches the whole vector, which must be sorted ascending per
// cmp, for the given element.
//
// The returned index is always the insertion point: the first index whose
// element is not less than the target. The boolean reports whether an exact
// match exists; with duplicate keys the insertion point is the leftmost
// match.
func (v *Vector) BinarySearch(element []byte, cmp Comparison) (int, bool, error) {
	if v == nil {
		return 0, false, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}

	return v.BinarySearchRange(element, cmp, 0, v.size)
}

// BinarySearchRange searches the sorted range [index, index+count) for the
// given element. See BinarySearch for the result contract.
func (v *Vector) BinarySearchRange(element []byte, cmp Comparison, index, count int) (int, bool, error) {
	if v == nil || cmp == nil {
		return 0, false, fmt.Errorf("%w: nil vector or comparison", ErrInvalidArgument)
	}
	if index < 0 || count < 0 || index+count > v.size {
		return 0, false, fmt.Errorf("%w: range [%d, %d), size %d", ErrOutOfRange, index, index+count, v.size)
	}
	if count == 0 {
		return index, false, nil
	}

	// Closed-interval search; on ties keep narrowing the lower half so
	// duplicates resolve to their first occurrence.
	found := false
	l := index
	h := index + count - 1
	for l <= h {
		mid := l + ((h - l) >> 1)
		c := cmp(v.offset(mid), element)
		if c < 0 {
			l = mid + 1
		} else {
			h = mid - 1
			if c == 0 {
				found = true
			}
		}
	}

	return l, found, nil
}
