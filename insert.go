package rawvec

import "fmt"

// Constructor initializes a freshly reserved element slot in place. The slot
// is exactly one element wide and holds unspecified bytes on entry.
type Constructor func(slot []byte) error

// Push appends one element. The element must be exactly one element wide.
// Amortized O(1).
func (v *Vector) Push(element []byte) error {
	if v == nil || element == nil {
		return fmt.Errorf("%w: nil vector or element", ErrInvalidArgument)
	}
	if len(element) != v.elemSize {
		return fmt.Errorf("%w: element is %d bytes, element size is %d", ErrInvalidArgument, len(element), v.elemSize)
	}

	if v.shouldGrow(v.size + 1) {
		if err := v.reallocate(v.growTarget(v.size + 1)); err != nil {
			return err
		}
	}

	copy(v.offset(v.size), element)
	v.size++

	return nil
}

// Insert inserts one element at index. Inserting at Size() appends.
// O(Size − index) for the shift.
func (v *Vector) Insert(index int, element []byte) error {
	return v.InsertMany(index, element)
}

// InsertMany inserts len(elements)/ElementSize() elements at index, in
// order. The byte length of elements must be a non-zero multiple of the
// element size. Inserting at Size() appends.
func (v *Vector) InsertMany(index int, elements []byte) error {
	if v == nil || len(elements) == 0 {
		return fmt.Errorf("%w: nil vector or empty elements", ErrInvalidArgument)
	}
	if len(elements)%v.elemSize != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of element size %d", ErrInvalidArgument, len(elements), v.elemSize)
	}
	if index < 0 || index > v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, v.size)
	}

	count := len(elements) / v.elemSize

	if v.shouldGrow(v.size + count) {
		if err := v.reallocate(v.growTarget(v.size + count)); err != nil {
			return err
		}
	}
	if index < v.size {
		v.shiftRight(index, count)
	}

	copy(v.data[index*v.elemSize:], elements)
	v.size += count

	return nil
}

// Emplace reserves a slot at the end of the vector and returns a view of it.
//
// If construct is non-nil it is invoked on the raw slot to perform in-place
// initialization; when construct is nil the slot holds unspecified bytes and
// the caller must initialize it through the returned view.
func (v *Vector) Emplace(construct Constructor) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}

	return v.EmplaceAt(v.size, construct)
}

// EmplaceAt reserves a slot at index, shifting later elements right, and
// returns a view of it. Reserving at Size() appends.
//
// If the constructor fails, the reservation is rolled back: the gap is
// closed again, the size is unchanged, and the constructor's error is
// returned. Elements that were shifted to open the gap are moved back, so a
// failed emplace leaves the vector observably unchanged (the buffer may have
// been reallocated).
func (v *Vector) EmplaceAt(index int, construct Constructor) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}
	if index < 0 || index > v.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, v.size)
	}

	if v.shouldGrow(v.size + 1) {
		if err := v.reallocate(v.growTarget(v.size + 1)); err != nil {
			return nil, err
		}
	}
	if index < v.size {
		v.shiftRight(index, 1)
	}

	slot := v.offset(index)
	if construct != nil {
		if err := construct(slot); err != nil {
			if index < v.size {
				// The shifted range extends one slot past size; move it back
				// directly instead of going through shiftLeft.
				copy(v.data[index*v.elemSize:], v.data[(index+1)*v.elemSize:(v.size+1)*v.elemSize])
			}
			return nil, err
		}
	}

	v.size++

	return slot, nil
}
