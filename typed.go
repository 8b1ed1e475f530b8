package rawvec

import (
	"fmt"
	"math"
)

// Typed is the generic counterpart of Vector: the element width lives in
// the type system instead of the runtime data model, and storage is a plain
// Go slice managed by the garbage collector.
//
// Typed keeps the same growth/shrink policy and operation set as Vector.
// Use Vector directly only when the element layout is genuinely dynamic
// (FFI, serialization layers); for everything else Typed is the safer
// surface.
type Typed[T any] struct {
	items           []T
	size            int
	growthFactor    float64
	shrinkThreshold float64
}

// TypedOption configures construction of a Typed vector.
type TypedOption func(*typedOptions)

type typedOptions struct {
	capacity        int
	growthFactor    float64
	shrinkThreshold float64
}

// WithTypedCapacity requests an initial capacity.
func WithTypedCapacity(capacity int) TypedOption {
	return func(o *typedOptions) {
		o.capacity = capacity
	}
}

// WithTypedGrowthFactor sets the growth multiplier (must be >= 1.0).
func WithTypedGrowthFactor(factor float64) TypedOption {
	return func(o *typedOptions) {
		o.growthFactor = factor
	}
}

// WithTypedShrinkThreshold sets the shrink threshold in [0, 1].
func WithTypedShrinkThreshold(threshold float64) TypedOption {
	return func(o *typedOptions) {
		o.shrinkThreshold = threshold
	}
}

// NewTyped creates a Typed vector for elements of type T.
func NewTyped[T any](optFns ...TypedOption) (*Typed[T], error) {
	opts := typedOptions{
		growthFactor:    DefaultGrowthFactor,
		shrinkThreshold: DefaultShrinkThreshold,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.growthFactor < 1.0 {
		return nil, fmt.Errorf("%w: growth factor %g < 1.0", ErrInvalidArgument, opts.growthFactor)
	}
	if opts.shrinkThreshold < 0.0 || opts.shrinkThreshold > 1.0 {
		return nil, fmt.Errorf("%w: shrink threshold %g outside [0, 1]", ErrInvalidArgument, opts.shrinkThreshold)
	}

	capacity := opts.capacity
	if capacity < MinCapacity {
		capacity = MinCapacity
	}

	return &Typed[T]{
		items:           make([]T, capacity),
		growthFactor:    opts.growthFactor,
		shrinkThreshold: opts.shrinkThreshold,
	}, nil
}

// Size returns the number of live elements.
func (t *Typed[T]) Size() int { return t.size }

// Capacity returns the number of element slots backing the vector.
func (t *Typed[T]) Capacity() int { return len(t.items) }

// Slice returns the live elements as a slice aliasing the internal storage.
// It is invalidated by the next mutating operation.
func (t *Typed[T]) Slice() []T { return t.items[:t.size:t.size] }

func (t *Typed[T]) growTarget(required int) int {
	target := int(math.Ceil(float64(required) * t.growthFactor))
	if target < 1 {
		target = 1
	}
	return target
}

func (t *Typed[T]) reallocate(capacity int) {
	if capacity < MinCapacity {
		if len(t.items) <= MinCapacity {
			return
		}
		capacity = MinCapacity
	}
	if capacity == len(t.items) {
		return
	}
	items := make([]T, capacity)
	copy(items, t.items[:t.size])
	t.items = items
}

func (t *Typed[T]) shouldGrow(size int) bool {
	return size > len(t.items)
}

func (t *Typed[T]) shouldShrink(size int) bool {
	return float64(size) < float64(len(t.items))*t.shrinkThreshold
}

// Push appends one element. Amortized O(1).
func (t *Typed[T]) Push(element T) {
	if t.shouldGrow(t.size + 1) {
		t.reallocate(t.growTarget(t.size + 1))
	}
	t.items[t.size] = element
	t.size++
}

// Insert inserts the given elements at index, in order. Inserting at Size()
// appends.
func (t *Typed[T]) Insert(index int, elements ...T) error {
	if len(elements) == 0 {
		return fmt.Errorf("%w: no elements", ErrInvalidArgument)
	}
	if index < 0 || index > t.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, t.size)
	}

	count := len(elements)
	if t.shouldGrow(t.size + count) {
		t.reallocate(t.growTarget(t.size + count))
	}
	if index < t.size {
		copy(t.items[index+count:t.size+count], t.items[index:t.size])
	}
	copy(t.items[index:], elements)
	t.size += count

	return nil
}

// At returns a pointer to the element at index. The pointer is invalidated
// by the next mutating operation.
func (t *Typed[T]) At(index int) (*T, error) {
	if index < 0 || index >= t.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, t.size)
	}
	return &t.items[index], nil
}

// Get returns a copy of the element at index.
func (t *Typed[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= t.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, t.size)
	}
	return t.items[index], nil
}

// Set overwrites the element at index.
func (t *Typed[T]) Set(index int, element T) error {
	if index < 0 || index >= t.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, t.size)
	}
	t.items[index] = element
	return nil
}

// Delete removes count elements starting at index. Unlike the raw Vector it
// may delete through the tail, since the typed surface has no Pop/Delete
// split to stay compatible with.
func (t *Typed[T]) Delete(index, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: non-positive count", ErrInvalidArgument)
	}
	if index < 0 || index+count > t.size {
		return fmt.Errorf("%w: range [%d, %d), size %d", ErrOutOfRange, index, index+count, t.size)
	}

	copy(t.items[index:], t.items[index+count:t.size])
	// Zero the vacated tail so the GC can reclaim referenced values.
	var zero T
	for i := t.size - count; i < t.size; i++ {
		t.items[i] = zero
	}
	t.size -= count
	if t.shouldShrink(t.size) {
		t.reallocate(t.growTarget(t.size))
	}

	return nil
}

// Pop removes and returns the last element.
func (t *Typed[T]) Pop() (T, error) {
	var zero T
	if t.size == 0 {
		return zero, fmt.Errorf("%w: pop on empty vector", ErrOutOfRange)
	}
	element := t.items[t.size-1]
	t.items[t.size-1] = zero
	t.size--
	if t.shouldShrink(t.size) {
		t.reallocate(t.growTarget(t.size))
	}
	return element, nil
}

// Clear removes all elements, honoring the shrink policy.
func (t *Typed[T]) Clear() {
	var zero T
	for i := 0; i < t.size; i++ {
		t.items[i] = zero
	}
	t.size = 0
	if t.shouldShrink(0) {
		t.reallocate(t.growTarget(0))
	}
}

// Find returns the index of the first element for which eq reports true, or
// (-1, false) if none matches.
func (t *Typed[T]) Find(eq func(T) bool) (int, bool) {
	for i := 0; i < t.size; i++ {
		if eq(t.items[i]) {
			return i, true
		}
	}
	return -1, false
}

// BinarySearch searches the vector, which must be sorted ascending per cmp,
// for the given element. It returns the insertion point (first index whose
// element is not less than the target) and whether an exact match exists;
// with duplicates the insertion point is the leftmost match.
func (t *Typed[T]) BinarySearch(element T, cmp func(a, b T) int) (int, bool) {
	found := false
	l := 0
	h := t.size - 1
	for l <= h {
		mid := l + ((h - l) >> 1)
		c := cmp(t.items[mid], element)
		if c < 0 {
			l = mid + 1
		} else {
			h = mid - 1
			if c == 0 {
				found = true
			}
		}
	}
	return l, found
}

// Resize sets the logical size, growing or shrinking storage per policy.
// Newly exposed elements are zero values.
func (t *Typed[T]) Resize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: negative size", ErrInvalidArgument)
	}
	if size < t.size {
		var zero T
		for i := size; i < t.size; i++ {
			t.items[i] = zero
		}
	}
	if t.shouldGrow(size) || t.shouldShrink(size) {
		t.reallocate(t.growTarget(size))
	}
	t.size = size
	return nil
}

// Reserve grows storage to hold at least capacity elements; it never
// shrinks.
func (t *Typed[T]) Reserve(capacity int) {
	if capacity > len(t.items) {
		t.reallocate(capacity)
	}
}

// ShrinkToFit reallocates storage to exactly the current size, subject to
// the MinCapacity floor.
func (t *Typed[T]) ShrinkToFit() {
	t.reallocate(t.size)
}
