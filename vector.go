package rawvec

import (
	"fmt"
	"math"

	"github.com/rawvec/rawvec/allocator"
)

const (
	// MinCapacity is the minimum number of element slots an allocator-backed
	// vector keeps alive. Shrink operations never reallocate below it.
	MinCapacity = 1

	// DefaultGrowthFactor is the growth multiplier used when none is
	// configured.
	DefaultGrowthFactor = 2.0

	// DefaultShrinkThreshold is the shrink threshold used when none is
	// configured. A vector shrinks once its size falls below
	// capacity × threshold.
	DefaultShrinkThreshold = 0.25
)

// Stats tracks reallocation and relocation activity of a Vector.
type Stats struct {
	Grows   uint64 // capacity increases
	Shrinks uint64 // capacity decreases
	Moves   uint64 // elements relocated by shift operations
}

// Vector is a contiguous, resizable sequence of fixed-size elements stored
// as raw bytes.
//
// The zero value is not usable; construct instances with New, NewFixed, or
// one of the Duplicate methods.
type Vector struct {
	alloc           allocator.Allocator // nil in fixed-buffer mode
	data            []byte              // len == capacity * elemSize
	size            int
	capacity        int
	elemSize        int
	growthFactor    float64
	shrinkThreshold float64
	logger          *Logger
	stats           Stats
}

// New creates an allocator-backed Vector for elements of elementSize bytes.
//
// The initial capacity is the larger of MinCapacity and the capacity
// requested via WithCapacity. The allocator defaults to allocator.Default().
func New(elementSize int, optFns ...Option) (*Vector, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if elementSize <= 0 {
		return nil, fmt.Errorf("%w: element size must be positive, got %d", ErrInvalidArgument, elementSize)
	}
	if opts.alloc == nil {
		return nil, fmt.Errorf("%w: nil allocator", ErrInvalidArgument)
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

	buf, err := opts.alloc.Allocate(elementSize, capacity)
	if err != nil {
		return nil, err
	}

	return &Vector{
		alloc:           opts.alloc,
		data:            buf,
		capacity:        capacity,
		elemSize:        elementSize,
		growthFactor:    opts.growthFactor,
		shrinkThreshold: opts.shrinkThreshold,
		logger:          opts.logger,
	}, nil
}

// NewFixed creates a Vector on top of a caller-supplied buffer.
//
// The vector borrows the buffer and never frees, grows, or moves it. Its
// capacity is len(buffer) / elementSize, and any operation that would
// require more slots fails with ErrInsufficientCapacity. Shrink requests
// only adjust the logical size.
func NewFixed(elementSize int, buffer []byte) (*Vector, error) {
	if elementSize <= 0 {
		return nil, fmt.Errorf("%w: element size must be positive, got %d", ErrInvalidArgument, elementSize)
	}
	if buffer == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	capacity := len(buffer) / elementSize
	if capacity == 0 {
		return nil, fmt.Errorf("%w: buffer smaller than one element", ErrInvalidArgument)
	}

	return &Vector{
		data:            buffer[:capacity*elementSize],
		capacity:        capacity,
		elemSize:        elementSize,
		growthFactor:    1.0,
		shrinkThreshold: 0.0,
	}, nil
}

// Destroy releases the backing buffer through the allocator. Fixed-buffer
// vectors have nothing to release.
//
// Destroy must be called exactly once per owning instance; the container
// does not guard against double destruction.
func (v *Vector) Destroy() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}

	if v.alloc != nil && v.capacity > 0 {
		if err := v.alloc.Deallocate(v.data, v.elemSize, v.capacity); err != nil {
			return err
		}
	}
	v.data = nil
	v.capacity = 0
	v.size = 0

	return nil
}

// Duplicate creates an independent allocator-backed copy of the vector.
//
// The copy has the same element size; its capacity is at least the source's
// live element count (a larger capacity may be requested via WithCapacity,
// a smaller one is ignored). Policy options default to the package defaults,
// not to the source's configuration.
func (v *Vector) Duplicate(optFns ...Option) (*Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.capacity < v.size {
		opts.capacity = v.size
	}
	optFns = append(optFns, WithCapacity(opts.capacity))

	dst, err := New(v.elemSize, optFns...)
	if err != nil {
		return nil, err
	}

	copy(dst.data, v.data[:v.size*v.elemSize])
	dst.size = v.size

	return dst, nil
}

// DuplicateFixed copies the vector into a caller-supplied buffer.
//
// It fails with ErrInsufficientCapacity if the buffer holds fewer slots than
// the source's live element count; no destination vector is constructed in
// that case.
func (v *Vector) DuplicateFixed(buffer []byte) (*Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}
	if buffer != nil && len(buffer)/v.elemSize < v.size {
		return nil, fmt.Errorf("%w: destination holds %d elements, need %d",
			ErrInsufficientCapacity, len(buffer)/v.elemSize, v.size)
	}

	dst, err := NewFixed(v.elemSize, buffer)
	if err != nil {
		return nil, err
	}

	copy(dst.data, v.data[:v.size*v.elemSize])
	dst.size = v.size

	return dst, nil
}

// Size returns the number of live elements.
func (v *Vector) Size() int { return v.size }

// Capacity returns the number of element slots backing the vector.
func (v *Vector) Capacity() int { return v.capacity }

// ElementSize returns the byte width of one element.
func (v *Vector) ElementSize() int { return v.elemSize }

// Bytes returns the raw byte range of the live elements.
//
// The slice aliases the internal buffer and is invalidated by the next
// mutating operation.
func (v *Vector) Bytes() []byte { return v.data[:v.size*v.elemSize] }

// Stats returns reallocation and relocation counters for the vector.
func (v *Vector) Stats() Stats { return v.stats }

func (v *Vector) String() string {
	return fmt.Sprintf("Vector{size: %d, capacity: %d, elementSize: %d}", v.size, v.capacity, v.elemSize)
}

/* ---------------------------------------------------------------------- */
/* Capacity manager                                                       */
/* ---------------------------------------------------------------------- */

func (v *Vector) shouldGrow(size int) bool {
	return size > v.capacity
}

func (v *Vector) shouldShrink(size int) bool {
	return float64(size) < float64(v.capacity)*v.shrinkThreshold
}

// growTarget computes the capacity target for a mutation that requires at
// least `required` slots: max(1, ceil(required × growthFactor)).
func (v *Vector) growTarget(required int) int {
	target := int(math.Ceil(float64(required) * v.growthFactor))
	if target < 1 {
		target = 1
	}
	return target
}

// reallocate resizes the backing buffer to hold `capacity` elements.
//
// The new capacity is committed to the instance only after the allocator
// call succeeds, so a failed reallocation leaves the vector exactly as it
// was. Fixed-buffer vectors reject growth and treat shrink requests as
// logical no-ops.
func (v *Vector) reallocate(capacity int) error {
	if v.alloc == nil {
		if capacity > v.capacity {
			return fmt.Errorf("%w: fixed buffer holds %d elements, need %d",
				ErrInsufficientCapacity, v.capacity, capacity)
		}
		return nil
	}

	if capacity < MinCapacity {
		if v.capacity <= MinCapacity {
			// Already at the floor, skip the churn.
			return nil
		}
		capacity = MinCapacity
	}
	if capacity == v.capacity {
		return nil
	}

	buf, err := v.alloc.Reallocate(v.data, v.elemSize, capacity)
	if err != nil {
		return err
	}

	if v.logger != nil {
		v.logger.LogReallocate(v.capacity, capacity, v.size)
	}
	if capacity > v.capacity {
		v.stats.Grows++
	} else {
		v.stats.Shrinks++
	}

	v.data = buf
	v.capacity = capacity

	return nil
}

/* ---------------------------------------------------------------------- */
/* Shift engine                                                           */
/* ---------------------------------------------------------------------- */

// shiftRight opens a gap of count slots at index by moving [index, size)
// forward. The caller must have ensured size+count <= capacity.
func (v *Vector) shiftRight(index, count int) {
	src := v.data[index*v.elemSize : v.size*v.elemSize]
	dst := v.data[(index+count)*v.elemSize : (v.size+count)*v.elemSize]
	copy(dst, src) // overlap-safe
	v.stats.Moves += uint64(v.size - index)
}

// shiftLeft closes a gap of count slots at index by moving [index+count,
// size) backward onto index.
func (v *Vector) shiftLeft(index, count int) {
	src := v.data[(index+count)*v.elemSize : v.size*v.elemSize]
	dst := v.data[index*v.elemSize:]
	copy(dst, src)
	v.stats.Moves += uint64(v.size - index - count)
}

func (v *Vector) offset(index int) []byte {
	off := index * v.elemSize
	return v.data[off : off+v.elemSize : off+v.elemSize]
}
