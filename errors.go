package rawvec

import "errors"

var (
	// ErrInvalidArgument is returned when a required argument is missing or
	// a configuration value is outside its valid range (zero element size,
	// growth factor < 1.0, shrink threshold outside [0, 1], nil allocator).
	ErrInvalidArgument = errors.New("rawvec: invalid argument")

	// ErrOutOfRange is returned when an index or range argument exceeds the
	// current size of the vector.
	ErrOutOfRange = errors.New("rawvec: out of range")

	// ErrInsufficientCapacity is returned when a fixed-buffer vector or a
	// pre-sized destination buffer cannot satisfy a growth requirement.
	ErrInsufficientCapacity = errors.New("rawvec: insufficient capacity")
)
