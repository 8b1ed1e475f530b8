package rawvec

import "github.com/rawvec/rawvec/allocator"

type options struct {
	capacity        int
	alloc           allocator.Allocator
	growthFactor    float64
	shrinkThreshold float64
	logger          *Logger
}

func defaultOptions() options {
	return options{
		alloc:           allocator.Default(),
		growthFactor:    DefaultGrowthFactor,
		shrinkThreshold: DefaultShrinkThreshold,
	}
}

// Option configures construction of an allocator-backed Vector.
type Option func(*options)

// WithCapacity requests an initial capacity. Values below MinCapacity are
// raised to MinCapacity.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithAllocator sets the allocator backing the vector. Passing nil fails
// construction with ErrInvalidArgument.
func WithAllocator(a allocator.Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithGrowthFactor sets the growth multiplier. Growth targets are computed
// as max(1, ceil(required × factor)); factors below 1.0 fail construction.
func WithGrowthFactor(factor float64) Option {
	return func(o *options) {
		o.growthFactor = factor
	}
}

// WithShrinkThreshold sets the shrink threshold in [0, 1]. The vector
// shrinks once its size falls below capacity × threshold; 0 disables
// shrinking.
func WithShrinkThreshold(threshold float64) Option {
	return func(o *options) {
		o.shrinkThreshold = threshold
	}
}

// WithLogger enables reallocation tracing through the given logger. Logging
// is disabled when no logger is configured.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
