package snapshot

import (
	"golang.org/x/time/rate"

	"github.com/rawvec/rawvec"
)

type options struct {
	compression CompressionType
	limiter     *rate.Limiter
	logger      *rawvec.Logger
	vectorOpts  []rawvec.Option
}

func defaultOptions() options {
	return options{
		compression: CompressionNone,
	}
}

// Option configures Save and Load behavior.
type Option func(*options)

// WithCompression selects the payload compression. Save uses it to encode;
// Load always follows the type recorded in the header.
func WithCompression(c CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithRateLimit throttles payload IO through the given limiter. The
// limiter's burst bounds the size of a single IO call and must be positive;
// a zero-burst limiter is rejected by Save and Load.
func WithRateLimit(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

// WithLogger enables save/load logging.
func WithLogger(l *rawvec.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithVectorOptions forwards construction options (allocator, growth
// policy) to the vector rebuilt by Load. Save ignores it.
func WithVectorOptions(opts ...rawvec.Option) Option {
	return func(o *options) {
		o.vectorOpts = append(o.vectorOpts, opts...)
	}
}
