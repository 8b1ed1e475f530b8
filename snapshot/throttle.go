package snapshot

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// validateLimiter rejects limiters that can never admit a byte: a
// non-positive burst would spin the pacing loops forever at n=0.
func validateLimiter(l *rate.Limiter) error {
	if l != nil && l.Burst() <= 0 {
		return fmt.Errorf("snapshot: rate limiter burst must be positive, got %d", l.Burst())
	}
	return nil
}

// throttledWriter paces writes through a rate limiter, splitting large
// writes so they never exceed the limiter's burst.
type throttledWriter struct {
	ctx     context.Context
	w       io.Writer
	limiter *rate.Limiter
}

func (t *throttledWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		n := minInt(len(p), t.limiter.Burst())
		if err := t.limiter.WaitN(t.ctx, n); err != nil {
			return written, err
		}
		m, err := t.w.Write(p[:n])
		written += m
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}

// throttledReader paces reads through a rate limiter.
type throttledReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (t *throttledReader) Read(p []byte) (int, error) {
	if len(p) > t.limiter.Burst() {
		p = p[:t.limiter.Burst()]
	}
	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.limiter.WaitN(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
