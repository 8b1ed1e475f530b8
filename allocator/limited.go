package allocator

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when an allocation would push the
// tracked usage past the configured budget.
var ErrMemoryLimitExceeded = errors.New("allocator: memory limit exceeded")

// LimitedStats is a snapshot of a Limited allocator's accounting.
type LimitedStats struct {
	InUse  int64  // bytes currently allocated
	Peak   int64  // high-water mark of InUse
	Allocs uint64 // successful allocations (including growing reallocations)
	Frees  uint64 // deallocations
	Denied uint64 // allocations rejected by the budget
}

// Limited wraps another allocator with a hard byte budget.
//
// Allocations that would exceed the budget fail immediately with
// ErrMemoryLimitExceeded instead of blocking; the wrapped allocator is not
// consulted for denied requests. A Limited allocator may back any number of
// vectors, giving them a shared memory ceiling.
type Limited struct {
	inner Allocator
	sem   *semaphore.Weighted
	limit int64

	inUse  atomic.Int64
	peak   atomic.Int64
	allocs atomic.Uint64
	frees  atomic.Uint64
	denied atomic.Uint64
}

// NewLimited creates a Limited allocator with the given byte budget. If
// inner is nil, the default heap allocator is wrapped.
func NewLimited(inner Allocator, limitBytes int64) (*Limited, error) {
	if limitBytes <= 0 {
		return nil, fmt.Errorf("%w: non-positive limit %d", ErrAllocationFailed, limitBytes)
	}
	if inner == nil {
		inner = Default()
	}
	return &Limited{
		inner: inner,
		sem:   semaphore.NewWeighted(limitBytes),
		limit: limitBytes,
	}, nil
}

// Limit returns the configured budget in bytes.
func (l *Limited) Limit() int64 { return l.limit }

// Stats returns a snapshot of the allocator's accounting.
func (l *Limited) Stats() LimitedStats {
	return LimitedStats{
		InUse:  l.inUse.Load(),
		Peak:   l.peak.Load(),
		Allocs: l.allocs.Load(),
		Frees:  l.frees.Load(),
		Denied: l.denied.Load(),
	}
}

// Allocate reserves budget for n elements and forwards to the wrapped
// allocator. The reservation is rolled back if the inner allocation fails.
func (l *Limited) Allocate(elemSize, n int) ([]byte, error) {
	size := int64(elemSize) * int64(n)
	if err := l.acquire(size); err != nil {
		return nil, err
	}

	buf, err := l.inner.Allocate(elemSize, n)
	if err != nil {
		l.release(size)
		return nil, err
	}
	l.allocs.Add(1)
	return buf, nil
}

// Reallocate adjusts the budget by the size delta and forwards to the
// wrapped allocator.
func (l *Limited) Reallocate(buf []byte, elemSize, n int) ([]byte, error) {
	oldSize := int64(len(buf))
	newSize := int64(elemSize) * int64(n)

	if newSize > oldSize {
		if err := l.acquire(newSize - oldSize); err != nil {
			return nil, err
		}
	}

	grown, err := l.inner.Reallocate(buf, elemSize, n)
	if err != nil {
		if newSize > oldSize {
			l.release(newSize - oldSize)
		}
		return nil, err
	}

	if newSize < oldSize {
		l.release(oldSize - newSize)
	}
	if newSize > oldSize {
		l.allocs.Add(1)
	}
	return grown, nil
}

// Deallocate returns the buffer's budget and forwards to the wrapped
// allocator.
func (l *Limited) Deallocate(buf []byte, elemSize, n int) error {
	if err := l.inner.Deallocate(buf, elemSize, n); err != nil {
		return err
	}
	l.release(int64(elemSize) * int64(n))
	l.frees.Add(1)
	return nil
}

func (l *Limited) acquire(size int64) error {
	if size <= 0 {
		return nil
	}
	if !l.sem.TryAcquire(size) {
		l.denied.Add(1)
		return fmt.Errorf("%w: %d bytes requested, %d in use of %d",
			ErrMemoryLimitExceeded, size, l.inUse.Load(), l.limit)
	}
	used := l.inUse.Add(size)
	for {
		peak := l.peak.Load()
		if used <= peak || l.peak.CompareAndSwap(peak, used) {
			break
		}
	}
	return nil
}

func (l *Limited) release(size int64) {
	if size <= 0 {
		return
	}
	l.sem.Release(size)
	l.inUse.Add(-size)
}
