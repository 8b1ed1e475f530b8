// Package rawvec provides a contiguous, resizable, type-erased sequence
// container for Go.
//
// A Vector stores homogeneous fixed-size elements as raw bytes. The element
// width is a runtime parameter, which makes the container suitable as a
// low-level building block for FFI-facing code, custom serialization layers,
// and memory-layout-sensitive data structures. For everyday Go code the
// generic Typed[T] variant moves the element width into the type system.
//
// # Quick Start
//
//	v, _ := rawvec.New(4, rawvec.WithCapacity(16))
//	defer v.Destroy()
//
//	elem := []byte{0xde, 0xad, 0xbe, 0xef}
//	_ = v.Push(elem)
//
//	view, _ := v.At(0) // aliasing view into the buffer
//
// # Memory Model
//
// Vectors either own their buffer through a pluggable allocator (see the
// allocator subpackage) or borrow a caller-supplied buffer via NewFixed.
// Fixed-buffer vectors never reallocate: growth beyond the borrowed buffer
// fails with ErrInsufficientCapacity.
//
// Growth and shrink behavior is controlled per instance by a growth factor
// and a shrink threshold. Growth targets are computed as
// max(1, ceil(required × growthFactor)), and allocator-backed vectors never
// shrink below MinCapacity.
//
// # Reference Invalidation
//
// Views returned by At, Bytes, and Emplace alias the internal buffer. They
// are valid only until the next mutating call on the same Vector: growth,
// shrink, and shift operations may relocate the backing memory.
//
// # Concurrency
//
// A Vector performs no internal synchronization. Concurrent use of the same
// instance requires external locking.
package rawvec
