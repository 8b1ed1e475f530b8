// Package testutil provides deterministic helpers for rawvec tests and
// benchmarks.
package testutil

import (
	"encoding/binary"
	"math/rand"
)

// RNG encapsulates a seeded random number generator.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Element returns a random element of the given byte width.
func (r *RNG) Element(elemSize int) []byte {
	elem := make([]byte, elemSize)
	r.rand.Read(elem) //nolint:errcheck // never fails
	return elem
}

// Elements returns num random elements of the given byte width.
func (r *RNG) Elements(num, elemSize int) [][]byte {
	elems := make([][]byte, num)
	for i := range elems {
		elems[i] = r.Element(elemSize)
	}
	return elems
}

// Uint32Element encodes v as a little-endian 4-byte element.
func Uint32Element(v uint32) []byte {
	elem := make([]byte, 4)
	binary.LittleEndian.PutUint32(elem, v)
	return elem
}

// Uint32Value decodes a little-endian 4-byte element.
func Uint32Value(elem []byte) uint32 {
	return binary.LittleEndian.Uint32(elem)
}
