package rawvec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawvec/rawvec/testutil"
)

func bytesEqual(a, b []byte) bool { return bytes.Equal(a, b) }

func uint32Compare(a, b []byte) int {
	av := testutil.Uint32Value(a)
	bv := testutil.Uint32Value(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func TestFind(t *testing.T) {
	t.Run("FirstMatch", func(t *testing.T) {
		v := uint32Vector(t, 5, 3, 7, 3)
		defer v.Destroy()

		idx, found, err := v.Find(testutil.Uint32Element(3), bytesEqual)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 1, idx)
	})

	t.Run("NoMatch", func(t *testing.T) {
		v := uint32Vector(t, 1, 2, 3)
		defer v.Destroy()

		idx, found, err := v.Find(testutil.Uint32Element(9), bytesEqual)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, -1, idx)
	})

	t.Run("NilComparison", func(t *testing.T) {
		v := uint32Vector(t, 1)
		defer v.Destroy()

		_, _, err := v.Find(testutil.Uint32Element(1), nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestFindRange(t *testing.T) {
	t.Run("RestrictedWindow", func(t *testing.T) {
		v := uint32Vector(t, 3, 1, 3, 2)
		defer v.Destroy()

		idx, found, err := v.FindRange(testutil.Uint32Element(3), bytesEqual, 1, 3)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, idx)
	})

	t.Run("ZeroCountAlwaysNotFound", func(t *testing.T) {
		v := uint32Vector(t, 3, 3, 3)
		defer v.Destroy()

		idx, found, err := v.FindRange(testutil.Uint32Element(3), bytesEqual, 0, 0)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, -1, idx)

		// Also holds on an empty vector.
		empty, err := New(4)
		require.NoError(t, err)
		defer empty.Destroy()

		idx, found, err = empty.FindRange(testutil.Uint32Element(3), bytesEqual, 0, 0)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, -1, idx)
	})

	t.Run("RangePastSize", func(t *testing.T) {
		v := uint32Vector(t, 1, 2)
		defer v.Destroy()

		_, _, err := v.FindRange(testutil.Uint32Element(1), bytesEqual, 1, 2)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBinarySearch(t *testing.T) {
	t.Run("ExactMatch", func(t *testing.T) {
		v := uint32Vector(t, 1, 3, 5, 7, 9)
		defer v.Destroy()

		idx, found, err := v.BinarySearch(testutil.Uint32Element(5), uint32Compare)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, idx)
	})

	t.Run("LeftmostDuplicate", func(t *testing.T) {
		v := uint32Vector(t, 1, 3, 3, 3, 9)
		defer v.Destroy()

		idx, found, err := v.BinarySearch(testutil.Uint32Element(3), uint32Compare)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 1, idx)
	})

	t.Run("InsertionPointWithoutMatch", func(t *testing.T) {
		v := uint32Vector(t, 1, 3, 7, 9)
		defer v.Destroy()

		idx, found, err := v.BinarySearch(testutil.Uint32Element(5), uint32Compare)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 2, idx)

		idx, found, err = v.BinarySearch(testutil.Uint32Element(100), uint32Compare)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 4, idx)
	})

	t.Run("InsertionPointKeepsOrder", func(t *testing.T) {
		v, err := New(4)
		require.NoError(t, err)
		defer v.Destroy()

		for _, val := range []uint32{42, 7, 19, 3, 19, 88, 1} {
			idx, _, err := v.BinarySearch(testutil.Uint32Element(val), uint32Compare)
			require.NoError(t, err)
			require.NoError(t, v.Insert(idx, testutil.Uint32Element(val)))
		}

		assert.Equal(t, []uint32{1, 3, 7, 19, 19, 42, 88}, uint32Values(t, v))
	})

	t.Run("EmptyRange", func(t *testing.T) {
		v := uint32Vector(t, 1, 2, 3)
		defer v.Destroy()

		idx, found, err := v.BinarySearchRange(testutil.Uint32Element(2), uint32Compare, 1, 0)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 1, idx)
	})

	t.Run("RangePastSize", func(t *testing.T) {
		v := uint32Vector(t, 1, 2)
		defer v.Destroy()

		_, _, err := v.BinarySearchRange(testutil.Uint32Element(1), uint32Compare, 0, 3)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}
