package rawvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawvec/rawvec/testutil"
)

func TestAt(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		rng := testutil.NewRNG(1)
		v, err := New(16)
		require.NoError(t, err)
		defer v.Destroy()

		for i := 0; i < 50; i++ {
			elem := rng.Element(16)
			require.NoError(t, v.Push(elem))

			got, err := v.At(v.Size() - 1)
			require.NoError(t, err)
			assert.Equal(t, elem, got)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		v, err := New(4)
		require.NoError(t, err)
		defer v.Destroy()

		_, err = v.At(0)
		assert.ErrorIs(t, err, ErrOutOfRange)

		require.NoError(t, v.Push(testutil.Uint32Element(1)))
		_, err = v.At(1)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = v.At(-1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("ViewAliasesBuffer", func(t *testing.T) {
		v, err := New(4)
		require.NoError(t, err)
		defer v.Destroy()

		require.NoError(t, v.Push(testutil.Uint32Element(7)))

		view, err := v.At(0)
		require.NoError(t, err)
		copy(view, testutil.Uint32Element(13))

		got, err := v.At(0)
		require.NoError(t, err)
		assert.Equal(t, uint32(13), testutil.Uint32Value(got))
	})
}

func TestSet(t *testing.T) {
	t.Run("Overwrite", func(t *testing.T) {
		v, err := New(4)
		require.NoError(t, err)
		defer v.Destroy()

		require.NoError(t, v.Push(testutil.Uint32Element(1)))
		require.NoError(t, v.Set(0, testutil.Uint32Element(2)))

		got, err := v.At(0)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), testutil.Uint32Value(got))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		v, err := New(4)
		require.NoError(t, err)
		defer v.Destroy()

		err = v.Set(0, testutil.Uint32Element(1))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("WrongWidth", func(t *testing.T) {
		v, err := New(4)
		require.NoError(t, err)
		defer v.Destroy()

		require.NoError(t, v.Push(testutil.Uint32Element(1)))
		err = v.Set(0, []byte{1, 2})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestBytes(t *testing.T) {
	v, err := New(2)
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.Push([]byte{1, 2}))
	require.NoError(t, v.Push([]byte{3, 4}))

	assert.Equal(t, []byte{1, 2, 3, 4}, v.Bytes())
}
