package bitfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	a := New(128)
	b := New(128)
	require.Equal(t, 2, len(a))
	for _, i := range []int{0, 10, 63, 64, 127} {
		a.Set(i)
		b.Set(i)
		require.True(t, a.IsSet(i))
	}
	require.False(t, a.IsSet(11))
	require.False(t, a.IsSet(126))
	require.Equal(t, uint64(1|1<<10|1<<63), a[0])
	require.Equal(t, uint64(1|1<<63), a[1])
	require.True(t, a.Equals(b))

	b.Set(1)
	require.False(t, a.Equals(b))
	require.False(t, New(64).Equals(New(65)))
}

func TestCountLen(t *testing.T) {
	f := New(0)
	require.Equal(t, 1, len(f))
	require.Equal(t, 0, f.Count())
	require.Equal(t, 0, f.Len())

	f = New(130)
	require.Equal(t, 3, len(f))
	f.Set(0)
	f.Set(63)
	f.Set(64)
	f.Set(129)
	require.Equal(t, 4, f.Count())
	require.Equal(t, 130, f.Len())

	f = New(10)
	f.Set(3)
	require.Equal(t, 4, f.Len())
}
