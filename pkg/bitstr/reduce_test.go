package bitstr

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestReducers(t *testing.T) {
	testCases := []struct {
		name  string
		bits  []int
		count int
		dec   int64
		or    bool
		xor   bool
		and   bool
	}{
		{"sample", []int{1, 0, 0, 1, 1, 0, 0, 1, 1, 0}, 5, 409, true, true, false},
		{"zeroes", make([]int, 10), 0, 0, false, false, false},
		{"ones", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 10, 1023, true, false, true},
		{"empty", []int{}, 0, 0, false, false, true},
		{"single one", []int{1}, 1, 1, true, true, true},
		{"high bit", []int{0, 0, 0, 1}, 1, 8, true, true, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := FromBits(tc.bits)
			require.NoError(t, err)
			require.Equal(t, tc.count, b.Count())
			require.Equal(t, 0, big.NewInt(tc.dec).Cmp(b.DecimalValue()))
			require.Equal(t, tc.or, b.Or())
			require.Equal(t, tc.xor, b.Xor())
			require.Equal(t, tc.and, b.And())

			u, err := b.Uint64()
			require.NoError(t, err)
			require.Equal(t, uint64(tc.dec), u)
		})
	}
}

func TestReducerProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		bits := make([]int, r.Intn(300))
		for j := range bits {
			bits[j] = r.Intn(2)
		}
		b, err := FromBits(bits)
		require.NoError(t, err)

		var (
			count int
			dec   = new(big.Int)
		)
		for j, v := range bits {
			count += v
			if v == 1 {
				dec.Add(dec, new(big.Int).Lsh(big.NewInt(1), uint(j)))
			}
		}
		require.Equal(t, count, b.Count())
		require.Equal(t, 0, dec.Cmp(b.DecimalValue()))
		require.Equal(t, count%2 == 1, b.Xor())
		require.Equal(t, count > 0, b.Or())
		require.Equal(t, count == len(bits), b.And())

		c, err := CountOf(bits, len(bits))
		require.NoError(t, err)
		require.Equal(t, b.Count(), c)
		d, err := DecOf(bits, len(bits))
		require.NoError(t, err)
		require.Equal(t, 0, b.DecimalValue().Cmp(d))
		o, err := OrOf(bits, len(bits))
		require.NoError(t, err)
		require.Equal(t, b.Or(), o)
		x, err := XorOf(bits, len(bits))
		require.NoError(t, err)
		require.Equal(t, b.Xor(), x)
		a, err := AndOf(bits, len(bits))
		require.NoError(t, err)
		require.Equal(t, b.And(), a)
	}
}

func TestDirectReducersErrors(t *testing.T) {
	bad := []int{1, 3}
	_, err := CountOf(bad, 2)
	require.ErrorIs(t, err, ErrInvalidBit)
	_, err = DecOf(bad, 2)
	require.ErrorIs(t, err, ErrInvalidBit)
	_, err = OrOf(bad, 2)
	require.ErrorIs(t, err, ErrInvalidBit)
	_, err = XorOf(bad, 2)
	require.ErrorIs(t, err, ErrInvalidBit)
	_, err = AndOf(bad, 3)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestWideValues(t *testing.T) {
	bits := make([]int, 300)
	bits[0] = 1
	bits[255] = 1

	b, err := FromBits(bits)
	require.NoError(t, err)
	_, err = b.Uint64()
	require.ErrorIs(t, err, ErrOverflow)

	u, err := b.Uint256()
	require.NoError(t, err)
	expected := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	expected.Or(expected, uint256.NewInt(1))
	require.Equal(t, expected, u)
	require.Equal(t, 0, u.ToBig().Cmp(b.DecimalValue()))

	bits[299] = 1
	b, err = FromBits(bits)
	require.NoError(t, err)
	_, err = b.Uint256()
	require.ErrorIs(t, err, ErrOverflow)
	require.Equal(t, 300, b.DecimalValue().BitLen())

	// Leading zeroes beyond 64 bits are fine.
	b, err = FromBits(append([]int{1, 1}, make([]int, 100)...))
	require.NoError(t, err)
	v, err := b.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(3), v)
}
