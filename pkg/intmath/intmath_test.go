package intmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloorLog(t *testing.T) {
	testCases := []struct {
		value, base, res int
	}{
		{1, 2, 0},
		{1, 10, 0},
		{2, 2, 1},
		{3, 2, 1},
		{154, 2, 7},
		{1000, 10, 3},
		{999, 10, 2},
		{243, 3, 5},
		{242, 3, 4},
		{math.MaxInt, 2, 62},
		{1 << 62, 2, 62},
		{1<<62 - 1, 2, 61},
	}
	for _, tc := range testCases {
		res, err := FloorLog(tc.value, tc.base)
		require.NoError(t, err)
		require.Equal(t, tc.res, res, "%d, %d", tc.value, tc.base)
	}
}

func TestCeilLog(t *testing.T) {
	for base := 2; base < 12; base++ {
		for value := 1; value < 5000; value++ {
			fl, err := FloorLog(value, base)
			require.NoError(t, err)
			cl, err := CeilLog(value, base)
			require.NoError(t, err)

			p, err := Pow(base, fl)
			require.NoError(t, err)
			if p == value {
				require.Equal(t, fl, cl)
			} else {
				require.Equal(t, fl+1, cl)
			}
		}
	}
	res, err := CeilLog(154, 2)
	require.NoError(t, err)
	require.Equal(t, 8, res)
}

func TestPowRem(t *testing.T) {
	res, err := PowRem(154, 2)
	require.NoError(t, err)
	require.Equal(t, 26, res)

	res, err = PowRem(1, 7)
	require.NoError(t, err)
	require.Equal(t, 0, res)

	res, err = PowRem(1024, 2)
	require.NoError(t, err)
	require.Equal(t, 0, res)

	res, err = PowRem(250, 3)
	require.NoError(t, err)
	require.Equal(t, 7, res)
}

func TestInvalidArguments(t *testing.T) {
	fns := map[string]func(int, int) (int, error){
		"floor": FloorLog,
		"ceil":  CeilLog,
		"rem":   PowRem,
	}
	for name, f := range fns {
		t.Run(name, func(t *testing.T) {
			for _, args := range [][2]int{{0, 2}, {5, 1}, {-3, 2}, {5, 0}, {5, -2}} {
				_, err := f(args[0], args[1])
				require.ErrorIs(t, err, ErrInvalidArgument, "%v", args)
			}
		})
	}
}

func TestPow(t *testing.T) {
	testCases := []struct {
		base, exp, res int
	}{
		{0, 0, 1},
		{0, 5, 0},
		{1, 100, 1},
		{2, 10, 1024},
		{3, 5, 243},
		{2, 62, 1 << 62},
		{3, 39, 4052555153018976267},
		{1, math.MaxInt, 1},
		{0, math.MaxInt, 0},
		{7, 0, 1},
	}
	for _, tc := range testCases {
		res, err := Pow(tc.base, tc.exp)
		require.NoError(t, err)
		require.Equal(t, tc.res, res)
	}

	_, err := Pow(2, 63)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Pow(10, 19)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Pow(2, math.MaxInt)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Pow(math.MaxInt, 2)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Pow(-2, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Pow(2, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
