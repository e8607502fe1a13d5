package classical

import (
	"math"
	"math/big"
	"testing"

	"github.com/nspcc-dev/reqasm-go/pkg/bitstr"
	"github.com/nspcc-dev/reqasm-go/pkg/intmath"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	sample := []int{1, 0, 0, 1, 1, 0, 0, 1, 1, 0}
	testCases := []struct {
		name string
		args []int
		res  string
		kind Kind
	}{
		{"countof", sample, "5", IntKind},
		{"decof", sample, "409", IntKind},
		{"orof", sample, "1", BoolKind},
		{"xorof", sample, "1", BoolKind},
		{"andof", sample, "0", BoolKind},
		{"ANDOF", []int{1, 1}, "1", BoolKind},
		{"andof", nil, "1", BoolKind},
		{"orof", nil, "0", BoolKind},
		{"fllog", []int{154, 2}, "7", IntKind},
		{"ceillog", []int{154, 2}, "8", IntKind},
		{"rempow", []int{154, 2}, "26", IntKind},
		{"powrem", []int{154, 2}, "26", IntKind},
		{"abs", []int{-42}, "42", IntKind},
		{"pow", []int{2, 10}, "1024", IntKind},
		{"pow", []int{1, math.MaxInt}, "1", IntKind},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Call(tc.name, tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.kind, res.Kind())
			require.Equal(t, tc.res, res.String())
		})
	}
}

func TestCallErrors(t *testing.T) {
	_, err := Call("sqrt", []int{4})
	require.ErrorIs(t, err, ErrUnknownFunction)
	_, err = Call("fllog", []int{4})
	require.ErrorIs(t, err, ErrArgCount)
	_, err = Call("abs", nil)
	require.ErrorIs(t, err, ErrArgCount)
	_, err = Call("fllog", []int{0, 2})
	require.ErrorIs(t, err, intmath.ErrInvalidArgument)
	_, err = Call("pow", []int{2, 64})
	require.ErrorIs(t, err, intmath.ErrOverflow)
	_, err = Call("countof", []int{1, 2})
	require.ErrorIs(t, err, bitstr.ErrInvalidBit)
}

func TestResult(t *testing.T) {
	r := NewInt(big.NewInt(7))
	require.Equal(t, 0, big.NewInt(7).Cmp(r.Int()))
	require.False(t, r.Bool())
	// Int returns a copy.
	r.Int().SetInt64(8)
	require.Equal(t, "7", r.String())

	r = NewBool(true)
	require.True(t, r.Bool())
	require.Nil(t, r.Int())

	require.Equal(t, "0", Result{}.String())
}

func TestNames(t *testing.T) {
	names := Names()
	require.Equal(t, len(table), len(names))
	require.IsIncreasing(t, names)
	for _, n := range names {
		_, _, ok := Help(n)
		require.True(t, ok, n)
	}
	_, _, ok := Help("nope")
	require.False(t, ok)
	h, nargs, ok := Help("FLLOG")
	require.True(t, ok)
	require.Equal(t, 2, nargs)
	require.NotEmpty(t, h)
}
