/*
Package classical implements the REQASM classical function table: named
integer and boolean functions over integer arguments, as they're spelled in
REQASM sources (countof, decof, andof, orof, xorof, fllog, ceillog, rempow
and abs).
*/
package classical

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/nspcc-dev/reqasm-go/pkg/bitstr"
	"github.com/nspcc-dev/reqasm-go/pkg/intmath"
)

// Various errors.
var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrArgCount        = errors.New("wrong number of arguments")
)

// Kind is a function result type.
type Kind byte

// Result kinds.
const (
	IntKind Kind = iota
	BoolKind
)

// Result is either an integer or a boolean function result.
type Result struct {
	kind Kind
	i    *big.Int
	b    bool
}

// NewInt creates an integer result.
func NewInt(i *big.Int) Result {
	return Result{kind: IntKind, i: i}
}

// NewBool creates a boolean result.
func NewBool(b bool) Result {
	return Result{kind: BoolKind, b: b}
}

// Kind returns the result type.
func (r Result) Kind() Kind {
	return r.kind
}

// Int returns a copy of the integer value, nil for boolean results.
func (r Result) Int() *big.Int {
	if r.kind != IntKind || r.i == nil {
		return nil
	}
	return new(big.Int).Set(r.i)
}

// Bool returns the boolean value, false for integer results.
func (r Result) Bool() bool {
	return r.kind == BoolKind && r.b
}

// String implements the fmt.Stringer interface. Booleans are printed as 1/0
// like REQASM does.
func (r Result) String() string {
	if r.kind == BoolKind {
		if r.b {
			return "1"
		}
		return "0"
	}
	if r.i == nil {
		return "0"
	}
	return r.i.String()
}

// function is a single table entry. nargs < 0 means "any number of bits".
type function struct {
	nargs int
	help  string
	fn    func(args []int) (Result, error)
}

var table = map[string]function{
	"countof": {-1, "number of set bits", bitsFunc(func(b *bitstr.BitString) Result {
		return NewInt(big.NewInt(int64(b.Count())))
	})},
	"decof": {-1, "little-endian decimal value of bits", bitsFunc(func(b *bitstr.BitString) Result {
		return NewInt(b.DecimalValue())
	})},
	"orof": {-1, "true if any bit is set", bitsFunc(func(b *bitstr.BitString) Result {
		return NewBool(b.Or())
	})},
	"xorof": {-1, "parity of bits", bitsFunc(func(b *bitstr.BitString) Result {
		return NewBool(b.Xor())
	})},
	"andof": {-1, "true if all bits are set", bitsFunc(func(b *bitstr.BitString) Result {
		return NewBool(b.And())
	})},
	"fllog":   {2, "floor of log_base(value)", intFunc(intmath.FloorLog)},
	"ceillog": {2, "ceiling of log_base(value)", intFunc(intmath.CeilLog)},
	"rempow":  {2, "value minus the largest power of base not exceeding it", intFunc(intmath.PowRem)},
	"powrem":  {2, "alias of rempow", intFunc(intmath.PowRem)},
	"pow":     {2, "base raised to the power of exponent", intFunc(intmath.Pow)},
	"abs": {1, "absolute value", func(args []int) (Result, error) {
		return NewInt(new(big.Int).Abs(big.NewInt(int64(args[0])))), nil
	}},
}

func bitsFunc(f func(*bitstr.BitString) Result) func([]int) (Result, error) {
	return func(args []int) (Result, error) {
		b, err := bitstr.FromBits(args)
		if err != nil {
			return Result{}, err
		}
		return f(b), nil
	}
}

func intFunc(f func(int, int) (int, error)) func([]int) (Result, error) {
	return func(args []int) (Result, error) {
		v, err := f(args[0], args[1])
		if err != nil {
			return Result{}, err
		}
		return NewInt(big.NewInt(int64(v))), nil
	}
}

// Call invokes the named function with the given arguments. Names are case
// insensitive. Bit-string functions accept any number of 0/1 arguments.
func Call(name string, args []int) (Result, error) {
	f, ok := table[strings.ToLower(name)]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	if f.nargs >= 0 && len(args) != f.nargs {
		return Result{}, fmt.Errorf("%w: %s expects %d, got %d", ErrArgCount, name, f.nargs, len(args))
	}
	return f.fn(args)
}

// Names returns a sorted list of all known function names.
func Names() []string {
	res := make([]string, 0, len(table))
	for name := range table {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Help returns a short description of the named function and its arity
// (-1 for bit-string functions accepting any number of bits).
func Help(name string) (string, int, bool) {
	f, ok := table[strings.ToLower(name)]
	return f.help, f.nargs, ok
}
