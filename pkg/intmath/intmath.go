/*
Package intmath contains exact integer logarithm helpers used to size
register indices: floor and ceiling logarithms and the remainder left after
the largest power of a base.
*/
package intmath

import (
	"errors"
	"fmt"
	"math"
)

// Various errors.
var (
	// ErrInvalidArgument is returned for values less than 1 or bases less
	// than 2 (and for negative Pow arguments).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow is returned when the result doesn't fit into int.
	ErrOverflow = errors.New("integer overflow")
)

func checkArgs(value, base int) error {
	if value < 1 || base < 2 {
		return fmt.Errorf("%w: value %d (must be >= 1), base %d (must be >= 2)", ErrInvalidArgument, value, base)
	}
	return nil
}

// floorPow returns the largest power of base not exceeding value along with
// its exponent. Arguments must be valid.
func floorPow(value, base int) (int, int) {
	var exp, pow = 0, 1
	// pow*base <= value without overflowing.
	for pow <= value/base {
		pow *= base
		exp++
	}
	return exp, pow
}

// FloorLog returns floor(log_base(value)).
func FloorLog(value, base int) (int, error) {
	if err := checkArgs(value, base); err != nil {
		return 0, err
	}
	exp, _ := floorPow(value, base)
	return exp, nil
}

// CeilLog returns ceil(log_base(value)). It equals FloorLog for exact powers
// of base and FloorLog+1 otherwise.
func CeilLog(value, base int) (int, error) {
	if err := checkArgs(value, base); err != nil {
		return 0, err
	}
	exp, pow := floorPow(value, base)
	if pow != value {
		exp++
	}
	return exp, nil
}

// PowRem returns value - base^FloorLog(value, base), what's left of value
// after subtracting the largest power of base not exceeding it.
func PowRem(value, base int) (int, error) {
	if err := checkArgs(value, base); err != nil {
		return 0, err
	}
	_, pow := floorPow(value, base)
	return value - pow, nil
}

// Pow returns base^exp for non-negative arguments using square-and-multiply.
func Pow(base, exp int) (int, error) {
	if base < 0 || exp < 0 {
		return 0, fmt.Errorf("%w: base %d, exponent %d (must be >= 0)", ErrInvalidArgument, base, exp)
	}
	switch {
	case exp == 0, base == 1:
		return 1, nil
	case base == 0:
		return 0, nil
	}
	res, sq := 1, base
	for e := exp; ; e >>= 1 {
		if e&1 != 0 {
			if res > math.MaxInt/sq {
				return 0, fmt.Errorf("%w: %d^%d", ErrOverflow, base, exp)
			}
			res *= sq
		}
		if e <= 1 {
			return res, nil
		}
		if sq > math.MaxInt/sq {
			return 0, fmt.Errorf("%w: %d^%d", ErrOverflow, base, exp)
		}
		sq *= sq
	}
}
