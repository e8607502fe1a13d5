/*
Package bitstr implements REQASM classical bit-strings: fixed-length
immutable sequences of 0/1 values with a printable digit form and a set of
logical and arithmetic reductions over them.

Bit 0 is the first element of the input sequence and is the least
significant one when a bit-string is interpreted as a number.
*/
package bitstr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/reqasm-go/pkg/util/bitfield"
)

// MaxLength is the maximum number of bits a BitString can be decoded with.
const MaxLength = 1 << 24

// Various construction errors.
var (
	// ErrInvalidLength is returned when the requested length is negative or
	// exceeds the number of supplied bits.
	ErrInvalidLength = errors.New("invalid bit-string length")
	// ErrInvalidBit is returned for any input value other than 0 or 1.
	ErrInvalidBit = errors.New("invalid bit value")
	// ErrOverflow is returned when a bit-string value doesn't fit into the
	// requested integer width.
	ErrOverflow = errors.New("bit-string value overflows")
)

// BitString is an immutable sequence of bits. Its printable form is derived
// from the bits themselves, so both views always agree. A BitString can be
// shared between goroutines for reading.
type BitString struct {
	n    int
	bits bitfield.Field
}

// New creates a BitString from the first n elements of bits. Every element
// must be either 0 or 1, n must be in [0, len(bits)]. Zero-length
// bit-strings are allowed.
func New(bits []int, n int) (*BitString, error) {
	if n < 0 || n > len(bits) {
		return nil, fmt.Errorf("%w: %d bits requested, %d available", ErrInvalidLength, n, len(bits))
	}
	b := &BitString{n: n, bits: bitfield.New(n)}
	for i, v := range bits[:n] {
		switch v {
		case 0:
		case 1:
			b.bits.Set(i)
		default:
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidBit, v, i)
		}
	}
	return b, nil
}

// FromBits creates a BitString holding all of the given bits.
func FromBits(bits []int) (*BitString, error) {
	return New(bits, len(bits))
}

// Parse creates a BitString from its printable form, a string of '0' and '1'
// characters with no separators (see String).
func Parse(s string) (*BitString, error) {
	b := &BitString{n: len(s), bits: bitfield.New(len(s))}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b.bits.Set(i)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBit, s[i], i)
		}
	}
	return b, nil
}

// Len returns the number of bits.
func (b *BitString) Len() int {
	return b.n
}

// Bit returns the value of the i-th bit. It panics if i is out of range.
func (b *BitString) Bit(i int) int {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bit index %d out of range [0:%d]", i, b.n))
	}
	if b.bits.IsSet(i) {
		return 1
	}
	return 0
}

// Bits returns a fresh copy of the bits as 0/1 integers.
func (b *BitString) Bits() []int {
	res := make([]int, b.n)
	for i := range res {
		if b.bits.IsSet(i) {
			res[i] = 1
		}
	}
	return res
}

// String returns the printable form: one decimal digit per bit, in bit
// order, without separators.
func (b *BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.bits.IsSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Slice returns a new BitString with size bits starting at start. It's the
// register-range view used for expressions like reg[start:start+size-1].
func (b *BitString) Slice(start, size int) (*BitString, error) {
	if start < 0 || size < 0 || start > b.n || size > b.n-start {
		return nil, fmt.Errorf("%w: [%d, +%d) of %d bits", ErrInvalidLength, start, size, b.n)
	}
	res := &BitString{n: size, bits: bitfield.New(size)}
	for i := 0; i < size; i++ {
		if b.bits.IsSet(start + i) {
			res.bits.Set(i)
		}
	}
	return res, nil
}

// Equals returns true if both bit-strings have the same length and bits.
func (b *BitString) Equals(o *BitString) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.n == o.n && b.bits.Equals(o.bits)
}
