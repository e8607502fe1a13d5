/*
Package bitfield provides a simple and efficient arbitrary size bit field
implementation backed by 64-bit words.
*/
package bitfield

import "math/bits"

// Field is a bit field represented as a slice of uint64 values.
type Field []uint64

// Bits count in a basic element of Field.
const elemBits = 64

// New creates a new bit field of the specified length. Actual field length
// is rounded up to the next multiple of 64, so it's a responsibility of the
// user to deal with that. A zero-length field still gets one word.
func New(n int) Field {
	return make(Field, 1+(n-1)/elemBits)
}

// Set sets one bit at the specified offset. No bounds checking is done.
func (f Field) Set(i int) {
	addr, offset := (i / elemBits), (i % elemBits)
	f[addr] |= (1 << offset)
}

// IsSet returns true if the bit with the specified offset is set.
func (f Field) IsSet(i int) bool {
	addr, offset := (i / elemBits), (i % elemBits)
	return (f[addr] & (1 << offset)) != 0
}

// Equals compares two Fields and returns true if they're equal.
func (f Field) Equals(o Field) bool {
	if len(f) != len(o) {
		return false
	}
	for i := range f {
		if f[i] != o[i] {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (f Field) Count() int {
	var n int
	for _, w := range f {
		n += bits.OnesCount64(w)
	}
	return n
}

// Len returns the index of the highest set bit plus one, 0 for an empty
// field.
func (f Field) Len() int {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] != 0 {
			return i*elemBits + bits.Len64(f[i])
		}
	}
	return 0
}
