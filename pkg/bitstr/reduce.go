package bitstr

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Count returns the number of bits set to 1.
func (b *BitString) Count() int {
	return b.bits.Count()
}

// DecimalValue returns the little-endian value of the bits, the sum of
// bit[j]*2^j. It's exact for any length.
func (b *BitString) DecimalValue() *big.Int {
	res := new(big.Int)
	for i := 0; i < b.n; i++ {
		if b.bits.IsSet(i) {
			res.SetBit(res, i, 1)
		}
	}
	return res
}

// Uint64 returns the little-endian value of the bits as uint64. ErrOverflow
// is returned if any bit beyond the 64th is set.
func (b *BitString) Uint64() (uint64, error) {
	if l := b.bits.Len(); l > 64 {
		return 0, fmt.Errorf("%w: %d significant bits, uint64", ErrOverflow, l)
	}
	return b.bits[0], nil
}

// Uint256 returns the little-endian value of the bits as a 256-bit unsigned
// integer. ErrOverflow is returned if any bit beyond the 256th is set.
func (b *BitString) Uint256() (*uint256.Int, error) {
	if l := b.bits.Len(); l > 256 {
		return nil, fmt.Errorf("%w: %d significant bits, uint256", ErrOverflow, l)
	}
	res := new(uint256.Int)
	copy(res[:], b.bits)
	return res, nil
}

// Or returns true if any bit is set. It's false for an empty bit-string.
func (b *BitString) Or() bool {
	for _, w := range b.bits {
		if w != 0 {
			return true
		}
	}
	return false
}

// Xor returns the parity of the bit-string, true if Count is odd.
func (b *BitString) Xor() bool {
	return b.Count()%2 == 1
}

// And returns true if all bits are set. It's true for an empty bit-string.
func (b *BitString) And() bool {
	return b.Count() == b.n
}

// CountOf is New(bits, n).Count().
func CountOf(bits []int, n int) (int, error) {
	b, err := New(bits, n)
	if err != nil {
		return 0, err
	}
	return b.Count(), nil
}

// DecOf is New(bits, n).DecimalValue().
func DecOf(bits []int, n int) (*big.Int, error) {
	b, err := New(bits, n)
	if err != nil {
		return nil, err
	}
	return b.DecimalValue(), nil
}

// OrOf is New(bits, n).Or().
func OrOf(bits []int, n int) (bool, error) {
	b, err := New(bits, n)
	if err != nil {
		return false, err
	}
	return b.Or(), nil
}

// XorOf is New(bits, n).Xor().
func XorOf(bits []int, n int) (bool, error) {
	b, err := New(bits, n)
	if err != nil {
		return false, err
	}
	return b.Xor(), nil
}

// AndOf is New(bits, n).And().
func AndOf(bits []int, n int) (bool, error) {
	b, err := New(bits, n)
	if err != nil {
		return false, err
	}
	return b.And(), nil
}
