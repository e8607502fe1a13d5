package bitstr

import (
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/reqasm-go/pkg/io"
	"github.com/nspcc-dev/reqasm-go/pkg/util/bitfield"
)

// Bytes returns bits packed into bytes, bit 0 being the lowest bit of the
// first byte. Unused high bits of the last byte are zero.
func (b *BitString) Bytes() []byte {
	res := make([]byte, (b.n+7)/8)
	for i := 0; i < b.n; i++ {
		if b.bits.IsSet(i) {
			res[i/8] |= 1 << (i % 8)
		}
	}
	return res
}

// EncodeBinary implements the io.Serializable interface.
func (b *BitString) EncodeBinary(w *io.BinWriter) {
	w.WriteVarUint(uint64(b.n))
	w.WriteBytes(b.Bytes())
}

// DecodeBinary implements the io.Serializable interface. It's a constructor,
// b must not be in use by anyone else.
func (b *BitString) DecodeBinary(r *io.BinReader) {
	n := r.ReadVarUint()
	if r.Err != nil {
		return
	}
	if n > MaxLength {
		r.Err = fmt.Errorf("%w: %d bits, max %d", ErrInvalidLength, n, MaxLength)
		return
	}
	data := make([]byte, (n+7)/8)
	r.ReadBytes(data)
	if r.Err != nil {
		return
	}
	if pad := n % 8; pad != 0 && data[len(data)-1]>>pad != 0 {
		r.Err = fmt.Errorf("%w: non-zero padding", ErrInvalidBit)
		return
	}
	f := bitfield.New(int(n))
	for i := 0; i < int(n); i++ {
		if data[i/8]&(1<<(i%8)) != 0 {
			f.Set(i)
		}
	}
	b.n, b.bits = int(n), f
}

// MarshalJSON implements the json.Marshaler interface.
func (b *BitString) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *BitString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return b.setFromString(s)
}

// MarshalYAML implements the yaml marshaller interface.
func (b *BitString) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML implements the yaml unmarshaler interface.
func (b *BitString) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}
	return b.setFromString(s)
}

func (b *BitString) setFromString(s string) error {
	p, err := Parse(s)
	if err != nil {
		return err
	}
	*b = *p
	return nil
}
