package io

import (
	"bytes"
	"encoding/binary"
	"io"
)

// BinReader is a convenient wrapper around an io.Reader and err object.
// Used to simplify error handling when reading from a struct with many
// fields.
type BinReader struct {
	r   io.Reader
	uv  [8]byte
	Err error
}

// NewBinReaderFromIO makes a BinReader from io.Reader.
func NewBinReaderFromIO(ior io.Reader) *BinReader {
	return &BinReader{r: ior}
}

// NewBinReaderFromBuf makes a BinReader from a byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return NewBinReaderFromIO(bytes.NewReader(b))
}

// readB reads a byte from the underlying io.Reader. On read failures it
// returns zero.
func (r *BinReader) readB() byte {
	r.ReadBytes(r.uv[:1])
	if r.Err != nil {
		return 0
	}
	return r.uv[0]
}

// ReadVarUint reads a variable-length-encoded integer from the
// underlying reader.
func (r *BinReader) ReadVarUint() uint64 {
	if r.Err != nil {
		return 0
	}

	b := r.readB()
	switch b {
	case 0xfd:
		r.ReadBytes(r.uv[:2])
		return uint64(binary.LittleEndian.Uint16(r.uv[:2]))
	case 0xfe:
		r.ReadBytes(r.uv[:4])
		return uint64(binary.LittleEndian.Uint32(r.uv[:4]))
	case 0xff:
		r.ReadBytes(r.uv[:8])
		return binary.LittleEndian.Uint64(r.uv[:8])
	default:
		return uint64(b)
	}
}

// ReadBytes copies a fixed-size buffer from the reader to the provided slice.
func (r *BinReader) ReadBytes(buf []byte) {
	if r.Err != nil {
		return
	}

	_, r.Err = io.ReadFull(r.r, buf)
}
