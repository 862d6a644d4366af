// Package stream implements the little-endian scalar and fixed-array
// reader/writer used to decode and encode the BP binary building stream.
package stream

import (
	"math"

	"github.com/dspbp/dspbp/endian"
	"github.com/dspbp/dspbp/errs"
)

// Reader reads little-endian scalars from a fixed byte buffer, tracking
// its position so callers can report exactly where a truncation occurred.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data using the little-endian engine.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, engine: endian.LittleEndian()}
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, &errs.TruncatedError{At: r.pos, Want: n, Have: r.Remaining()}
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// I8 reads a signed 8-bit integer.
func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// I16 reads a little-endian signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// I32 reads a little-endian signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a little-endian unsigned 64-bit integer.
func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// F32 reads a little-endian IEEE-754 32-bit float.
func (r *Reader) F32() (float32, error) {
	bits, err := r.U32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// Bytes reads n raw bytes. The returned slice aliases the Reader's
// backing buffer and must not be retained past the Reader's lifetime if
// the caller later mutates it in place.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.take(n)
}

// PeekI32 reads a little-endian signed 32-bit integer without advancing
// the position. record.Header.Decode does not use it; it reads the V2
// sentinel with I32.
func (r *Reader) PeekI32() (int32, error) {
	if r.Remaining() < 4 {
		return 0, &errs.TruncatedError{At: r.pos, Want: 4, Have: r.Remaining()}
	}

	return int32(r.engine.Uint32(r.data[r.pos : r.pos+4])), nil
}
