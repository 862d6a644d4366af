package stream

import (
	"math"

	"github.com/dspbp/dspbp/endian"
	"github.com/dspbp/dspbp/internal/pool"
)

// Writer appends little-endian scalars to a growable buffer.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{buf: pool.Get(), engine: endian.LittleEndian()}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return w.buf.Len() }

// Bytes returns the accumulated output. The returned slice aliases the
// Writer's internal buffer.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Release returns the Writer's backing buffer to the shared pool. The
// Writer must not be used afterward.
func (w *Writer) Release() { pool.Put(w.buf) }

func (w *Writer) grow(n int) []byte {
	w.buf.Grow(n)
	start := w.buf.Len()
	w.buf.B = w.buf.B[:start+n]

	return w.buf.B[start : start+n]
}

// U8 writes an unsigned 8-bit integer.
func (w *Writer) U8(v uint8) { w.grow(1)[0] = v }

// I8 writes a signed 8-bit integer.
func (w *Writer) I8(v int8) { w.U8(uint8(v)) }

// U16 writes a little-endian unsigned 16-bit integer.
func (w *Writer) U16(v uint16) { w.engine.PutUint16(w.grow(2), v) }

// I16 writes a little-endian signed 16-bit integer.
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }

// U32 writes a little-endian unsigned 32-bit integer.
func (w *Writer) U32(v uint32) { w.engine.PutUint32(w.grow(4), v) }

// I32 writes a little-endian signed 32-bit integer.
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

// U64 writes a little-endian unsigned 64-bit integer.
func (w *Writer) U64(v uint64) { w.engine.PutUint64(w.grow(8), v) }

// F32 writes a little-endian IEEE-754 32-bit float.
func (w *Writer) F32(v float32) { w.U32(math.Float32bits(v)) }

// RawBytes writes raw bytes verbatim.
func (w *Writer) RawBytes(b []byte) { copy(w.grow(len(b)), b) }
