// Package pool provides a reusable growable byte buffer backing
// stream.Writer, avoiding an allocation per emit call.
package pool

import (
	"io"
	"sync"
)

// Buffer size tuning for the decompressed building-stream payload. Typical
// blueprints decompress to a few KiB up to a few hundred KiB; the default
// covers the common case without over-allocating for a one-building edit.
const (
	DefaultBufferSize = 1024 * 16  // 16KiB
	MaxPooledBuffer   = 1024 * 256 // 256KiB, larger buffers are discarded rather than pooled
)

// ByteBuffer is a growable []byte with amortized-O(1) append, modeled as a
// struct (rather than a bare slice) so it can be pooled via sync.Pool without
// boxing on every Get/Put.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can accept at least n more bytes without
// reallocating, doubling capacity (bounded by the required size) when it
// must reallocate.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := cap(bb.B)
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer, appending data and growing as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

var bufferPool = sync.Pool{
	New: func() any { return NewByteBuffer(DefaultBufferSize) },
}

// Get retrieves an empty ByteBuffer from the shared pool.
func Get() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the shared pool. Oversized buffers are
// dropped instead of pooled so one pathologically large blueprint doesn't
// keep that memory resident for the life of the process.
func Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if cap(bb.B) > MaxPooledBuffer {
		return
	}

	bb.Reset()
	bufferPool.Put(bb)
}
