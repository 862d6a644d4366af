package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.U8(0xAB)
	w.I8(-5)
	w.U16(0xBEEF)
	w.I16(-1234)
	w.U32(0xDEADBEEF)
	w.I32(-100)
	w.U64(0x0123456789ABCDEF)
	w.F32(3.5)
	w.RawBytes([]byte{1, 2, 3})

	r := NewReader(w.Bytes())

	u8, err := r.U8()
	require.NoError(t, err)
	require.EqualValues(t, 0xAB, u8)

	i8, err := r.I8()
	require.NoError(t, err)
	require.EqualValues(t, -5, i8)

	u16, err := r.U16()
	require.NoError(t, err)
	require.EqualValues(t, 0xBEEF, u16)

	i16, err := r.I16()
	require.NoError(t, err)
	require.EqualValues(t, -1234, i16)

	u32, err := r.U32()
	require.NoError(t, err)
	require.EqualValues(t, 0xDEADBEEF, u32)

	i32, err := r.I32()
	require.NoError(t, err)
	require.EqualValues(t, -100, i32)

	u64, err := r.U64()
	require.NoError(t, err)
	require.EqualValues(t, 0x0123456789ABCDEF, u64)

	f32, err := r.F32()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	rest, err := r.Bytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, rest)

	require.Equal(t, 0, r.Remaining())
}

func TestReader_TruncatedError(t *testing.T) {
	r := NewReader([]byte{1, 2})

	_, err := r.U32()
	require.Error(t, err)
}

func TestReader_PeekDoesNotAdvance(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	w.I32(-200)

	r := NewReader(w.Bytes())

	peeked, err := r.PeekI32()
	require.NoError(t, err)
	require.EqualValues(t, -200, peeked)
	require.Equal(t, 0, r.Pos())

	read, err := r.I32()
	require.NoError(t, err)
	require.Equal(t, peeked, read)
	require.Equal(t, 4, r.Pos())
}

func TestWriter_PosTracksBytesWritten(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	require.Equal(t, 0, w.Pos())
	w.U32(1)
	require.Equal(t, 4, w.Pos())
	w.U8(1)
	require.Equal(t, 5, w.Pos())
}
