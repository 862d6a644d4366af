package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndian_IsBinaryLittleEndian(t *testing.T) {
	engine := LittleEndian()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)
}

func TestLittleEndian_PutAndReadUint16(t *testing.T) {
	engine := LittleEndian()

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)

	require.Equal(t, byte(0x02), bytes[0])
	require.Equal(t, byte(0x01), bytes[1])
	require.Equal(t, testValue, engine.Uint16(bytes))
}

func TestLittleEndian_PutAndReadUint32(t *testing.T) {
	engine := LittleEndian()

	var testValue uint32 = 0x01020304
	bytes := make([]byte, 4)
	engine.PutUint32(bytes, testValue)

	require.Equal(t, testValue, engine.Uint32(bytes))
}
