// Package endian provides the byte order engine used by the stream reader
// and writer.
//
// The BP wire format is little-endian only. The engine is an interface
// that binary.LittleEndian and binary.BigEndian both satisfy; the stream
// package always constructs its Reader and Writer with LittleEndian.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. stream.Reader and stream.Writer hold one as a
// field and always set it to LittleEndian; they offer no way to select
// another order.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian is the engine used for all BP wire-format encoding and
// decoding. All integers on the wire are little-endian.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}
