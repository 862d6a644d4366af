// Package compress implements the envelope's gzip compression stage,
// using github.com/klauspost/compress for parity with the rest of this
// module's dependency stack.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/dspbp/dspbp/errs"
)

// maxDecompressedSize bounds Decompress's output to guard against a
// maliciously crafted envelope expanding without limit.
const maxDecompressedSize = 256 * 1024 * 1024

// Compressor compresses a binary building stream before base64 framing.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// DefaultLevel is the compression level used when none is specified:
// level 1-9, 6 by default.
const DefaultLevel = 6

// Gzip is the Codec used by the blueprint envelope. The game client only
// ever produces and accepts gzip-framed payloads, so this is the sole
// implementation; swapping in a different algorithm here would make
// Emit's output unreadable by the game.
type Gzip struct {
	Level int
}

// NewGzip returns the envelope's Codec at the given compression level
// (1-9).
func NewGzip(level int) Gzip { return Gzip{Level: level} }

// Compress gzips data at g.Level.
func (g Gzip) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, g.Level)
	if err != nil {
		return nil, errWrap(errs.ErrGzip, err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, errWrap(errs.ErrGzip, err)
	}
	if err := zw.Close(); err != nil {
		return nil, errWrap(errs.ErrGzip, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress, rejecting output larger than
// maxDecompressedSize.
func (g Gzip) Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errWrap(errs.ErrGzip, err)
	}
	defer zr.Close()

	limited := io.LimitReader(zr, maxDecompressedSize+1)

	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, errWrap(errs.ErrGzip, err)
	}
	if len(out) > maxDecompressedSize {
		return nil, errs.ErrDecompressTooBig
	}

	return out, nil
}

func errWrap(sentinel, cause error) error {
	return &wrappedError{sentinel: sentinel, cause: cause}
}

type wrappedError struct {
	sentinel error
	cause    error
}

func (e *wrappedError) Error() string { return e.sentinel.Error() + ": " + e.cause.Error() }
func (e *wrappedError) Unwrap() error { return e.sentinel }
