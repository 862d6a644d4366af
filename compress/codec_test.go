package compress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspbp/dspbp/errs"
)

func TestGzip_RoundTrip(t *testing.T) {
	c := NewGzip(DefaultLevel)
	data := bytes.Repeat([]byte("dyson sphere program"), 100)

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestGzip_DecompressRejectsGarbage(t *testing.T) {
	c := NewGzip(DefaultLevel)
	_, err := c.Decompress([]byte("not gzip"))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrGzip))
}

func TestGzip_DecompressEmpty(t *testing.T) {
	c := NewGzip(DefaultLevel)

	compressed, err := c.Compress(nil)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decompressed)
}
