package hash

import (
	"encoding/hex"
	"fmt"

	"github.com/dspbp/dspbp/errs"
)

// SumHex returns the uppercase 32-character hex digest of data.
func SumHex(data []byte) string {
	sum := Sum(data)
	return fmt.Sprintf("%X", sum[:])
}

// ParseHex decodes a 32-character hex digest, case-insensitively.
func ParseHex(s string) ([16]byte, error) {
	var out [16]byte

	if len(s) != 32 {
		return out, errs.ErrHashLength
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return out, errs.ErrHashParse
	}

	copy(out[:], b)

	return out, nil
}
