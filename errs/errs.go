// Package errs defines the sentinel errors returned by the dspbp codec,
// one per distinct failure mode.
//
// Kinds that carry structured data wrap one of these sentinels in a typed
// error so callers can both errors.Is the sentinel and errors.As the
// payload out.
package errs

import "errors"

// Envelope errors.
var (
	ErrMalformedPrefix  = errors.New("dspbp: input does not start with \"BLUEPRINT:\"")
	ErrMalformedCsv     = errors.New("dspbp: malformed CSV header")
	ErrNoHashDelimiter  = errors.New("dspbp: no closing quote delimiter found")
	ErrBase64           = errors.New("dspbp: base64 decode failed")
	ErrGzip             = errors.New("dspbp: gzip decompress/compress failed")
	ErrHashLength       = errors.New("dspbp: hash must be exactly 32 hex characters")
	ErrHashParse        = errors.New("dspbp: hash is not valid hexadecimal")
	ErrHashMismatch     = errors.New("dspbp: content hash mismatch")
	ErrDecompressTooBig = errors.New("dspbp: decompressed payload exceeds configured ceiling")
)

// Binary stream errors.
var ErrTruncated = errors.New("dspbp: binary stream exhausted mid-record")

// Payload errors.
var ErrUnknownItemCategory = errors.New("dspbp: item_id does not map to a known building category")

// Edit engine errors.
var (
	ErrIncompatibleReplacement = errors.New("dspbp: replacement item belongs to a different building category")
	ErrUnknownUserIdentifier   = errors.New("dspbp: identifier does not resolve to a known item, recipe, or building")
)

// Icon errors.
var ErrIconSlotOutOfRange = errors.New("dspbp: icon slot index must be in [0,5)")
