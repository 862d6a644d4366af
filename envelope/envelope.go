// Package envelope implements the outer BP string format: CSV header,
// base64/gzip payload framing, and the trailing content hash.
package envelope

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/dspbp/dspbp/compress"
	"github.com/dspbp/dspbp/errs"
	"github.com/dspbp/dspbp/internal/hash"
	"github.com/dspbp/dspbp/version"
)

// prefix is the literal BP string marker.
const prefix = "BLUEPRINT:"

// minCSVFields is the minimum number of comma-separated CSV header
// fields a valid envelope must carry.
const minCSVFields = 12

// Envelope is the outer shell of a Blueprint: everything the CSV header
// and hash carry, plus the decompressed binary payload. The binary
// payload's internal structure (BlueprintData) is decoded by the record
// package one layer up, keeping this package ignorant of building
// semantics.
type Envelope struct {
	Layout      uint32
	Icons       [5]uint32
	Timestamp   uint64
	GameVersion string
	IconText    string
	Desc        string
	Binary      []byte
}

// Parse decodes a BP string into an Envelope and its derived
// VersionContext.
func Parse(s string) (*Envelope, version.Context, error) {
	closeQuote := strings.LastIndexByte(s, '"')
	if closeQuote < 0 {
		return nil, version.Context{}, errs.ErrNoHashDelimiter
	}

	signedBody := s[:closeQuote]
	hashField := strings.TrimSpace(s[closeQuote+1:])

	computed := hash.SumHex([]byte(signedBody))
	want, err := hash.ParseHex(hashField)
	if err != nil {
		return nil, version.Context{}, err
	}

	got, err := hash.ParseHex(computed)
	if err != nil {
		return nil, version.Context{}, err
	}
	if want != got {
		return nil, version.Context{}, &errs.HashMismatchError{Expected: hashField, Computed: computed}
	}

	if !strings.HasPrefix(signedBody, prefix) {
		return nil, version.Context{}, errs.ErrMalformedPrefix
	}
	remainder := signedBody[len(prefix):]

	openQuote := strings.IndexByte(remainder, '"')
	if openQuote < 0 {
		return nil, version.Context{}, errs.ErrMalformedCsv
	}

	csvHeader := remainder[:openQuote]
	b64Payload := remainder[openQuote+1:]

	e, err := parseCSVHeader(csvHeader)
	if err != nil {
		return nil, version.Context{}, err
	}

	ctx := version.FromGameVersion(e.GameVersion)

	raw, err := base64.StdEncoding.DecodeString(b64Payload)
	if err != nil {
		return nil, ctx, errs.ErrBase64
	}

	e.Binary, err = compress.NewGzip(compress.DefaultLevel).Decompress(raw)
	if err != nil {
		return nil, ctx, err
	}

	return e, ctx, nil
}

func parseCSVHeader(csvHeader string) (*Envelope, error) {
	fields := strings.Split(csvHeader, ",")
	if len(fields) < minCSVFields {
		return nil, errs.ErrMalformedCsv
	}

	e := &Envelope{}

	var err error
	if e.Layout, err = parseU32(fields[1]); err != nil {
		return nil, err
	}
	for i := 0; i < 5; i++ {
		if e.Icons[i], err = parseU32(fields[2+i]); err != nil {
			return nil, err
		}
	}
	if e.Timestamp, err = parseU64(fields[8]); err != nil {
		return nil, err
	}
	e.GameVersion = fields[9]
	e.IconText = fields[10]
	e.Desc = fields[11]

	return e, nil
}

func parseU32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errs.ErrMalformedCsv
	}
	return uint32(n), nil
}

func parseU64(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errs.ErrMalformedCsv
	}
	return n, nil
}

// Emit serializes e into a BP string at the given gzip compression
// level.
func Emit(e *Envelope, level int) (string, error) {
	ctx := version.FromGameVersion(e.GameVersion)

	compressed, err := compress.NewGzip(level).Compress(e.Binary)
	if err != nil {
		return "", err
	}
	b64Payload := base64.StdEncoding.EncodeToString(compressed)

	csv := buildCSVHeader(e, ctx)

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(csv)
	sb.WriteByte('"')
	sb.WriteString(b64Payload)

	signedBody := sb.String()
	sb.WriteByte('"')
	sb.WriteString(hash.SumHex([]byte(signedBody)))

	return sb.String(), nil
}

func buildCSVHeader(e *Envelope, ctx version.Context) string {
	fieldZero := "0"
	if ctx.IsV10 {
		fieldZero = "1"
	}

	fields := []string{
		fieldZero,
		strconv.FormatUint(uint64(e.Layout), 10),
		strconv.FormatUint(uint64(e.Icons[0]), 10),
		strconv.FormatUint(uint64(e.Icons[1]), 10),
		strconv.FormatUint(uint64(e.Icons[2]), 10),
		strconv.FormatUint(uint64(e.Icons[3]), 10),
		strconv.FormatUint(uint64(e.Icons[4]), 10),
		"0", // second fixed marker, always "0" on emit
		strconv.FormatUint(e.Timestamp, 10),
		e.GameVersion,
		e.IconText,
		e.Desc,
	}

	if ctx.IsV10 {
		fields = append(fields, "", "", "")
	}

	return strings.Join(fields, ",")
}
