// Package blueprint assembles the envelope, binary record, and payload
// codecs into the top-level Blueprint type and its Parse/Emit surface.
package blueprint

import (
	"net/url"

	"github.com/dspbp/dspbp/envelope"
	"github.com/dspbp/dspbp/internal/options"
	"github.com/dspbp/dspbp/model"
	"github.com/dspbp/dspbp/record"
	"github.com/dspbp/dspbp/stream"
)

// Blueprint is the top-level parsed aggregate. All entities below it
// (areas, buildings, parameters) are owned by it; there is no shared or
// weak ownership.
type Blueprint struct {
	Layout    uint32
	Icons     [5]uint32
	Timestamp uint64

	// GameVersion, IconText, and Desc are kept in their raw CSV wire
	// form; IconText and Desc are URL-encoded. Use
	// Description/IconTextPlain/SetDescription/SetIconText to work with
	// their decoded form.
	GameVersion string
	IconText    string
	Desc        string

	Data record.BlueprintData
}

// Parse decodes a full BP string into a Blueprint.
func Parse(s string, opts ...ParseOption) (*Blueprint, error) {
	b, _, err := ParseRaw(s, opts...)
	return b, err
}

// ParseRaw decodes s like Parse, additionally returning the decompressed
// binary payload alongside the parsed Blueprint. Useful for diffing or
// re-framing a blueprint against its exact pre-decode bytes.
func ParseRaw(s string, opts ...ParseOption) (*Blueprint, []byte, error) {
	cfg := &parseConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, nil, err
	}

	env, _, err := envelope.Parse(s)
	if err != nil {
		return nil, nil, err
	}

	b := &Blueprint{
		Layout:      env.Layout,
		Icons:       env.Icons,
		Timestamp:   env.Timestamp,
		GameVersion: env.GameVersion,
		IconText:    env.IconText,
		Desc:        env.Desc,
	}

	r := stream.NewReader(env.Binary)
	if err := b.Data.Decode(r, cfg.strict); err != nil {
		return nil, nil, err
	}

	return b, env.Binary, nil
}

// Emit serializes b back into a BP string.
func Emit(b *Blueprint, opts ...EmitOption) (string, error) {
	cfg := defaultEmitConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return "", err
	}

	w := stream.NewWriter()
	defer w.Release()

	b.Data.Encode(w)

	binary := make([]byte, len(w.Bytes()))
	copy(binary, w.Bytes())

	env := &envelope.Envelope{
		Layout:      b.Layout,
		Icons:       b.Icons,
		Timestamp:   b.Timestamp,
		GameVersion: b.GameVersion,
		IconText:    b.IconText,
		Desc:        b.Desc,
		Binary:      binary,
	}

	return envelope.Emit(env, cfg.level)
}

// Description decodes the URL-encoded desc field.
func (b *Blueprint) Description() (string, error) {
	return url.QueryUnescape(b.Desc)
}

// SetDescription URL-encodes plain and stores it as desc.
func (b *Blueprint) SetDescription(plain string) {
	b.Desc = url.QueryEscape(plain)
}

// IconTextPlain decodes the URL-encoded icon_text field.
func (b *Blueprint) IconTextPlain() (string, error) {
	return url.QueryUnescape(b.IconText)
}

// SetIconText URL-encodes plain and stores it as icon_text.
func (b *Blueprint) SetIconText(plain string) {
	b.IconText = url.QueryEscape(plain)
}

// Stats returns the multiset of buildings by item.
func (b *Blueprint) Stats() map[model.Item]int {
	stats := make(map[model.Item]int, len(b.Data.Buildings))
	for _, bld := range b.Data.Buildings {
		stats[model.Item(bld.Header.ItemID)]++
	}

	return stats
}
