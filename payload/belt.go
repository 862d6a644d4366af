package payload

import "github.com/dspbp/dspbp/stream"

// BeltEntry is one lazy belt-item slot. It packs into a single u32 word:
// byte 0 is the present flag (doubling as this entry's tag), byte 1 is
// unused padding preserved for exact round-tripping, and bytes 2-3 are
// the little-endian item id.
type BeltEntry struct {
	Present  bool
	reserved uint8
	ItemID   uint16
}

func decodeBeltEntry(word uint32) BeltEntry {
	return BeltEntry{
		Present:  word&0xFF != 0,
		reserved: uint8((word >> 8) & 0xFF), //nolint:gosec // masked to a byte
		ItemID:   uint16(word >> 16),        //nolint:gosec // masked to the top 16 bits
	}
}

func (e BeltEntry) encode() uint32 {
	var present uint32
	if e.Present {
		present = 1
	}
	return present | uint32(e.reserved)<<8 | uint32(e.ItemID)<<16
}

// Belt is the BuildingParam variant carried by conveyor belts: a run of
// parameter_count entries, one word each. A belt with no parameters at
// all (parameter_count == 0) naturally collapses to an empty Entries
// slice.
type Belt struct {
	Entries []BeltEntry
}

func decodeBelt(r *stream.Reader, parameterCount uint16) (*Belt, error) {
	b := &Belt{Entries: make([]BeltEntry, parameterCount)}
	for i := range b.Entries {
		word, err := r.U32()
		if err != nil {
			return nil, err
		}
		b.Entries[i] = decodeBeltEntry(word)
	}
	return b, nil
}

// WordCount implements Param.
func (b *Belt) WordCount() uint16 {
	return uint16(len(b.Entries)) //nolint:gosec // bounded by parameter_count, a u16 on the wire
}

func (b *Belt) encode(w *stream.Writer) {
	for _, e := range b.Entries {
		w.U32(e.encode())
	}
}
