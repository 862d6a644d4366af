package payload

import "github.com/dspbp/dspbp/stream"

// Slot and storage counts differ between planetary and interstellar
// logistics stations. The exact interior layout isn't independently
// verified against a game fixture, so it's defined self-consistently
// and padded with a raw remainder that absorbs whatever words
// parameter_count actually carries.
const (
	stationSlotCount         = 12
	planetaryStorageCount    = 3
	interstellarStorageCount = 5
	interstellarShipWords    = 8

	slotWords    = 2 // Direction, StorageIdx
	storageWords = 4 // ItemID, LocalLogic, RemoteLogic, MaxCount
)

// StationSlot is one of a station's belt-facing I/O slots.
type StationSlot struct {
	Direction  int32
	StorageIdx int32
}

func (s *StationSlot) decode(r *stream.Reader) error {
	var err error
	if s.Direction, err = r.I32(); err != nil {
		return err
	}
	if s.StorageIdx, err = r.I32(); err != nil {
		return err
	}
	return nil
}

func (s StationSlot) encode(w *stream.Writer) {
	w.I32(s.Direction)
	w.I32(s.StorageIdx)
}

// StationStore is one of a station's internal storage bays.
type StationStore struct {
	ItemID      int32
	LocalLogic  int32
	RemoteLogic int32
	MaxCount    int32
}

func (s *StationStore) decode(r *stream.Reader) error {
	var err error
	if s.ItemID, err = r.I32(); err != nil {
		return err
	}
	if s.LocalLogic, err = r.I32(); err != nil {
		return err
	}
	if s.RemoteLogic, err = r.I32(); err != nil {
		return err
	}
	if s.MaxCount, err = r.I32(); err != nil {
		return err
	}
	return nil
}

func (s StationStore) encode(w *stream.Writer) {
	w.I32(s.ItemID)
	w.I32(s.LocalLogic)
	w.I32(s.RemoteLogic)
	w.I32(s.MaxCount)
}

// ShipConfig holds the extra logistics-vessel tuning words carried only
// by interstellar stations.
type ShipConfig struct {
	Words [interstellarShipWords]int32
}

func (c *ShipConfig) decode(r *stream.Reader) error {
	for i := range c.Words {
		v, err := r.I32()
		if err != nil {
			return err
		}
		c.Words[i] = v
	}
	return nil
}

func (c ShipConfig) encode(w *stream.Writer) {
	for _, v := range c.Words {
		w.I32(v)
	}
}

// Station is the BuildingParam variant carried by planetary and
// interstellar logistics stations.
type Station struct {
	Interstellar bool
	Slots        []StationSlot
	Storage      []StationStore
	Ship         *ShipConfig // non-nil iff Interstellar

	// Extra holds any trailing raw words beyond the fixed layout, so
	// WordCount always equals the parameter_count actually observed
	// even though the true interior layout is unverified.
	Extra []uint32
}

func stationFixedWords(interstellar bool) int {
	storageCount := planetaryStorageCount
	shipWords := 0
	if interstellar {
		storageCount = interstellarStorageCount
		shipWords = interstellarShipWords
	}
	return stationSlotCount*slotWords + storageCount*storageWords + shipWords
}

func decodeStation(r *stream.Reader, parameterCount uint16, interstellar bool) (*Station, error) {
	fixed := stationFixedWords(interstellar)
	if int(parameterCount) < fixed {
		return nil, truncatedParam(r, fixed, int(parameterCount))
	}

	s := &Station{Interstellar: interstellar}

	s.Slots = make([]StationSlot, stationSlotCount)
	for i := range s.Slots {
		if err := s.Slots[i].decode(r); err != nil {
			return nil, err
		}
	}

	storageCount := planetaryStorageCount
	if interstellar {
		storageCount = interstellarStorageCount
	}
	s.Storage = make([]StationStore, storageCount)
	for i := range s.Storage {
		if err := s.Storage[i].decode(r); err != nil {
			return nil, err
		}
	}

	if interstellar {
		s.Ship = &ShipConfig{}
		if err := s.Ship.decode(r); err != nil {
			return nil, err
		}
	}

	extraCount := int(parameterCount) - fixed
	if extraCount == 0 {
		return s, nil
	}

	s.Extra = make([]uint32, extraCount)
	for i := range s.Extra {
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		s.Extra[i] = v
	}

	return s, nil
}

// WordCount implements Param.
func (s *Station) WordCount() uint16 {
	return uint16(stationFixedWords(s.Interstellar) + len(s.Extra)) //nolint:gosec // bounded by parameter_count, a u16 on the wire
}

func (s *Station) encode(w *stream.Writer) {
	for _, slot := range s.Slots {
		slot.encode(w)
	}
	for _, store := range s.Storage {
		store.encode(w)
	}
	if s.Interstellar && s.Ship != nil {
		s.Ship.encode(w)
	}
	for _, v := range s.Extra {
		w.U32(v)
	}
}
