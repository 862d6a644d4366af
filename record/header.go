package record

import "github.com/dspbp/dspbp/stream"

// v2Sentinel is the threshold below (or at) which a building header's
// first i32 marks it as V2-shaped. Legal building indices are small
// non-negative integers, so a large-magnitude negative value is a safe
// sentinel.
const v2Sentinel = -100

// Header is a building's fixed-layout wire record.
type Header struct {
	// Index is the building's logical index, regardless of wire shape.
	Index uint32

	// IsV2 is true when this header carried the V2 sentinel prefix and
	// trailing tilt field on the wire.
	IsV2 bool

	// RawSentinel is the exact first_int value observed on decode when
	// IsV2 is true. Re-emitted verbatim on encode.
	RawSentinel int32

	AreaIndex int8

	LocalOffsetX, LocalOffsetY, LocalOffsetZ    float32
	LocalOffsetX2, LocalOffsetY2, LocalOffsetZ2 float32
	Yaw, Yaw2                                   float32

	// Tilt is 0 for V1 headers; only meaningful (and only emitted) when
	// IsV2 is true.
	Tilt float32

	ItemID         uint16
	ModelIndex     uint16
	OutputObjectIndex uint32
	InputObjectIndex  uint32

	OutputToSlot   int8
	InputFromSlot  int8
	OutputFromSlot int8
	InputToSlot    int8
	OutputOffset   int8
	InputOffset    int8

	RecipeID       uint16
	FilterID       uint16
	ParameterCount uint16
}

// Decode reads one Header from r, discriminating V1 vs V2 shape from the
// first i32.
func (h *Header) Decode(r *stream.Reader) error {
	first, err := r.I32()
	if err != nil {
		return err
	}

	h.IsV2 = first <= v2Sentinel
	if h.IsV2 {
		h.RawSentinel = first

		idx, err := r.U32()
		if err != nil {
			return err
		}
		h.Index = idx
	} else {
		h.Index = uint32(first) //nolint:gosec // legal indices are non-negative and small
	}

	if h.AreaIndex, err = r.I8(); err != nil {
		return err
	}
	if h.LocalOffsetX, err = r.F32(); err != nil {
		return err
	}
	if h.LocalOffsetY, err = r.F32(); err != nil {
		return err
	}
	if h.LocalOffsetZ, err = r.F32(); err != nil {
		return err
	}
	if h.LocalOffsetX2, err = r.F32(); err != nil {
		return err
	}
	if h.LocalOffsetY2, err = r.F32(); err != nil {
		return err
	}
	if h.LocalOffsetZ2, err = r.F32(); err != nil {
		return err
	}
	if h.Yaw, err = r.F32(); err != nil {
		return err
	}
	if h.Yaw2, err = r.F32(); err != nil {
		return err
	}

	if h.IsV2 {
		if h.Tilt, err = r.F32(); err != nil {
			return err
		}
	} else {
		h.Tilt = 0
	}

	if h.ItemID, err = r.U16(); err != nil {
		return err
	}
	if h.ModelIndex, err = r.U16(); err != nil {
		return err
	}
	if h.OutputObjectIndex, err = r.U32(); err != nil {
		return err
	}
	if h.InputObjectIndex, err = r.U32(); err != nil {
		return err
	}
	if h.OutputToSlot, err = r.I8(); err != nil {
		return err
	}
	if h.InputFromSlot, err = r.I8(); err != nil {
		return err
	}
	if h.OutputFromSlot, err = r.I8(); err != nil {
		return err
	}
	if h.InputToSlot, err = r.I8(); err != nil {
		return err
	}
	if h.OutputOffset, err = r.I8(); err != nil {
		return err
	}
	if h.InputOffset, err = r.I8(); err != nil {
		return err
	}
	if h.RecipeID, err = r.U16(); err != nil {
		return err
	}
	if h.FilterID, err = r.U16(); err != nil {
		return err
	}
	if h.ParameterCount, err = r.U16(); err != nil {
		return err
	}

	return nil
}

// Encode writes this Header to w.
func (h Header) Encode(w *stream.Writer) {
	if h.IsV2 {
		w.I32(h.RawSentinel)
		w.U32(h.Index)
	} else {
		w.I32(int32(h.Index)) //nolint:gosec // legal indices fit in i32
	}

	w.I8(h.AreaIndex)
	w.F32(h.LocalOffsetX)
	w.F32(h.LocalOffsetY)
	w.F32(h.LocalOffsetZ)
	w.F32(h.LocalOffsetX2)
	w.F32(h.LocalOffsetY2)
	w.F32(h.LocalOffsetZ2)
	w.F32(h.Yaw)
	w.F32(h.Yaw2)

	if h.IsV2 {
		w.F32(h.Tilt)
	}

	w.U16(h.ItemID)
	w.U16(h.ModelIndex)
	w.U32(h.OutputObjectIndex)
	w.U32(h.InputObjectIndex)
	w.I8(h.OutputToSlot)
	w.I8(h.InputFromSlot)
	w.I8(h.OutputFromSlot)
	w.I8(h.InputToSlot)
	w.I8(h.OutputOffset)
	w.I8(h.InputOffset)
	w.U16(h.RecipeID)
	w.U16(h.FilterID)
	w.U16(h.ParameterCount)
}
