package record

import "github.com/dspbp/dspbp/stream"

// BlueprintData is the decompressed binary payload inside a blueprint's
// envelope: a handful of scalar fields followed by the area and building
// streams.
type BlueprintData struct {
	Version int32

	CursorOffsetX    int32
	CursorOffsetY    int32
	CursorTargetArea int32

	DragBoxSizeX int32
	DragBoxSizeY int32

	PrimaryAreaIdx int32

	Areas     []Area
	Buildings []Building
}

// Decode reads a BlueprintData record. strict is forwarded to every
// Building's payload dispatch.
func (d *BlueprintData) Decode(r *stream.Reader, strict bool) error {
	var err error

	if d.Version, err = r.I32(); err != nil {
		return err
	}
	if d.CursorOffsetX, err = r.I32(); err != nil {
		return err
	}
	if d.CursorOffsetY, err = r.I32(); err != nil {
		return err
	}
	if d.CursorTargetArea, err = r.I32(); err != nil {
		return err
	}
	if d.DragBoxSizeX, err = r.I32(); err != nil {
		return err
	}
	if d.DragBoxSizeY, err = r.I32(); err != nil {
		return err
	}
	if d.PrimaryAreaIdx, err = r.I32(); err != nil {
		return err
	}

	areaCount, err := r.U8()
	if err != nil {
		return err
	}

	d.Areas = nil
	if areaCount > 0 {
		d.Areas = make([]Area, areaCount)
	}
	for i := range d.Areas {
		if err := d.Areas[i].Decode(r); err != nil {
			return err
		}
	}

	buildingCount, err := r.I32()
	if err != nil {
		return err
	}
	if buildingCount < 0 {
		buildingCount = 0
	}

	d.Buildings = make([]Building, buildingCount)
	for i := range d.Buildings {
		if err := d.Buildings[i].Decode(r, strict); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes this BlueprintData record to w.
func (d BlueprintData) Encode(w *stream.Writer) {
	w.I32(d.Version)
	w.I32(d.CursorOffsetX)
	w.I32(d.CursorOffsetY)
	w.I32(d.CursorTargetArea)
	w.I32(d.DragBoxSizeX)
	w.I32(d.DragBoxSizeY)
	w.I32(d.PrimaryAreaIdx)

	w.U8(uint8(len(d.Areas))) //nolint:gosec // area count is wire-bounded to a u8

	for _, a := range d.Areas {
		a.Encode(w)
	}

	w.I32(int32(len(d.Buildings))) //nolint:gosec // building count is wire-bounded to an i32

	for _, b := range d.Buildings {
		b.Encode(w)
	}
}
