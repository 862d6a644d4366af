// Package record implements the fixed-layout binary records that make up
// a blueprint's building stream: areas, building headers, and the
// scalar+count framing of BlueprintData.
package record

import "github.com/dspbp/dspbp/stream"

// Area is a rectangular region descriptor grouping buildings within a
// blueprint.
type Area struct {
	Index               int8
	ParentIndex         int8
	TropicAnchor        int16
	AreaSegments        int16
	AnchorLocalOffsetX  int16
	AnchorLocalOffsetY  int16
	Width               int16
	Height              int16
}

// Decode reads one Area record from r.
func (a *Area) Decode(r *stream.Reader) error {
	var err error

	if a.Index, err = r.I8(); err != nil {
		return err
	}
	if a.ParentIndex, err = r.I8(); err != nil {
		return err
	}
	if a.TropicAnchor, err = r.I16(); err != nil {
		return err
	}
	if a.AreaSegments, err = r.I16(); err != nil {
		return err
	}
	if a.AnchorLocalOffsetX, err = r.I16(); err != nil {
		return err
	}
	if a.AnchorLocalOffsetY, err = r.I16(); err != nil {
		return err
	}
	if a.Width, err = r.I16(); err != nil {
		return err
	}
	if a.Height, err = r.I16(); err != nil {
		return err
	}

	return nil
}

// Encode writes this Area record to w.
func (a Area) Encode(w *stream.Writer) {
	w.I8(a.Index)
	w.I8(a.ParentIndex)
	w.I16(a.TropicAnchor)
	w.I16(a.AreaSegments)
	w.I16(a.AnchorLocalOffsetX)
	w.I16(a.AnchorLocalOffsetY)
	w.I16(a.Width)
	w.I16(a.Height)
}
