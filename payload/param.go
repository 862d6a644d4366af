// Package payload implements the typed BuildingParam variants: Station,
// Belt, and the Unknown catch-all, dispatched by the owning building's
// item_id.
package payload

import (
	"github.com/dspbp/dspbp/errs"
	"github.com/dspbp/dspbp/model"
	"github.com/dspbp/dspbp/stream"
)

// Param is the closed set of building parameter payloads. It is sealed
// (the encode method is unexported) so the only implementations are the
// three in this package.
type Param interface {
	// WordCount returns the number of little-endian u32 words this
	// payload occupies on the wire. Must equal the owning header's
	// parameter_count.
	WordCount() uint16

	encode(w *stream.Writer)
}

// Decode reads a building's parameter payload, dispatching on item's
// category: Station takes priority, then Belt, then Unknown.
//
// When strict is true, an item that is neither a station nor a belt
// yields errs.UnknownItemCategoryError instead of silently falling back
// to Unknown.
func Decode(r *stream.Reader, item model.Item, parameterCount uint16, strict bool) (Param, error) {
	switch {
	case item.IsStation():
		return decodeStation(r, parameterCount, item.IsInterstellarStation())
	case item.IsBelt():
		return decodeBelt(r, parameterCount)
	default:
		if strict {
			return nil, &errs.UnknownItemCategoryError{ItemID: uint16(item)}
		}

		return decodeUnknown(r, parameterCount)
	}
}

// Encode writes p's wire representation to w.
func Encode(w *stream.Writer, p Param) {
	p.encode(w)
}
