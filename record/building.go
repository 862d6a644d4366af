package record

import (
	"github.com/dspbp/dspbp/model"
	"github.com/dspbp/dspbp/payload"
	"github.com/dspbp/dspbp/stream"
)

// Building combines a Header with its typed parameter payload.
type Building struct {
	Header Header
	Param  payload.Param
}

// Decode reads one Building. strict controls whether an item outside
// the known station/belt categories surfaces
// errs.UnknownItemCategoryError instead of falling back to
// payload.Unknown.
func (b *Building) Decode(r *stream.Reader, strict bool) error {
	if err := b.Header.Decode(r); err != nil {
		return err
	}

	p, err := payload.Decode(r, model.Item(b.Header.ItemID), b.Header.ParameterCount, strict)
	if err != nil {
		return err
	}

	b.Param = p

	return nil
}

// Encode writes this Building to w.
func (b Building) Encode(w *stream.Writer) {
	b.Header.Encode(w)
	payload.Encode(w, b.Param)
}
