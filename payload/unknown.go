package payload

import "github.com/dspbp/dspbp/stream"

// Unknown is the BuildingParam variant for any item whose category this
// codec does not decode structurally. Its parameter words are preserved
// verbatim so the building round-trips exactly.
type Unknown struct {
	Words []uint32
}

func decodeUnknown(r *stream.Reader, parameterCount uint16) (*Unknown, error) {
	u := &Unknown{Words: make([]uint32, parameterCount)}
	for i := range u.Words {
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		u.Words[i] = v
	}
	return u, nil
}

// WordCount implements Param.
func (u *Unknown) WordCount() uint16 {
	return uint16(len(u.Words)) //nolint:gosec // bounded by parameter_count, a u16 on the wire
}

func (u *Unknown) encode(w *stream.Writer) {
	for _, v := range u.Words {
		w.U32(v)
	}
}
