package payload

import (
	"github.com/dspbp/dspbp/errs"
	"github.com/dspbp/dspbp/stream"
)

// truncatedParam reports that a station's fixed interior layout claims
// more words than parameter_count actually provides. want and have are
// word counts; the error carries them as byte counts (4 bytes a word),
// with Have being the bytes the declared parameter_count provides.
func truncatedParam(r *stream.Reader, want, have int) error {
	return &errs.TruncatedError{At: r.Pos(), Want: want * 4, Have: have * 4}
}
