package blueprint

import (
	"fmt"

	"github.com/dspbp/dspbp/compress"
	"github.com/dspbp/dspbp/internal/options"
)

type parseConfig struct {
	strict bool
}

// ParseOption configures Parse.
type ParseOption = options.Option[*parseConfig]

// WithStrict enables strict payload dispatch: an item outside the known
// station/belt categories surfaces UnknownItemCategoryError instead of
// silently decoding as Unknown.
func WithStrict(strict bool) ParseOption {
	return options.NoError(func(c *parseConfig) { c.strict = strict })
}

type emitConfig struct {
	level int
}

// EmitOption configures Emit.
type EmitOption = options.Option[*emitConfig]

// WithCompressionLevel overrides the gzip level used when framing the
// binary payload (1-9, default 6). A level outside 1-9 makes Emit fail.
func WithCompressionLevel(level int) EmitOption {
	return options.New(func(c *emitConfig) error {
		if level < 1 || level > 9 {
			return fmt.Errorf("dspbp: compression level %d outside 1-9", level)
		}
		c.level = level
		return nil
	})
}

func defaultEmitConfig() *emitConfig {
	return &emitConfig{level: compress.DefaultLevel}
}
