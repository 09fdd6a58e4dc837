package frame

import (
	"github.com/arloliu/fplot/endian"
	"github.com/arloliu/fplot/format"
	"github.com/arloliu/fplot/internal/options"
)

// Option configures Encode.
type Option = options.Option[*config]

type config struct {
	compression format.CompressionType
	encoding    format.EncodingType
	engine      endian.EndianEngine
}

func defaultConfig() *config {
	return &config{
		compression: format.CompressionNone,
		encoding:    format.TypeRaw,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// WithCompression sets the payload codec. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !compression.Valid() {
			return options.Invalid("unknown compression type %d", uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithEncoding sets the column encoding. The default is format.TypeRaw;
// format.TypeGorilla shrinks smooth curves considerably.
func WithEncoding(encoding format.EncodingType) Option {
	return options.New(func(c *config) error {
		if !encoding.Valid() {
			return options.Invalid("unknown encoding type %d", uint8(encoding))
		}
		c.encoding = encoding

		return nil
	})
}

// WithLittleEndian writes header fields and columns little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes header fields and columns big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetBigEndianEngine()
	})
}
