// Package compress provides the payload codecs used by render hand-off frames.
//
// A frame payload holds a sample set's label and its x and y columns as raw
// IEEE-754 values. Smooth curves compress well with Zstd; S2 and LZ4 trade
// ratio for speed; None skips compression entirely.
package compress

import (
	"fmt"

	"github.com/arloliu/fplot/format"
)

// Compressor compresses a complete frame payload.
//
// The returned slice is owned by the caller and the input is not modified,
// except for the no-op codec, which returns its input.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm. It returns an
// error for corrupted input or input produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression. Implementations are safe
// for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
