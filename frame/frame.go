// Package frame encodes a sample set into the compact binary frame handed to
// an out-of-process renderer.
//
// A frame is a fixed header followed by one payload block holding the label
// bytes, the x column and the y column. Columns are raw IEEE-754 values or
// Gorilla XOR streams; either way non-finite y values survive the trip
// unchanged. The payload may be compressed with any codec from package
// compress, and its xxHash64 checksum is verified on decode.
//
//	data, err := frame.Encode(set,
//	    frame.WithEncoding(format.TypeGorilla),
//	    frame.WithCompression(format.CompressionZstd),
//	)
//	...
//	decoded, err := frame.Decode(data)
//
// Frames are an optional, in-memory hand-off format that sits outside the
// plotting core: the formula and table pipelines never produce or read them,
// and they are not meant for storage.
package frame

import (
	"fmt"

	"github.com/arloliu/fplot/compress"
	"github.com/arloliu/fplot/encoding"
	"github.com/arloliu/fplot/endian"
	"github.com/arloliu/fplot/errs"
	"github.com/arloliu/fplot/internal/hash"
	"github.com/arloliu/fplot/internal/options"
	"github.com/arloliu/fplot/internal/pool"
	"github.com/arloliu/fplot/series"
)

// Encode serializes set into a new frame.
//
// Returns:
//   - errs.ErrEmptySampleSet if set is nil
//   - errs.ErrInvalidOption for invalid options
//   - errs.ErrInvalidFrame if the label is longer than MaxLabelLen
func Encode(set *series.SampleSet, opts ...Option) ([]byte, error) {
	if set == nil {
		return nil, errs.ErrEmptySampleSet
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	label := set.Label()
	if len(label) > MaxLabelLen {
		return nil, fmt.Errorf("%w: label is %d bytes, limit %d", errs.ErrInvalidFrame, len(label), MaxLabelLen)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	columns, err := encoding.GetColumnCodec(cfg.encoding, cfg.engine)
	if err != nil {
		return nil, err
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Grow(len(label) + set.Len()*16)
	_, _ = buf.WriteString(label)
	buf.B = columns.AppendColumn(buf.B, set.XS())
	buf.B = columns.AppendColumn(buf.B, set.YS())
	payload := buf.Bytes()

	h := Header{
		Compression: cfg.compression,
		Encoding:    cfg.encoding,
		Count:       uint32(set.Len()),        //nolint: gosec // sample sets are far below 2^32 points
		PreviewLen:  uint32(set.PreviewLen()), //nolint: gosec
		LabelLen:    uint16(len(label)),
		Checksum:    uint32(hash.Sum(payload)),
	}
	if endian.IsBigEndian(cfg.engine) {
		h.Flags |= flagBigEndian
	}
	if set.HasPreview() {
		h.Flags |= flagHasPreview
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress frame payload: %w", err)
	}

	// The no-op codec returns the pooled buffer itself, so always copy out.
	out := make([]byte, 0, HeaderSize+len(compressed))
	out = h.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}

// Decode parses a frame produced by Encode and rebuilds its sample set.
//
// Returns:
//   - errs.ErrInvalidMagicNumber or errs.ErrUnsupportedVersion for foreign data
//   - errs.ErrInvalidFrame for truncated or inconsistent frames
//   - errs.ErrChecksumMismatch if the payload does not match its checksum
func Decode(data []byte) (*series.SampleSet, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidFrame, err)
	}
	columns, err := encoding.GetColumnCodec(h.Encoding, h.Engine())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidFrame, err)
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: decompress payload: %w", errs.ErrInvalidFrame, err)
	}
	if len(payload) < int(h.LabelLen) {
		return nil, fmt.Errorf("%w: payload is %d bytes, label needs %d", errs.ErrInvalidFrame, len(payload), h.LabelLen)
	}
	if uint32(hash.Sum(payload)) != h.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	n := int(h.Count)
	// Both columns need at least one bit per value in any encoding.
	if n > (len(payload)-int(h.LabelLen))*4 {
		return nil, fmt.Errorf("%w: %d points cannot fit in %d payload bytes", errs.ErrInvalidFrame, n, len(payload))
	}
	label := string(payload[:h.LabelLen])
	rest := payload[h.LabelLen:]

	xs, used, err := columns.DecodeColumn(rest, n)
	if err != nil {
		return nil, fmt.Errorf("%w: x column: %w", errs.ErrInvalidFrame, err)
	}
	rest = rest[used:]

	ys, used, err := columns.DecodeColumn(rest, n)
	if err != nil {
		return nil, fmt.Errorf("%w: y column: %w", errs.ErrInvalidFrame, err)
	}
	if used != len(rest) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidFrame, len(rest)-used)
	}

	set, err := series.FromColumns(label, xs, ys, int(h.PreviewLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidFrame, err)
	}

	return set, nil
}
