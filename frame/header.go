package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/fplot/endian"
	"github.com/arloliu/fplot/errs"
	"github.com/arloliu/fplot/format"
)

const (
	// Magic identifies a frame; it spells "FPLT" when read as bytes.
	Magic uint32 = 0x46504C54
	// Version is the only frame layout this package writes and reads.
	Version uint8 = 1
	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 24

	// MaxLabelLen is the longest label a frame can carry.
	MaxLabelLen = 1<<16 - 1
)

// Flag bits, byte offset 5.
const (
	flagBigEndian  uint8 = 1 << 0
	flagHasPreview uint8 = 1 << 1
	flagMask             = flagBigEndian | flagHasPreview
)

// Header is the fixed 24-byte prefix of a frame.
//
// Layout (multi-byte fields use the frame's byte order, except Magic, which
// is always stored big-endian so the first four bytes read "FPLT"):
//
//	0-3   magic
//	4     version
//	5     flags
//	6     compression type
//	7     column encoding type
//	8-11  point count
//	12-15 preview length
//	16-17 label length
//	18-19 reserved, zero
//	20-23 checksum, low 32 bits of xxHash64 over the uncompressed payload
type Header struct {
	Flags       uint8
	Compression format.CompressionType
	Encoding    format.EncodingType
	Count       uint32
	PreviewLen  uint32
	LabelLen    uint16
	Checksum    uint32
}

// Engine returns the byte order of the frame's columns.
func (h *Header) Engine() endian.EndianEngine {
	if h.Flags&flagBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// HasPreview reports whether the encoded set carried a preview.
func (h *Header) HasPreview() bool {
	return h.Flags&flagHasPreview != 0
}

// AppendTo appends the encoded header to buf.
func (h *Header) AppendTo(buf []byte) []byte {
	engine := h.Engine()

	buf = binary.BigEndian.AppendUint32(buf, Magic)
	buf = append(buf, Version, h.Flags, byte(h.Compression), byte(h.Encoding))
	buf = engine.AppendUint32(buf, h.Count)
	buf = engine.AppendUint32(buf, h.PreviewLen)
	buf = engine.AppendUint16(buf, h.LabelLen)
	buf = append(buf, 0, 0)
	buf = engine.AppendUint32(buf, h.Checksum)

	return buf
}

// ParseHeader decodes and validates the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidFrame, len(data))
	}

	if magic := binary.BigEndian.Uint32(data[0:4]); magic != Magic {
		return Header{}, fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagicNumber, magic)
	}
	if data[4] != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	h := Header{
		Flags:       data[5],
		Compression: format.CompressionType(data[6]),
		Encoding:    format.EncodingType(data[7]),
	}
	if h.Flags&^flagMask != 0 || data[18] != 0 || data[19] != 0 {
		return Header{}, fmt.Errorf("%w: reserved bits set", errs.ErrInvalidFrame)
	}
	if !h.Compression.Valid() {
		return Header{}, fmt.Errorf("%w: unknown compression type %d", errs.ErrInvalidFrame, data[6])
	}
	if !h.Encoding.Valid() {
		return Header{}, fmt.Errorf("%w: unknown encoding type %d", errs.ErrInvalidFrame, data[7])
	}

	engine := h.Engine()
	h.Count = engine.Uint32(data[8:12])
	h.PreviewLen = engine.Uint32(data[12:16])
	h.LabelLen = engine.Uint16(data[16:18])
	h.Checksum = engine.Uint32(data[20:24])

	if h.Count == 0 {
		return Header{}, fmt.Errorf("%w: zero points", errs.ErrInvalidFrame)
	}
	if h.PreviewLen > h.Count || (h.PreviewLen > 0) != h.HasPreview() {
		return Header{}, fmt.Errorf("%w: preview length %d inconsistent with %d points", errs.ErrInvalidFrame, h.PreviewLen, h.Count)
	}

	return h, nil
}
