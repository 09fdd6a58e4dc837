// Package encoding provides the column encodings for frame payloads.
//
// A column is a run of float64 values. Raw stores each value as eight bytes in
// the frame's byte order. Gorilla stores the XOR of each value with its
// predecessor, which shrinks evenly spaced x columns and smooth y columns to a
// fraction of their raw size.
package encoding

import (
	"fmt"

	"github.com/arloliu/fplot/endian"
	"github.com/arloliu/fplot/format"
)

// ColumnEncoder appends an encoded column to dst.
type ColumnEncoder interface {
	AppendColumn(dst []byte, values []float64) []byte
}

// ColumnDecoder decodes count values from the front of data.
//
// It returns the values and the number of bytes consumed, so columns can be
// laid out back to back without length prefixes. Short input fails with
// errs.ErrCorruptColumn.
type ColumnDecoder interface {
	DecodeColumn(data []byte, count int) ([]float64, int, error)
}

// ColumnCodec combines both directions of one encoding.
type ColumnCodec interface {
	ColumnEncoder
	ColumnDecoder
}

// GetColumnCodec returns the codec for typ. engine only matters for TypeRaw;
// Gorilla bit streams are byte-order independent.
func GetColumnCodec(typ format.EncodingType, engine endian.EndianEngine) (ColumnCodec, error) {
	switch typ {
	case format.TypeRaw:
		return NewNumericRawCodec(engine), nil
	case format.TypeGorilla:
		return NewNumericGorillaCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding type: %s", typ)
	}
}
