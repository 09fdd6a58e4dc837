package encoding

import (
	"github.com/arloliu/fplot/endian"
	"github.com/arloliu/fplot/errs"
)

// NumericRawCodec stores each value as its eight IEEE-754 bytes.
type NumericRawCodec struct {
	engine endian.EndianEngine
}

var _ ColumnCodec = NumericRawCodec{}

// NewNumericRawCodec creates a raw codec writing in engine's byte order.
func NewNumericRawCodec(engine endian.EndianEngine) NumericRawCodec {
	return NumericRawCodec{engine: engine}
}

func (c NumericRawCodec) AppendColumn(dst []byte, values []float64) []byte {
	return endian.AppendFloat64s(c.engine, dst, values)
}

func (c NumericRawCodec) DecodeColumn(data []byte, count int) ([]float64, int, error) {
	values, err := endian.Float64s(c.engine, data, count)
	if err != nil {
		return nil, 0, errs.ErrCorruptColumn
	}

	return values, count * 8, nil
}
