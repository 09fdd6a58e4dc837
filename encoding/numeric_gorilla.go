package encoding

import (
	"math"
	"math/bits"

	"github.com/arloliu/fplot/errs"
)

const (
	gorillaMaxLeading = 31 // fits the 5-bit leading-zero field
)

// NumericGorillaCodec implements the XOR value compression from Facebook's
// Gorilla paper (https://www.vldb.org/pvldb/vol8/p1816-teller.pdf).
//
// The first value is stored as 64 raw bits. Each following value is XORed
// with its predecessor:
//   - XOR == 0: a single 0 bit
//   - meaningful bits fit the previous window: bits 10, then the window
//   - otherwise: bits 11, 5 bits of leading zeros, 6 bits of window length
//     minus one, then the window
//
// A column always ends on a byte boundary.
type NumericGorillaCodec struct{}

var _ ColumnCodec = NumericGorillaCodec{}

// NewNumericGorillaCodec creates a Gorilla codec.
func NewNumericGorillaCodec() NumericGorillaCodec {
	return NumericGorillaCodec{}
}

func (NumericGorillaCodec) AppendColumn(dst []byte, values []float64) []byte {
	if len(values) == 0 {
		return dst
	}

	w := bitWriter{buf: dst}
	prev := math.Float64bits(values[0])
	w.writeBits(prev, 64)

	// Start with an impossible window so the first change writes a header.
	prevLeading, prevTrailing := uint(64), uint(64)
	for _, v := range values[1:] {
		cur := math.Float64bits(v)
		xor := cur ^ prev
		prev = cur

		if xor == 0 {
			w.writeBit(false)
			continue
		}
		w.writeBit(true)

		leading := min(uint(bits.LeadingZeros64(xor)), gorillaMaxLeading)
		trailing := uint(bits.TrailingZeros64(xor))

		if prevLeading+prevTrailing < 64 && leading >= prevLeading && trailing >= prevTrailing {
			w.writeBit(false)
			w.writeBits(xor>>prevTrailing, 64-prevLeading-prevTrailing)
			continue
		}

		size := 64 - leading - trailing
		w.writeBit(true)
		w.writeBits(uint64(leading), 5)
		w.writeBits(uint64(size-1), 6)
		w.writeBits(xor>>trailing, size)
		prevLeading, prevTrailing = leading, trailing
	}

	return w.flush()
}

func (NumericGorillaCodec) DecodeColumn(data []byte, count int) ([]float64, int, error) {
	if count <= 0 {
		return []float64{}, 0, nil
	}

	// The first value takes 64 bits and every later one at least one more.
	if len(data) < 8 || count-1 > (len(data)-8)*8 {
		return nil, 0, errs.ErrCorruptColumn
	}

	r := bitReader{data: data}
	prev, ok := r.readBits(64)
	if !ok {
		return nil, 0, errs.ErrCorruptColumn
	}

	values := make([]float64, count)
	values[0] = math.Float64frombits(prev)

	var leading, size uint
	for i := 1; i < count; i++ {
		changed, ok := r.readBit()
		if !ok {
			return nil, 0, errs.ErrCorruptColumn
		}
		if !changed {
			values[i] = math.Float64frombits(prev)
			continue
		}

		newWindow, ok := r.readBit()
		if !ok {
			return nil, 0, errs.ErrCorruptColumn
		}
		if newWindow {
			l, ok1 := r.readBits(5)
			s, ok2 := r.readBits(6)
			if !ok1 || !ok2 {
				return nil, 0, errs.ErrCorruptColumn
			}
			leading, size = uint(l), uint(s)+1
			if leading+size > 64 {
				return nil, 0, errs.ErrCorruptColumn
			}
		} else if size == 0 {
			// A reused window before any window was defined.
			return nil, 0, errs.ErrCorruptColumn
		}

		meaningful, ok := r.readBits(size)
		if !ok {
			return nil, 0, errs.ErrCorruptColumn
		}
		prev ^= meaningful << (64 - leading - size)
		values[i] = math.Float64frombits(prev)
	}

	return values, r.bytesRead(), nil
}
