// Package endian provides the byte-order engines used to lay out frame columns.
//
// An EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
// Frames default to little-endian; big-endian exists for renderers running on
// big-endian hosts that want to map the columns without swapping.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, set.XS())
package endian

import (
	"encoding/binary"
	"errors"
	"math"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// ErrShortColumn is returned when a column buffer is smaller than requested.
var ErrShortColumn = errors.New("endian: column buffer too short")

// CheckEndianness reports the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x01 first only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// AppendFloat64s appends the IEEE-754 bits of each value to buf.
func AppendFloat64s(engine EndianEngine, buf []byte, values []float64) []byte {
	for _, v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// Float64s decodes n consecutive float64 values from data into a new slice.
// NaN payloads and signed zeros are preserved.
func Float64s(engine EndianEngine, data []byte, n int) ([]float64, error) {
	if n < 0 || len(data) < n*8 {
		return nil, ErrShortColumn
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(data[i*8:]))
	}

	return values, nil
}
