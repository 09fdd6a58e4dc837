// Package format defines the enum types shared across fplot packages.
package format

type (
	EncodingType    uint8
	CompressionType uint8
	NonFinitePolicy uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores each float64 as eight bytes.
	TypeGorilla EncodingType = 0x2 // TypeGorilla stores XOR deltas between neighbors.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	// NonFinitePropagate keeps ±Inf and NaN results in the sample set.
	NonFinitePropagate NonFinitePolicy = 0x1
	// NonFiniteReject fails the evaluation at the first ±Inf or NaN result.
	NonFiniteReject NonFinitePolicy = 0x2
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is one of the defined encoding types.
func (e EncodingType) Valid() bool {
	return e == TypeRaw || e == TypeGorilla
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the defined compression types.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (p NonFinitePolicy) String() string {
	switch p {
	case NonFinitePropagate:
		return "Propagate"
	case NonFiniteReject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the defined policies.
func (p NonFinitePolicy) Valid() bool {
	return p == NonFinitePropagate || p == NonFiniteReject
}
