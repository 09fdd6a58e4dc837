package frame

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fplot/errs"
	"github.com/arloliu/fplot/format"
	"github.com/arloliu/fplot/internal/hash"
	"github.com/arloliu/fplot/series"
)

func curveSet(t testing.TB, n int) *series.SampleSet {
	t.Helper()

	points := make([]series.Point, n)
	for i := range points {
		x := -10 + 20*float64(i)/float64(n-1)
		points[i] = series.Point{X: x, Y: x * x}
	}

	set, err := series.New(series.FormulaLabelPrefix+"x**2", points, series.DefaultPreviewSize)
	require.NoError(t, err)

	return set
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	encodings := []format.EncodingType{format.TypeRaw, format.TypeGorilla}
	orders := map[string]Option{
		"little": WithLittleEndian(),
		"big":    WithBigEndian(),
	}

	set := curveSet(t, 500)
	for _, compression := range compressions {
		for _, enc := range encodings {
			for orderName, order := range orders {
				t.Run(compression.String()+"/"+enc.String()+"/"+orderName, func(t *testing.T) {
					data, err := Encode(set, WithCompression(compression), WithEncoding(enc), order)
					require.NoError(t, err)

					h, err := ParseHeader(data)
					require.NoError(t, err)
					require.Equal(t, compression, h.Compression)
					require.Equal(t, enc, h.Encoding)
					require.Equal(t, orderName == "big", h.Flags&flagBigEndian != 0)
					require.EqualValues(t, 500, h.Count)
					require.EqualValues(t, series.DefaultPreviewSize, h.PreviewLen)
					require.True(t, h.HasPreview())

					decoded, err := Decode(data)
					require.NoError(t, err)
					require.True(t, set.Equal(decoded))
					require.Equal(t, set.Fingerprint(), decoded.Fingerprint())
				})
			}
		}
	}
}

func TestEncode_Layout(t *testing.T) {
	set := curveSet(t, 4)

	data, err := Encode(set)
	require.NoError(t, err)

	label := set.Label()
	require.Len(t, data, HeaderSize+len(label)+4*16)
	require.Equal(t, "FPLT", string(data[0:4]))
	require.Equal(t, Version, data[4])
	require.Equal(t, byte(format.CompressionNone), data[6])
	require.Equal(t, byte(format.TypeRaw), data[7])
	require.Equal(t, label, string(data[HeaderSize:HeaderSize+len(label)]))

	firstX := math.Float64frombits(binary.LittleEndian.Uint64(data[HeaderSize+len(label):]))
	require.Equal(t, -10.0, firstX)
}

func TestEncode_GorillaShrinksCurves(t *testing.T) {
	set := curveSet(t, 500)

	raw, err := Encode(set)
	require.NoError(t, err)
	gorilla, err := Encode(set, WithEncoding(format.TypeGorilla))
	require.NoError(t, err)

	require.Less(t, len(gorilla), len(raw))
}

func TestEncodeDecode_NonFiniteAndReversed(t *testing.T) {
	points := []series.Point{
		{X: 1, Y: 1},
		{X: 0.5, Y: 2},
		{X: 0, Y: math.Inf(1)},
		{X: -0.5, Y: math.NaN()},
	}
	set, err := series.New("f(x) = 1/x", points, 0)
	require.NoError(t, err)
	require.False(t, set.Ascending())

	data, err := Encode(set, WithCompression(format.CompressionS2), WithEncoding(format.TypeGorilla))
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.True(t, set.Equal(decoded))
	require.False(t, decoded.Ascending())
	require.False(t, decoded.HasPreview())
	require.True(t, math.IsInf(decoded.At(2).Y, 1))
	require.True(t, math.IsNaN(decoded.At(3).Y))
}

func TestEncode_Errors(t *testing.T) {
	t.Run("nil set", func(t *testing.T) {
		_, err := Encode(nil)
		require.ErrorIs(t, err, errs.ErrEmptySampleSet)
	})

	t.Run("invalid compression", func(t *testing.T) {
		_, err := Encode(curveSet(t, 2), WithCompression(format.CompressionType(9)))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		_, err := Encode(curveSet(t, 2), WithEncoding(format.EncodingType(9)))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})

	t.Run("label too long", func(t *testing.T) {
		set, err := series.New(strings.Repeat("x", MaxLabelLen+1), []series.Point{{X: 0, Y: 0}}, 0)
		require.NoError(t, err)

		_, err = Encode(set)
		require.ErrorIs(t, err, errs.ErrInvalidFrame)
	})
}

func TestDecode_Corruption(t *testing.T) {
	valid, err := Encode(curveSet(t, 50))
	require.NoError(t, err)

	mutate := func(fn func(b []byte) []byte) []byte {
		b := make([]byte, len(valid))
		copy(b, valid)

		return fn(b)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, errs.ErrInvalidFrame},
		{"short header", valid[:HeaderSize-1], errs.ErrInvalidFrame},
		{"bad magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), errs.ErrInvalidMagicNumber},
		{"bad version", mutate(func(b []byte) []byte { b[4] = 9; return b }), errs.ErrUnsupportedVersion},
		{"reserved flag", mutate(func(b []byte) []byte { b[5] |= 0x80; return b }), errs.ErrInvalidFrame},
		{"unknown compression", mutate(func(b []byte) []byte { b[6] = 0; return b }), errs.ErrInvalidFrame},
		{"truncated payload", valid[:len(valid)-8], errs.ErrChecksumMismatch},
		{"unknown encoding", mutate(func(b []byte) []byte { b[7] = 0; return b }), errs.ErrInvalidFrame},
		{"flipped payload byte", mutate(func(b []byte) []byte { b[len(b)-1] ^= 0x01; return b }), errs.ErrChecksumMismatch},
		{"preview longer than count", mutate(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[12:16], 51)
			return b
		}), errs.ErrInvalidFrame},
		{"zero count", mutate(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[8:12], 0)
			return b
		}), errs.ErrInvalidFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_CountExceedsPayload(t *testing.T) {
	payload := make([]byte, 8)

	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		t.Run(enc.String(), func(t *testing.T) {
			h := Header{
				Compression: format.CompressionNone,
				Encoding:    enc,
				Count:       1<<32 - 1,
				Checksum:    uint32(hash.Sum(payload)),
			}
			data := append(h.AppendTo(nil), payload...)
			require.Len(t, data, HeaderSize+8)

			_, err := Decode(data)
			require.ErrorIs(t, err, errs.ErrInvalidFrame)
		})
	}
}

func TestDecode_CorruptCompressedPayload(t *testing.T) {
	data, err := Encode(curveSet(t, 500), WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	data[HeaderSize+len(data[HeaderSize:])/2] ^= 0xFF

	_, err = Decode(data)
	require.Error(t, err)
}

func BenchmarkEncode(b *testing.B) {
	set := curveSet(b, 500)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(set)
	}
}

func BenchmarkDecode(b *testing.B) {
	data, err := Encode(curveSet(b, 500), WithCompression(format.CompressionZstd))
	require.NoError(b, err)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(data)
	}
}
