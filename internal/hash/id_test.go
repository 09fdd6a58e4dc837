package hash

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
			assert.Equal(t, tt.id, Sum([]byte(tt.data)))
		})
	}
}

func TestDigest_Deterministic(t *testing.T) {
	build := func() uint64 {
		d := NewDigest()
		d.WriteString("f(x) = x**2")
		for _, v := range []float64{-10, 0, 10, math.Inf(1)} {
			d.WriteFloat64(v)
		}

		return d.Sum64()
	}

	require.Equal(t, build(), build())
}

func TestDigest_DistinguishesInput(t *testing.T) {
	a := NewDigest()
	a.WriteString("ab")
	a.WriteString("c")

	b := NewDigest()
	b.WriteString("a")
	b.WriteString("bc")

	require.NotEqual(t, a.Sum64(), b.Sum64())

	c := NewDigest()
	c.WriteFloat64(0)
	d := NewDigest()
	d.WriteFloat64(math.Copysign(0, -1))

	require.NotEqual(t, c.Sum64(), d.Sum64(), "signed zeros have different bits")
}

func TestDigest_WriteFloat64LittleEndian(t *testing.T) {
	v := -1.5
	raw := make([]byte, 0, 8)
	raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(v))

	d := NewDigest()
	d.WriteFloat64(v)

	require.Equal(t, xxhash.Sum64(raw), d.Sum64())
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkID(b *testing.B) {
	randStr := randString(20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ID(randStr)
	}
}

func BenchmarkDigest_500Points(b *testing.B) {
	values := make([]float64, 500)
	for i := range values {
		values[i] = float64(i) * 0.04
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := NewDigest()
		for _, v := range values {
			d.WriteFloat64(v)
		}
		_ = d.Sum64()
	}
}
