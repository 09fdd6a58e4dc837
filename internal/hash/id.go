// Package hash wraps xxHash64 for sample set identities and frame checksums.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates a streaming xxHash64 over labels and float64 values.
//
// The zero value is not usable; create one with NewDigest.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString adds s to the digest, followed by a zero separator byte so that
// adjacent strings cannot collide by concatenation.
func (d *Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
	_, _ = d.d.Write([]byte{0})
}

// WriteFloat64 adds the IEEE-754 bits of v in little-endian order.
func (d *Digest) WriteFloat64(v float64) {
	binary.LittleEndian.PutUint64(d.buf[:], math.Float64bits(v))
	_, _ = d.d.Write(d.buf[:])
}

// Sum64 returns the current hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
