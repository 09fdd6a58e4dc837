// Package series defines the Sample Set, the ordered (x, y) data both fplot
// pipelines produce for the rendering layer.
//
// A SampleSet is immutable once built: accessors return copies, and the next
// successful pipeline call produces a fresh value rather than mutating the
// previous one.
package series

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/fplot/errs"
	"github.com/arloliu/fplot/internal/hash"
)

const (
	// DefaultPreviewSize is the number of leading points shown in the textual preview.
	DefaultPreviewSize = 20

	// FormulaLabelPrefix prefixes the expression text in formula labels.
	FormulaLabelPrefix = "f(x) = "
	// TableLabel is the label of every table-mode sample set.
	TableLabel = "tabular data"

	// AxisX and AxisY are the axis captions the renderer draws.
	AxisX = "x"
	AxisY = "f(x)"
)

// Point is a single (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// SampleSet is an ordered, non-empty sequence of points plus display metadata.
type SampleSet struct {
	label      string
	points     []Point
	previewLen int
	ascending  bool
}

// New builds a SampleSet from points, which are copied.
//
// The x values must be monotonic: non-decreasing, or non-increasing for a
// reversed formula range. NaN x values are rejected. previewSize <= 0 builds a
// set without a preview; otherwise the preview is the first
// min(previewSize, len(points)) points.
//
// Returns:
//   - errs.ErrEmptySampleSet if points is empty
//   - errs.ErrUnorderedSamples if the x values are not monotonic
func New(label string, points []Point, previewSize int) (*SampleSet, error) {
	if len(points) == 0 {
		return nil, errs.ErrEmptySampleSet
	}

	ascending, err := checkOrder(points)
	if err != nil {
		return nil, err
	}

	previewLen := 0
	if previewSize > 0 {
		previewLen = min(previewSize, len(points))
	}

	cp := make([]Point, len(points))
	copy(cp, points)

	return &SampleSet{
		label:      label,
		points:     cp,
		previewLen: previewLen,
		ascending:  ascending,
	}, nil
}

// FromColumns builds a SampleSet from parallel x and y columns.
func FromColumns(label string, xs, ys []float64, previewSize int) (*SampleSet, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("column length mismatch: %d x values, %d y values", len(xs), len(ys))
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	return New(label, points, previewSize)
}

// checkOrder reports the direction of x: non-decreasing when the last x is
// not below the first, non-increasing otherwise.
func checkOrder(points []Point) (bool, error) {
	for i, p := range points {
		if math.IsNaN(p.X) {
			return false, fmt.Errorf("%w: x is NaN at index %d", errs.ErrUnorderedSamples, i)
		}
	}

	ascending := points[len(points)-1].X >= points[0].X
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].X, points[i].X
		if (ascending && cur < prev) || (!ascending && cur > prev) {
			return false, fmt.Errorf("%w: x at index %d is %g after %g", errs.ErrUnorderedSamples, i, cur, prev)
		}
	}

	return ascending, nil
}

// Label returns the display label.
func (s *SampleSet) Label() string {
	return s.label
}

// Len returns the number of points.
func (s *SampleSet) Len() int {
	return len(s.points)
}

// At returns the i-th point. It panics if i is out of range.
func (s *SampleSet) At(i int) Point {
	return s.points[i]
}

// Points returns a copy of all points.
func (s *SampleSet) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)

	return cp
}

// XS returns a copy of the x column.
func (s *SampleSet) XS() []float64 {
	xs := make([]float64, len(s.points))
	for i, p := range s.points {
		xs[i] = p.X
	}

	return xs
}

// YS returns a copy of the y column.
func (s *SampleSet) YS() []float64 {
	ys := make([]float64, len(s.points))
	for i, p := range s.points {
		ys[i] = p.Y
	}

	return ys
}

// Ascending reports whether x is non-decreasing. It is false only for
// sample sets generated over a reversed range.
func (s *SampleSet) Ascending() bool {
	return s.ascending
}

// HasPreview reports whether the set carries a textual preview.
func (s *SampleSet) HasPreview() bool {
	return s.previewLen > 0
}

// PreviewLen returns the number of points in the preview.
func (s *SampleSet) PreviewLen() int {
	return s.previewLen
}

// Preview returns a copy of the leading preview points, or nil without a preview.
func (s *SampleSet) Preview() []Point {
	if s.previewLen == 0 {
		return nil
	}

	cp := make([]Point, s.previewLen)
	copy(cp, s.points[:s.previewLen])

	return cp
}

// Finite reports whether every y value is a finite number.
func (s *SampleSet) Finite() bool {
	for _, p := range s.points {
		if math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
			return false
		}
	}

	return true
}

// ID returns the xxHash64 of the label.
func (s *SampleSet) ID() uint64 {
	return hash.ID(s.label)
}

// Fingerprint hashes the label, the preview length and every point.
// Two sets built from identical input have identical fingerprints.
func (s *SampleSet) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteString(s.label)
	d.WriteFloat64(float64(s.previewLen))
	for _, p := range s.points {
		d.WriteFloat64(p.X)
		d.WriteFloat64(p.Y)
	}

	return d.Sum64()
}

// Equal reports whether s and other hold the same label, preview length and
// points. NaN values compare equal to each other.
func (s *SampleSet) Equal(other *SampleSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.label != other.label || s.previewLen != other.previewLen || len(s.points) != len(other.points) {
		return false
	}
	for i, p := range s.points {
		q := other.points[i]
		if !sameFloat(p.X, q.X) || !sameFloat(p.Y, q.Y) {
			return false
		}
	}

	return true
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return math.Float64bits(a) == math.Float64bits(b)
}

// WritePreview writes the preview as a two-column text table:
//
//	x		f(x)
//	-10.00		100.0000
//	-9.96		99.1984
//
// It writes nothing when the set has no preview.
func (s *SampleSet) WritePreview(w io.Writer) error {
	if s.previewLen == 0 {
		return nil
	}

	if _, err := io.WriteString(w, AxisX+"\t\t"+AxisY+"\n"); err != nil {
		return err
	}
	for _, p := range s.points[:s.previewLen] {
		if _, err := fmt.Fprintf(w, "%.2f\t\t%.4f\n", p.X, p.Y); err != nil {
			return err
		}
	}

	return nil
}

// String returns a short description of the set.
func (s *SampleSet) String() string {
	return fmt.Sprintf("SampleSet{label=%q, points=%d, preview=%d}", s.label, len(s.points), s.previewLen)
}
