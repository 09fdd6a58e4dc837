// Package fplot turns user input into plottable (x, y) sample sets.
//
// Two pipelines feed the same rendering layer:
//
//   - Formula mode samples an expression in x, such as "sin(x) * x^2", at
//     evenly spaced points over a user-given range.
//   - Table mode parses free-form text of whitespace-separated "x y" rows and
//     sorts them by x.
//
// Both pipelines are stateless and return an immutable *series.SampleSet, or an
// error from package errs suitable for showing to the user verbatim.
//
// # Basic Usage
//
//	set, err := fplot.Sample("x^2", "", "")
//	if err != nil {
//	    return err
//	}
//	_ = set.WritePreview(os.Stdout)
//
//	set, err = fplot.ParseTable("Example:\n-2 4\n0 0\n2 4")
//
// # Sessions
//
// A Session keeps the most recent successful result, the way an interactive
// front end keeps the last drawn plot when the next input is invalid:
//
//	sess, _ := fplot.NewSession()
//	_, _ = sess.PlotFormula("x**2", "", "")
//	_, err = sess.PlotFormula("import os", "", "") // fails
//	plot := sess.Current()                           // still the parabola
//
// # Render Frames
//
// EncodeFrame packs a sample set into a compact binary frame for a renderer
// running in another process; DecodeFrame reverses it.
//
// # Package Structure
//
// This package wraps the formula, table, session and frame packages. Use them
// directly for custom sample counts, ranges, allowed functions or codecs.
package fplot

import (
	"github.com/arloliu/fplot/format"
	"github.com/arloliu/fplot/formula"
	"github.com/arloliu/fplot/frame"
	"github.com/arloliu/fplot/internal/hash"
	"github.com/arloliu/fplot/series"
	"github.com/arloliu/fplot/session"
	"github.com/arloliu/fplot/table"
)

// Sample evaluates expression at 500 evenly spaced x values over
// [xMin, xMax]. Blank bounds default to -10 and 10.
//
// Returns:
//   - errs.ErrInvalidRange if a bound is not blank and not a finite number
//   - errs.ErrEvaluation if the expression is rejected or fails to evaluate
func Sample(expression, xMin, xMax string) (*series.SampleSet, error) {
	return formula.Sample(expression, xMin, xMax)
}

// NewSampler creates a formula sampler with custom options.
//
// Example:
//
//	sampler, err := fplot.NewSampler(
//	    formula.WithSampleCount(1000),
//	    formula.WithNonFinitePolicy(format.NonFiniteReject),
//	)
func NewSampler(opts ...formula.Option) (*formula.Sampler, error) {
	return formula.NewSampler(opts...)
}

// ParseTable parses whitespace-separated "x y" rows, one per line.
//
// Blank lines and lines starting with "Example" are skipped. The result is
// sorted by x, keeping input order for equal x.
//
// Returns:
//   - errs.ErrMalformedLine if a line is not exactly two numbers
//   - errs.ErrEmptyInput if no data rows remain
func ParseTable(text string) (*series.SampleSet, error) {
	return table.Parse(text)
}

// NewTableParser creates a table parser with custom options.
func NewTableParser(opts ...table.Option) (*table.Parser, error) {
	return table.NewParser(opts...)
}

// NewSession creates a Session with the default sampler and parser.
func NewSession() (*session.Session, error) {
	return session.New(nil, nil)
}

// EncodeFrame packs set into a render frame.
//
// Example:
//
//	data, err := fplot.EncodeFrame(set, frame.WithCompression(format.CompressionZstd))
func EncodeFrame(set *series.SampleSet, opts ...frame.Option) ([]byte, error) {
	return frame.Encode(set, opts...)
}

// EncodeCompressedFrame packs set into a Zstd-compressed render frame.
func EncodeCompressedFrame(set *series.SampleSet) ([]byte, error) {
	return frame.Encode(set, frame.WithCompression(format.CompressionZstd))
}

// DecodeFrame rebuilds the sample set carried by a render frame.
func DecodeFrame(data []byte) (*series.SampleSet, error) {
	return frame.Decode(data)
}

// LabelID returns the xxHash64 of a plot label, a stable key for caching
// rendered plots by label.
func LabelID(label string) uint64 {
	return hash.ID(label)
}
