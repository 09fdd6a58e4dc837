// Package formula implements the Formula Sampler: it evaluates a textual
// expression of x at evenly spaced points over a range and returns the
// resulting sample set.
//
// Basic usage:
//
//	set, err := formula.Sample("x^2", "", "")
//	if err != nil {
//	    // errors.Is(err, errs.ErrInvalidRange) or errors.Is(err, errs.ErrEvaluation)
//	}
//	fmt.Println(set.Label()) // f(x) = x^2
package formula

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/fplot/errs"
	"github.com/arloliu/fplot/expr"
	"github.com/arloliu/fplot/format"
	"github.com/arloliu/fplot/internal/numparse"
	"github.com/arloliu/fplot/internal/options"
	"github.com/arloliu/fplot/series"
)

const (
	// DefaultSampleCount is the number of points generated per call.
	DefaultSampleCount = 500
	// DefaultXMin and DefaultXMax bound the range when a field is left blank.
	DefaultXMin = -10.0
	DefaultXMax = 10.0

	// FieldXMin and FieldXMax name the range fields in RangeError.
	FieldXMin = "x_min"
	FieldXMax = "x_max"
)

// Sampler evaluates expressions over a range. It holds only configuration
// and is safe for concurrent use.
type Sampler struct {
	count       int
	xMin        float64
	xMax        float64
	previewSize int
	policy      format.NonFinitePolicy
	env         *expr.Env
}

// Option configures a Sampler.
type Option = options.Option[*Sampler]

// NewSampler creates a Sampler. Without options it samples 500 points over
// [-10, 10], previews the first 20 and propagates non-finite values.
func NewSampler(opts ...Option) (*Sampler, error) {
	s := &Sampler{
		count:       DefaultSampleCount,
		xMin:        DefaultXMin,
		xMax:        DefaultXMax,
		previewSize: series.DefaultPreviewSize,
		policy:      format.NonFinitePropagate,
		env:         expr.DefaultEnv(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

var defaultSampler = mustDefaultSampler()

func mustDefaultSampler() *Sampler {
	s, err := NewSampler()
	if err != nil {
		panic(err)
	}

	return s
}

// Sample evaluates expression with the default Sampler.
func Sample(expression, xMin, xMax string) (*series.SampleSet, error) {
	return defaultSampler.Sample(expression, xMin, xMax)
}

// Sample evaluates expression at evenly spaced points over [xMin, xMax].
//
// Both bounds are validated before the expression is looked at: each must be
// blank (selecting the default) or a finite number. A range with
// xMin >= xMax is accepted and yields a reversed or degenerate set.
//
// The caret is accepted as the power operator ("x^2" is "x**2"); the label
// keeps the expression exactly as given.
//
// Returns:
//   - *errs.RangeError (errs.ErrInvalidRange) for a bad bound
//   - *errs.EvalError (errs.ErrEvaluation) when the expression does not
//     compile or evaluate, or yields a non-finite value under
//     format.NonFiniteReject
func (s *Sampler) Sample(expression, xMin, xMax string) (*series.SampleSet, error) {
	lo, errMin := ParseBound(FieldXMin, xMin, s.xMin)
	hi, errMax := ParseBound(FieldXMax, xMax, s.xMax)
	if errMin != nil {
		return nil, errMin
	}
	if errMax != nil {
		return nil, errMax
	}

	prog, err := expr.Compile(RewriteCaret(expression), s.env)
	if err != nil {
		return nil, &errs.EvalError{Expression: expression, Cause: err}
	}

	xs := Linspace(lo, hi, s.count)
	ys, err := prog.Eval(xs)
	if err != nil {
		return nil, &errs.EvalError{Expression: expression, Cause: err}
	}

	if s.policy == format.NonFiniteReject {
		for i, y := range ys {
			if math.IsInf(y, 0) || math.IsNaN(y) {
				return nil, &errs.EvalError{
					Expression: expression,
					Cause:      fmt.Errorf("non-finite result %v at x=%g", y, xs[i]),
				}
			}
		}
	}

	set, err := series.FromColumns(Label(expression), xs, ys, s.previewSize)
	if err != nil {
		return nil, fmt.Errorf("build sample set: %w", err)
	}

	return set, nil
}

// Compile checks expression against the sampler's environment without
// evaluating it.
func (s *Sampler) Compile(expression string) (*expr.Program, error) {
	prog, err := expr.Compile(RewriteCaret(expression), s.env)
	if err != nil {
		return nil, &errs.EvalError{Expression: expression, Cause: err}
	}

	return prog, nil
}

// SampleCount returns the number of points generated per call.
func (s *Sampler) SampleCount() int {
	return s.count
}

// DefaultRange returns the bounds used for blank range fields.
func (s *Sampler) DefaultRange() (float64, float64) {
	return s.xMin, s.xMax
}

// PreviewSize returns the number of points kept in the preview.
func (s *Sampler) PreviewSize() int {
	return s.previewSize
}

// NonFinitePolicy returns how ±Inf and NaN results are handled.
func (s *Sampler) NonFinitePolicy() format.NonFinitePolicy {
	return s.policy
}

// Label returns the display label for expression.
func Label(expression string) string {
	return series.FormulaLabelPrefix + expression
}

// RewriteCaret replaces every ^ with the ** power operator.
func RewriteCaret(expression string) string {
	return strings.ReplaceAll(expression, "^", "**")
}

// ParseBound parses a range field. Blank text (after trimming) selects def.
// Anything else must parse as a finite decimal float64; hex floats are rejected.
func ParseBound(field, text string, def float64) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return def, nil
	}

	v, err := numparse.ParseFloat(trimmed)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &errs.RangeError{Field: field, Input: text}
	}

	return v, nil
}

// Linspace returns n evenly spaced values over [start, stop]. The first
// value is exactly start and the last exactly stop. n must be at least 2.
func Linspace(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 0 {
		return xs
	}
	if n == 1 {
		xs[0] = start
		return xs
	}

	step := (stop - start) / float64(n-1)
	if math.IsInf(step, 0) {
		// The span overflows float64; interpolate from both ends instead.
		for i := range xs {
			t := float64(i) / float64(n-1)
			xs[i] = start*(1-t) + stop*t
		}
	} else {
		for i := range xs {
			xs[i] = start + float64(i)*step
		}
	}
	xs[n-1] = stop

	return xs
}
