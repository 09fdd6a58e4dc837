package formula

import (
	"math"

	"github.com/arloliu/fplot/expr"
	"github.com/arloliu/fplot/format"
	"github.com/arloliu/fplot/internal/options"
)

// WithSampleCount sets the number of points generated per call. n must be at least 2.
func WithSampleCount(n int) Option {
	return options.New(func(s *Sampler) error {
		if n < 2 {
			return options.Invalid("sample count must be at least 2, got %d", n)
		}
		s.count = n

		return nil
	})
}

// WithDefaultRange sets the bounds used when a range field is blank.
func WithDefaultRange(xMin, xMax float64) Option {
	return options.New(func(s *Sampler) error {
		if !finite(xMin) || !finite(xMax) {
			return options.Invalid("default range must be finite, got [%v, %v]", xMin, xMax)
		}
		s.xMin, s.xMax = xMin, xMax

		return nil
	})
}

// WithPreviewSize sets the number of leading points kept in the preview.
// Zero disables the preview.
func WithPreviewSize(n int) Option {
	return options.New(func(s *Sampler) error {
		if n < 0 {
			return options.Invalid("preview size must be non-negative, got %d", n)
		}
		s.previewSize = n

		return nil
	})
}

// WithNonFinitePolicy selects whether ±Inf and NaN results are kept in the
// sample set or fail the call.
func WithNonFinitePolicy(p format.NonFinitePolicy) Option {
	return options.New(func(s *Sampler) error {
		if !p.Valid() {
			return options.Invalid("unknown non-finite policy %d", p)
		}
		s.policy = p

		return nil
	})
}

// WithEnv replaces the expression environment. The default is expr.DefaultEnv.
func WithEnv(env *expr.Env) Option {
	return options.New(func(s *Sampler) error {
		if env == nil {
			return options.Invalid("expression environment is nil")
		}
		s.env = env

		return nil
	})
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
