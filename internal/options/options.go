// Package options implements the functional option pattern shared by the
// sampler, table parser and frame encoder constructors.
package options

import (
	"fmt"

	"github.com/arloliu/fplot/errs"
)

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a plain function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Invalid builds an error wrapping errs.ErrInvalidOption.
//
// Example:
//
//	if n < 2 {
//	    return options.Invalid("sample count must be at least 2, got %d", n)
//	}
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidOption, fmt.Sprintf(format, args...))
}
