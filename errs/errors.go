// Package errs defines the error values shared by the fplot packages.
//
// Every failure a pipeline can report is reachable through errors.Is with one
// of the sentinel values below. Failures that carry extra context (the
// offending range field, the expression cause, the malformed table line) are
// returned as typed errors that unwrap to their sentinel, so callers can use
// errors.As to recover the details:
//
//	set, err := formula.Sample("x**2", "abc", "")
//	if errors.Is(err, errs.ErrInvalidRange) {
//	    var rerr *errs.RangeError
//	    if errors.As(err, &rerr) {
//	        fmt.Println("bad field:", rerr.Field)
//	    }
//	}
package errs

import (
	"errors"
	"fmt"
)

// Pipeline error kinds.
var (
	// ErrInvalidRange reports a range bound that is not blank and not a finite real number.
	ErrInvalidRange = errors.New("invalid range")
	// ErrEvaluation reports an expression that failed to compile or evaluate.
	ErrEvaluation = errors.New("evaluation failed")
	// ErrMalformedLine reports a table line that is not exactly two numeric tokens.
	ErrMalformedLine = errors.New("malformed line")
	// ErrEmptyInput reports table text without any data rows.
	ErrEmptyInput = errors.New("no data rows")
	// ErrTooManyLines reports table text exceeding the configured line limit.
	ErrTooManyLines = errors.New("too many lines")
)

// Sample set construction errors.
var (
	ErrEmptySampleSet   = errors.New("sample set has no points")
	ErrUnorderedSamples = errors.New("sample x values are not monotonic")
	ErrCorruptColumn    = errors.New("corrupt or truncated column data")
)

// Frame and configuration errors.
var (
	ErrInvalidFrame       = errors.New("invalid frame")
	ErrInvalidMagicNumber = errors.New("invalid frame magic number")
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	ErrChecksumMismatch   = errors.New("frame checksum mismatch")
	ErrInvalidOption      = errors.New("invalid option")
)

// RangeError describes a range bound that could not be used.
type RangeError struct {
	// Field is the name of the bound, "x_min" or "x_max".
	Field string
	// Input is the raw text the user supplied.
	Input string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s must be blank or a finite number, got %q", ErrInvalidRange, e.Field, e.Input)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// EvalError describes an expression that failed to compile or evaluate.
type EvalError struct {
	// Expression is the expression text as the user typed it.
	Expression string
	// Cause is the underlying compile or evaluation failure.
	Cause error
}

func (e *EvalError) Error() string {
	if e.Cause == nil {
		return ErrEvaluation.Error()
	}

	return fmt.Sprintf("%s: %v", ErrEvaluation, e.Cause)
}

// Unwrap exposes both the sentinel and the cause.
func (e *EvalError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrEvaluation}
	}

	return []error{ErrEvaluation, e.Cause}
}

// LineError describes a table line that could not be parsed.
type LineError struct {
	// Line is the 1-based line number within the input text.
	Line int
	// Text is the original line text, untrimmed.
	Text string
	// Kind is the sentinel error, ErrMalformedLine or ErrTooManyLines.
	Kind error
	// Cause is an optional lower-level failure, such as a number parse error.
	Cause error
}

func (e *LineError) Error() string {
	kind := e.Kind
	if kind == nil {
		kind = ErrMalformedLine
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s at line %d: %q: %v", kind, e.Line, e.Text, e.Cause)
	}

	return fmt.Sprintf("%s at line %d: %q", kind, e.Line, e.Text)
}

func (e *LineError) Unwrap() []error {
	kind := e.Kind
	if kind == nil {
		kind = ErrMalformedLine
	}
	if e.Cause == nil {
		return []error{kind}
	}

	return []error{kind, e.Cause}
}
