package errs

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeError(t *testing.T) {
	err := fmt.Errorf("sample: %w", &RangeError{Field: "x_min", Input: "abc"})

	require.ErrorIs(t, err, ErrInvalidRange)
	require.NotErrorIs(t, err, ErrEvaluation)

	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "x_min", rerr.Field)
	require.Equal(t, "abc", rerr.Input)
	require.Contains(t, err.Error(), `"abc"`)
}

func TestEvalError(t *testing.T) {
	cause := errors.New("name 'foo' is not defined")
	err := &EvalError{Expression: "foo(x)", Cause: cause}

	require.ErrorIs(t, err, ErrEvaluation)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "evaluation failed: name 'foo' is not defined", err.Error())

	bare := &EvalError{Expression: "x"}
	require.ErrorIs(t, bare, ErrEvaluation)
	require.Equal(t, ErrEvaluation.Error(), bare.Error())
}

func TestLineError(t *testing.T) {
	t.Run("token count", func(t *testing.T) {
		err := &LineError{Line: 1, Text: "1 2 3"}

		require.ErrorIs(t, err, ErrMalformedLine)
		require.Equal(t, `malformed line at line 1: "1 2 3"`, err.Error())
	})

	t.Run("number parse cause", func(t *testing.T) {
		_, cause := strconv.ParseFloat("abc", 64)
		err := &LineError{Line: 3, Text: "abc def", Kind: ErrMalformedLine, Cause: cause}

		require.ErrorIs(t, err, ErrMalformedLine)
		require.ErrorIs(t, err, strconv.ErrSyntax)
		require.Contains(t, err.Error(), "line 3")
	})

	t.Run("too many lines", func(t *testing.T) {
		err := &LineError{Line: 11, Text: "1 1", Kind: ErrTooManyLines}

		require.ErrorIs(t, err, ErrTooManyLines)
		require.NotErrorIs(t, err, ErrMalformedLine)
	})
}
