// Package numparse parses user-typed decimal numbers for range fields and
// table cells.
package numparse

import (
	"strconv"
	"strings"
)

// ParseFloat parses s as a decimal float64.
//
// It accepts what strconv.ParseFloat accepts except hexadecimal floats
// ("0x1p4"), so only decimal notation reaches the plot. Errors are
// *strconv.NumError, wrapping strconv.ErrSyntax for rejected hex input.
func ParseFloat(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}

	return strconv.ParseFloat(s, 64)
}
