// Package table implements the Table Parser: it turns freeform text with one
// "x y" pair per line into a sample set sorted by x.
//
// Blank lines and lines starting with the example marker are ignored, so the
// placeholder content a UI seeds its text box with parses cleanly:
//
//	set, err := table.Parse(table.PlaceholderText)
//	// set.Points() == [{-2 4} {-1 1} {0 0} {1 1} {2 4}]
package table

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/fplot/errs"
	"github.com/arloliu/fplot/internal/numparse"
	"github.com/arloliu/fplot/internal/options"
	"github.com/arloliu/fplot/series"
)

const (
	// DefaultExampleMarker starts the line that introduces the placeholder rows.
	DefaultExampleMarker = "Example"

	// PlaceholderText is the sample content shown before the user types anything.
	PlaceholderText = DefaultExampleMarker + ":\n-2 4\n-1 1\n0 0\n1 1\n2 4"
)

var errNonFinite = errors.New("value is not finite")

// Parser converts table text into sample sets. It holds only configuration
// and is safe for concurrent use.
type Parser struct {
	marker      string
	previewSize int
	maxLines    int
}

// Option configures a Parser.
type Option = options.Option[*Parser]

// WithExampleMarker sets the prefix of lines to skip. An empty marker
// disables skipping.
func WithExampleMarker(marker string) Option {
	return options.NoError(func(p *Parser) {
		p.marker = marker
	})
}

// WithPreviewSize enables a textual preview of the first n points. The
// default is no preview.
func WithPreviewSize(n int) Option {
	return options.New(func(p *Parser) error {
		if n < 0 {
			return options.Invalid("preview size must be non-negative, got %d", n)
		}
		p.previewSize = n

		return nil
	})
}

// WithMaxLines limits the number of input lines. Zero means unlimited.
func WithMaxLines(n int) Option {
	return options.New(func(p *Parser) error {
		if n < 0 {
			return options.Invalid("max lines must be non-negative, got %d", n)
		}
		p.maxLines = n

		return nil
	})
}

// NewParser creates a Parser.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{marker: DefaultExampleMarker}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

var defaultParser = &Parser{marker: DefaultExampleMarker}

// Parse parses text with the default Parser.
func Parse(text string) (*series.SampleSet, error) {
	return defaultParser.Parse(text)
}

// Parse reads one "x y" pair per line and returns the pairs sorted by x.
// Equal x values keep their input order.
//
// Returns:
//   - *errs.LineError (errs.ErrMalformedLine) for the first line that is not
//     exactly two finite numbers separated by whitespace
//   - *errs.LineError (errs.ErrTooManyLines) when the line limit is exceeded
//   - errs.ErrEmptyInput when no data rows remain
func (p *Parser) Parse(text string) (*series.SampleSet, error) {
	// A trailing newline ends the last line rather than starting a new one.
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if p.maxLines > 0 && len(lines) > p.maxLines {
		return nil, &errs.LineError{
			Line: p.maxLines + 1,
			Text: strings.TrimSuffix(lines[p.maxLines], "\r"),
			Kind: errs.ErrTooManyLines,
		}
	}

	points := make([]series.Point, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")
		if p.skip(line) {
			continue
		}

		point, err := parseLine(i+1, line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	if len(points) == 0 {
		return nil, errs.ErrEmptyInput
	}

	slices.SortStableFunc(points, func(a, b series.Point) int {
		return cmp.Compare(a.X, b.X)
	})

	return series.New(series.TableLabel, points, p.previewSize)
}

func (p *Parser) skip(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}

	return p.marker != "" && strings.HasPrefix(trimmed, p.marker)
}

func parseLine(num int, line string) (series.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return series.Point{}, &errs.LineError{Line: num, Text: line, Kind: errs.ErrMalformedLine}
	}

	x, err := parseValue(fields[0])
	if err != nil {
		return series.Point{}, &errs.LineError{Line: num, Text: line, Kind: errs.ErrMalformedLine, Cause: err}
	}
	y, err := parseValue(fields[1])
	if err != nil {
		return series.Point{}, &errs.LineError{Line: num, Text: line, Kind: errs.ErrMalformedLine, Cause: err}
	}

	return series.Point{X: x, Y: y}, nil
}

func parseValue(field string) (float64, error) {
	v, err := numparse.ParseFloat(field)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: field, Err: errNonFinite}
	}

	return v, nil
}
