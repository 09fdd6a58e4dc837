// Package session tracks the sample set currently on display.
//
// The pipelines themselves are stateless. A Session is the piece a UI keeps
// around: it runs one pipeline call at a time and replaces the displayed set
// only when a call succeeds, so a failed call leaves the last plot intact.
package session

import (
	"sync"

	"github.com/arloliu/fplot/formula"
	"github.com/arloliu/fplot/series"
	"github.com/arloliu/fplot/table"
)

// Mode identifies the pipeline that produced the current sample set.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeFormula
	ModeTable
)

func (m Mode) String() string {
	switch m {
	case ModeFormula:
		return "Formula"
	case ModeTable:
		return "Table"
	default:
		return "None"
	}
}

// Session serializes pipeline calls and holds the last successful result.
// It is safe for concurrent use; the last call to complete successfully wins.
type Session struct {
	sampler *formula.Sampler
	parser  *table.Parser

	mu         sync.Mutex
	current    *series.SampleSet
	mode       Mode
	generation uint64
}

// New creates a Session using sampler and parser. Nil arguments select the
// package defaults.
func New(sampler *formula.Sampler, parser *table.Parser) (*Session, error) {
	var err error
	if sampler == nil {
		if sampler, err = formula.NewSampler(); err != nil {
			return nil, err
		}
	}
	if parser == nil {
		if parser, err = table.NewParser(); err != nil {
			return nil, err
		}
	}

	return &Session{sampler: sampler, parser: parser}, nil
}

// PlotFormula samples expression over [xMin, xMax] and, on success, makes the
// result current.
func (s *Session) PlotFormula(expression, xMin, xMax string) (*series.SampleSet, error) {
	return s.run(ModeFormula, func() (*series.SampleSet, error) {
		return s.sampler.Sample(expression, xMin, xMax)
	})
}

// PlotTable parses text and, on success, makes the result current.
func (s *Session) PlotTable(text string) (*series.SampleSet, error) {
	return s.run(ModeTable, func() (*series.SampleSet, error) {
		return s.parser.Parse(text)
	})
}

func (s *Session) run(mode Mode, fn func() (*series.SampleSet, error)) (*series.SampleSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := fn()
	if err != nil {
		return nil, err
	}

	s.current = set
	s.mode = mode
	s.generation++

	return set, nil
}

// Current returns the displayed sample set, or nil before the first success.
func (s *Session) Current() *series.SampleSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Mode returns the pipeline that produced the current sample set.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

// Generation counts successful replacements of the current sample set.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// Reset clears the current sample set.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.mode = ModeNone
}
