package expr

import (
	"math"
	"slices"
	"strings"

	"github.com/arloliu/fplot/internal/options"
)

// DefaultVariable is the name of the bound variable in DefaultEnv.
const DefaultVariable = "x"

// Env is the allow-list an expression is compiled against: one bound
// variable, a set of unary functions and a set of named constants. Names
// outside the Env cannot be referenced, so a compiled Program has no route to
// I/O or process state. An Env is immutable and safe for concurrent use.
type Env struct {
	variable string
	funcs    map[string]func(float64) float64
	consts   map[string]float64
}

// EnvOption configures an Env.
type EnvOption = options.Option[*Env]

// WithFunc adds a unary function to the allow-list.
func WithFunc(name string, fn func(float64) float64) EnvOption {
	return options.New(func(e *Env) error {
		if fn == nil {
			return options.Invalid("function %q is nil", name)
		}
		if err := e.checkName(name); err != nil {
			return err
		}
		e.funcs[name] = fn

		return nil
	})
}

// WithConst adds a named constant to the allow-list.
func WithConst(name string, v float64) EnvOption {
	return options.New(func(e *Env) error {
		if err := e.checkName(name); err != nil {
			return err
		}
		e.consts[name] = v

		return nil
	})
}

// NewEnv creates an Env binding variable and the names added by opts.
func NewEnv(variable string, opts ...EnvOption) (*Env, error) {
	if !validName(variable) || strings.Contains(variable, ".") {
		return nil, options.Invalid("invalid variable name %q", variable)
	}

	e := &Env{
		variable: variable,
		funcs:    make(map[string]func(float64) float64),
		consts:   make(map[string]float64),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

var defaultEnv = mustDefaultEnv()

// DefaultEnv returns the environment used by the formula sampler: the
// variable x, the functions sin, cos and sqrt, their np.-qualified aliases,
// and the constants np.pi and np.e.
func DefaultEnv() *Env {
	return defaultEnv
}

func mustDefaultEnv() *Env {
	env, err := NewEnv(DefaultVariable,
		WithFunc("sin", math.Sin),
		WithFunc("cos", math.Cos),
		WithFunc("sqrt", math.Sqrt),
		WithFunc("np.sin", math.Sin),
		WithFunc("np.cos", math.Cos),
		WithFunc("np.sqrt", math.Sqrt),
		WithConst("np.pi", math.Pi),
		WithConst("np.e", math.E),
	)
	if err != nil {
		panic(err)
	}

	return env
}

// Variable returns the bound variable name.
func (e *Env) Variable() string {
	return e.variable
}

// Funcs returns the sorted function names.
func (e *Env) Funcs() []string {
	names := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Consts returns the sorted constant names.
func (e *Env) Consts() []string {
	names := make([]string, 0, len(e.consts))
	for name := range e.consts {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (e *Env) lookupFunc(name string) (func(float64) float64, bool) {
	fn, ok := e.funcs[name]
	return fn, ok
}

func (e *Env) lookupConst(name string) (float64, bool) {
	v, ok := e.consts[name]
	return v, ok
}

func (e *Env) checkName(name string) error {
	if !validName(name) {
		return options.Invalid("invalid name %q", name)
	}
	if name == e.variable {
		return options.Invalid("name %q is the bound variable", name)
	}
	if _, ok := e.funcs[name]; ok {
		return options.Invalid("name %q is already defined", name)
	}
	if _, ok := e.consts[name]; ok {
		return options.Invalid("name %q is already defined", name)
	}

	return nil
}

// validName reports whether name lexes as a single, possibly dotted, name token.
func validName(name string) bool {
	if name == "" {
		return false
	}
	l := lexer{src: name}
	if !isNameStart(name[0]) {
		return false
	}
	tok := l.name()

	return tok.Kind == TokenName && tok.Text == name
}
