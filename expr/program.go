// Package expr implements the restricted expression language used to plot
// formulas.
//
// An expression is compiled against an Env, the allow-list of names it may
// reference: one bound variable, unary functions and named constants. Every
// name is resolved at compile time, so a Program can only ever compute
// arithmetic over its input vector.
//
// Supported syntax: decimal literals (12, 1.5, .5, 1e-3), the operators
// + - * / // % ** with the usual precedence, unary signs, parentheses and
// single-argument function calls.
//
//	prog, err := expr.Compile("sin(x) + x**2", expr.DefaultEnv())
//	if err != nil {
//	    return err
//	}
//	ys, err := prog.Eval(xs)
package expr

// Program is a compiled expression. It is immutable and safe for concurrent use.
type Program struct {
	source string
	root   Node
	env    *Env
}

// Compile parses src against env. A nil env selects DefaultEnv.
//
// Returns:
//   - *SyntaxError for malformed text
//   - *NameError for names outside env
//   - *TypeError for misused names or wrong argument counts
func Compile(src string, env *Env) (*Program, error) {
	if env == nil {
		env = DefaultEnv()
	}

	root, err := Parse(src, env)
	if err != nil {
		return nil, err
	}

	return &Program{source: src, root: root, env: env}, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// expressions fixed at build time.
func MustCompile(src string, env *Env) *Program {
	p, err := Compile(src, env)
	if err != nil {
		panic(err)
	}

	return p
}

// Eval evaluates the program at every value in xs and returns a new slice
// of the same length. Constant programs broadcast to every position.
//
// Arithmetic over xs follows IEEE-754, so division by zero yields ±Inf or
// NaN. Only arithmetic between constants can fail, with *ArithmeticError.
func (p *Program) Eval(xs []float64) ([]float64, error) {
	v, err := p.root.eval(xs)
	if err != nil {
		return nil, err
	}
	defer v.free()

	out := make([]float64, len(xs))
	if v.isScalar() {
		for i := range out {
			out[i] = v.scalar
		}
	} else {
		copy(out, v.vec)
	}

	return out, nil
}

// EvalAt evaluates the program at a single point.
func (p *Program) EvalAt(x float64) (float64, error) {
	ys, err := p.Eval([]float64{x})
	if err != nil {
		return 0, err
	}

	return ys[0], nil
}

// Source returns the text the program was compiled from.
func (p *Program) Source() string {
	return p.source
}

// Root returns the expression tree.
func (p *Program) Root() Node {
	return p.root
}

// Env returns the environment the program was compiled against.
func (p *Program) Env() *Env {
	return p.env
}

// IsConstant reports whether the program ignores the bound variable.
func (p *Program) IsConstant() bool {
	return IsConstant(p.root)
}

// String returns the fully parenthesized form of the program.
func (p *Program) String() string {
	return p.root.String()
}
