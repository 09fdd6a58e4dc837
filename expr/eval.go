package expr

import (
	"math"

	"github.com/arloliu/fplot/internal/pool"
)

// value is the result of evaluating a node: either a vector with one entry
// per sample, or a scalar that broadcasts over all samples.
//
// Scalars built only from literals and named constants are strict: their
// arithmetic raises on division by zero and overflow, as plain float
// arithmetic does. Everything that touches the sample vector or passes
// through a function follows IEEE-754 and yields ±Inf or NaN instead.
type value struct {
	vec     []float64
	scalar  float64
	strict  bool
	release func()
}

func scalarValue(v float64, strict bool) value {
	return value{scalar: v, strict: strict}
}

func (v value) isScalar() bool {
	return v.vec == nil
}

func (v value) at(i int) float64 {
	if v.vec == nil {
		return v.scalar
	}

	return v.vec[i]
}

func (v value) free() {
	if v.release != nil {
		v.release()
	}
}

// output returns a vector of length n to write results into, reusing the
// first owned operand buffer when one is available. It frees every other
// owned operand once the caller is done reading them through the returned
// done function.
func output(n int, operands ...value) (value, func()) {
	reused := -1
	var out value
	for i, op := range operands {
		if op.release != nil && op.vec != nil {
			reused = i
			out = value{vec: op.vec, release: op.release}

			break
		}
	}
	if reused < 0 {
		vec, release := pool.GetFloat64Slice(n)
		out = value{vec: vec, release: release}
	}

	done := func() {
		for i, op := range operands {
			if i != reused {
				op.free()
			}
		}
	}

	return out, done
}

func (n *NumberNode) eval([]float64) (value, error) {
	return scalarValue(n.Value, true), nil
}

func (n *ConstNode) eval([]float64) (value, error) {
	return scalarValue(n.Value, true), nil
}

func (n *VarNode) eval(xs []float64) (value, error) {
	if xs == nil {
		xs = []float64{}
	}

	return value{vec: xs}, nil
}

func (n *UnaryNode) eval(xs []float64) (value, error) {
	operand, err := n.Operand.eval(xs)
	if err != nil {
		return value{}, err
	}

	sign := 1.0
	if n.Op == OpNeg {
		sign = -1.0
	}
	if operand.isScalar() {
		return scalarValue(sign*operand.scalar, operand.strict), nil
	}

	out, done := output(len(xs), operand)
	for i := range out.vec {
		out.vec[i] = sign * operand.vec[i]
	}
	done()

	return out, nil
}

func (n *BinaryNode) eval(xs []float64) (value, error) {
	left, err := n.Left.eval(xs)
	if err != nil {
		return value{}, err
	}
	right, err := n.Right.eval(xs)
	if err != nil {
		left.free()
		return value{}, err
	}

	if left.isScalar() && right.isScalar() {
		if left.strict && right.strict {
			v, err := strictArith(n.Op, left.scalar, right.scalar)
			if err != nil {
				return value{}, err
			}

			return scalarValue(v, true), nil
		}

		return scalarValue(ieeeArith(n.Op, left.scalar, right.scalar), false), nil
	}

	out, done := output(len(xs), left, right)
	for i := range out.vec {
		out.vec[i] = ieeeArith(n.Op, left.at(i), right.at(i))
	}
	done()

	return out, nil
}

func (n *CallNode) eval(xs []float64) (value, error) {
	arg, err := n.Arg.eval(xs)
	if err != nil {
		return value{}, err
	}
	if arg.isScalar() {
		return scalarValue(n.Fn(arg.scalar), false), nil
	}

	out, done := output(len(xs), arg)
	for i := range out.vec {
		out.vec[i] = n.Fn(arg.vec[i])
	}
	done()

	return out, nil
}

// ieeeArith applies op elementwise with IEEE-754 semantics. % and // are
// floored: the remainder takes the sign of the divisor.
func ieeeArith(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpFloorDiv:
		return math.Floor(a / b)
	case OpMod:
		return flooredMod(a, b)
	case OpPow:
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}

func flooredMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}

// strictArith applies op to two constant scalars, raising where plain float
// arithmetic raises instead of producing ±Inf or NaN.
func strictArith(op Op, a, b float64) (float64, error) {
	switch op {
	case OpDiv:
		if b == 0 {
			return 0, &ArithmeticError{Msg: "float division by zero"}
		}
	case OpFloorDiv:
		if b == 0 {
			return 0, &ArithmeticError{Msg: "float floor division by zero"}
		}
	case OpMod:
		if b == 0 {
			return 0, &ArithmeticError{Msg: "float modulo by zero"}
		}
	case OpPow:
		if a == 0 && b < 0 {
			return 0, &ArithmeticError{Msg: "0.0 cannot be raised to a negative power"}
		}
		if a < 0 && !math.IsInf(b, 0) && b != math.Trunc(b) {
			return 0, &ArithmeticError{Msg: "negative number cannot be raised to a fractional power"}
		}
		v := math.Pow(a, b)
		if math.IsInf(v, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
			return 0, &ArithmeticError{Msg: "numerical result out of range"}
		}

		return v, nil
	}

	return ieeeArith(op, a, b), nil
}
