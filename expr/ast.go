package expr

import (
	"strconv"
	"strings"
)

// Op is an arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
	OpNeg
	OpPos
)

var opSymbols = [...]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpFloorDiv: "//",
	OpMod:      "%",
	OpPow:      "**",
	OpNeg:      "-",
	OpPos:      "+",
}

func (op Op) String() string {
	if int(op) < len(opSymbols) && opSymbols[op] != "" {
		return opSymbols[op]
	}

	return "?"
}

// Node is an expression tree node.
type Node interface {
	// String returns the fully parenthesized form of the node.
	String() string
	// eval evaluates the node over xs.
	eval(xs []float64) (value, error)
}

// NumberNode is a numeric literal.
type NumberNode struct {
	Value float64
}

// VarNode is a reference to the bound variable.
type VarNode struct {
	Name string
}

// ConstNode is a named constant from the environment, such as np.pi.
type ConstNode struct {
	Name  string
	Value float64
}

// UnaryNode applies OpNeg or OpPos to its operand.
type UnaryNode struct {
	Op      Op
	Operand Node
}

// BinaryNode applies an infix operator.
type BinaryNode struct {
	Op    Op
	Left  Node
	Right Node
}

// CallNode applies an allow-listed function to one argument.
type CallNode struct {
	Name string
	Fn   func(float64) float64
	Arg  Node
}

func (n *NumberNode) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *VarNode) String() string {
	return n.Name
}

func (n *ConstNode) String() string {
	return n.Name
}

func (n *UnaryNode) String() string {
	return "(" + n.Op.String() + n.Operand.String() + ")"
}

func (n *BinaryNode) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(n.Left.String())
	sb.WriteByte(' ')
	sb.WriteString(n.Op.String())
	sb.WriteByte(' ')
	sb.WriteString(n.Right.String())
	sb.WriteByte(')')

	return sb.String()
}

func (n *CallNode) String() string {
	return n.Name + "(" + n.Arg.String() + ")"
}

// IsConstant reports whether n does not depend on the bound variable.
func IsConstant(n Node) bool {
	switch n := n.(type) {
	case *NumberNode, *ConstNode:
		return true
	case *VarNode:
		return false
	case *UnaryNode:
		return IsConstant(n.Operand)
	case *BinaryNode:
		return IsConstant(n.Left) && IsConstant(n.Right)
	case *CallNode:
		return IsConstant(n.Arg)
	default:
		return false
	}
}
