package expr

import "fmt"

// SyntaxError reports malformed expression text.
type SyntaxError struct {
	// Pos is the byte offset of the offending input.
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax at position %d: %s", e.Pos, e.Msg)
}

// NameError reports a name outside the environment's allow-list.
type NameError struct {
	Name string
	Pos  int
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name '%s' is not defined", e.Name)
}

// TypeError reports a name used in a way its kind does not allow, such as
// calling the bound variable or passing the wrong number of arguments.
type TypeError struct {
	Msg string
	Pos int
}

func (e *TypeError) Error() string {
	return e.Msg
}

// ArithmeticError reports a fault raised while evaluating constant
// arithmetic, such as a literal division by zero.
type ArithmeticError struct {
	Msg string
}

func (e *ArithmeticError) Error() string {
	return e.Msg
}
