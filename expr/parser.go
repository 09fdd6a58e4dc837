package expr

import "fmt"

// Parse parses src into an expression tree, resolving every name against env.
//
// Precedence, lowest to highest:
//  1. + - (binary)
//  2. * / // %
//  3. unary + -
//  4. ** (right-associative; its right operand may carry a unary sign)
//  5. numbers, names, calls, parenthesized expressions
//
// This matches the usual programming-language reading of math notation:
// -x**2 is -(x**2) and 2**-1 is 0.5.
func Parse(src string, env *Env) (Node, error) {
	if env == nil {
		env = DefaultEnv()
	}

	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	if tokens[0].Kind == TokenEOF {
		return nil, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}

	p := &parser{tokens: tokens, env: env}
	node, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, p.unexpected(tok)
	}

	return node, nil
}

type parser struct {
	tokens []Token
	pos    int
	env    *Env
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}

	return tok
}

func (p *parser) unexpected(tok Token) error {
	if tok.Kind == TokenEOF {
		return &SyntaxError{Pos: tok.Pos, Msg: "unexpected end of expression"}
	}

	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected %s %q", tok.Kind, tok.Text)}
}

func (p *parser) parseSum() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek().Kind {
		case TokenPlus:
			op = OpAdd
		case TokenMinus:
			op = OpSub
		default:
			return left, nil
		}
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek().Kind {
		case TokenStar:
			op = OpMul
		case TokenSlash:
			op = OpDiv
		case TokenDoubleSlash:
			op = OpFloorDiv
		case TokenPercent:
			op = OpMod
		default:
			return left, nil
		}
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	var op Op
	switch p.peek().Kind {
	case TokenMinus:
		op = OpNeg
	case TokenPlus:
		op = OpPos
	default:
		return p.parsePower()
	}
	p.advance()

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &UnaryNode{Op: op, Operand: operand}, nil
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokenPower {
		return base, nil
	}
	p.advance()

	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &BinaryNode{Op: OpPow, Left: base, Right: exp}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.advance()
	switch tok.Kind {
	case TokenNumber:
		return &NumberNode{Value: tok.Num}, nil
	case TokenName:
		return p.parseName(tok)
	case TokenLParen:
		node, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.Kind != TokenRParen {
			if closing.Kind == TokenEOF {
				return nil, &SyntaxError{Pos: tok.Pos, Msg: "'(' was never closed"}
			}
			return nil, p.unexpected(closing)
		}

		return node, nil
	default:
		return nil, p.unexpected(tok)
	}
}

func (p *parser) parseName(tok Token) (Node, error) {
	name := tok.Text
	if p.peek().Kind == TokenLParen {
		return p.parseCall(tok)
	}

	if name == p.env.Variable() {
		return &VarNode{Name: name}, nil
	}
	if v, ok := p.env.lookupConst(name); ok {
		return &ConstNode{Name: name, Value: v}, nil
	}
	if _, ok := p.env.lookupFunc(name); ok {
		return nil, &TypeError{Pos: tok.Pos, Msg: fmt.Sprintf("function '%s' must be called with an argument", name)}
	}

	return nil, &NameError{Name: name, Pos: tok.Pos}
}

func (p *parser) parseCall(tok Token) (Node, error) {
	name := tok.Text
	fn, ok := p.env.lookupFunc(name)
	if !ok {
		if name == p.env.Variable() {
			return nil, &TypeError{Pos: tok.Pos, Msg: fmt.Sprintf("'%s' is not callable", name)}
		}
		if _, isConst := p.env.lookupConst(name); isConst {
			return nil, &TypeError{Pos: tok.Pos, Msg: fmt.Sprintf("'%s' is not callable", name)}
		}

		return nil, &NameError{Name: name, Pos: tok.Pos}
	}
	p.advance() // '('

	var args []Node
	if p.peek().Kind != TokenRParen {
		for {
			arg, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().Kind != TokenComma {
				break
			}
			p.advance()
		}
	}
	if closing := p.advance(); closing.Kind != TokenRParen {
		if closing.Kind == TokenEOF {
			return nil, &SyntaxError{Pos: tok.Pos + len(name), Msg: "'(' was never closed"}
		}
		return nil, p.unexpected(closing)
	}
	if len(args) != 1 {
		return nil, &TypeError{Pos: tok.Pos, Msg: fmt.Sprintf("%s() takes exactly one argument (%d given)", name, len(args))}
	}

	return &CallNode{Name: name, Fn: fn, Arg: args[0]}, nil
}
