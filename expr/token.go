package expr

import (
	"errors"
	"fmt"
	"strconv"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenName
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenDoubleSlash
	TokenPercent
	TokenPower
	TokenLParen
	TokenRParen
	TokenComma
)

var tokenNames = [...]string{
	TokenEOF:         "end of input",
	TokenNumber:      "number",
	TokenName:        "name",
	TokenPlus:        "'+'",
	TokenMinus:       "'-'",
	TokenStar:        "'*'",
	TokenSlash:       "'/'",
	TokenDoubleSlash: "'//'",
	TokenPercent:     "'%'",
	TokenPower:       "'**'",
	TokenLParen:      "'('",
	TokenRParen:      "')'",
	TokenComma:       "','",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}

	return fmt.Sprintf("TokenKind(%d)", k)
}

// Token is a lexical token with its byte offset in the source.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64
	Pos  int
}

// Tokenize splits src into tokens, ending with a TokenEOF token.
//
// Names may be dotted ("np.sin"); the dot is part of the name token.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: src}
	tokens := make([]Token, 0, len(src)/2+1)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return l.src[l.pos+offset]
}

func (l *lexer) skipSpaces() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) next() (Token, error) {
	l.skipSpaces()
	start := l.pos
	if start >= len(l.src) {
		return Token{Kind: TokenEOF, Pos: start}, nil
	}

	c := l.src[start]
	switch {
	case isDigit(c) || (c == '.' && isDigit(l.peekAt(1))):
		return l.number()
	case isNameStart(c):
		return l.name(), nil
	}

	single := func(kind TokenKind, width int) (Token, error) {
		l.pos += width
		return Token{Kind: kind, Text: l.src[start:l.pos], Pos: start}, nil
	}

	switch c {
	case '+':
		return single(TokenPlus, 1)
	case '-':
		return single(TokenMinus, 1)
	case '*':
		if l.peekAt(1) == '*' {
			return single(TokenPower, 2)
		}
		return single(TokenStar, 1)
	case '/':
		if l.peekAt(1) == '/' {
			return single(TokenDoubleSlash, 2)
		}
		return single(TokenSlash, 1)
	case '%':
		return single(TokenPercent, 1)
	case '(':
		return single(TokenLParen, 1)
	case ')':
		return single(TokenRParen, 1)
	case ',':
		return single(TokenComma, 1)
	}

	return Token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid character %q", rune(c))}
}

func (l *lexer) number() (Token, error) {
	start := l.pos
	for isDigit(l.peekAt(0)) {
		l.pos++
	}
	if l.peekAt(0) == '.' {
		l.pos++
		for isDigit(l.peekAt(0)) {
			l.pos++
		}
	}
	if c := l.peekAt(0); c == 'e' || c == 'E' {
		l.pos++
		if c := l.peekAt(0); c == '+' || c == '-' {
			l.pos++
		}
		if !isDigit(l.peekAt(0)) {
			return Token{}, &SyntaxError{Pos: start, Msg: "invalid decimal literal"}
		}
		for isDigit(l.peekAt(0)) {
			l.pos++
		}
	}
	if isNameStart(l.peekAt(0)) {
		return Token{}, &SyntaxError{Pos: start, Msg: "invalid decimal literal"}
	}

	text := l.src[start:l.pos]
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out-of-range literals parse to ±Inf, as float literals do.
		if !errors.Is(err, strconv.ErrRange) {
			return Token{}, &SyntaxError{Pos: start, Msg: "invalid decimal literal"}
		}
	}

	return Token{Kind: TokenNumber, Text: text, Num: num, Pos: start}, nil
}

func (l *lexer) name() Token {
	start := l.pos
	for {
		for isNameChar(l.peekAt(0)) {
			l.pos++
		}
		if l.peekAt(0) == '.' && isNameStart(l.peekAt(1)) {
			l.pos++
			continue
		}
		break
	}

	return Token{Kind: TokenName, Text: l.src[start:l.pos], Pos: start}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}
