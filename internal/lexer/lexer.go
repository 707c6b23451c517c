// Package lexer tokenizes expression text. Comments (# to end of line) and
// whitespace are stripped; every surviving token carries its position in
// the input so the parser and evaluator can report exact locations.
package lexer

import (
	"fmt"

	"github.com/plotforge/numexpr/internal/ast"
)

// Error is a lexical error at a known position.
type Error struct {
	Message string
	Pos     ast.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Message)
}

type scanner struct {
	input string
	pos   int
	line  int
	col   int
}

// Tokenize splits input into tokens, ending with a TokenEOF entry. A
// malformed token fails the whole scan; no partial token stream is
// returned.
func Tokenize(input string) ([]Token, error) {
	s := &scanner{input: input, line: 1, col: 1}
	var tokens []Token

	for {
		s.skipBlanks()
		if s.pos >= len(s.input) {
			tokens = append(tokens, Token{Type: TokenEOF, Pos: s.here(s.pos)})
			return tokens, nil
		}

		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// skipBlanks consumes whitespace and # line comments.
func (s *scanner) skipBlanks() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.advance()
		case '#':
			for s.pos < len(s.input) && s.input[s.pos] != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *scanner) advance() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

// here builds the position of a token starting at the current line/column
// and ending at the given byte offset.
func (s *scanner) here(end int) ast.Position {
	return ast.Position{Line: s.line, Column: s.col, Start: s.pos, End: end}
}

func (s *scanner) next() (Token, error) {
	c := s.input[s.pos]

	// Two-character operators first.
	if s.pos+1 < len(s.input) {
		two := s.input[s.pos : s.pos+2]
		if t, ok := twoCharTokens[two]; ok {
			tok := Token{Type: t, Text: two, Pos: s.here(s.pos + 2)}
			s.advance()
			s.advance()
			return tok, nil
		}
	}

	if t, ok := oneCharTokens[c]; ok {
		tok := Token{Type: t, Text: string(c), Pos: s.here(s.pos + 1)}
		s.advance()
		return tok, nil
	}

	switch {
	case isDigit(c), c == '.':
		return s.scanNumber()
	case isIdentStart(c):
		return s.scanIdent()
	default:
		return Token{}, &Error{
			Message: fmt.Sprintf("unexpected character %q", c),
			Pos:     s.here(s.pos + 1),
		}
	}
}

var twoCharTokens = map[string]TokenType{
	"**": TokenPower,
	"==": TokenEq,
	"!=": TokenNe,
	"<=": TokenLe,
	">=": TokenGe,
	"&&": TokenAndAnd,
	"||": TokenOrOr,
}

var oneCharTokens = map[byte]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'%': TokenPercent,
	'!': TokenBang,
	'~': TokenTilde,
	'&': TokenAmp,
	'|': TokenPipe,
	'^': TokenCaret,
	'=': TokenAssign,
	'<': TokenLt,
	'>': TokenGt,
	'?': TokenQuestion,
	':': TokenColon,
	',': TokenComma,
	'(': TokenLParen,
	')': TokenRParen,
}

// scanNumber scans an optional integer part, optional fractional part and
// optional signed exponent. At least one digit must appear in the
// mantissa.
func (s *scanner) scanNumber() (Token, error) {
	start := s.pos
	pos := s.here(start)
	digits := 0

	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		digits++
		s.advance()
	}
	if s.pos < len(s.input) && s.input[s.pos] == '.' {
		s.advance()
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			digits++
			s.advance()
		}
	}
	if digits == 0 {
		return Token{}, &Error{Message: "malformed number: no digits in mantissa", Pos: pos}
	}

	if s.pos < len(s.input) && (s.input[s.pos] == 'e' || s.input[s.pos] == 'E') {
		s.advance()
		if s.pos < len(s.input) && (s.input[s.pos] == '+' || s.input[s.pos] == '-') {
			s.advance()
		}
		expDigits := 0
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			expDigits++
			s.advance()
		}
		if expDigits == 0 {
			return Token{}, &Error{Message: "malformed number: missing exponent digits", Pos: pos}
		}
	}

	pos.End = s.pos
	return Token{Type: TokenNumber, Text: s.input[start:s.pos], Pos: pos}, nil
}

func (s *scanner) scanIdent() (Token, error) {
	start := s.pos
	pos := s.here(start)
	for s.pos < len(s.input) && isIdentPart(s.input[s.pos]) {
		s.advance()
	}
	pos.End = s.pos
	return Token{Type: TokenIdent, Text: s.input[start:s.pos], Pos: pos}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
