// Package parser turns expression text into an immutable ast tree. It is a
// hand-written recursive descent over the token stream, one function per
// precedence level, lowest first:
//
//	comma, assignment, ternary, logical-or, logical-and, bitwise-or,
//	bitwise-xor, bitwise-and, equality, relational, additive,
//	multiplicative, power, unary, postfix (call), primary
//
// The power operator is right-associative (2 ** 3 ** 2 == 2 ** (3 ** 2)),
// as conventional notation expects. A malformed or unexpected token at any
// level fails the whole parse; no partial trees are returned.
package parser

import (
	"errors"
	"strconv"

	"github.com/plotforge/numexpr/internal/ast"
	"github.com/plotforge/numexpr/internal/lexer"
)

// Result is the outcome of parsing expression text: either a tree or an
// error, never both.
type Result struct {
	Tree ast.Node
	Err  error
}

// Success reports whether a tree was produced.
func (r Result) Success() bool {
	return r.Err == nil
}

// Parse parses expression text into a Result.
func Parse(input string) Result {
	tree, err := ParseExpression(input)
	return Result{Tree: tree, Err: err}
}

// ParseExpression parses expression text into a tree, or returns a
// *ParseError carrying the offending position.
func ParseExpression(input string) (ast.Node, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}

	tree, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current().Type != lexer.TokenEOF {
		return nil, errorf(p.current().Pos, "unexpected token %s", p.current().Type)
	}
	return tree, nil
}

// MustParse parses expression text and panics on failure. It is intended
// for expressions known to be valid, such as compiled-in defaults.
func MustParse(input string) ast.Node {
	tree, err := ParseExpression(input)
	if err != nil {
		panic(err)
	}
	return tree
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func newParser(input string) (*parser, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, &ParseError{Message: lexErr.Message, Position: lexErr.Pos}
		}
		return nil, err
	}
	return &parser{tokens: tokens}, nil
}

func (p *parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF, Pos: ast.Unknown}
	}
	return p.tokens[p.pos]
}

func (p *parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF, Pos: ast.Unknown}
	}
	return p.tokens[p.pos+1]
}

func (p *parser) advance() {
	p.pos++
}

// span extends a start position to cover everything consumed since.
func (p *parser) span(start ast.Position) ast.Position {
	if p.pos == 0 {
		return start
	}
	start.End = p.tokens[p.pos-1].Pos.End
	return start
}

func (p *parser) expect(t lexer.TokenType) error {
	if p.current().Type != t {
		return errorf(p.current().Pos, "expected %s but found %s", t, p.current().Type)
	}
	p.advance()
	return nil
}

// parseExpression handles the comma operator, the lowest precedence level.
// Comma chains fold left: "a, b, c" is "(a, b), c".
func (p *parser) parseExpression() (ast.Node, error) {
	start := p.current().Pos
	left, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	for p.current().Type == lexer.TokenComma {
		p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		left = &ast.CommaExpression{Left: left, Right: right, Position: p.span(start)}
	}

	return left, nil
}

// parseAssignment handles "IDENT = expr". Assignment is right-recursive
// ("a = b = 1" assigns both) and the target must be a bare identifier;
// any other left-hand side falls through and surfaces as a syntax error
// at the stray '='.
func (p *parser) parseAssignment() (ast.Node, error) {
	if p.current().Type == lexer.TokenIdent && p.peek().Type == lexer.TokenAssign {
		start := p.current().Pos
		target := p.current().Text
		p.advance() // identifier
		p.advance() // =

		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: target, Value: value, Position: p.span(start)}, nil
	}

	return p.parseTernary()
}

// parseTernary handles "cond ? a : b", right-associative in both branches.
func (p *parser) parseTernary() (ast.Node, error) {
	start := p.current().Pos
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.current().Type != lexer.TokenQuestion {
		return cond, nil
	}
	p.advance()

	trueExpr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	falseExpr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	return &ast.TernaryConditional{
		Condition: cond,
		TrueExpr:  trueExpr,
		FalseExpr: falseExpr,
		Position:  p.span(start),
	}, nil
}

// binaryLevel folds a left-associative run of operators at one precedence
// level over the next-higher level.
func (p *parser) binaryLevel(ops map[lexer.TokenType]ast.BinaryOp, next func() (ast.Node, error)) (ast.Node, error) {
	start := p.current().Pos
	left, err := next()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := ops[p.current().Type]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOperation{Op: op, Left: left, Right: right, Position: p.span(start)}
	}
}

func (p *parser) parseOr() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{lexer.TokenOrOr: ast.OpOr}, p.parseAnd)
}

func (p *parser) parseAnd() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{lexer.TokenAndAnd: ast.OpAnd}, p.parseBitOr)
}

func (p *parser) parseBitOr() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{lexer.TokenPipe: ast.OpBitOr}, p.parseBitXor)
}

func (p *parser) parseBitXor() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{lexer.TokenCaret: ast.OpBitXor}, p.parseBitAnd)
}

func (p *parser) parseBitAnd() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{lexer.TokenAmp: ast.OpBitAnd}, p.parseEquality)
}

func (p *parser) parseEquality() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{
		lexer.TokenEq: ast.OpEq,
		lexer.TokenNe: ast.OpNe,
	}, p.parseRelational)
}

func (p *parser) parseRelational() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{
		lexer.TokenLt: ast.OpLt,
		lexer.TokenLe: ast.OpLe,
		lexer.TokenGt: ast.OpGt,
		lexer.TokenGe: ast.OpGe,
	}, p.parseAdditive)
}

func (p *parser) parseAdditive() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{
		lexer.TokenPlus:  ast.OpAdd,
		lexer.TokenMinus: ast.OpSub,
	}, p.parseMultiplicative)
}

func (p *parser) parseMultiplicative() (ast.Node, error) {
	return p.binaryLevel(map[lexer.TokenType]ast.BinaryOp{
		lexer.TokenStar:    ast.OpMul,
		lexer.TokenSlash:   ast.OpDiv,
		lexer.TokenPercent: ast.OpMod,
	}, p.parsePower)
}

// parsePower handles "a ** b", right-associative: the exponent recurses at
// this same level so "2 ** 3 ** 2" groups as "2 ** (3 ** 2)".
func (p *parser) parsePower() (ast.Node, error) {
	start := p.current().Pos
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if p.current().Type != lexer.TokenPower {
		return base, nil
	}
	p.advance()

	exponent, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOperation{Op: ast.OpPow, Left: base, Right: exponent, Position: p.span(start)}, nil
}

var unaryOps = map[lexer.TokenType]ast.UnaryOp{
	lexer.TokenMinus: ast.OpNegate,
	lexer.TokenPlus:  ast.OpPlus,
	lexer.TokenBang:  ast.OpNot,
	lexer.TokenTilde: ast.OpBitNot,
}

func (p *parser) parseUnary() (ast.Node, error) {
	op, ok := unaryOps[p.current().Type]
	if !ok {
		return p.parsePostfix()
	}

	start := p.current().Pos
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOperation{Op: op, Operand: operand, Position: p.span(start)}, nil
}

// parsePostfix handles function calls: an identifier directly followed by
// an argument list.
func (p *parser) parsePostfix() (ast.Node, error) {
	if p.current().Type == lexer.TokenIdent && p.peek().Type == lexer.TokenLParen {
		start := p.current().Pos
		name := p.current().Text
		p.advance() // identifier
		p.advance() // (

		var args []ast.Node
		if p.current().Type != lexer.TokenRParen {
			for {
				arg, err := p.parseAssignment()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)

				if p.current().Type != lexer.TokenComma {
					break
				}
				p.advance()
			}
		}
		if err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}

		return &ast.FunctionCall{Name: name, Args: args, Position: p.span(start)}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Node, error) {
	tok := p.current()

	switch tok.Type {
	case lexer.TokenNumber:
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, errorf(tok.Pos, "invalid number literal %q", tok.Text)
		}
		p.advance()
		return &ast.NumberLiteral{Value: value, Position: tok.Pos}, nil

	case lexer.TokenIdent:
		p.advance()
		return &ast.Variable{Name: tok.Text, Position: tok.Pos}, nil

	case lexer.TokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, errorf(tok.Pos, "unexpected token %s", tok.Type)
	}
}
