package parser

import (
	"errors"
	"strings"

	"github.com/plotforge/numexpr/internal/lexer"
)

// FunctionDefinition is the parsed form of "name(p1, p2, ...) = body".
// The body is kept as source text; it is parsed when the function is
// called, not when it is defined.
type FunctionDefinition struct {
	Name       string
	Parameters []string
	Body       string
}

// ParseFunctionDefinition parses a function definition of the form
// "f(x, y) = x + y". The header is validated here; the body text is
// extracted verbatim and stored unparsed.
func ParseFunctionDefinition(input string) (*FunctionDefinition, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, &ParseError{Message: lexErr.Message, Position: lexErr.Pos}
		}
		return nil, err
	}

	p := &parser{tokens: tokens}

	if p.current().Type != lexer.TokenIdent {
		return nil, errorf(p.current().Pos, "expected function name but found %s", p.current().Type)
	}
	name := p.current().Text
	p.advance()

	if err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}

	var params []string
	seen := map[string]bool{}
	for p.current().Type != lexer.TokenRParen {
		if p.current().Type != lexer.TokenIdent {
			return nil, errorf(p.current().Pos, "expected parameter name but found %s", p.current().Type)
		}
		param := p.current().Text
		if seen[param] {
			return nil, errorf(p.current().Pos, "duplicate parameter name %q", param)
		}
		seen[param] = true
		params = append(params, param)
		p.advance()

		if p.current().Type == lexer.TokenComma {
			p.advance()
			continue
		}
		if p.current().Type != lexer.TokenRParen {
			return nil, errorf(p.current().Pos, "expected ',' or ')' but found %s", p.current().Type)
		}
	}
	p.advance() // )

	if p.current().Type != lexer.TokenAssign {
		return nil, errorf(p.current().Pos, "expected '=' but found %s", p.current().Type)
	}
	assign := p.current()
	p.advance()

	body := strings.TrimSpace(input[assign.Pos.End:])
	if body == "" {
		return nil, errorf(assign.Pos, "function %s has an empty body", name)
	}

	return &FunctionDefinition{Name: name, Parameters: params, Body: body}, nil
}

// IsFunctionDefinition reports whether input looks like a function
// definition header rather than a plain expression. Callers use this to
// route script lines to ParseFunctionDefinition.
func IsFunctionDefinition(input string) bool {
	tokens, err := lexer.Tokenize(input)
	if err != nil || len(tokens) < 4 {
		return false
	}
	if tokens[0].Type != lexer.TokenIdent || tokens[1].Type != lexer.TokenLParen {
		return false
	}

	depth := 0
	for i, tok := range tokens {
		switch tok.Type {
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			depth--
			if depth == 0 {
				return i+1 < len(tokens) && tokens[i+1].Type == lexer.TokenAssign
			}
		case lexer.TokenEOF:
			return false
		}
	}
	return false
}
