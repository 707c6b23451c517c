package parser

import (
	"fmt"

	"github.com/plotforge/numexpr/internal/ast"
)

// ParseError represents a parsing error with the offending source position.
type ParseError struct {
	Message  string       `json:"message"`
	Position ast.Position `json:"position"`
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Position, e.Message)
}

func errorf(pos ast.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}
