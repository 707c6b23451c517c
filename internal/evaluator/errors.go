package evaluator

import (
	"errors"
	"fmt"

	"github.com/plotforge/numexpr/internal/ast"
)

// Sentinel errors identifying the evaluation failure kinds. They are
// wrapped inside *EvalError values, so callers match them with errors.Is.
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrArityMismatch     = errors.New("wrong number of arguments")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrModuloByZero      = errors.New("modulo by zero")
	ErrRecursionLimit    = errors.New("recursion limit exceeded")
)

// EvalError represents an evaluation failure with the offending source
// position and, when present, a wrapped cause.
type EvalError struct {
	Message  string       `json:"message"`
	Position ast.Position `json:"position"`
	Err      error        `json:"-"`
}

// Error implements the error interface
func (e *EvalError) Error() string {
	if e.Position.IsUnknown() {
		return fmt.Sprintf("evaluation error: %s", e.Message)
	}
	return fmt.Sprintf("evaluation error at %s: %s", e.Position, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *EvalError) Unwrap() error {
	return e.Err
}

func evalErrorf(pos ast.Position, cause error, format string, args ...interface{}) *EvalError {
	return &EvalError{
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Err:      cause,
	}
}
