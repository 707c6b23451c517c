// Package numexpr is the public API of the expression engine. It exposes
// parsing and evaluation to the layers built on top of the engine
// (plot samplers, script executors, data filters) without reaching into
// the internal packages.
//
// The engine evaluates a small numeric expression language: IEEE 754
// arithmetic, comparisons and logic encoded as 1.0/0.0, bitwise operators
// over truncated integers, a ternary conditional, assignment and comma
// expressions, and a library of mathematical built-ins. Parsed trees are
// immutable; all mutable state lives in the Context.
//
// Example usage:
//
//	ctx := numexpr.NewContext()
//	ctx.SetVariable("x", 3)
//
//	result, err := numexpr.Eval("x**2 + 1", ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// result = 10.0
//
//	// User-defined functions shadow built-ins and may recurse.
//	_ = numexpr.DefineFunction(ctx, "fact(n) = n <= 1 ? 1 : n * fact(n-1)")
//	result, _ = numexpr.Eval("fact(5)", ctx) // 120.0
package numexpr

import (
	"github.com/plotforge/numexpr/internal/ast"
	"github.com/plotforge/numexpr/internal/evaluator"
	"github.com/plotforge/numexpr/internal/functions"
	"github.com/plotforge/numexpr/internal/parser"
)

// Tree is the immutable parsed representation of one expression.
type Tree = ast.Node

// Position locates a tree node or an error in the source text.
type Position = ast.Position

// Context is the mutable evaluation environment: variables, built-in
// functions and user-defined functions.
type Context = evaluator.Context

// Evaluator walks trees against one Context.
type Evaluator = evaluator.Evaluator

// ParseError is returned for text the grammar rejects.
type ParseError = parser.ParseError

// EvalError is returned when a structurally valid tree fails to evaluate.
type EvalError = evaluator.EvalError

// Arity describes how many arguments a registered built-in accepts.
type Arity = functions.Arity

// Func is the callable signature for registered built-ins.
type Func = functions.Func

// Arity contract constructors for Context.RegisterFunction.
var (
	Exactly = functions.Exactly
	AtLeast = functions.AtLeast
)

// ErrUnsupported marks recognized built-ins that are intentionally not
// implemented (the Bessel Y and modified Bessel I family).
var ErrUnsupported = functions.ErrUnsupported

// Evaluation failure kinds, matched with errors.Is.
var (
	ErrUndefinedVariable = evaluator.ErrUndefinedVariable
	ErrUndefinedFunction = evaluator.ErrUndefinedFunction
	ErrArityMismatch     = evaluator.ErrArityMismatch
	ErrDivisionByZero    = evaluator.ErrDivisionByZero
	ErrModuloByZero      = evaluator.ErrModuloByZero
	ErrRecursionLimit    = evaluator.ErrRecursionLimit
)

// ParseResult reports the outcome of parsing: a tree on success, an error
// otherwise. Failed parses never return partial trees.
type ParseResult = parser.Result

// Parse parses expression text into a ParseResult.
func Parse(text string) ParseResult {
	return parser.Parse(text)
}

// ParseExpression parses expression text into a Tree, or returns a
// *ParseError carrying the offending line and column.
func ParseExpression(text string) (Tree, error) {
	return parser.ParseExpression(text)
}

// MustParse parses expression text and panics on failure.
func MustParse(text string) Tree {
	return parser.MustParse(text)
}

// NewContext creates an evaluation context pre-loaded with the built-in
// function library and the constants pi and e.
func NewContext() *Context {
	return evaluator.NewContext()
}

// NewEvaluator creates an evaluator bound to the given context.
func NewEvaluator(ctx *Context) *Evaluator {
	return evaluator.New(ctx)
}

// Eval parses and evaluates expression text against ctx in one step.
// Assignments inside the expression persist in ctx afterwards.
func Eval(text string, ctx *Context) (float64, error) {
	tree, err := parser.ParseExpression(text)
	if err != nil {
		return 0, err
	}
	return evaluator.New(ctx).Evaluate(tree)
}

// DefineFunction parses a definition of the form "f(x, y) = body" and
// registers it on ctx. The body text is parsed on each call, so it may
// reference functions and globals defined later.
func DefineFunction(ctx *Context, definition string) error {
	return ctx.DefineFunction(definition)
}

// IsFunctionDefinition reports whether a script line is a function
// definition header ("name(params) = ...") rather than a plain
// expression.
func IsFunctionDefinition(text string) bool {
	return parser.IsFunctionDefinition(text)
}
