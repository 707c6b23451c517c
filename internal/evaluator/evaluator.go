// Package evaluator walks a parsed expression tree and reduces it to a
// 64-bit floating point result against a mutable Context. All failures
// are explicit errors carrying the offending node's source position; the
// evaluator never substitutes defaults or retries.
package evaluator

import (
	"math"

	"github.com/plotforge/numexpr/internal/ast"
)

// Evaluator evaluates trees against one Context. It is stateful only for
// the user-function call depth, so an Evaluator must not be shared
// between goroutines; create one per sampling worker instead.
type Evaluator struct {
	ctx   *Context
	depth int
}

// New creates an evaluator bound to the given context.
func New(ctx *Context) *Evaluator {
	return &Evaluator{ctx: ctx}
}

// Context returns the evaluation context.
func (e *Evaluator) Context() *Context {
	return e.ctx
}

// Evaluate reduces a tree to a number. The context's bindings may be
// mutated by assignment expressions inside the tree.
func (e *Evaluator) Evaluate(node ast.Node) (float64, error) {
	if node == nil {
		return 0, evalErrorf(ast.Unknown, nil, "cannot evaluate nil node")
	}

	switch n := node.(type) {
	case *ast.NumberLiteral:
		return n.Value, nil

	case *ast.Variable:
		value, ok := e.ctx.GetVariable(n.Name)
		if !ok {
			return 0, evalErrorf(n.Position, ErrUndefinedVariable, "undefined variable: %s", n.Name)
		}
		return value, nil

	case *ast.BinaryOperation:
		return e.evalBinary(n)

	case *ast.UnaryOperation:
		return e.evalUnary(n)

	case *ast.FunctionCall:
		return e.evalCall(n)

	case *ast.TernaryConditional:
		cond, err := e.Evaluate(n.Condition)
		if err != nil {
			return 0, err
		}
		// 0.0 is false, everything else (negatives, NaN) is true. Only
		// the taken branch is evaluated.
		if cond != 0.0 {
			return e.Evaluate(n.TrueExpr)
		}
		return e.Evaluate(n.FalseExpr)

	case *ast.Assignment:
		value, err := e.Evaluate(n.Value)
		if err != nil {
			return 0, err
		}
		e.ctx.SetVariable(n.Target, value)
		return value, nil

	case *ast.CommaExpression:
		if _, err := e.Evaluate(n.Left); err != nil {
			return 0, err
		}
		return e.Evaluate(n.Right)

	default:
		return 0, evalErrorf(node.Pos(), nil, "unsupported node type %T", node)
	}
}

func (e *Evaluator) evalBinary(n *ast.BinaryOperation) (float64, error) {
	left, err := e.Evaluate(n.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.Evaluate(n.Right)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0.0 {
			return 0, evalErrorf(n.Position, ErrDivisionByZero, "division by zero")
		}
		return left / right, nil
	case ast.OpMod:
		if right == 0.0 {
			return 0, evalErrorf(n.Position, ErrModuloByZero, "modulo by zero")
		}
		return math.Mod(left, right), nil
	case ast.OpPow:
		// NaN/Inf results (negative base with fractional exponent, ...)
		// pass through uncaught.
		return math.Pow(left, right), nil

	// Comparisons yield 1.0 for true, 0.0 for false.
	case ast.OpLt:
		return boolToFloat(left < right), nil
	case ast.OpLe:
		return boolToFloat(left <= right), nil
	case ast.OpGt:
		return boolToFloat(left > right), nil
	case ast.OpGe:
		return boolToFloat(left >= right), nil
	case ast.OpEq:
		return boolToFloat(left == right), nil
	case ast.OpNe:
		return boolToFloat(left != right), nil

	// Logical operators treat an operand as false iff it is exactly 0.0.
	case ast.OpAnd:
		return boolToFloat(left != 0.0 && right != 0.0), nil
	case ast.OpOr:
		return boolToFloat(left != 0.0 || right != 0.0), nil

	// Bitwise operators truncate to 64-bit integers and convert back.
	case ast.OpBitAnd:
		return float64(int64(left) & int64(right)), nil
	case ast.OpBitOr:
		return float64(int64(left) | int64(right)), nil
	case ast.OpBitXor:
		return float64(int64(left) ^ int64(right)), nil

	default:
		return 0, evalErrorf(n.Position, nil, "unknown binary operator %q", n.Op)
	}
}

func (e *Evaluator) evalUnary(n *ast.UnaryOperation) (float64, error) {
	operand, err := e.Evaluate(n.Operand)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case ast.OpNegate:
		return -operand, nil
	case ast.OpPlus:
		return operand, nil
	case ast.OpNot:
		return boolToFloat(operand == 0.0), nil
	case ast.OpBitNot:
		return float64(^int64(operand)), nil
	default:
		return 0, evalErrorf(n.Position, nil, "unknown unary operator %q", n.Op)
	}
}

// evalCall evaluates argument expressions left to right, then resolves
// the callee: a user-defined function shadows a built-in of the same
// name.
func (e *Evaluator) evalCall(n *ast.FunctionCall) (float64, error) {
	args := make([]float64, len(n.Args))
	for i, arg := range n.Args {
		value, err := e.Evaluate(arg)
		if err != nil {
			return 0, err
		}
		args[i] = value
	}

	if uf, ok := e.ctx.UserFunction(n.Name); ok {
		return e.callUserFunction(uf, args, n.Position)
	}

	if e.ctx.HasFunction(n.Name) {
		result, err := e.ctx.builtins.Call(n.Name, args)
		if err != nil {
			return 0, evalErrorf(n.Position, err, "error calling function %s: %v", n.Name, err)
		}
		return result, nil
	}

	return 0, evalErrorf(n.Position, ErrUndefinedFunction, "undefined function: %s", n.Name)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
