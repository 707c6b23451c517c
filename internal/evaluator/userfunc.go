package evaluator

import (
	"github.com/plotforge/numexpr/internal/ast"
)

// savedBinding records one variable's state before a parameter shadowed
// it, so the call can restore it exactly: prior value if it existed,
// removal if it did not.
type savedBinding struct {
	name    string
	value   float64
	existed bool
}

// callUserFunction invokes a user-defined function with dynamic,
// stack-discipline scoping over the context's flat variable namespace:
//
//  1. check arity,
//  2. save the current state of every parameter name,
//  3. bind parameters to the evaluated arguments,
//  4. parse the body (through the per-context cache) and evaluate it,
//  5. restore the saved bindings on every exit path.
//
// The body may read and assign globals freely; only the parameter names
// themselves are restored. Recursion nests further save/restore frames on
// the host stack, bounded by the context's depth limit.
func (e *Evaluator) callUserFunction(fn UserFunction, args []float64, pos ast.Position) (float64, error) {
	if len(args) != len(fn.Parameters) {
		return 0, evalErrorf(pos, ErrArityMismatch,
			"function %s expects %d argument(s), got %d", fn.Name, len(fn.Parameters), len(args))
	}

	if e.depth >= e.ctx.maxDepth {
		return 0, evalErrorf(pos, ErrRecursionLimit,
			"call depth limit (%d) exceeded in function %s", e.ctx.maxDepth, fn.Name)
	}

	frame := make([]savedBinding, len(fn.Parameters))
	for i, param := range fn.Parameters {
		prev, existed := e.ctx.GetVariable(param)
		frame[i] = savedBinding{name: param, value: prev, existed: existed}
		e.ctx.SetVariable(param, args[i])
	}

	e.depth++
	defer func() {
		e.depth--
		// Restore in reverse so duplicate shadowing in nested frames
		// unwinds cleanly.
		for i := len(frame) - 1; i >= 0; i-- {
			if frame[i].existed {
				e.ctx.SetVariable(frame[i].name, frame[i].value)
			} else {
				e.ctx.RemoveVariable(frame[i].name)
			}
		}
	}()

	body, err := e.ctx.parsedBody(fn.Body)
	if err != nil {
		return 0, evalErrorf(pos, err, "in function %s: %v", fn.Name, err)
	}

	result, err := e.Evaluate(body)
	if err != nil {
		return 0, evalErrorf(pos, err, "in function %s: %v", fn.Name, err)
	}
	return result, nil
}
