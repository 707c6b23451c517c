package evaluator

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/plotforge/numexpr/internal/ast"
	"github.com/plotforge/numexpr/internal/functions"
	"github.com/plotforge/numexpr/internal/parser"
)

// Default size of the parsed user-function body cache. Bodies are
// immutable once registered, so caching their trees is behavior-neutral.
const bodyCacheSize = 128

// DefaultMaxDepth bounds user-function call nesting. A runaway recursive
// definition fails with ErrRecursionLimit instead of exhausting the host
// stack.
const DefaultMaxDepth = 1000

// UserFunction is a user-defined function: ordered parameter names plus
// the body's source text. The body is parsed on call, not on
// registration.
type UserFunction struct {
	Name       string
	Parameters []string
	Body       string
}

// Context is the mutable environment an evaluator runs against: variable
// bindings, the built-in function registry and the user-defined function
// registry. One context is typically reused across many evaluations (for
// example sampling one function at thousands of points). It is not
// internally synchronized; concurrent samplers should each own a context.
type Context struct {
	variables map[string]float64
	builtins  *functions.Registry
	userFuncs map[string]UserFunction

	bodyCache *lru.Cache[string, ast.Node]
	maxDepth  int
}

// NewContext creates a context pre-loaded with the built-in function
// library and the standard constants pi and e.
func NewContext() *Context {
	cache, err := lru.New[string, ast.Node](bodyCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(fmt.Sprintf("evaluator: body cache: %v", err))
	}

	ctx := &Context{
		variables: make(map[string]float64),
		builtins:  functions.NewRegistry(),
		userFuncs: make(map[string]UserFunction),
		bodyCache: cache,
		maxDepth:  DefaultMaxDepth,
	}
	ctx.registerConstants()
	return ctx
}

func (c *Context) registerConstants() {
	c.variables["pi"] = math.Pi
	c.variables["e"] = math.E
}

// SetMaxDepth overrides the user-function recursion limit.
func (c *Context) SetMaxDepth(depth int) {
	c.maxDepth = depth
}

// SetVariable creates or overwrites a variable binding.
func (c *Context) SetVariable(name string, value float64) {
	c.variables[name] = value
}

// GetVariable returns a variable's value and whether it is bound.
func (c *Context) GetVariable(name string) (float64, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// HasVariable reports whether a variable is bound.
func (c *Context) HasVariable(name string) bool {
	_, ok := c.variables[name]
	return ok
}

// RemoveVariable deletes a variable binding.
func (c *Context) RemoveVariable(name string) {
	delete(c.variables, name)
}

// ClearVariables removes all variable bindings and re-registers the
// standard constants.
func (c *Context) ClearVariables() {
	c.variables = make(map[string]float64)
	c.registerConstants()
}

// RegisterFunction adds or replaces a built-in function.
func (c *Context) RegisterFunction(name string, arity functions.Arity, fn functions.Func) {
	c.builtins.Register(name, arity, fn)
}

// HasFunction reports whether a built-in function is registered.
func (c *Context) HasFunction(name string) bool {
	return c.builtins.Has(name)
}

// RemoveFunction unregisters a built-in function.
func (c *Context) RemoveFunction(name string) {
	c.builtins.Remove(name)
}

// ClearFunctions unregisters every built-in function.
func (c *Context) ClearFunctions() {
	c.builtins.Clear()
}

// RegisterUserFunction registers a user-defined function from its parts.
// A user function shadows any built-in with the same name.
func (c *Context) RegisterUserFunction(name string, params []string, body string) {
	c.userFuncs[name] = UserFunction{Name: name, Parameters: append([]string(nil), params...), Body: body}
	log.Debug().Str("function", name).Strs("params", params).Msg("registered user function")
}

// DefineFunction parses a "f(x, y) = body" definition and registers it.
func (c *Context) DefineFunction(definition string) error {
	def, err := parser.ParseFunctionDefinition(definition)
	if err != nil {
		return err
	}
	c.RegisterUserFunction(def.Name, def.Parameters, def.Body)
	return nil
}

// HasUserFunction reports whether a user function is registered.
func (c *Context) HasUserFunction(name string) bool {
	_, ok := c.userFuncs[name]
	return ok
}

// UserFunction returns a registered user function.
func (c *Context) UserFunction(name string) (UserFunction, bool) {
	uf, ok := c.userFuncs[name]
	return uf, ok
}

// RemoveUserFunction unregisters a user function.
func (c *Context) RemoveUserFunction(name string) {
	delete(c.userFuncs, name)
}

// parsedBody returns the parsed tree for a user-function body, using the
// per-context cache keyed by body text.
func (c *Context) parsedBody(body string) (ast.Node, error) {
	if tree, ok := c.bodyCache.Get(body); ok {
		return tree, nil
	}

	tree, err := parser.ParseExpression(body)
	if err != nil {
		return nil, err
	}
	c.bodyCache.Add(body, tree)
	return tree, nil
}
