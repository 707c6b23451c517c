// Package functions provides the built-in function library: standard math,
// gamma/beta/error-function specials, Bessel functions of the first kind,
// normal-distribution statistics and the seeded random pair. A Registry
// owns the name -> callable mapping together with each function's arity
// contract.
package functions

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupported marks built-ins that are recognized but intentionally not
// implemented. Callers get this instead of a plausible-looking wrong
// number.
var ErrUnsupported = errors.New("function not implemented")

// Func is the callable signature shared by every built-in.
type Func func(args []float64) (float64, error)

// Arity is a function's argument-count contract: exactly Count arguments,
// or at least Count when Variadic is set.
type Arity struct {
	Count    int
	Variadic bool
}

// Exactly returns the contract for a fixed argument count.
func Exactly(n int) Arity {
	return Arity{Count: n}
}

// AtLeast returns the contract for a variadic function with a minimum
// argument count.
func AtLeast(n int) Arity {
	return Arity{Count: n, Variadic: true}
}

func (a Arity) check(name string, got int) error {
	if a.Variadic {
		if got < a.Count {
			return fmt.Errorf("%s() requires at least %d arguments, got %d", name, a.Count, got)
		}
		return nil
	}
	if got != a.Count {
		return fmt.Errorf("%s() requires exactly %d argument(s), got %d", name, a.Count, got)
	}
	return nil
}

type entry struct {
	arity Arity
	fn    Func
}

// Registry manages built-in functions by name.
type Registry struct {
	functions map[string]entry
}

// NewRegistry creates a registry pre-loaded with the full built-in
// library. Each registry owns its own random-generator state, so a fresh
// registry replays seeded sequences from the start.
func NewRegistry() *Registry {
	r := &Registry{functions: make(map[string]entry)}

	r.registerStandard()
	r.registerSpecial()
	r.registerBessel()
	r.registerStatistical()
	r.registerRandom(newRandomState())

	return r
}

// Register adds or replaces a function under the given name.
func (r *Registry) Register(name string, arity Arity, fn Func) {
	r.functions[name] = entry{arity: arity, fn: fn}
}

// Has reports whether a function with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.functions[name]
	return ok
}

// Remove unregisters a function.
func (r *Registry) Remove(name string) {
	delete(r.functions, name)
}

// Clear unregisters every function.
func (r *Registry) Clear() {
	r.functions = make(map[string]entry)
}

// Names returns the registered function names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call checks the arity contract and invokes the named function.
func (r *Registry) Call(name string, args []float64) (float64, error) {
	e, ok := r.functions[name]
	if !ok {
		return 0, fmt.Errorf("unknown function: %s", name)
	}
	if err := e.arity.check(name, len(args)); err != nil {
		return 0, err
	}
	return e.fn(args)
}
