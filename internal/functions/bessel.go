package functions

import (
	"fmt"
	"math"
)

// registerBessel registers Bessel functions of the first kind. Negative
// arguments use the symmetry J_n(-x) = (-1)^n * J_n(x): even orders are
// even-symmetric, odd orders odd-symmetric.
//
// Bessel Y (second kind) and modified Bessel I are registered but not
// implemented; calling them returns a distinct error instead of a wrong
// numeric answer, and an undefined-function error stays reserved for
// truly unknown names.
func (r *Registry) registerBessel() {
	r.Register("besj0", Exactly(1), func(args []float64) (float64, error) {
		return math.J0(math.Abs(args[0])), nil // J_0 is even
	})

	r.Register("besj1", Exactly(1), func(args []float64) (float64, error) {
		x := args[0]
		if x < 0 {
			return -math.J1(-x), nil // J_1 is odd
		}
		return math.J1(x), nil
	})

	r.Register("besjn", Exactly(2), func(args []float64) (float64, error) {
		n := int(args[0])
		x := args[1]
		if x < 0 {
			v := math.Jn(n, -x)
			if n%2 != 0 {
				return -v, nil
			}
			return v, nil
		}
		return math.Jn(n, x), nil
	})

	for _, name := range []string{"besy0", "besy1", "besyn", "besi0", "besi1"} {
		name := name
		arity := Exactly(1)
		if name == "besyn" {
			arity = Exactly(2)
		}
		r.Register(name, arity, func(args []float64) (float64, error) {
			return 0, fmt.Errorf("%s: %w", name, ErrUnsupported)
		})
	}
}
