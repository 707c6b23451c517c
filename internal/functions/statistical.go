package functions

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// registerStatistical registers the standard normal distribution pair:
// norm (CDF) and invnorm (quantile). They are mutual inverses and satisfy
// norm(x) + norm(-x) == 1.
func (r *Registry) registerStatistical() {
	r.Register("norm", Exactly(1), func(args []float64) (float64, error) {
		return 0.5 * math.Erfc(-args[0]/math.Sqrt2), nil
	})

	r.Register("invnorm", Exactly(1), func(args []float64) (float64, error) {
		return mathext.NormalQuantile(args[0]), nil
	})
}
