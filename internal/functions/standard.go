package functions

import "math"

// registerStandard registers trigonometric, hyperbolic, exponential,
// rounding and extrema functions. Domain errors (negative sqrt, log of
// zero, asin outside [-1,1]) pass through as IEEE 754 NaN/Inf results;
// they are deliberately not turned into errors.
func (r *Registry) registerStandard() {
	// Trigonometric functions
	r.Register("sin", Exactly(1), func(args []float64) (float64, error) { return math.Sin(args[0]), nil })
	r.Register("cos", Exactly(1), func(args []float64) (float64, error) { return math.Cos(args[0]), nil })
	r.Register("tan", Exactly(1), func(args []float64) (float64, error) { return math.Tan(args[0]), nil })
	r.Register("asin", Exactly(1), func(args []float64) (float64, error) { return math.Asin(args[0]), nil })
	r.Register("acos", Exactly(1), func(args []float64) (float64, error) { return math.Acos(args[0]), nil })
	r.Register("atan", Exactly(1), func(args []float64) (float64, error) { return math.Atan(args[0]), nil })
	r.Register("atan2", Exactly(2), func(args []float64) (float64, error) { return math.Atan2(args[0], args[1]), nil })

	// Hyperbolic functions
	r.Register("sinh", Exactly(1), func(args []float64) (float64, error) { return math.Sinh(args[0]), nil })
	r.Register("cosh", Exactly(1), func(args []float64) (float64, error) { return math.Cosh(args[0]), nil })
	r.Register("tanh", Exactly(1), func(args []float64) (float64, error) { return math.Tanh(args[0]), nil })

	// Exponential and logarithmic functions
	r.Register("exp", Exactly(1), func(args []float64) (float64, error) { return math.Exp(args[0]), nil })
	r.Register("log", Exactly(1), func(args []float64) (float64, error) { return math.Log(args[0]), nil })
	r.Register("log10", Exactly(1), func(args []float64) (float64, error) { return math.Log10(args[0]), nil })

	// Power and root functions
	r.Register("sqrt", Exactly(1), func(args []float64) (float64, error) { return math.Sqrt(args[0]), nil })
	r.Register("cbrt", Exactly(1), func(args []float64) (float64, error) { return math.Cbrt(args[0]), nil })
	r.Register("pow", Exactly(2), func(args []float64) (float64, error) { return math.Pow(args[0], args[1]), nil })

	// Rounding functions
	r.Register("abs", Exactly(1), func(args []float64) (float64, error) { return math.Abs(args[0]), nil })
	r.Register("ceil", Exactly(1), func(args []float64) (float64, error) { return math.Ceil(args[0]), nil })
	r.Register("floor", Exactly(1), func(args []float64) (float64, error) { return math.Floor(args[0]), nil })
	r.Register("round", Exactly(1), func(args []float64) (float64, error) { return math.Round(args[0]), nil })

	// Sign and extrema
	r.Register("sgn", Exactly(1), func(args []float64) (float64, error) {
		switch {
		case args[0] > 0:
			return 1, nil
		case args[0] < 0:
			return -1, nil
		default:
			return 0, nil
		}
	})
	r.Register("min", AtLeast(2), func(args []float64) (float64, error) {
		min := args[0]
		for _, v := range args[1:] {
			min = math.Min(min, v)
		}
		return min, nil
	})
	r.Register("max", AtLeast(2), func(args []float64) (float64, error) {
		max := args[0]
		for _, v := range args[1:] {
			max = math.Max(max, v)
		}
		return max, nil
	})

	// Real-only complex accessors, kept for plot scripts that probe
	// real/imag parts of sampled values.
	r.Register("real", Exactly(1), func(args []float64) (float64, error) { return args[0], nil })
	r.Register("imag", Exactly(1), func(args []float64) (float64, error) { return 0, nil })
}
