package functions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGammaMatchesFactorial(t *testing.T) {
	r := NewRegistry()

	fact := 1.0
	for n := 1; n <= 7; n++ {
		assert.InDelta(t, fact, call(t, r, "gamma", float64(n)), 1e-9*fact, "gamma(%d)", n)
		fact *= float64(n)
	}

	assert.InDelta(t, math.Sqrt(math.Pi), call(t, r, "gamma", 0.5), 1e-12)
}

func TestLgamma(t *testing.T) {
	r := NewRegistry()

	assert.InDelta(t, math.Log(120), call(t, r, "lgamma", 6), 1e-12)
	assert.InDelta(t, 0.0, call(t, r, "lgamma", 1), 1e-15)
}

func TestBeta(t *testing.T) {
	r := NewRegistry()

	// Symmetry and the gamma identity.
	assert.InDelta(t, call(t, r, "beta", 4, 2.5), call(t, r, "beta", 2.5, 4), 1e-12)
	want := math.Gamma(3) * math.Gamma(4) / math.Gamma(7)
	assert.InDelta(t, want, call(t, r, "beta", 3, 4), 1e-12)

	// beta(1, b) = 1/b.
	assert.InDelta(t, 0.2, call(t, r, "beta", 1, 5), 1e-12)
}

func TestIncompleteGamma(t *testing.T) {
	r := NewRegistry()

	// The regularized form is the unnormalized one over gamma(a).
	a, x := 2.5, 1.7
	assert.InDelta(t,
		call(t, r, "gammainc", a, x)*math.Gamma(a),
		call(t, r, "igamma", a, x), 1e-12)

	// P(a, x) limits.
	assert.InDelta(t, 0.0, call(t, r, "gammainc", 2, 0), 1e-15)
	assert.InDelta(t, 1.0, call(t, r, "gammainc", 2, 100), 1e-12)

	// For a = 1 the integral is elementary: P(1, x) = 1 - exp(-x).
	assert.InDelta(t, 1-math.Exp(-2), call(t, r, "gammainc", 1, 2), 1e-12)
}

func TestIncompleteBeta(t *testing.T) {
	r := NewRegistry()

	a, b, x := 2.0, 3.0, 0.4
	assert.InDelta(t,
		call(t, r, "betainc", a, b, x)*call(t, r, "beta", a, b),
		call(t, r, "ibeta", a, b, x), 1e-12)

	// I_x(a, b) limits and the reflection identity.
	assert.InDelta(t, 0.0, call(t, r, "betainc", 2, 3, 0), 1e-15)
	assert.InDelta(t, 1.0, call(t, r, "betainc", 2, 3, 1), 1e-12)
	assert.InDelta(t,
		1-call(t, r, "betainc", b, a, 1-x),
		call(t, r, "betainc", a, b, x), 1e-12)
}

func TestErrorFunctionFamily(t *testing.T) {
	r := NewRegistry()

	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		// erf + erfc = 1 and erf is odd.
		assert.InDelta(t, 1.0, call(t, r, "erf", x)+call(t, r, "erfc", x), 1e-12, "x=%g", x)
		assert.InDelta(t, -call(t, r, "erf", -x), call(t, r, "erf", x), 1e-15, "x=%g", x)
	}

	// Inverses round-trip.
	assert.InDelta(t, 0.3, call(t, r, "erf", call(t, r, "inverf", 0.3)), 1e-12)
	assert.InDelta(t, 0.7, call(t, r, "erfc", call(t, r, "inverfc", 0.7)), 1e-12)
}
