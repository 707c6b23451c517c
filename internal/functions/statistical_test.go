package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalCDF(t *testing.T) {
	r := NewRegistry()

	assert.InDelta(t, 0.5, call(t, r, "norm", 0), 1e-15)
	assert.InDelta(t, 0.8413447460685429, call(t, r, "norm", 1), 1e-12)

	// Complement symmetry.
	for _, x := range []float64{-2.5, -1, 0.3, 1.96} {
		assert.InDelta(t, 1.0, call(t, r, "norm", x)+call(t, r, "norm", -x), 1e-12, "x=%g", x)
	}

	// Tails saturate.
	assert.InDelta(t, 0.0, call(t, r, "norm", -10), 1e-12)
	assert.InDelta(t, 1.0, call(t, r, "norm", 10), 1e-12)
}

func TestInverseNormal(t *testing.T) {
	r := NewRegistry()

	assert.InDelta(t, 0.0, call(t, r, "invnorm", 0.5), 1e-12)

	// The 97.5th percentile of the standard normal.
	assert.InDelta(t, 1.959963984540054, call(t, r, "invnorm", 0.975), 1e-9)

	// norm and invnorm round-trip.
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		assert.InDelta(t, p, call(t, r, "norm", call(t, r, "invnorm", p)), 1e-9, "p=%g", p)
	}
}
