package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCall(t *testing.T) {
	r := NewRegistry()

	result, err := r.Call("abs", []float64{-3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result)

	_, err = r.Call("nosuch", []float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function: nosuch")
}

func TestRegistryArity(t *testing.T) {
	r := NewRegistry()

	_, err := r.Call("sin", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin() requires exactly 1 argument(s), got 0")

	_, err = r.Call("atan2", []float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 2")

	_, err = r.Call("min", []float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")

	// Variadic functions accept any count above the minimum.
	result, err := r.Call("min", []float64{4, 2, 8, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, result)
}

func TestRegistryRegisterAndRemove(t *testing.T) {
	r := NewRegistry()

	r.Register("triple", Exactly(1), func(args []float64) (float64, error) {
		return args[0] * 3, nil
	})
	require.True(t, r.Has("triple"))

	result, err := r.Call("triple", []float64{5})
	require.NoError(t, err)
	assert.Equal(t, 15.0, result)

	r.Remove("triple")
	assert.False(t, r.Has("triple"))
}

func TestRegistryReplaceExisting(t *testing.T) {
	r := NewRegistry()
	r.Register("sin", Exactly(1), func(args []float64) (float64, error) {
		return 42, nil
	})

	result, err := r.Call("sin", []float64{0})
	require.NoError(t, err)
	assert.Equal(t, 42.0, result)
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Has("sin"))

	r.Clear()
	assert.False(t, r.Has("sin"))
	assert.Empty(t, r.Names())
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	names := r.Names()

	assert.IsIncreasing(t, names)

	for _, expected := range []string{
		"sin", "cos", "tan", "sqrt", "exp", "log",
		"gamma", "igamma", "ibeta", "erf", "inverf",
		"besj0", "besjn", "besy0",
		"norm", "invnorm",
		"rand", "sgrand",
	} {
		assert.Contains(t, names, expected)
	}
}
