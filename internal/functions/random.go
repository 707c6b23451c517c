package functions

import (
	"math/rand/v2"
	"sync"
)

// randomState is the per-registry random subsystem. Deterministic
// generators are keyed by seed value; the active-seed slot backs sgrand's
// return-previous-seed contract. All mutation of the map and of a seeded
// generator's position is serialized by the mutex, so two callers sharing
// a nonzero seed cannot corrupt its sequence.
type randomState struct {
	mu         sync.Mutex
	generators map[int64]*rand.Rand
	activeSeed int64
	activeSet  bool
}

func newRandomState() *randomState {
	return &randomState{generators: make(map[int64]*rand.Rand)}
}

// next returns the next draw for the given seed, in [0, 1).
//
// Seed 0 is the non-deterministic path: it draws from the process-wide
// source, which is safe under concurrent use and shares no per-registry
// state. A nonzero seed draws from that seed's generator, creating it on
// first use; the same seed always continues the same sequence.
func (s *randomState) next(seed int64) float64 {
	if seed == 0 {
		return rand.Float64()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.generators[seed]
	if !ok {
		g = newSeededRand(seed)
		s.generators[seed] = g
	}
	return g.Float64()
}

// setSeed makes seed the active seed and resets its generator to the
// start of its sequence, so subsequent next(seed) calls continue from
// there. It returns the previously active seed, or 0 if none was ever
// set.
func (s *randomState) setSeed(seed int64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := 0.0
	if s.activeSet {
		prev = float64(s.activeSeed)
	}
	s.activeSeed = seed
	s.activeSet = true

	if seed != 0 {
		s.generators[seed] = newSeededRand(seed)
	}
	return prev
}

// newSeededRand builds the deterministic generator for a seed. PCG with
// both state words derived from the seed reproduces the same sequence
// byte for byte in any fresh registry.
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// registerRandom registers the rand/sgrand pair over the given state.
func (r *Registry) registerRandom(state *randomState) {
	r.Register("rand", Exactly(1), func(args []float64) (float64, error) {
		return state.next(int64(args[0])), nil
	})

	r.Register("sgrand", Exactly(1), func(args []float64) (float64, error) {
		return state.setSeed(int64(args[0])), nil
	})
}
