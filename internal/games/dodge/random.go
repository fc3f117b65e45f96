package dodge

import "math/rand"

// Rand is the source of randomness for spawning.
// Sessions receive one at construction so tests can substitute their own.
type Rand interface {
	// Float64Range returns a uniform value in [lo, hi).
	Float64Range(lo, hi float64) float64
	// IntRange returns a uniform value in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
}

type seededRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by a seeded math/rand generator.
// Equal seeds yield equal sequences.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

func (s *seededRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}
