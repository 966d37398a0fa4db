package randsrc

import "math/rand"

// SeededSource is a deterministic uniform-[0,1) stream backed by
// math/rand, grounded on ntru/rng.go's RNG wrapper. It exists so tests
// (and callers who want bit-for-bit reproducibility) can fix the seed;
// spec.md's Non-goals explicitly exclude deterministic output in
// general, but nothing prevents a caller from opting into it.
type SeededSource struct {
	r *rand.Rand
}

// NewSeeded returns a SeededSource backed by a fresh rand.Rand.
func NewSeeded(seed int64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a uniform draw in [0,1).
func (s *SeededSource) Uniform() float64 {
	return s.r.Float64()
}
