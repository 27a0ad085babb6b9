// Package testutil provides deterministic test doubles shared across the
// module's test suites.
package testutil

import "math/rand"

// DeterministicRNG returns a slip39.RandomSource-compatible reader seeded
// from a fixed math/rand state, so tests that need a "random" source are
// byte-for-byte reproducible across runs.
func DeterministicRNG(seed uint64) *SeededReader {
	return &SeededReader{r: rand.New(rand.NewSource(int64(seed)))}
}

// SeededReader is an io.Reader over a seeded math/rand generator.
type SeededReader struct {
	r *rand.Rand
}

// Read fills p with the generator's output.
func (s *SeededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s.r.Intn(256))
	}
	return len(p), nil
}
