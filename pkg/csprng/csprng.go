// Package csprng provides the production slip39.RandomSource: a thin
// wrapper over crypto/rand.Reader. Keeping it behind its own type leaves
// room for swapping in hardware-backed entropy sources without touching
// callers.
package csprng

import "crypto/rand"

// Source wraps crypto/rand.Reader behind the slip39.RandomSource
// interface. The zero value is ready to use.
type Source struct{}

// New returns a Source backed by crypto/rand.Reader.
func New() Source {
	return Source{}
}

// Read fills p with cryptographically secure random bytes.
func (Source) Read(p []byte) (int, error) {
	return rand.Read(p)
}

// Rand returns n cryptographically secure random bytes.
func (s Source) Rand(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := s.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
