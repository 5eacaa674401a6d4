// Package random builds the seeded random sources games are played with.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed returns a seed read from crypto/rand, for runs that were not given one.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a source that replays the same sequence for the same seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // game randomness, not security
}
