// Package random provides seed generation and RNG construction helpers.
//
// It uses crypto/rand to generate high-entropy seeds suitable for
// initializing pseudo-random number generators in deterministic systems.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRNG creates a seeded random number generator.
// If seed is 0, the current time is used instead.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SeedSource returns a function producing fresh seeds. With a non-zero base
// seed the sequence is fully deterministic; otherwise each seed comes from
// crypto/rand, falling back to the clock if entropy is unavailable.
func SeedSource(base int64) func() int64 {
	if base != 0 {
		rng := NewRNG(base)
		return rng.Int63
	}
	return func() int64 {
		seed, err := NewSeed()
		if err != nil {
			return time.Now().UnixNano()
		}
		return seed
	}
}
