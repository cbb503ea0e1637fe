// Package random provides seed generation and deterministic sampling
// helpers.
//
// Seeds come from crypto/rand; everything downstream of a seed uses a
// single math/rand stream so that one seed reproduces one generation
// bit-for-bit.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand creates the pseudo-random stream for one generation run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
