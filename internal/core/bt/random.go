package bt

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// IntN returns a pseudo-random integer in [0, n). It has the shape of
// rand.IntN and (*rand.Rand).IntN so either can be passed directly.
type IntN func(n int) int

// NewRandIntN returns a generator backed by its own PCG source. Two
// generators built from the same seed produce the same stream.
func NewRandIntN(seed uint64) IntN {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.IntN
}

// SeedFromString derives a seed from s, e.g. an agent name, so that a
// named agent replays the same choices across runs.
func SeedFromString(s string) uint64 {
	return xxhash.Sum64String(s)
}
