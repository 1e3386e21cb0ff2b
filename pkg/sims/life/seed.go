package life

import (
	"math/rand/v2"

	"life-wasm/pkg/core"
)

// SeedStrategy decides the initial state of each cell by linear index.
type SeedStrategy interface {
	Alive(index int) bool
}

// IndexPattern seeds cells deterministically from their index.
type IndexPattern func(index int) bool

// Alive implements SeedStrategy. A nil pattern seeds nothing.
func (p IndexPattern) Alive(index int) bool { return p != nil && p(index) }

// DefaultPattern marks cells alive where the index is divisible by 2 or 7.
var DefaultPattern = IndexPattern(func(i int) bool { return i%2 == 0 || i%7 == 0 })

// Random seeds each cell alive with a fixed probability.
type Random struct {
	rng     *core.RNG
	density float64
}

// NewRandom returns a Random strategy drawing from a PCG source seeded with
// seed. density is the probability of a cell being alive.
func NewRandom(seed int64, density float64) *Random {
	return &Random{rng: core.NewRNG(seed), density: density}
}

// WithDensity returns a strategy sharing the same source with a different
// probability.
func (r *Random) WithDensity(density float64) *Random {
	return &Random{rng: r.rng, density: density}
}

// Alive implements SeedStrategy.
func (r *Random) Alive(int) bool {
	if r.density == 0.5 {
		return r.rng.Bool()
	}
	return r.rng.Chance(r.density)
}

func rngSeed() uint64 { return rand.Uint64() }
