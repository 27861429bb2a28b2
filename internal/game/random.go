package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// rollChance consumes exactly one draw.
func rollChance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// rollInt returns a value in [lo, hi], both ends inclusive.
func rollInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func rollUniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

func rollCondition(rng *rand.Rand, table []Condition) Condition {
	total := 0
	for _, c := range table {
		total += c.Weight
	}
	pick := rng.Float64() * float64(total)
	cumulative := 0.0
	for _, c := range table {
		cumulative += float64(c.Weight)
		if pick < cumulative {
			return c
		}
	}
	return table[len(table)-1]
}
