package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

// pcgStream is the fixed second PCG word; the seed alone selects the sequence
const pcgStream = 0x9e3779b97f4a7c15

type RandomGenerator struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandomGenerator returns a generator seeded with seed, or with a fresh
// random seed when seed is zero
func NewRandomGenerator(seed uint64) *RandomGenerator {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomGenerator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, pcgStream)),
	}
}

// Seed returns the seed actually in use
func (rg *RandomGenerator) Seed() uint64 {
	return rg.seed
}

// Generate draws p.Count integers from [p.Min, p.Max] and returns them sorted.
// p is expected to be normalized already.
func (rg *RandomGenerator) Generate(p RandomParams) ([]int64, error) {
	if p.Count <= 0 {
		return []int64{}, nil
	}
	if p.Max < p.Min {
		return nil, errors.Wrapf(ErrEmptyRange, "[%d, %d]", p.Min, p.Max)
	}

	numbers := make([]int64, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		numbers = append(numbers, rg.between(p.Min, p.Max))
	}
	slices.Sort(numbers)

	return numbers, nil
}

// between returns a uniform integer in the closed interval [lo, hi]
func (rg *RandomGenerator) between(lo, hi int64) int64 {
	span := uint64(hi-lo) + 1
	if span == 0 {
		// [MinInt64, MaxInt64]
		return int64(rg.rng.Uint64())
	}
	return lo + int64(rg.rng.Uint64N(span))
}
