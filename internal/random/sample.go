package random

import (
	"errors"
	"math/rand"
)

var (
	// ErrSampleSize indicates a sample larger than its population.
	ErrSampleSize = errors.New("sample size exceeds population")
	// ErrEmptyPopulation indicates a choice from an empty population.
	ErrEmptyPopulation = errors.New("population is empty")
)

// Sample draws k distinct elements from population, in draw order, without
// replacement. The population is not modified.
func Sample(rng *rand.Rand, population []string, k int) ([]string, error) {
	if k < 0 || k > len(population) {
		return nil, ErrSampleSize
	}

	pool := make([]string, len(population))
	copy(pool, population)

	// Partial Fisher-Yates: each draw swaps the chosen element to the
	// front of the remaining pool.
	chosen := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		chosen = append(chosen, pool[i])
	}
	return chosen, nil
}

// Choice draws one element from population uniformly at random.
func Choice(rng *rand.Rand, population []string) (string, error) {
	if len(population) == 0 {
		return "", ErrEmptyPopulation
	}
	return population[rng.Intn(len(population))], nil
}
