// Package sampler draws uniform random subsets without replacement.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidSampleSize is returned when more items are requested than exist
var ErrInvalidSampleSize = errors.New("sampler: invalid sample size")

// Sample returns n elements of items drawn uniformly without replacement.
// The input slice is not modified. n == len(items) yields a permutation.
func Sample[T any](rng *rand.Rand, items []T, n int) ([]T, error) {
	if n < 0 || n > len(items) {
		return nil, fmt.Errorf("%w: cannot take %d from %d items", ErrInvalidSampleSize, n, len(items))
	}

	pool := make([]T, len(items))
	copy(pool, items)

	// Partial Fisher-Yates: the first n slots end up holding the sample.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n], nil
}

// Shuffle returns a random permutation of items
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out, _ := Sample(rng, items, len(items))
	return out
}

// UpTo samples min(n, len(items)) elements
func UpTo[T any](rng *rand.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n < 0 {
		n = 0
	}
	out, _ := Sample(rng, items, n)
	return out
}
