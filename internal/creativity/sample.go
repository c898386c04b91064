package creativity

import "math/rand"

// Sample draws up to size items from pool without replacement. Pools
// smaller than size are returned whole in random order; an empty pool
// yields an empty result. Never an error, never padding.
func Sample[T any](rng *rand.Rand, pool []T, size int) []T {
	if len(pool) == 0 || size <= 0 {
		return nil
	}
	if size > len(pool) {
		size = len(pool)
	}
	out := make([]T, 0, size)
	for _, i := range rng.Perm(len(pool))[:size] {
		out = append(out, pool[i])
	}
	return out
}

// pick returns one random element, or the zero value for an empty pool.
func pick[T any](rng *rand.Rand, pool []T) T {
	var zero T
	if len(pool) == 0 {
		return zero
	}
	return pool[rng.Intn(len(pool))]
}
