package selection

import "math/rand"

// Shuffle returns a uniformly random permutation of items using the
// Fisher-Yates algorithm. It operates on a copy; the input slice is never
// mutated.
func Shuffle[T any](items []T) []T {
	return shuffleWith(items, rand.Intn)
}

// shuffleWith is the Fisher-Yates core with an injectable uniform draw so
// the Selector can use its own seeded source.
func shuffleWith[T any](items []T, intn func(n int) int) []T {
	result := make([]T, len(items))
	copy(result, items)
	for i := len(result) - 1; i > 0; i-- {
		j := intn(i + 1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}
