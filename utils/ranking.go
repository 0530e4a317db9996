package utils

import (
	"sort"
)

// SortOrder defines the direction of sorting
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// RankByScore sorts items in place by the score each one gets from scoreFn.
// The sort is stable: items with equal scores keep their original order,
// which matters for first-seen-wins ranking of scraped batches.
func RankByScore[T any](items []T, scoreFn func(T) float64, order SortOrder) {
	scores := make([]float64, len(items))
	for i := range items {
		scores[i] = scoreFn(items[i])
	}

	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}

	sort.SliceStable(indices, func(i, j int) bool {
		if order == Descending {
			return scores[indices[i]] > scores[indices[j]]
		}
		return scores[indices[i]] < scores[indices[j]]
	})

	ranked := make([]T, len(items))
	for i, idx := range indices {
		ranked[i] = items[idx]
	}
	copy(items, ranked)
}

// TopN truncates a ranked slice to at most n items
func TopN[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
