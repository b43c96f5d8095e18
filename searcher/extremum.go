package searcher

import "golang.org/x/exp/constraints"

// Max returns the greatest value. It panics on an empty slice.
func Max[T constraints.Ordered](values []T) T {
	if len(values) == 0 {
		panic("max: empty sequence")
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// MaxBy returns the item with the greatest key, calling key once per item.
// The running best is only replaced by a strictly greater key, so the first
// of several equal maxima wins. It panics on an empty slice.
func MaxBy[T any, K constraints.Ordered](items []T, key func(T) K) T {
	if len(items) == 0 {
		panic("max_by: empty sequence")
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); k > bestKey {
			best, bestKey = item, k
		}
	}
	return best
}

// argmax returns the index of the first greatest key.
func argmax[K constraints.Ordered](keys []K) int {
	if len(keys) == 0 {
		panic("argmax: empty sequence")
	}
	best := 0
	for i, k := range keys[1:] {
		if k > keys[best] {
			best = i + 1
		}
	}
	return best
}
