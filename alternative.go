package bsearch

import (
	"cmp"

	"github.com/npillmayer/bsearch/index"
)

// Alternative is binary search with a single comparison per step.
//
// It keeps the invariant that data[low..high] contains the greatest element
// not exceeding value, if there is one. Rounding the midpoint up is
// essential: with low == high-1 a rounded-down midpoint would equal low and
// the loop would never terminate.
func Alternative[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	return oneCondition[I](data, value)
}

// AlternativeFixed is Alternative over a Fixed view.
func AlternativeFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	if data.Len() == 0 {
		return 0, false
	}
	return oneCondition[I](data.data, value)
}

func oneCondition[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	one := index.One[I]()
	low, high := index.Zero[I](), index.Sub(length[I](len(data)), one)
	for low < high {
		mid := index.Add(low, index.HalfUp(low, high))
		if at(data, mid) > value {
			high = index.Sub(mid, one)
		} else {
			low = mid
		}
	}
	if at(data, low) == value {
		return low, true
	}
	return 0, false
}
