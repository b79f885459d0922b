package bsearch

import (
	"cmp"

	"github.com/npillmayer/bsearch/index"
)

// SignedTraditional is the textbook binary search with two comparisons per
// step, over a signed index type. Both bounds are inclusive, and high may
// drop below zero when the probe is smaller than every element.
func SignedTraditional[I index.Signed, E cmp.Ordered](data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	return twoConditionsSigned[I](data, value)
}

// SignedTraditionalFixed is SignedTraditional over a Fixed view.
func SignedTraditionalFixed[I index.Signed, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	if data.Len() == 0 {
		return 0, false
	}
	return twoConditionsSigned[I](data.data, value)
}

// UnsignedTraditional is binary search with two comparisons per step, over
// an unsigned index type. To keep high from underflowing at mid == 0, the
// midpoint rounds up and the loop stops once low meets high; the last
// candidate is checked after the loop.
func UnsignedTraditional[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	return twoConditionsUnsigned[I](data, value)
}

// UnsignedTraditionalFixed is UnsignedTraditional over a Fixed view.
func UnsignedTraditionalFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	if data.Len() == 0 {
		return 0, false
	}
	return twoConditionsUnsigned[I](data.data, value)
}

func twoConditionsSigned[I index.Signed, E cmp.Ordered](data []E, value E) (I, bool) {
	one := index.One[I]()
	low, high := index.Zero[I](), index.Sub(length[I](len(data)), one)
	for low <= high {
		mid := index.Add(low, index.Shr(index.Sub(high, low), 1))
		switch x := at(data, mid); {
		case x > value:
			high = index.Sub(mid, one)
		case x < value:
			low = index.Add(mid, one)
		default:
			return mid, true
		}
	}
	return 0, false
}

func twoConditionsUnsigned[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	one := index.One[I]()
	n := length[I](len(data))
	low, high := index.Zero[I](), index.Sub(n, one)
	for low < high {
		mid := index.Add(low, index.HalfUp(low, high))
		switch x := at(data, mid); {
		case x > value:
			high = index.Sub(mid, one) // mid > low >= 0
		case x < value:
			low = index.Add(mid, one) // may step to n
		default:
			return mid, true
		}
	}
	if low < n && at(data, low) == value {
		return low, true
	}
	return 0, false
}
