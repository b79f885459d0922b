package bsearch

import (
	"cmp"

	"github.com/npillmayer/bsearch/index"
)

// Uniform is uniform binary search (sometimes called range search): instead
// of two bounds it keeps a fixed low bound and a width which is halved, rounding
// up, in every step.
//
// A tentative midpoint low+width may fall off the end of the sequence unless
// its length is one less than a power of two, so every probe is bounds checked.
func Uniform[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	return withWidth[I](data, value)
}

// UniformFixed is Uniform over a Fixed view.
func UniformFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	if data.Len() == 0 {
		return 0, false
	}
	return withWidth[I](data.data, value)
}

func withWidth[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	n := length[I](len(data))
	low, width := index.Zero[I](), n
	for width > 1 {
		width = index.HalfUp(0, width)
		mid := index.Add(low, width)
		if mid < n && at(data, mid) <= value {
			low = mid
		}
	}
	if at(data, low) == value {
		return low, true
	}
	return 0, false
}
