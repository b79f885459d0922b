package searchtest

import (
	"iter"

	"github.com/npillmayer/bsearch/index"
	"golang.org/x/exp/constraints"
)

// Oracle predicts the result of searching v in a generated dataset of n
// elements: position v/2 if v is even and 0 <= v/2 < n, not found otherwise.
func Oracle[I index.Index, E constraints.Integer](n int, v E) (I, bool) {
	if v < 0 || v%2 != 0 {
		return 0, false
	}
	half := uint64(v) >> 1
	if half >= uint64(n) {
		return 0, false
	}
	return I(half), true
}

// Probes iterates over every value from one below the first element of data
// to one above its last element. An empty dataset is probed as if it held a
// single 0. Bounds are clamped to the range of E.
func Probes[E constraints.Integer](data []E) iter.Seq[E] {
	var first, last E
	if len(data) > 0 {
		first, last = data[0], data[len(data)-1]
	}
	return probeRange(first, last)
}

func probeRange[E constraints.Integer](first, last E) iter.Seq[E] {
	if first > index.Min[E]() {
		first--
	}
	if last < index.Max[E]() {
		last++
	}
	return func(yield func(E) bool) {
		for v := first; ; v++ {
			if !yield(v) || v == last {
				return
			}
		}
	}
}
