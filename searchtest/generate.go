package searchtest

import (
	"fmt"

	"github.com/npillmayer/bsearch"
	"github.com/npillmayer/bsearch/index"
	"golang.org/x/exp/constraints"
)

// Generate returns the ascending dataset 0, 2, 4, …, 2·(n-1), sized for
// searches with index type I.
//
// n must not exceed Max[I]+1, and 2·(n-1) must fit E. Both are preconditions:
// violating them panics with an error wrapping ErrCapacity.
func Generate[E constraints.Integer, I index.Index](n int) []E {
	checkCapacity[E, I](n)
	data := make([]E, n)
	for i := range data {
		data[i] = E(i) << 1
	}
	tracer().Debugf("searchtest: generated %d elements of %T for index %T", n, E(0), I(0))
	return data
}

// GenerateFixed is Generate wrapped into a Fixed view.
func GenerateFixed[E constraints.Integer, I index.Index](n int) bsearch.Fixed[E] {
	return bsearch.FixedOf(Generate[E, I](n))
}

func checkCapacity[E constraints.Integer, I index.Index](n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative count %d", ErrCapacity, n))
	}
	if n == 0 {
		return
	}
	// n <= Max[I]+1, without forming Max[I]+1
	if uint64(n-1) > uint64(index.Max[I]()) {
		panic(fmt.Errorf("%w: %d elements cannot be indexed by %T", ErrCapacity, n, I(0)))
	}
	// 2·(n-1) <= Max[E]
	if uint64(n-1) > uint64(index.Max[E]())>>1 {
		panic(fmt.Errorf("%w: largest element 2·%d does not fit %T", ErrCapacity, n-1, E(0)))
	}
}
