package bsearch

import (
	"cmp"
	"iter"

	"github.com/npillmayer/bsearch/index"
)

// Func is the shape of a search over a dynamically sized sequence.
// It returns the position of value in data and true, or false if data does
// not contain value.
type Func[I index.Index, E cmp.Ordered] func(data []E, value E) (I, bool)

// FixedFunc is the shape of a search over a Fixed view.
type FixedFunc[I index.Index, E cmp.Ordered] func(data Fixed[E], value E) (I, bool)

// Fixed is a read-only view over an ascending sequence whose length is frozen
// at construction time. Everything a search derives from the length alone is
// computed once in FixedOf, so that searches over a Fixed run a loop with a
// known trip count.
//
// The zero value is an empty view.
type Fixed[E cmp.Ordered] struct {
	data  []E
	pow2  bool   // len(data) is a power of two (or zero)
	half  uint64 // previous power of two of len(data)
	steps int    // number of jump widths a power search visits
}

// FixedOf creates a Fixed view over data. data is not copied; the caller must
// not modify it while the view is in use.
func FixedOf[E cmp.Ordered](data []E) Fixed[E] {
	n := len(data)
	return Fixed[E]{
		data:  data[:n:n],
		pow2:  index.IsPowerOfTwo(uint64(n)),
		half:  index.PreviousPowerOfTwo(uint64(n)),
		steps: index.Steps(n),
	}
}

// Len returns the number of elements of the view.
func (f Fixed[E]) Len() int {
	return len(f.data)
}

// At returns the element at position i.
func (f Fixed[E]) At(i int) E {
	return f.data[i]
}

// Slice returns the underlying elements. The slice must be treated as read-only.
func (f Fixed[E]) Slice() []E {
	return f.data
}

// Steps returns the trip count of a power search over this view.
func (f Fixed[E]) Steps() int {
	return f.steps
}

// IsPowerOfTwo reports whether the view's length is a power of two.
// An empty view counts as one.
func (f Fixed[E]) IsPowerOfTwo() bool {
	return f.pow2
}

// All iterates over positions and elements of the view.
func (f Fixed[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, x := range f.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// length converts the length of a sequence into I. An index type which
// cannot represent n is a caller error and panics.
func length[I index.Index](n int) I {
	return index.MustFromLen[I](n)
}

// at reads data at position i.
func at[I index.Index, E any](data []E, i I) E {
	return data[index.MustToInt(i)]
}
