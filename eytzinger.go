package bsearch

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/npillmayer/bsearch/index"
)

// --- Layout ----------------------------------------------------------------

// Layout permutes the ascending sequence src into dst in Eytzinger order:
// the implicit complete binary search tree whose 1-based node k has its
// children at 2k and 2k+1. dst and src must have the same length, otherwise
// Layout returns an error wrapping ErrLayoutMismatch and leaves dst untouched.
func Layout[E any](dst, src []E) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d != %d", ErrLayoutMismatch, len(dst), len(src))
	}
	consumed := layoutNode(dst, src, 0, 1)
	assert(consumed == len(src), "eytzinger layout did not consume its source")
	return nil
}

// layoutNode places the subtree rooted at 1-based node k by an in-order walk,
// consuming src from position i on. It returns the next unconsumed position.
func layoutNode[E any](dst, src []E, i, k int) int {
	if k <= len(dst) {
		i = layoutNode(dst, src, i, k<<1)
		dst[k-1] = src[i]
		i++
		i = layoutNode(dst, src, i, k<<1|1)
	}
	return i
}

// Config configures an Eytzinger layout.
type Config struct {
	// Prefetcher issues cache hints during prefetching searches.
	// Defaults to DefaultPrefetcher().
	Prefetcher Prefetcher
	// Verify runs Check right after construction.
	Verify bool
}

func (cfg Config) normalized() Config {
	if cfg.Prefetcher == nil {
		cfg.Prefetcher = DefaultPrefetcher()
	}
	return cfg
}

// Eytzinger owns a sequence in Eytzinger layout. It is built once from an
// ascending sequence and immutable thereafter.
type Eytzinger[E cmp.Ordered] struct {
	layout []E
	cfg    Config
}

// NewEytzinger lays out the ascending sequence sorted into a new Eytzinger
// array. sorted is copied and may be reused by the caller.
func NewEytzinger[E cmp.Ordered](sorted []E, cfg Config) (*Eytzinger[E], error) {
	cfg = cfg.normalized()
	if !slices.IsSorted(sorted) {
		return nil, ErrNotSorted
	}
	e := &Eytzinger[E]{
		layout: make([]E, len(sorted)),
		cfg:    cfg,
	}
	if err := Layout(e.layout, sorted); err != nil {
		return nil, err
	}
	if cfg.Verify {
		if err := e.Check(sorted); err != nil {
			return nil, err
		}
	}
	T().Debugf("eytzinger: laid out %d elements", len(sorted))
	return e, nil
}

// Len returns the number of elements.
func (e *Eytzinger[E]) Len() int {
	if e == nil {
		return 0
	}
	return len(e.layout)
}

// Layout returns the permuted elements. The slice must be treated as read-only.
func (e *Eytzinger[E]) Layout() []E {
	if e == nil {
		return nil
	}
	return e.layout
}

// At returns the element at layout position pos.
func (e *Eytzinger[E]) At(pos int) (E, error) {
	var zero E
	if pos < 0 || pos >= e.Len() {
		return zero, fmt.Errorf("%w: position %d", ErrIllegalArguments, pos)
	}
	return e.layout[pos], nil
}

// InOrder iterates over the elements in ascending order, i.e. by an in-order
// walk of the implicit tree.
func (e *Eytzinger[E]) InOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		var walk func(k int) bool
		walk = func(k int) bool {
			if k > e.Len() {
				return true
			}
			return walk(k<<1) && yield(e.layout[k-1]) && walk(k<<1|1)
		}
		walk(1)
	}
}

// Rank returns the position in the ascending source sequence of the element
// stored at layout position pos.
func (e *Eytzinger[E]) Rank(pos int) (int, error) {
	n := e.Len()
	if pos < 0 || pos >= n {
		return 0, fmt.Errorf("%w: position %d", ErrIllegalArguments, pos)
	}
	k := pos + 1
	rank := subtreeSize(k<<1, n)
	for ; k > 1; k >>= 1 {
		if k&1 == 1 { // right child: left sibling's subtree and the parent come first
			rank += subtreeSize(k-1, n) + 1
		}
	}
	return rank, nil
}

// subtreeSize counts the nodes of the subtree rooted at 1-based node k in a
// tree of n nodes.
func subtreeSize(k, n int) int {
	size := 0
	for lo, hi := k, k; lo <= n; lo, hi = lo<<1, hi<<1|1 {
		size += min(hi, n) - lo + 1
	}
	return size
}

// Check validates the layout against the ascending sequence it was built
// from. It reports the first position at which the in-order walk departs from
// sorted.
func (e *Eytzinger[E]) Check(sorted []E) error {
	if e.Len() != len(sorted) {
		return fmt.Errorf("%w: %d != %d", ErrLayoutMismatch, e.Len(), len(sorted))
	}
	i := 0
	for x := range e.InOrder() {
		if x != sorted[i] {
			return fmt.Errorf("%w: in-order position %d holds %v, want %v",
				ErrNotSorted, i, x, sorted[i])
		}
		i++
	}
	for k := 2; k <= e.Len(); k++ {
		parent, child := e.layout[k>>1-1], e.layout[k-1]
		if k&1 == 0 && child > parent || k&1 == 1 && child < parent {
			return fmt.Errorf("%w: node %d violates search tree order", ErrNotSorted, k)
		}
	}
	return nil
}

// --- Search ----------------------------------------------------------------

// EytzingerSearch searches data, which must be in Eytzinger layout (see
// Layout), for value. The position returned refers to data, not to the
// ascending sequence data was built from.
//
// The walk starts at the root and descends right while the current element
// is less than value, left otherwise, until it falls off the tree. The bits
// of the final node number record the path; shifting out the trailing ones
// plus one zero recovers the last node at which the walk went left, which is
// the lower bound of value.
func EytzingerSearch[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	n, one := eytzingerBounds[I](len(data))
	k := one
	for k <= n {
		if at(data, k-one) < value {
			k = index.Or(index.Shl(k, 1), one)
		} else {
			k = index.Shl(k, 1)
		}
	}
	return eytzingerResult(data, k, value)
}

// EytzingerSearchFixed is EytzingerSearch over a Fixed view.
func EytzingerSearchFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	return EytzingerSearch[I](data.data, value)
}

// EytzingerBranchless is EytzingerSearch with the descent expressed as
// arithmetic on the comparison result instead of a branch.
func EytzingerBranchless[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	n, one := eytzingerBounds[I](len(data))
	k := one
	for k <= n {
		k = index.Or(index.Shl(k, 1), bit[I](at(data, k-one) < value))
	}
	return eytzingerResult(data, k, value)
}

// EytzingerBranchlessFixed is EytzingerBranchless over a Fixed view.
func EytzingerBranchlessFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	return EytzingerBranchless[I](data.data, value)
}

// EytzingerPrefetch is EytzingerBranchless which, before every comparison,
// hints the cache about the two children of the current node. The hints
// use DefaultPrefetcher().
func EytzingerPrefetch[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	return EytzingerPrefetchWith[I](defaultPrefetcher, data, value)
}

// EytzingerPrefetchFixed is EytzingerPrefetch over a Fixed view.
func EytzingerPrefetchFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	return EytzingerPrefetchWith[I](defaultPrefetcher, data.data, value)
}

// EytzingerPrefetchWith is EytzingerPrefetch with an explicit Prefetcher.
func EytzingerPrefetchWith[I index.Unsigned, E cmp.Ordered](p Prefetcher, data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	n, one := eytzingerBounds[I](len(data))
	base := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	size := unsafe.Sizeof(data[0])
	p.Prefetch(base)
	k := one
	for k <= n {
		// children 2k and 2k+1 are adjacent, at 0-based 2k-1 and 2k
		p.Prefetch(base + uintptr(uint64(k)<<1-1)*size)
		k = index.Or(index.Shl(k, 1), bit[I](at(data, k-one) < value))
	}
	return eytzingerResult(data, k, value)
}

// Search searches e for value using the prefetching walk with e's
// configured Prefetcher.
func Search[I index.Unsigned, E cmp.Ordered](e *Eytzinger[E], value E) (I, bool) {
	if e.Len() == 0 {
		return 0, false
	}
	return EytzingerPrefetchWith[I](e.cfg.Prefetcher, e.layout, value)
}

// eytzingerBounds converts n into I. A walk overshoots the last node by one
// level, so node numbers up to 2n+1 must be representable; this is checked
// up front rather than on the first long walk.
func eytzingerBounds[I index.Unsigned](n int) (I, I) {
	one := index.One[I]()
	size := length[I](n)
	_ = index.Or(index.Shl(size, 1), one)
	return size, one
}

// eytzingerResult undoes the overshoot of a finished walk ending at node k.
func eytzingerResult[I index.Unsigned, E cmp.Ordered](data []E, k I, value E) (I, bool) {
	shift := index.FFS(^k)
	if shift == 0 { // k is all ones: the walk never turned left
		return 0, false
	}
	k >>= shift
	if k == 0 || at(data, k-1) != value {
		return 0, false
	}
	return k - 1, true
}

// bit converts a comparison result into 0 or 1.
func bit[I index.Index](b bool) I {
	var i I
	if b {
		i = 1
	}
	return i
}
