package bsearch

import (
	"cmp"

	"github.com/npillmayer/bsearch/index"
)

// Algorithm describes one member of the search family.
type Algorithm[I index.Index, E cmp.Ordered] struct {
	Name        string
	Search      Func[I, E]
	SearchFixed FixedFunc[I, E]
	// Eytzinger is set for algorithms which expect their input in Eytzinger
	// layout rather than in ascending order.
	Eytzinger bool
}

// UnsignedFamily lists every algorithm working with the unsigned index type I.
//
// PowerWithoutBoundCheck is not listed, as it is only valid for lengths
// which are a power of two; Power dispatches to it where possible.
func UnsignedFamily[I index.Unsigned, E cmp.Ordered]() []Algorithm[I, E] {
	return []Algorithm[I, E]{
		{Name: "unsigned_traditional", Search: UnsignedTraditional[I, E], SearchFixed: UnsignedTraditionalFixed[I, E]},
		{Name: "alternative", Search: Alternative[I, E], SearchFixed: AlternativeFixed[I, E]},
		{Name: "range", Search: Uniform[I, E], SearchFixed: UniformFixed[I, E]},
		{Name: "power", Search: Power[I, E], SearchFixed: PowerFixed[I, E]},
		{Name: "power_with_bound_check", Search: PowerWithBoundCheck[I, E], SearchFixed: PowerWithBoundCheckFixed[I, E]},
		{Name: "eytzinger", Search: EytzingerSearch[I, E], SearchFixed: EytzingerSearchFixed[I, E], Eytzinger: true},
		{Name: "eytzinger_branchless", Search: EytzingerBranchless[I, E], SearchFixed: EytzingerBranchlessFixed[I, E], Eytzinger: true},
		{Name: "eytzinger_prefetch", Search: EytzingerPrefetch[I, E], SearchFixed: EytzingerPrefetchFixed[I, E], Eytzinger: true},
	}
}

// SignedFamily lists every algorithm working with the signed index type I.
func SignedFamily[I index.Signed, E cmp.Ordered]() []Algorithm[I, E] {
	return []Algorithm[I, E]{
		{Name: "signed_traditional", Search: SignedTraditional[I, E], SearchFixed: SignedTraditionalFixed[I, E]},
	}
}
