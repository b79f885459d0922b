package searchtest

import (
	"iter"
	"slices"

	"github.com/npillmayer/bsearch"
	"github.com/npillmayer/bsearch/index"
	"golang.org/x/exp/constraints"
)

// Validate probes search over data with every value of Probes(data) and
// compares each result with Oracle. data must have been produced by Generate.
// It reports whether all probes matched; mismatches are traced.
func Validate[I index.Index, E constraints.Integer](search bsearch.Func[I, E], data []E) bool {
	return validate[I](func(v E) (I, bool) {
		return search(data, v)
	}, len(data), Probes(data))
}

// ValidateFixed is Validate for searches over a Fixed view.
func ValidateFixed[I index.Index, E constraints.Integer](search bsearch.FixedFunc[I, E], data bsearch.Fixed[E]) bool {
	return validate[I](func(v E) (I, bool) {
		return search(data, v)
	}, data.Len(), Probes(data.Slice()))
}

// ValidateLayout is Validate for searches over a dataset in Eytzinger layout.
// Positions returned by such searches refer to the layout, so instead of
// comparing positions it checks that a found position holds the probe and
// that the probe is found if and only if Oracle finds it.
func ValidateLayout[I index.Index, E constraints.Integer](search bsearch.Func[I, E], layout []E) bool {
	var first, last E
	if len(layout) > 0 {
		first, last = slices.Min(layout), slices.Max(layout)
	}
	ok := true
	for v := range probeRange(first, last) {
		got, found := search(layout, v)
		_, want := Oracle[I](len(layout), v)
		if found != want || found && layout[index.MustToInt(got)] != v {
			tracer().Errorf("searchtest: layout probe %d: got (%d, %v), want found=%v", v, got, found, want)
			ok = false
		}
	}
	return ok
}

// ValidateIndexless only checks that search finds exactly the probes Oracle
// finds, ignoring the positions it reports.
func ValidateIndexless[I index.Index, E constraints.Integer](search bsearch.Func[I, E], data []E) bool {
	ok := true
	for v := range Probes(data) {
		_, found := search(data, v)
		if _, want := Oracle[I](len(data), v); found != want {
			tracer().Errorf("searchtest: probe %d: found=%v, want %v", v, found, want)
			ok = false
		}
	}
	return ok
}

func validate[I index.Index, E constraints.Integer](search func(E) (I, bool), n int, probes iter.Seq[E]) bool {
	ok, count := true, 0
	for v := range probes {
		count++
		got, found := search(v)
		want, wantFound := Oracle[I](n, v)
		if found != wantFound || found && got != want {
			tracer().Errorf("searchtest: probe %d: got (%d, %v), want (%d, %v)", v, got, found, want, wantFound)
			ok = false
		}
	}
	tracer().Debugf("searchtest: %d probes over %d elements, ok=%v", count, n, ok)
	return ok
}
