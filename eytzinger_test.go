package bsearch

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ascending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = 2 * i
	}
	return s
}

func TestLayoutRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bsearch")
	defer teardown()
	//
	for n := 0; n <= 513; n++ {
		sorted := ascending(n)
		e, err := NewEytzinger(sorted, Config{Verify: true})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if got := slices.Collect(e.InOrder()); !slices.Equal(got, sorted) && n > 0 {
			t.Fatalf("n=%d: in-order walk differs from source", n)
		}
		if e.Len() != n {
			t.Fatalf("n=%d: length is %d", n, e.Len())
		}
	}
}

func TestLayoutKnownPermutation(t *testing.T) {
	dst := make([]int, 10)
	if err := Layout(dst, ascending(10)); err != nil {
		t.Fatal(err)
	}
	// in-order fill of a 10-node complete tree
	want := []int{12, 6, 16, 2, 10, 14, 18, 0, 4, 8}
	if !slices.Equal(dst, want) {
		t.Fatalf("expected layout %v, got %v", want, dst)
	}
}

func TestLayoutLengthMismatch(t *testing.T) {
	dst := []int{-1, -1}
	err := Layout(dst, ascending(3))
	if !errors.Is(err, ErrLayoutMismatch) {
		t.Fatalf("expected ErrLayoutMismatch, got %v", err)
	}
	if dst[0] != -1 || dst[1] != -1 {
		t.Errorf("destination has been modified: %v", dst)
	}
}

func TestNewEytzingerRejectsUnsorted(t *testing.T) {
	_, err := NewEytzinger([]int{1, 3, 2}, Config{})
	if !errors.Is(err, ErrNotSorted) {
		t.Fatalf("expected ErrNotSorted, got %v", err)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	sorted := ascending(31)
	e, err := NewEytzinger(sorted, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err = e.Check(sorted); err != nil {
		t.Fatalf("fresh layout does not check: %v", err)
	}
	e.layout[3], e.layout[4] = e.layout[4], e.layout[3]
	if err = e.Check(sorted); !errors.Is(err, ErrNotSorted) {
		t.Errorf("expected swapped nodes to be detected, got %v", err)
	}
	if err = e.Check(sorted[:30]); !errors.Is(err, ErrLayoutMismatch) {
		t.Errorf("expected length mismatch to be detected, got %v", err)
	}
}

func TestRank(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 10, 100, 511, 512, 513} {
		sorted := ascending(n)
		e, err := NewEytzinger(sorted, Config{})
		if err != nil {
			t.Fatal(err)
		}
		for pos := range n {
			rank, err := e.Rank(pos)
			if err != nil {
				t.Fatalf("n=%d, pos=%d: %v", n, pos, err)
			}
			x, _ := e.At(pos)
			if sorted[rank] != x {
				t.Fatalf("n=%d, pos=%d: rank %d holds %d, layout holds %d", n, pos, rank, sorted[rank], x)
			}
		}
		if _, err := e.Rank(n); !errors.Is(err, ErrIllegalArguments) {
			t.Errorf("n=%d: expected out of range rank to fail, got %v", n, err)
		}
	}
}

func TestSubtreeSize(t *testing.T) {
	tests := []struct {
		k, n, want int
	}{
		{1, 0, 0},
		{1, 1, 1},
		{1, 10, 10},
		{2, 10, 6}, // nodes 2, 4, 5, 8, 9, 10
		{3, 10, 3}, // nodes 3, 6, 7
		{5, 10, 2}, // nodes 5, 10
		{11, 10, 0},
	}
	for _, tt := range tests {
		if got := subtreeSize(tt.k, tt.n); got != tt.want {
			t.Errorf("subtreeSize(%d, %d) = %d, want %d", tt.k, tt.n, got, tt.want)
		}
	}
}

type countingPrefetcher struct {
	hints int
}

func (p *countingPrefetcher) Prefetch(uintptr) { p.hints++ }

func TestSearchUsesConfiguredPrefetcher(t *testing.T) {
	sorted := ascending(100)
	p := &countingPrefetcher{}
	e, err := NewEytzinger(sorted, Config{Prefetcher: p})
	if err != nil {
		t.Fatal(err)
	}
	for rank, x := range sorted {
		pos, found := Search[uint16](e, x)
		if !found {
			t.Fatalf("%d not found", x)
		}
		if r, _ := e.Rank(int(pos)); r != rank {
			t.Fatalf("%d found at rank %d, want %d", x, r, rank)
		}
		if _, found = Search[uint16](e, x+1); found {
			t.Fatalf("%d found", x+1)
		}
	}
	if p.hints == 0 {
		t.Errorf("prefetcher has not been called")
	}
	if _, found := Search[uint8](&Eytzinger[int]{}, 0); found {
		t.Errorf("found value in empty layout")
	}
}

func TestDefaultPrefetcher(t *testing.T) {
	p := DefaultPrefetcher()
	if p == nil {
		t.Fatal("default prefetcher is nil")
	}
	if _, ok := platformPrefetcher(); !ok {
		if _, isNoop := p.(NoPrefetch); !isNoop {
			t.Errorf("expected NoPrefetch without platform support, got %T", p)
		}
	}
	cfg := Config{}.normalized()
	if cfg.Prefetcher == nil {
		t.Errorf("normalized config lacks a prefetcher")
	}
}

func TestFixedOf(t *testing.T) {
	tests := []struct {
		n     int
		pow2  bool
		half  uint64
		steps int
	}{
		{0, true, 0, 0},
		{1, true, 0, 0},
		{2, true, 1, 1},
		{3, false, 2, 2},
		{512, true, 256, 9},
		{513, false, 512, 10},
	}
	for _, tt := range tests {
		f := FixedOf(ascending(tt.n))
		if f.pow2 != tt.pow2 || f.half != tt.half || f.steps != tt.steps {
			t.Errorf("FixedOf(n=%d) = {pow2 %v, half %d, steps %d}, want {%v, %d, %d}",
				tt.n, f.pow2, f.half, f.steps, tt.pow2, tt.half, tt.steps)
		}
	}
}

func TestPrecondition(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrIllegalArguments) {
			t.Errorf("expected panic wrapping ErrIllegalArguments, got %v", r)
		}
	}()
	precondition(false, ErrIllegalArguments, "value %d", 7)
}

func TestEytzinger2Dot(t *testing.T) {
	e, err := NewEytzinger(ascending(6), Config{})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	Eytzinger2Dot(e, &b, 4)
	dot := b.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a digraph:\n%s", dot)
	}
	// node 3 has a left child (6) only
	for _, edge := range []string{`"1" -> "2"`, `"1" -> "3"`, `"3" -> "6"`, `"3" -> "7"`} {
		if !strings.Contains(dot, edge) {
			t.Errorf("expected edge %s in\n%s", edge, dot)
		}
	}
	if strings.Contains(dot, `"4" -> `) {
		t.Errorf("leaf 4 must not have children:\n%s", dot)
	}
	// a search for 4 visits 1, 2, 5
	if got := e.walk(4); !got[1] || !got[2] || !got[5] || len(got) != 3 {
		t.Errorf("unexpected search path %v", got)
	}
}
