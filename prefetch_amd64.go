//go:build amd64 && bsearch_prefetch

package bsearch

import "golang.org/x/sys/cpu"

// prefetchT2 hints the cache line at addr into all but the first-level cache.
//
//go:noescape
func prefetchT2(addr uintptr)

type prefetchT2Hint struct{}

func (prefetchT2Hint) Prefetch(addr uintptr) {
	prefetchT2(addr)
}

func platformPrefetcher() (Prefetcher, bool) {
	if !cpu.X86.HasSSE2 {
		return nil, false
	}
	return prefetchT2Hint{}, true
}
