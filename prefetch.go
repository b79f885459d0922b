package bsearch

// Prefetcher issues a non-binding hint that the memory at addr will be read
// soon. Implementations must not fault on any address, as hints may point
// past the end of a sequence.
type Prefetcher interface {
	Prefetch(addr uintptr)
}

// NoPrefetch is a Prefetcher which does nothing.
type NoPrefetch struct{}

// Prefetch is a no-op.
func (NoPrefetch) Prefetch(uintptr) {}

var defaultPrefetcher = DefaultPrefetcher()

// DefaultPrefetcher returns the prefetcher of the target platform if the
// module has been built with one (build tag bsearch_prefetch) and the CPU
// supports it, and NoPrefetch otherwise.
func DefaultPrefetcher() Prefetcher {
	if p, ok := platformPrefetcher(); ok {
		return p
	}
	return NoPrefetch{}
}
