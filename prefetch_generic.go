//go:build !amd64 || !bsearch_prefetch

package bsearch

func platformPrefetcher() (Prefetcher, bool) {
	return nil, false
}
