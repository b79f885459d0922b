package index

import "math/bits"

// IsPowerOfTwo reports whether n is a power of two. Zero counts as one:
// a zero-length sequence needs no bounds checks either.
func IsPowerOfTwo(n uint64) bool {
	return n&(n-1) == 0
}

// Log2 returns floor(log2(n)). It reports false for n == 0.
func Log2(n uint64) (uint, bool) {
	if n == 0 {
		return 0, false
	}
	return uint(bits.Len64(n) - 1), true
}

// PreviousPowerOfTwo returns the largest power of two strictly below n if n
// is itself a power of two, and the largest power of two below n otherwise.
//
//	PreviousPowerOfTwo(0)     == 0
//	PreviousPowerOfTwo(2^k)   == 2^(k-1)
//	PreviousPowerOfTwo(2^k+1) == 2^k
//
// This is the first jump width of a power search over n elements.
func PreviousPowerOfTwo(n uint64) uint64 {
	if IsPowerOfTwo(n) {
		return n >> 1
	}
	l, _ := Log2(n)
	return 1 << l
}

// Steps returns the number of jump widths a power search over n elements
// visits: log2(PreviousPowerOfTwo(n))+1, or 0 if there is no width at all
// (n <= 1).
func Steps(n int) int {
	if n <= 0 {
		return 0
	}
	l, ok := Log2(PreviousPowerOfTwo(uint64(n)))
	if !ok {
		return 0
	}
	return int(l) + 1
}

// FFS returns the 1-based position of the least significant set bit of v,
// or 0 if v is zero.
func FFS[I Index](v I) uint {
	if v == 0 {
		return 0
	}
	return 1 + uint(bits.TrailingZeros64(uint64(v)))
}
