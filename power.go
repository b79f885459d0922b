package bsearch

import (
	"cmp"

	"github.com/npillmayer/bsearch/index"
)

// Power is jump search driven by powers of two.
//
// Starting from the largest power of two below the length, a cursor low is
// advanced by or-ing decreasing powers of two into it whenever the element at
// the tentative position does not exceed value. As low is always a sum of
// strictly larger powers of two, or-ing equals adding.
//
// If the length is a power of two every tentative position is in range and
// the bounds check is skipped; otherwise Power falls back to
// PowerWithBoundCheck.
func Power[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	if len(data) == 0 {
		return 0, false
	}
	if index.IsPowerOfTwo(uint64(len(data))) {
		return PowerWithoutBoundCheck[I](data, value)
	}
	return PowerWithBoundCheck[I](data, value)
}

// PowerWithoutBoundCheck is power search without bounds checks. It is only
// valid if the length of data is a power of two or zero; calling it with any
// other length is a contract violation and panics with ErrNotPowerOfTwo.
func PowerWithoutBoundCheck[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	n := length[I](len(data))
	precondition(index.IsPowerOfTwo(uint64(n)), ErrNotPowerOfTwo, "length %d", n)
	if n == 0 {
		return 0, false
	}
	low := index.Zero[I]()
	for width := length[I](int(index.PreviousPowerOfTwo(uint64(n)))); width > 0; width >>= 1 {
		mid := index.Or(low, width)
		if at(data, mid) <= value {
			low = mid
		}
	}
	return verify(data, low, value)
}

// PowerWithBoundCheck is power search with a bounds check on every tentative
// position. It is valid for any length.
func PowerWithBoundCheck[I index.Unsigned, E cmp.Ordered](data []E, value E) (I, bool) {
	n := length[I](len(data))
	if n == 0 {
		return 0, false
	}
	low := index.Zero[I]()
	for width := length[I](int(index.PreviousPowerOfTwo(uint64(n)))); width > 0; width >>= 1 {
		mid := index.Or(low, width)
		if mid < n && at(data, mid) <= value {
			low = mid
		}
	}
	return verify(data, low, value)
}

// PowerFixed is Power over a Fixed view. The loop runs exactly
// data.Steps() times.
func PowerFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	if data.Len() == 0 {
		return 0, false
	}
	if data.pow2 {
		return PowerWithoutBoundCheckFixed[I](data, value)
	}
	return PowerWithBoundCheckFixed[I](data, value)
}

// PowerWithoutBoundCheckFixed is PowerWithoutBoundCheck over a Fixed view.
func PowerWithoutBoundCheckFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	n := length[I](data.Len())
	precondition(data.pow2, ErrNotPowerOfTwo, "length %d", n)
	if n == 0 {
		return 0, false
	}
	low, width := index.Zero[I](), length[I](int(data.half))
	for range data.steps {
		mid := index.Or(low, width)
		if at(data.data, mid) <= value {
			low = mid
		}
		width >>= 1
	}
	return verify(data.data, low, value)
}

// PowerWithBoundCheckFixed is PowerWithBoundCheck over a Fixed view.
func PowerWithBoundCheckFixed[I index.Unsigned, E cmp.Ordered](data Fixed[E], value E) (I, bool) {
	n := length[I](data.Len())
	if n == 0 {
		return 0, false
	}
	low, width := index.Zero[I](), length[I](int(data.half))
	for range data.steps {
		mid := index.Or(low, width)
		if mid < n && at(data.data, mid) <= value {
			low = mid
		}
		width >>= 1
	}
	return verify(data.data, low, value)
}

// verify confirms that the approximate position low holds value.
func verify[I index.Index, E cmp.Ordered](data []E, low I, value E) (I, bool) {
	if at(data, low) == value {
		return low, true
	}
	return 0, false
}
