package index

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Index is the ordered index constraint shared by all search algorithms.
type Index interface {
	constraints.Integer
}

// Signed narrows Index to signed integer types.
type Signed interface {
	constraints.Signed
}

// Unsigned narrows Index to unsigned integer types.
type Unsigned interface {
	constraints.Unsigned
}

// Zero returns the additive identity of I.
func Zero[I Index]() I {
	return 0
}

// One returns the multiplicative identity of I.
func One[I Index]() I {
	return 1
}

// Bits returns the bit width of I.
func Bits[I Index]() int {
	var z I
	return int(unsafe.Sizeof(z)) * 8
}

// IsSigned reports whether I is a signed integer type.
func IsSigned[I Index]() bool {
	var z I
	return ^z < 0
}

// Max returns the largest value representable by I.
func Max[I Index]() I {
	if IsSigned[I]() {
		return I(uint64(1)<<(Bits[I]()-1) - 1)
	}
	var z I
	return ^z
}

// Min returns the smallest value representable by I.
func Min[I Index]() I {
	if IsSigned[I]() {
		return -Max[I]() - 1
	}
	return 0
}

// FromLen converts a slice length or position into the index type.
// It fails if n is negative or exceeds Max[I].
func FromLen[I Index](n int) (I, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrNarrowing, n)
	}
	if uint64(n) > uint64(Max[I]()) {
		return 0, fmt.Errorf("%w: %d exceeds %T (max %d)", ErrNarrowing, n, Max[I](), Max[I]())
	}
	return I(n), nil
}

// MustFromLen is like FromLen but panics with the conversion error.
func MustFromLen[I Index](n int) I {
	i, err := FromLen[I](n)
	if err != nil {
		panic(err)
	}
	return i
}

// ToInt converts an index back into a slice position.
// It fails for negative indices and for values beyond math.MaxInt.
func ToInt[I Index](i I) (int, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: negative index %d", ErrNarrowing, i)
	}
	if uint64(i) > math.MaxInt {
		return 0, fmt.Errorf("%w: index %d exceeds int", ErrNarrowing, i)
	}
	return int(i), nil
}

// MustToInt is like ToInt but panics with the conversion error.
func MustToInt[I Index](i I) int {
	n, err := ToInt(i)
	if err != nil {
		panic(err)
	}
	return n
}
