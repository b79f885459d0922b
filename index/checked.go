package index

import "fmt"

func overflow[I Index](op string, a, b any) {
	var z I
	panic(fmt.Errorf("%w: %s(%v, %v) does not fit %T", ErrOverflow, op, a, b, z))
}

// Add returns a+b, panicking if the sum does not fit I.
func Add[I Index](a, b I) I {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		overflow[I]("add", a, b)
	}
	return s
}

// Sub returns a-b, panicking if the difference does not fit I.
// For unsigned index types this catches every underflow below zero.
func Sub[I Index](a, b I) I {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		overflow[I]("sub", a, b)
	}
	return d
}

// Shl returns a<<s, panicking if any significant bit is shifted out or the
// sign of a signed value changes.
func Shl[I Index](a I, s uint) I {
	if s >= uint(Bits[I]()) {
		if a != 0 {
			overflow[I]("shl", a, s)
		}
		return 0
	}
	r := a << s
	if r>>s != a || (a < 0) != (r < 0) {
		overflow[I]("shl", a, s)
	}
	return r
}

// Shr returns a>>s. Shifting right cannot overflow.
func Shr[I Index](a I, s uint) I {
	return a >> s
}

// Or returns the bitwise OR of a and b.
func Or[I Index](a, b I) I {
	return a | b
}

// HalfUp returns ceil((high-low)/2) for low <= high. The difference is
// checked; halving it rounds up without forming high-low+1.
func HalfUp[I Index](low, high I) I {
	d := Sub(high, low)
	return d - d>>1
}
