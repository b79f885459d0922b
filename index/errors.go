package index

import "errors"

var (
	// ErrOverflow signals index arithmetic whose result does not fit the index type.
	ErrOverflow = errors.New("index: arithmetic overflow")
	// ErrNarrowing signals a cast between int and an index type that loses information.
	ErrNarrowing = errors.New("index: value does not fit target type")
)
