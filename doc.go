/*
Package bsearch offers a family of exact-match search algorithms over
ascending, random-access sequences.

Search Family

Every algorithm answers the same question: at which position of an ascending
sequence does an element equal to a probe value live? The variants differ in
how they get there, trading branch count, bounds checks and memory layout for
speed:

  - traditional search with two comparisons per step, for signed and
    unsigned index types,
  - alternative search with a single comparison per step,
  - uniform ("range") search, halving a width instead of two bounds,
  - power (jump) search, or-ing decreasing powers of two into a cursor,
    with and without bounds checks,
  - Eytzinger search over an implicit-heap permutation of the sequence,
    as a plain, a branchless and a prefetching walk.

All algorithms are generic over the element type and over the integer type
used for indices (see package index). The index type is the caller's choice
and need not match the platform's int. If it is too narrow for the data, the
algorithms panic instead of returning a wrong answer.

Each algorithm comes in two shapes: one taking a plain slice, and one taking a
Fixed view whose length-derived constants are computed once, up front.

Searches never mutate their input and hold no state; it is safe to run any
number of them concurrently over the same slice.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bsearch

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SearchError is an error type for the bsearch module
type SearchError string

func (e SearchError) Error() string {
	return string(e)
}

// ErrLayoutMismatch is flagged whenever an Eytzinger destination and its
// source differ in length.
const ErrLayoutMismatch = SearchError("eytzinger layout and source differ in length")

// ErrNotPowerOfTwo is flagged when a search that relies on a power-of-two
// length is handed any other length.
const ErrNotPowerOfTwo = SearchError("sequence length is not a power of two")

// ErrNotSorted is flagged whenever a sequence is expected to be ascending
// but is not.
const ErrNotSorted = SearchError("sequence is not sorted ascending")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SearchError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// precondition panics with an error wrapping err if condition does not hold.
func precondition(condition bool, err error, format string, args ...any) {
	if !condition {
		panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
	}
}
