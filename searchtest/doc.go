/*
Package searchtest provides datasets, an oracle and an exhaustive validator
for the search algorithms of package bsearch.

Datasets are ascending sequences whose element at position i is 2·i. For
such a dataset the correct answer to any probe v is known without searching:
v is found at position v/2 if and only if v is even and v/2 is a valid
position. Validate runs a search against every integer probe from one below
the first element to one above the last and compares each result against
this oracle.

Like net/http/httptest, the package is meant to be used from tests and
benchmarks, but it is ordinary library code.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package searchtest

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bsearch'
func tracer() tracing.Trace {
	return tracing.Select("bsearch")
}

// ErrCapacity signals a dataset request which the element type or the index
// type cannot represent.
var ErrCapacity = errors.New("searchtest: dataset exceeds capacity")
