/*
Package index holds the arithmetic contract every search algorithm of
package bsearch requires from its index type.

An index type is any Go integer type (see Index). Its bit width is chosen by
the caller and is independent of the platform's native int. Conversions
between slice lengths/positions and the index type are fallible, and the
arithmetic helpers of this package are checked: an operation whose result
does not fit the index type panics with an error wrapping ErrOverflow instead
of wrapping around. Search algorithms rely on this to fail loudly when a caller
picks an index type that is too narrow for the data.

The package also provides the small set of power-of-two utilities the jump
search and the Eytzinger layout are built on.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package index
