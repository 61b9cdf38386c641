// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error. The pattern doubles as the identity of the
// error: the Is() function checks whether an error was created from a
// specific pattern and the Has() function checks whether the pattern occurs
// anywhere in the error chain.
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, next to the code that raises them. For example, the cpu package
// defines the IllegalOpcode pattern, raised during instruction decoding and
// checked for by the host:
//
//	if curated.Is(err, cpu.IllegalOpcode) {
//		...
//	}
//
// The IsAny() function answers whether the error was created by the curated
// package at all. We can think of the difference between curated and
// uncurated errors as the difference between 'expected' and 'unexpected'
// errors, depending on how we choose to handle the result of a function
// call.
//
// The Error() function implementation normalises the error chain by removing
// duplicate adjacent message parts. The practical advantage is that it
// alleviates the problem of when and how to wrap errors: wrapping the same
// message twice does no harm. For the purposes of this package a chain is a
// string composed of parts separated by the sub-string ': ', as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan).
package curated
