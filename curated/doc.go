// This file is part of pcidebug.
//
// pcidebug is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pcidebug is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pcidebug.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are the error type used
// throughout pcidebug for errors that the operator is expected to see.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. The pattern string is remembered
// and is used to identify the kind of error later on:
//
//	const OutOfBounds = "region: address %08X out of bounds for %d-bit access"
//
//	err := curated.Errorf(OutOfBounds, addr, 32)
//	if curated.Is(err, OutOfBounds) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. The chain is made of curated errors passed as values to
// Errorf() and of any plain error passed with the %w verb, which also makes
// the plain error visible to errors.Is() and errors.As().
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. Parts are separated by the sub-string ": ".
// For example, wrapping "pci: no such device" in "pci: %v" produces the
// message "pci: no such device" and not "pci: pci: no such device".
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
package curated
