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

// Package region is a bounded view of device memory. A Region is built over a
// mapping of the device's memory (or over ordinary memory for testing) and
// exposes width-specific read and write functions. Every access is checked
// against the size of the region before any memory is touched.
//
// Reads and writes are performed through accessor functions that the
// compiler cannot inline, merge or remove. Writes are followed by a call to
// the Backing's Sync() function so that the value reaches the device rather
// than sitting in a host buffer.
//
// Addresses are always byte based and are relative to the start of the
// region, which may itself be some way into the mapping. See NewRegion().
//
// The Region type is not safe for concurrent use.
package region
