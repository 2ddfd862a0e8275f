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

// Package access implements the memory operations of the debugger: display,
// change and fill. Operations are performed by an Engine, which combines a
// region.Region with the byte order conversions of the endian package.
//
// The byte order to use is passed to every operation. The Engine does not
// keep any state of its own besides the region.
//
// The start address of every operation is checked against the size of the
// region. For Display() and Fill() the length is then silently truncated so
// that the operation does not run past the end of the region.
//
// Note that Change() and Fill() only check the start address and not the
// start address plus the width of the access. An access that straddles the
// end of the region passes this check but will be rejected by the region
// itself.
package access
