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

package access

import "fmt"

// Width is the number of bits transferred by a single access.
type Width int

// List of valid Width values.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// NewWidth returns the Width for the number of bits. Returns false if the
// number of bits is not a supported width.
func NewWidth(bits int) (Width, bool) {
	switch Width(bits) {
	case Width8, Width16, Width32:
		return Width(bits), true
	}
	return Width32, false
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", int(w))
}

// Bytes returns the number of bytes transferred by a single access.
func (w Width) Bytes() uint32 {
	return uint32(w) / 8
}

// Digits returns the number of hex digits required to show a value of the
// width.
func (w Width) Digits() int {
	return int(w) / 4
}

// Truncate returns the value with any bits above the width cleared.
func (w Width) Truncate(v uint32) uint32 {
	switch w {
	case Width8:
		return v & 0xff
	case Width16:
		return v & 0xffff
	}
	return v
}
