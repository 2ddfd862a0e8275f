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

package region

// memory is a Backing for ordinary memory. there is nothing to sync
type memory struct{}

func (memory) Sync([]byte) error {
	return nil
}

func (memory) Close() error {
	return nil
}

// NewMemory creates a Region of the specified size over ordinary memory.
// Useful for testing and for trying out commands without a device.
func NewMemory(size uint32) *Region {
	// the slice is never shorter than size so NewRegion() cannot fail
	r, _ := NewRegion(make([]byte, size), 0, size, memory{})
	return r
}
