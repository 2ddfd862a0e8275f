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

import (
	"sync/atomic"
	"unsafe"
)

// the accessor functions must not be inlined. if they were, the compiler
// would be free to combine or remove accesses to the same address, which
// is fine for ordinary memory but not for device registers

//go:noinline
func load8(p unsafe.Pointer) uint8 {
	return *(*uint8)(p)
}

//go:noinline
func load16(p unsafe.Pointer) uint16 {
	return *(*uint16)(p)
}

//go:noinline
func load32(p unsafe.Pointer) uint32 {
	if uintptr(p)&3 == 0 {
		return atomic.LoadUint32((*uint32)(p))
	}
	return *(*uint32)(p)
}

//go:noinline
func store8(p unsafe.Pointer, v uint8) {
	*(*uint8)(p) = v
}

//go:noinline
func store16(p unsafe.Pointer, v uint16) {
	*(*uint16)(p) = v
}

//go:noinline
func store32(p unsafe.Pointer, v uint32) {
	if uintptr(p)&3 == 0 {
		atomic.StoreUint32((*uint32)(p), v)
		return
	}
	*(*uint32)(p) = v
}
