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
	"os"
	"unsafe"

	"github.com/jetsetilly/pcidebug/curated"
)

// sentinal error patterns
const (
	OutOfBounds  = "region: address %08X out of bounds for %d-bit access"
	InvalidSize  = "region: offset %#x and size %#x do not fit in mapping of %#x bytes"
	SyncError    = "region: sync: %v"
	RegionClosed = "region: closed"
)

// Backing is the owner of the memory that a Region is built over.
type Backing interface {
	// Sync makes sure that any writes to the memory are visible to the
	// device. The slice will start on a page boundary relative to the start
	// of the mapping.
	Sync(mem []byte) error

	// Close releases the memory. The Region will not access the memory after
	// calling Close().
	Close() error
}

// Region is a bounded view of device memory.
type Region struct {
	backing Backing
	mem     []byte

	// offset of the region into mem. added to every address
	offset uint32

	// size of the region in bytes. the highest accessible address is
	// (size - 1)
	size uint32

	pageSize uint32
}

// NewRegion creates a Region over the mem slice. The region starts offset
// bytes into the slice and is size bytes long.
func NewRegion(mem []byte, offset uint32, size uint32, backing Backing) (*Region, error) {
	if uint64(offset)+uint64(size) > uint64(len(mem)) {
		return nil, curated.Errorf(InvalidSize, offset, size, len(mem))
	}

	return &Region{
		backing:  backing,
		mem:      mem,
		offset:   offset,
		size:     size,
		pageSize: uint32(os.Getpagesize()),
	}, nil
}

// Size returns the size of the region in bytes.
func (r *Region) Size() uint32 {
	return r.size
}

// Offset returns the offset of the start of the region into the mapping.
func (r *Region) Offset() uint32 {
	return r.offset
}

// Close releases the region's memory. All subsequent accesses will fail.
func (r *Region) Close() error {
	if r.mem == nil {
		return nil
	}

	r.mem = nil
	r.size = 0

	if r.backing == nil {
		return nil
	}
	return r.backing.Close()
}

// check that the access of n bytes at address is entirely inside the region
func (r *Region) check(address uint32, n uint32) error {
	if r.mem == nil {
		return curated.Errorf(RegionClosed)
	}
	if uint64(address)+uint64(n) > uint64(r.size) {
		return curated.Errorf(OutOfBounds, address, n*8)
	}
	return nil
}

// ptr returns the pointer for the address. the address must have been checked
func (r *Region) ptr(address uint32) unsafe.Pointer {
	return unsafe.Pointer(&r.mem[r.offset+address])
}

// sync the pages covering the n bytes written at address
func (r *Region) sync(address uint32, n uint32) error {
	if r.backing == nil {
		return nil
	}

	start := r.offset + address
	page := start &^ (r.pageSize - 1)
	if err := r.backing.Sync(r.mem[page : start+n]); err != nil {
		return curated.Errorf(SyncError, err)
	}
	return nil
}

// Read8 returns the byte at address.
func (r *Region) Read8(address uint32) (uint8, error) {
	if err := r.check(address, 1); err != nil {
		return 0, err
	}
	return load8(r.ptr(address)), nil
}

// Read16 returns the 16-bit value at address. The value is returned exactly
// as it is stored, with no regard to byte order.
func (r *Region) Read16(address uint32) (uint16, error) {
	if err := r.check(address, 2); err != nil {
		return 0, err
	}
	return load16(r.ptr(address)), nil
}

// Read32 returns the 32-bit value at address. The value is returned exactly
// as it is stored, with no regard to byte order.
func (r *Region) Read32(address uint32) (uint32, error) {
	if err := r.check(address, 4); err != nil {
		return 0, err
	}
	return load32(r.ptr(address)), nil
}

// Write8 stores the byte at address and syncs it with the device.
func (r *Region) Write8(address uint32, data uint8) error {
	if err := r.check(address, 1); err != nil {
		return err
	}
	store8(r.ptr(address), data)
	return r.sync(address, 1)
}

// Write16 stores the 16-bit value at address and syncs it with the device.
// The value is stored as it is, with no regard to byte order.
func (r *Region) Write16(address uint32, data uint16) error {
	if err := r.check(address, 2); err != nil {
		return err
	}
	store16(r.ptr(address), data)
	return r.sync(address, 2)
}

// Write32 stores the 32-bit value at address and syncs it with the device.
// The value is stored as it is, with no regard to byte order.
func (r *Region) Write32(address uint32, data uint32) error {
	if err := r.check(address, 4); err != nil {
		return err
	}
	store32(r.ptr(address), data)
	return r.sync(address, 4)
}
