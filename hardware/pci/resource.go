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

package pci

import (
	"os"

	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/hardware/region"
	"golang.org/x/sys/unix"
)

// Resource is the mapped memory of a single BAR. It implements the
// region.Backing interface.
type Resource struct {
	bdf  BDF
	bar  int
	file *os.File
	mem  []byte

	// offset of the BAR's memory into the mapping
	offset uint32

	// size of the BAR's memory
	size uint32
}

// BDF returns the address of the device.
func (res *Resource) BDF() BDF {
	return res.bdf
}

// BAR returns the index of the mapped BAR.
func (res *Resource) BAR() int {
	return res.bar
}

// Size returns the size of the BAR in bytes.
func (res *Resource) Size() uint32 {
	return res.size
}

// Offset returns the offset of the BAR's memory into the mapping.
func (res *Resource) Offset() uint32 {
	return res.offset
}

// Region returns a region over the BAR's memory. The region takes ownership
// of the resource and closing the region will close the resource.
func (res *Resource) Region() (*region.Region, error) {
	return region.NewRegion(res.mem, res.offset, res.size, res)
}

// Sync implements the region.Backing interface. The pages are flushed and any
// cached copies are invalidated.
func (res *Resource) Sync(mem []byte) error {
	return unix.Msync(mem, unix.MS_SYNC|unix.MS_INVALIDATE)
}

// Close implements the region.Backing interface.
func (res *Resource) Close() error {
	if res.mem == nil {
		return nil
	}

	err := unix.Munmap(res.mem)
	res.mem = nil
	res.file.Close()

	if err != nil {
		return curated.Errorf(UnmapError, err)
	}
	return nil
}
