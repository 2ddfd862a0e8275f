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
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/logger"
	"golang.org/x/sys/unix"
)

// sentinal error patterns
const (
	InvalidBAR    = "pci: invalid BAR %d: must be between 0 and %d"
	OpenError     = "pci: %v"
	EmptyResource = "pci: %s has zero size"
	LargeResource = "pci: %s is too large (%d bytes): BARs must be smaller than 4GiB"
	ConfigError   = "pci: reading BAR%d register: %v"
	MapError      = "pci: BARs that are I/O ports are not supported by this tool: %v"
	UnmapError    = "pci: unmap: %v"
)

// NumBARs is the number of base address registers in a type 0 configuration
// header.
const NumBARs = 6

// DefaultRoot is the directory in sysfs containing the PCI devices.
const DefaultRoot = "/sys/bus/pci/devices"

// offset of the first BAR register in configuration space
const barRegisters = 0x10

// Sysfs opens PCI devices through a sysfs directory.
type Sysfs struct {
	// directory containing one directory for each device, named by the
	// canonical form of the device's BDF
	Root string
}

// DefaultSysfs uses the real sysfs directory.
var DefaultSysfs = Sysfs{Root: DefaultRoot}

// Open maps the memory of the BAR of the device.
func (sys Sysfs) Open(bdf BDF, bar int) (*Resource, error) {
	if bar < 0 || bar >= NumBARs {
		return nil, curated.Errorf(InvalidBAR, bar, NumBARs-1)
	}

	dir := bdf.SysfsPath(sys.Root)
	path := filepath.Join(dir, fmt.Sprintf("resource%d", bar))

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, curated.Errorf(OpenError, err)
	}
	if info.Size() == 0 {
		f.Close()
		return nil, curated.Errorf(EmptyResource, path)
	}
	if info.Size() > math.MaxUint32 {
		f.Close()
		return nil, curated.Errorf(LargeResource, path, info.Size())
	}
	size := uint32(info.Size())

	offset, err := subPageOffset(filepath.Join(dir, "config"), bar)
	if err != nil {
		f.Close()
		return nil, err
	}

	// the mapping must cover whole pages
	pageSize := uint64(os.Getpagesize())
	length := (uint64(offset) + uint64(size) + pageSize - 1) &^ (pageSize - 1)

	mem, err := unix.Mmap(int(f.Fd()), 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(MapError, err)
	}

	logger.Logf(logger.Verbosity(2), "pci", "mapped %s: %d bytes at offset %d", path, size, offset)

	return &Resource{
		bdf:    bdf,
		bar:    bar,
		file:   f,
		mem:    mem,
		offset: offset,
		size:   size,
	}, nil
}

// subPageOffset reads the BAR register from the device's configuration space
// and returns the offset of the BAR's memory from the start of its page.
func subPageOffset(config string, bar int) (uint32, error) {
	f, err := os.Open(config)
	if err != nil {
		return 0, curated.Errorf(ConfigError, bar, err)
	}
	defer f.Close()

	// configuration space is always little-endian
	var b [4]byte
	if _, err := f.ReadAt(b[:], int64(barRegisters+4*bar)); err != nil {
		return 0, curated.Errorf(ConfigError, bar, err)
	}
	phys := binary.LittleEndian.Uint32(b[:])

	// the low four bits of a memory BAR are flags
	return (phys & 0xfffffff0) % 0x1000, nil
}
