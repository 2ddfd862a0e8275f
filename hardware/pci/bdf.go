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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/pcidebug/curated"
)

// InvalidBDF is the sentinal error pattern for slots that cannot be parsed.
const InvalidBDF = "pci: invalid device %q: expected DDDD:BB:DD.F or BB:DD.F"

// BDF is the address of a PCI function. Domain, bus, device and function.
type BDF struct {
	Domain   uint16
	Bus      uint8
	Device   uint8
	Function uint8
}

// ParseBDF parses a slot in the format "DDDD:BB:DD.F" or "BB:DD.F". All
// fields are hexadecimal. The domain is zero if it is not specified.
func ParseBDF(s string) (BDF, error) {
	s = strings.TrimSpace(s)

	var bdf BDF
	var tail string

	n, _ := fmt.Sscanf(s, "%x:%x:%x.%x%s", &bdf.Domain, &bdf.Bus, &bdf.Device, &bdf.Function, &tail)
	if n != 4 {
		bdf = BDF{}
		n, _ = fmt.Sscanf(s, "%x:%x.%x%s", &bdf.Bus, &bdf.Device, &bdf.Function, &tail)
		if n != 3 {
			return BDF{}, curated.Errorf(InvalidBDF, s)
		}
	}

	// device numbers are five bits and function numbers are three bits
	if bdf.Device > 0x1f || bdf.Function > 0x07 {
		return BDF{}, curated.Errorf(InvalidBDF, s)
	}

	return bdf, nil
}

// String returns the canonical form of the address, "DDDD:BB:DD.F", as used
// by sysfs.
func (b BDF) String() string {
	return fmt.Sprintf("%04x:%02x:%02x.%x", b.Domain, b.Bus, b.Device, b.Function)
}

// Short returns the address in the format used by lspci, "BB:DD.F".
func (b BDF) Short() string {
	return fmt.Sprintf("%02x:%02x.%x", b.Bus, b.Device, b.Function)
}

// SysfsPath returns the path to the device's directory in the sysfs
// directory root. See DefaultRoot.
func (b BDF) SysfsPath(root string) string {
	return filepath.Join(root, b.String())
}
