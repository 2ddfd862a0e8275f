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

// Package pci opens the memory of a PCI device so that it can be accessed
// through a region.Region.
//
// Devices are found through sysfs. The slot of the device is given in the
// same form as reported by lspci and is parsed with ParseBDF(). The Open()
// function of the Sysfs type maps one of the device's BARs:
//
//	bdf, err := pci.ParseBDF("01:00.0")
//	res, err := pci.DefaultSysfs.Open(bdf, 0)
//	reg, err := res.Region()
//
// Closing the region unmaps the memory.
//
// Only BARs that map memory are supported. BARs that decode I/O ports cannot
// be mapped and Open() will fail for them.
package pci
