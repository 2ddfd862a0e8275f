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

package pci_test

import (
	"testing"

	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/hardware/pci"
	"github.com/jetsetilly/pcidebug/test"
)

func TestParseBDF(t *testing.T) {
	bdf, err := pci.ParseBDF("01:00.0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, bdf, pci.BDF{Bus: 0x01})
	test.ExpectEquality(t, bdf.String(), "0000:01:00.0")
	test.ExpectEquality(t, bdf.Short(), "01:00.0")

	bdf, err = pci.ParseBDF("0001:3a:1f.7")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, bdf, pci.BDF{Domain: 1, Bus: 0x3a, Device: 0x1f, Function: 7})
	test.ExpectEquality(t, bdf.String(), "0001:3a:1f.7")
	test.ExpectEquality(t, bdf.SysfsPath(pci.DefaultRoot), "/sys/bus/pci/devices/0001:3a:1f.7")

	bdf, err = pci.ParseBDF("  00:02.1\n")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, bdf, pci.BDF{Device: 2, Function: 1})
}

func TestParseBDFFailures(t *testing.T) {
	for _, s := range []string{
		"",
		"01",
		"01:00",
		"xx:00.0",
		"01:20.0",
		"01:00.8",
		"01:00.0 extra",
		"0000:01:00.0extra",
		"100:00.0",
	} {
		_, err := pci.ParseBDF(s)
		test.ExpectFailure(t, err, s)
		test.ExpectSuccess(t, curated.Is(err, pci.InvalidBDF), s)
	}
}
