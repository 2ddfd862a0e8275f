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

import (
	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/hardware/endian"
	"github.com/jetsetilly/pcidebug/hardware/region"
)

// AddressOutOfRange is the sentinal error pattern for operations where the
// start address is beyond the end of the region.
const AddressOutOfRange = "invalid address (maximum allowed is %08X)"

// Engine performs memory operations on a region.
type Engine struct {
	reg *region.Region
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(reg *region.Region) *Engine {
	return &Engine{reg: reg}
}

// Region returns the region the engine is operating on.
func (eng *Engine) Region() *region.Region {
	return eng.reg
}

// checkStart returns an error if address is beyond the end of the region.
// an address equal to the size of the region is allowed
func (eng *Engine) checkStart(address uint32) error {
	if address > eng.reg.Size() {
		return curated.Errorf(AddressOutOfRange, eng.reg.Size())
	}
	return nil
}

// clamp the length so that address+length does not exceed the size of the
// region. the address must have been checked with checkStart()
func (eng *Engine) clamp(address uint32, length uint32) uint32 {
	return min(length, eng.reg.Size()-address)
}

// read a single value, converting multi-byte values to native byte order
func (eng *Engine) read(mode endian.Mode, width Width, address uint32) (uint32, error) {
	switch width {
	case Width8:
		v, err := eng.reg.Read8(address)
		return uint32(v), err
	case Width16:
		v, err := eng.reg.Read16(address)
		return uint32(endian.FromWire16(v, mode)), err
	}
	v, err := eng.reg.Read32(address)
	return endian.FromWire32(v, mode), err
}

// write a single value, truncated to the width and converted from native
// byte order for multi-byte values
func (eng *Engine) write(mode endian.Mode, width Width, address uint32, value uint32) error {
	switch width {
	case Width8:
		return eng.reg.Write8(address, uint8(value))
	case Width16:
		return eng.reg.Write16(address, endian.ToWire16(uint16(value), mode))
	}
	return eng.reg.Write32(address, endian.ToWire32(value, mode))
}

// Display prepares a Dump of length bytes starting at address. No memory is
// read until the Dump is iterated over.
//
// The length is truncated if it would take the Dump past the end of the
// region. Returns an AddressOutOfRange error if address itself is past the end
// of the region.
func (eng *Engine) Display(mode endian.Mode, width Width, address uint32, length uint32) (*Dump, error) {
	if err := eng.checkStart(address); err != nil {
		return nil, err
	}

	return &Dump{
		eng:     eng,
		mode:    mode,
		width:   width,
		address: address,
		length:  eng.clamp(address, length),
	}, nil
}

// Change writes a single value at address. The value is truncated to the
// width of the access.
func (eng *Engine) Change(mode endian.Mode, width Width, address uint32, value uint32) error {
	if err := eng.checkStart(address); err != nil {
		return err
	}
	return eng.write(mode, width, address, value)
}

// Fill writes a sequence of values to length bytes starting at address. The
// first value written is value and each subsequent value is the previous
// value plus increment. Values are truncated to the width of the access.
//
// The length is truncated in the same way as for Display(). Returns the number
// of values written, which will be less than expected if an error occurred.
func (eng *Engine) Fill(mode endian.Mode, width Width, address uint32, value uint32, length uint32, increment uint32) (int, error) {
	if err := eng.checkStart(address); err != nil {
		return 0, err
	}

	length = eng.clamp(address, length)
	units := length / width.Bytes()

	for i := uint32(0); i < units; i++ {
		v := value + i*increment
		if err := eng.write(mode, width, address+i*width.Bytes(), v); err != nil {
			return int(i), err
		}
	}

	return int(units), nil
}
