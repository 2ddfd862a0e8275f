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
	"fmt"
	"iter"
	"strings"

	"github.com/jetsetilly/pcidebug/hardware/endian"
)

// BytesPerRow is the number of bytes of memory shown in a single Row.
const BytesPerRow = 16

// Row is a single row of a Dump.
type Row struct {
	// address of the first value in the row
	Address uint32

	Width  Width
	Values []uint32
}

// String returns the row formatted as an address label followed by the
// values in upper case hex. For example:
//
//	00000010: 0000A5A6 0000A5A7 0000A5A8 0000A5A9
func (r Row) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%08X:", r.Address))
	for _, v := range r.Values {
		s.WriteString(fmt.Sprintf(" %0*X", r.Width.Digits(), v))
	}
	return s.String()
}

// Dump is a view of a range of memory. Memory is read from the region each
// time the Dump is iterated over with Rows().
type Dump struct {
	eng     *Engine
	mode    endian.Mode
	width   Width
	address uint32
	length  uint32

	// error from the most recent iteration
	err error
}

// Address returns the address of the first byte of the Dump.
func (d *Dump) Address() uint32 {
	return d.address
}

// Bytes returns the number of bytes in the Dump, after any truncation.
func (d *Dump) Bytes() uint32 {
	return d.length
}

// Width returns the width of the accesses made by the Dump.
func (d *Dump) Width() Width {
	return d.width
}

// Rows returns an iterator over the rows of the Dump. Each row covers
// BytesPerRow bytes of memory except possibly the last.
//
// Iteration stops early if a value cannot be read. The error can be checked
// with Err() once iteration has finished.
func (d *Dump) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		d.err = nil

		var row Row
		step := uint64(d.width.Bytes())

		// counting in 64 bits so that i cannot wrap at the top of the
		// address space
		for i := uint64(0); i < uint64(d.length); i += step {
			if i%BytesPerRow == 0 {
				if len(row.Values) > 0 && !yield(row) {
					return
				}
				row = Row{
					Address: d.address + uint32(i),
					Width:   d.width,
					Values:  make([]uint32, 0, BytesPerRow/step),
				}
			}

			v, err := d.eng.read(d.mode, d.width, d.address+uint32(i))
			if err != nil {
				d.err = err
				break
			}
			row.Values = append(row.Values, v)
		}

		if len(row.Values) > 0 {
			yield(row)
		}
	}
}

// Err returns the error that stopped the most recent iteration, if any.
func (d *Dump) Err() error {
	return d.err
}
