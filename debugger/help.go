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

package debugger

import (
	"strings"

	"github.com/jetsetilly/pcidebug/debugger/terminal"
)

const helpText = `
  ?                          Help
  d[width] addr len          Display memory starting from addr
                             [width]
                               8   - 8-bit access
                               16  - 16-bit access
                               32  - 32-bit access (default)
  c[width] addr val          Change memory at addr to val
  e                          Print the endian access mode
  e[mode]                    Change the endian access mode
                             [mode]
                               b - big-endian
                               l - little-endian (default)
  f[width] addr val len inc  Fill memory
                               addr - start address
                               val  - start value
                               len  - length (in bytes)
                               inc  - increment (defaults to 1)
  q                          Quit

  Notes:
    1. addr, len, and val are interpreted as hex values
       addresses are always byte based
    2. commands can be separated with a semi-colon
`

func (dbg *Debugger) printHelp() {
	for s := range strings.SplitSeq(helpText, "\n") {
		dbg.printLine(terminal.StyleHelp, s)
	}
}
