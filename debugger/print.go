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
	"fmt"
	"strings"

	"github.com/jetsetilly/pcidebug/debugger/terminal"
)

// printLine sends a line of output to the terminal. unlike other styles, help
// text is not treated as a format string
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if sty != terminal.StyleHelp {
		s = fmt.Sprintf(s, a...)
	}

	// empty lines are allowed but trailing newlines are not
	s = strings.TrimRight(s, "\n")

	dbg.term.TermPrintLine(sty, s)
}
