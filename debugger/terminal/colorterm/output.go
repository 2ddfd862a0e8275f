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

package colorterm

import (
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/debugger/terminal/colorterm/easyterm/ansi"
)

// pens for each output style. styles not in the map use the normal pen
var pens = map[terminal.Style]string{
	terminal.StyleEcho:       ansi.DimPens["white"],
	terminal.StyleFeedback:   ansi.DimPens["white"],
	terminal.StyleHelp:       ansi.DimPens["white"],
	terminal.StyleMemory:     ansi.Pens["yellow"],
	terminal.StyleDeviceInfo: ansi.Pens["cyan"],
	terminal.StyleWarning:    ansi.Pens["magenta"],
	terminal.StyleError:      ansi.Pens["red"],
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.Print("\r")
	if pen, ok := pens[style]; ok {
		ct.Print("%s", pen)
	}
	if style == terminal.StyleError {
		ct.Print("* ")
	}
	ct.Print("%s%s\n", s, ansi.NormalPen)
}
