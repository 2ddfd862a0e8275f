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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/debugger/terminal/plainterm"
	"github.com/jetsetilly/pcidebug/test"
)

func TestPlainTerminal(t *testing.T) {
	var out strings.Builder
	pt := plainterm.NewPlainTerminal(strings.NewReader("d 0 10\r\ne\nq"), &out)
	test.ExpectSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	for _, expected := range []string{"d 0 10", "e", "q"} {
		s, err := pt.TermRead(terminal.Prompt{Content: "PCI"})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	_, err := pt.TermRead(terminal.Prompt{Content: "PCI"})
	test.ExpectEquality(t, err, io.EOF)

	// no prompt is written when input is not a terminal
	test.ExpectEquality(t, out.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "Endian mode: little-endian")
	pt.TermPrintLine(terminal.StyleError, "Syntax error (use ? for help)")
	pt.TermPrintLine(terminal.StyleMemory, "00000000: 00")

	test.ExpectEquality(t, out.String(),
		"Endian mode: little-endian\n* Syntax error (use ? for help)\n00000000: 00\n")
}
