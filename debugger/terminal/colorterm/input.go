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
	"fmt"
	"io"
	"unicode"

	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/pcidebug/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()
	return ct.editor.read(ct.reader, &ct.Terminal, prompt.String())
}

// editor is a simple line editor with a history of previously entered lines.
// the terminal must be in raw mode
type editor struct {
	history []string

	// called when the user presses the suspend key. the terminal will be in
	// canonical mode for the duration of the call
	suspend func() error
}

// line being edited
type line struct {
	input  []rune
	cursor int
}

func (l *line) set(s string) {
	l.input = []rune(s)
	l.cursor = len(l.input)
}

func (l *line) insert(r rune) {
	l.input = append(l.input, 0)
	copy(l.input[l.cursor+1:], l.input[l.cursor:])
	l.input[l.cursor] = r
	l.cursor++
}

// remove the character at the cursor position
func (l *line) remove() {
	if l.cursor < len(l.input) {
		l.input = append(l.input[:l.cursor], l.input[l.cursor+1:]...)
	}
}

// redraw the prompt and the input line. the cursor is placed in the correct
// position after the redraw
func redraw(out io.Writer, prompt string, l *line) {
	fmt.Fprintf(out, "\r%s%s%s%s", ansi.ClearLine, prompt, string(l.input),
		ansi.CursorColumn(len([]rune(prompt))+l.cursor))
}

// read a single line of input
func (ed *editor) read(in io.RuneReader, out io.Writer, prompt string) (string, error) {
	var l line

	// index into the history. equal to len(history) when editing a new line
	history := len(ed.history)

	// the new line is kept while moving through the history
	var pending string

	for {
		redraw(out, prompt, &l)

		r, _, err := in.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(l.input)
			if s != "" && (len(ed.history) == 0 || ed.history[len(ed.history)-1] != s) {
				ed.history = append(ed.history, s)
			}
			fmt.Fprint(out, "\r\n")
			return s, nil

		case easyterm.KeyInterrupt:
			fmt.Fprint(out, "\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(l.input) == 0 {
				fmt.Fprint(out, "\r\n")
				return "", io.EOF
			}
			l.remove()

		case easyterm.KeySuspend:
			if ed.suspend != nil {
				fmt.Fprint(out, "\r\n")
				if err := ed.suspend(); err != nil {
					return "", err
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if l.cursor > 0 {
				l.cursor--
				l.remove()
			}

		case easyterm.KeyCtrlA:
			l.cursor = 0

		case easyterm.KeyCtrlE:
			l.cursor = len(l.input)

		case easyterm.KeyCtrlU:
			l.set("")

		case easyterm.KeyEsc:
			r, _, err := in.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor && r != easyterm.EscSS3 {
				continue
			}

			r, _, err = in.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ed.history) {
						pending = string(l.input)
					}
					history--
					l.set(ed.history[history])
				}
			case easyterm.CursorDown:
				if history < len(ed.history) {
					history++
					if history == len(ed.history) {
						l.set(pending)
					} else {
						l.set(ed.history[history])
					}
				}
			case easyterm.CursorForward:
				if l.cursor < len(l.input) {
					l.cursor++
				}
			case easyterm.CursorBackward:
				if l.cursor > 0 {
					l.cursor--
				}
			case easyterm.CursorHome:
				l.cursor = 0
			case easyterm.CursorEnd:
				l.cursor = len(l.input)
			case easyterm.CursorDelete:
				r, _, err = in.ReadRune()
				if err != nil {
					return "", err
				}
				if r == easyterm.CursorTilde {
					l.remove()
				}
			}

		default:
			if unicode.IsPrint(r) {
				l.insert(r)
			}
		}
	}
}
