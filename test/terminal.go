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

package test

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/pcidebug/debugger/terminal"
)

// Line is a single line of output captured by the Terminal type.
type Line struct {
	Style terminal.Style
	Text  string
}

func (l Line) String() string {
	return fmt.Sprintf("%d: %s", l.Style, l.Text)
}

// Terminal is an implementation of terminal.Terminal. Input is taken from the
// lines supplied to NewTerminal() and output is captured for later inspection.
type Terminal struct {
	input  []string
	output []Line

	// the prompts seen by TermRead()
	Prompts []terminal.Prompt
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
func NewTerminal(input ...string) *Terminal {
	return &Terminal{input: input}
}

// Initialise implements the terminal.Terminal interface.
func (trm *Terminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (trm *Terminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (trm *Terminal) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface. Returns io.EOF once all
// input lines have been consumed.
func (trm *Terminal) TermRead(prompt terminal.Prompt) (string, error) {
	trm.Prompts = append(trm.Prompts, prompt)
	if len(trm.input) == 0 {
		return "", io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

// TermPrintLine implements the terminal.Output interface.
func (trm *Terminal) TermPrintLine(style terminal.Style, s string) {
	trm.output = append(trm.output, Line{Style: style, Text: s})
}

// Output returns all captured output lines.
func (trm *Terminal) Output() []Line {
	return trm.output
}

// Text returns the text of all captured output lines, regardless of style.
func (trm *Terminal) Text() []string {
	s := make([]string, 0, len(trm.output))
	for _, l := range trm.output {
		s = append(s, l.Text)
	}
	return s
}

// Styled returns the text of captured lines with the specified style.
func (trm *Terminal) Styled(style terminal.Style) []string {
	var s []string
	for _, l := range trm.output {
		if l.Style == style {
			s = append(s, l.Text)
		}
	}
	return s
}

// Contains returns true if any captured line contains the sub-string.
func (trm *Terminal) Contains(sub string) bool {
	for _, l := range trm.output {
		if strings.Contains(l.Text, sub) {
			return true
		}
	}
	return false
}

// Clear forgets all captured output.
func (trm *Terminal) Clear() {
	trm.output = trm.output[:0]
}
