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

package terminal

import "strings"

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Content string

	// whether the debugger is recording input to a batch file
	Recording bool
}

func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(strings.TrimSpace(p.Content))
	if p.Recording {
		s.WriteString(" (rec)")
	}
	s.WriteString("> ")
	return s.String()
}
