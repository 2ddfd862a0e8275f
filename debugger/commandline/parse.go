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

package commandline

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/pcidebug/hardware/access"
	"github.com/jetsetilly/pcidebug/hardware/endian"
)

// Parse a single line of input. Any trailing newline is ignored as are any
// tokens beyond those required by the command.
func Parse(line string) Command {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Invalid{}
	}

	rest := line[1:]

	switch line[0] {
	case '?':
		return Help{}
	case 'q', 'Q':
		return Quit{}
	case 'e', 'E':
		return parseEndian(rest)
	case 'd', 'D':
		return parseDisplay(rest)
	case 'c', 'C':
		return parseChange(rest)
	case 'f', 'F':
		return parseFill(rest)
	}

	return Invalid{}
}

func parseEndian(rest string) Command {
	if rest == "" {
		return ShowEndian{}
	}
	if m, ok := endian.ModeFromLetter(rest[0]); ok {
		return SetEndian{Mode: m}
	}
	return Invalid{}
}

// parseWidth looks for the optional width at the start of the string. the
// remainder of the string is returned along with the width
func parseWidth(rest string) (access.Width, *Tokens, bool) {
	if rest == "" {
		return access.Width32, nil, false
	}
	if rest[0] == ' ' || rest[0] == '\t' {
		return access.Width32, TokeniseInput(rest), true
	}

	n := strings.IndexFunc(rest, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if n == -1 {
		n = len(rest)
	}
	if n == 0 {
		return access.Width32, nil, false
	}

	bits, err := strconv.Atoi(rest[:n])
	if err != nil {
		return access.Width32, nil, false
	}
	w, ok := access.NewWidth(bits)
	if !ok {
		return access.Width32, nil, false
	}

	return w, TokeniseInput(rest[n:]), true
}

// hexes parses the next n tokens as hexadecimal numbers
func hexes(tk *Tokens, n int) ([]uint32, bool) {
	v := make([]uint32, n)
	for i := range v {
		var ok bool
		v[i], ok = tk.Hex()
		if !ok {
			return nil, false
		}
	}
	return v, true
}

func parseDisplay(rest string) Command {
	w, tk, ok := parseWidth(rest)
	if !ok {
		return Invalid{}
	}
	v, ok := hexes(tk, 2)
	if !ok {
		return Invalid{}
	}
	return Display{Width: w, Address: v[0], Length: v[1]}
}

func parseChange(rest string) Command {
	w, tk, ok := parseWidth(rest)
	if !ok {
		return Invalid{}
	}
	v, ok := hexes(tk, 2)
	if !ok {
		return Invalid{}
	}
	return Change{Width: w, Address: v[0], Value: v[1]}
}

func parseFill(rest string) Command {
	w, tk, ok := parseWidth(rest)
	if !ok {
		return Invalid{}
	}
	v, ok := hexes(tk, 3)
	if !ok {
		return Invalid{}
	}

	cmd := Fill{Width: w, Address: v[0], Value: v[1], Length: v[2], Increment: 1}

	// increment is optional
	if tk.Remaining() > 0 {
		cmd.Increment, ok = tk.Hex()
		if !ok {
			return Invalid{}
		}
	}

	return cmd
}
