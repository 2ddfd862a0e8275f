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
	"fmt"

	"github.com/jetsetilly/pcidebug/hardware/access"
	"github.com/jetsetilly/pcidebug/hardware/endian"
)

// Command is the result of parsing a line of input. The String() function
// returns the command in a canonical form that will parse to the same
// Command.
type Command interface {
	fmt.Stringer
	command()
}

// Help lists the available commands.
type Help struct{}

// Display shows Length bytes of memory starting at Address.
type Display struct {
	Width   access.Width
	Address uint32
	Length  uint32
}

// Change writes Value at Address.
type Change struct {
	Width   access.Width
	Address uint32
	Value   uint32
}

// Fill writes Length bytes of memory starting at Address. The first value
// written is Value and each following value is increased by Increment.
type Fill struct {
	Width     access.Width
	Address   uint32
	Value     uint32
	Length    uint32
	Increment uint32
}

// ShowEndian reports the current endian mode.
type ShowEndian struct{}

// SetEndian changes the endian mode.
type SetEndian struct {
	Mode endian.Mode
}

// Quit ends the session.
type Quit struct{}

// Invalid is the result of parsing a line that is not a valid command.
type Invalid struct{}

func (Help) command()       {}
func (Display) command()    {}
func (Change) command()     {}
func (Fill) command()       {}
func (ShowEndian) command() {}
func (SetEndian) command()  {}
func (Quit) command()       {}
func (Invalid) command()    {}

func (Help) String() string {
	return "?"
}

func (c Display) String() string {
	return fmt.Sprintf("d%d %X %X", int(c.Width), c.Address, c.Length)
}

func (c Change) String() string {
	return fmt.Sprintf("c%d %X %X", int(c.Width), c.Address, c.Value)
}

func (c Fill) String() string {
	return fmt.Sprintf("f%d %X %X %X %X", int(c.Width), c.Address, c.Value, c.Length, c.Increment)
}

func (ShowEndian) String() string {
	return "e"
}

func (c SetEndian) String() string {
	if c.Mode == endian.Big {
		return "eb"
	}
	return "el"
}

func (Quit) String() string {
	return "q"
}

func (Invalid) String() string {
	return ""
}
