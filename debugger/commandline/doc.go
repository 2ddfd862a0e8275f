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

// Package commandline parses a single line of user input into a Command.
//
// The first character of the line selects the command. The letter is not case
// sensitive:
//
//	?                      help
//	d[width] addr len      display
//	c[width] addr val      change
//	f[width] addr val len [inc]
//	                       fill
//	e                      show endian mode
//	eb | el                set endian mode
//	q                      quit
//
// The optional width immediately follows the command letter and must be one
// of 8, 16 or 32. If the letter is followed by a space then the width is 32.
// All other values are hexadecimal and may be prefixed with 0x or $.
//
// Lines that cannot be parsed result in the Invalid command. Parse() never
// returns an error.
package commandline
