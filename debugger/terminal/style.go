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

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. only useful for
	// non-interactive terminals or when running a batch file
	StyleEcho Style = iota

	// information from the internals of the debugger
	StyleFeedback

	// help messages
	StyleHelp

	// the contents of device memory
	StyleMemory

	// information about the device and the region being accessed
	StyleDeviceInfo

	// problems that do not prevent the command from completing
	StyleWarning

	// the command could not be completed
	StyleError
)
