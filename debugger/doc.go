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

// Package debugger implements the interactive command interpreter for the
// memory of a single PCI BAR.
//
// Initialisation of the debugger is done with the NewDebugger() function. The
// terminal is used for all input and output and the region is the memory that
// commands operate on.
//
//	dbg, err := debugger.NewDebugger(term, reg, debugger.Options{BAR: 0})
//
// Once initialised, the debugger can be started with the Start() function.
// Start() returns when the user quits or when there is no more input.
//
// Commands are described by the commandline package. The current endian mode
// belongs to the debugger and lasts for the session. The session always begins
// in little-endian mode.
//
// A batch file named in the Options is run before the first prompt. The
// commands entered at the prompt can be recorded to a new batch file.
package debugger
