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

// Package script reads batch files of commands and records interactive
// sessions as new batch files.
//
// A batch file is a text file with one command per line. Commands on the same
// line can be separated with a semi-colon. Blank lines and lines beginning
// with the # symbol are ignored. The first command line of a batch file must
// name the BAR that the commands were written for:
//
//	# reset the device
//	bar0
//	c32 0 1
//	d32 0 10
//
// Files written by the Recorder type begin with the same header and can be
// loaded with the LoadBatch() function of the Queue type.
package script
