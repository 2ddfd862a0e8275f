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

package debugger

import (
	"github.com/jetsetilly/pcidebug/debugger/commandline"
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/logger"
)

// the message printed for the Invalid command
const syntaxError = "Syntax error (use ? for help)"

// ExecuteLine parses and executes a single line of input. Returns false if the
// command ended the session.
func (dbg *Debugger) ExecuteLine(line string) bool {
	return dbg.Execute(commandline.Parse(line))
}

// Execute a single command. Returns false if the command ended the session.
// All other commands, including those that fail, return true.
func (dbg *Debugger) Execute(cmd commandline.Command) bool {
	dbg.busy.Lock()
	defer dbg.busy.Unlock()

	_ = dbg.execute(cmd)
	return dbg.state == Running
}

// execute a command and return the error that caused it to fail. the error
// will have been printed to the terminal already
func (dbg *Debugger) execute(cmd commandline.Command) error {
	if dbg.state == Terminated {
		return nil
	}

	var err error

	switch cmd := cmd.(type) {
	case commandline.Help:
		dbg.printHelp()

	case commandline.Display:
		err = dbg.display(cmd)

	case commandline.Change:
		err = dbg.eng.Change(dbg.mode, cmd.Width, cmd.Address, cmd.Value)

	case commandline.Fill:
		var n int
		n, err = dbg.eng.Fill(dbg.mode, cmd.Width, cmd.Address, cmd.Value, cmd.Length, cmd.Increment)
		logger.Logf(logger.Verbosity(3), "debugger", "fill: %d values written", n)

	case commandline.ShowEndian:
		dbg.printLine(terminal.StyleFeedback, "Endian mode: %s", dbg.mode)

	case commandline.SetEndian:
		dbg.mode = cmd.Mode
		logger.Logf(logger.Verbosity(3), "debugger", "endian mode is now %s", dbg.mode)

	case commandline.Quit:
		dbg.state = Terminated

	case commandline.Invalid:
		dbg.printLine(terminal.StyleError, syntaxError)
		return errInvalid
	}

	if err != nil {
		dbg.printLine(terminal.StyleError, "Error: %v", err)
	}

	return err
}

// display the memory described by the command. the output is surrounded by
// empty lines
func (dbg *Debugger) display(cmd commandline.Display) error {
	dump, err := dbg.eng.Display(dbg.mode, cmd.Width, cmd.Address, cmd.Length)
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleMemory, "")
	for row := range dump.Rows() {
		dbg.printLine(terminal.StyleMemory, "%s", row.String())
	}
	dbg.printLine(terminal.StyleMemory, "")

	return dump.Err()
}

// recordable returns true if the command should be written to a recording
func recordable(cmd commandline.Command) bool {
	switch cmd.(type) {
	case commandline.Help, commandline.Quit, commandline.Invalid:
		return false
	}
	return true
}
