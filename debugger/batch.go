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
	"fmt"

	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/debugger/script"
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/logger"
)

// RunBatch executes the commands in the batch file. A batch file written for
// a different BAR is not run and a warning is printed instead.
//
// Returns an error only if the file cannot be read.
func (dbg *Debugger) RunBatch(filename string) error {
	if dbg.verbose(3) {
		dbg.printLine(terminal.StyleFeedback, "Executing commands file %s", filename)
	}

	if err := dbg.queue.LoadBatch(filename, dbg.opts.BAR); err != nil {
		if curated.Is(err, script.BARMismatch) {
			dbg.printLine(terminal.StyleWarning, "Warning: %v", err)
			logger.Log(logger.Allow, "batch", err.Error())
			return nil
		}
		return fmt.Errorf("debugger: %w", err)
	}

	for dbg.state == Running {
		ln, ok := dbg.queue.Next()
		if !ok {
			break
		}

		dbg.run(ln)
	}

	// commands after a quit are never run
	dbg.queue.Clear()

	return nil
}
