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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/debugger/commandline"
	"github.com/jetsetilly/pcidebug/debugger/script"
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/logger"
)

// returned by execute() for the Invalid command
var errInvalid = errors.New("invalid command")

func (dbg *Debugger) prompt() terminal.Prompt {
	dbg.busy.Lock()
	defer dbg.busy.Unlock()

	return terminal.Prompt{
		Content:   "PCI",
		Recording: dbg.recorder.IsRecording(),
	}
}

// inputLoop reads and executes commands until the debugger is terminated or
// until there is no more input
func (dbg *Debugger) inputLoop() error {
	for dbg.state == Running {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				// end of input is the same as the quit command
				dbg.state = Terminated
				return nil
			}

			// the line has been abandoned by the user. the session continues
			if curated.Is(err, terminal.UserInterrupt) {
				continue
			}

			return fmt.Errorf("debugger: %w", err)
		}

		ln, err := dbg.queue.Push(input)
		if err != nil {
			// nothing but blank lines or comments
			continue
		}

		for {
			dbg.run(ln)

			var ok bool
			ln, ok = dbg.queue.Next()
			if !ok || dbg.state == Terminated {
				break
			}
		}

		dbg.queue.Clear()
	}

	return nil
}

// run a line taken from the queue. lines from a batch file are echoed
// according to the verbosity and lines from the terminal are recorded
func (dbg *Debugger) run(ln script.Line) {
	dbg.busy.Lock()
	defer dbg.busy.Unlock()

	if !ln.Batch {
		dbg.interactive(ln.Entry)
		return
	}

	if dbg.verbose(2) {
		dbg.printLine(terminal.StyleEcho, "Send: %s", ln.Entry)
	}
	logger.Logf(logger.Verbosity(2), "batch", "send: %s", ln.Entry)

	dbg.execute(commandline.Parse(ln.Entry))
}

// interactive executes a line of user input and adds it to the recording
func (dbg *Debugger) interactive(line string) {
	cmd := commandline.Parse(line)

	if !recordable(cmd) {
		dbg.execute(cmd)
		return
	}

	if err := dbg.recorder.WriteInput(cmd.String()); err != nil {
		dbg.printLine(terminal.StyleError, "%v", err)
	}

	// commands that fail are not recorded
	if err := dbg.execute(cmd); err != nil {
		dbg.recorder.Rollback()
	}
}
