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
	"sync"

	"github.com/jetsetilly/pcidebug/debugger/script"
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/hardware/access"
	"github.com/jetsetilly/pcidebug/hardware/endian"
	"github.com/jetsetilly/pcidebug/hardware/region"
	"github.com/jetsetilly/pcidebug/logger"
)

// Options for the debugger. The zero value is usable but will be silent
// because of the zero Verbosity.
type Options struct {
	// the BAR being accessed. batch files must be written for this BAR
	BAR int

	// amount of information printed. from zero to logger.MaxVerbosity
	Verbosity int

	// batch file to run before the first prompt
	Batch string

	// end the session after running the batch file
	QuitAfterBatch bool

	// record commands entered at the prompt to a new file of this name
	Record string
}

// Debugger is the command interpreter for a single region of memory.
type Debugger struct {
	opts Options

	term terminal.Terminal
	eng  *access.Engine

	// the endian mode for all multi-byte accesses. starts in little-endian
	// mode and lasts for the session
	mode endian.Mode

	state State

	// commands waiting to be executed
	queue script.Queue

	// recording of commands entered at the prompt
	recorder script.Recorder

	// held while a command is being executed. see Stop()
	busy sync.Mutex
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The terminal is initialised and will be cleaned up when Start()
// returns.
func NewDebugger(term terminal.Terminal, reg *region.Region, opts Options) (*Debugger, error) {
	if err := term.Initialise(); err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	dbg := &Debugger{
		opts:  opts,
		term:  term,
		eng:   access.NewEngine(reg),
		mode:  endian.Little,
		state: Running,
	}

	return dbg, nil
}

// Mode returns the current endian mode.
func (dbg *Debugger) Mode() endian.Mode {
	return dbg.mode
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() State {
	return dbg.state
}

// verbose returns true if the verbosity of the session is at least level
func (dbg *Debugger) verbose(level int) bool {
	return dbg.opts.Verbosity >= level
}

// Start the debugger. Any batch file named in the Options is run first and
// then commands are read from the terminal until the user quits or there is
// no more input.
//
// Returns an error if the batch file or the recording file cannot be opened.
// Errors from individual commands are printed to the terminal and do not end
// the session.
func (dbg *Debugger) Start() error {
	defer dbg.term.CleanUp()

	dbg.banner()

	if dbg.opts.Batch != "" {
		if err := dbg.RunBatch(dbg.opts.Batch); err != nil {
			return err
		}
		if dbg.opts.QuitAfterBatch {
			dbg.state = Terminated
		}
	}

	if dbg.state == Terminated {
		return nil
	}

	if dbg.opts.Record != "" {
		if err := dbg.recorder.Start(dbg.opts.Record, dbg.opts.BAR); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		logger.Logf(logger.Verbosity(1), "debugger", "recording to %s", dbg.opts.Record)
	}

	err := dbg.inputLoop()

	dbg.busy.Lock()
	dbg.End()
	dbg.busy.Unlock()

	return err
}

// Stop waits for the command being executed, if any, to complete and then
// prevents any further commands from being executed. Stop never releases the
// debugger and so is only suitable for when the process is about to exit, for
// example from a signal handler. The recording is left for End() to finish.
func (dbg *Debugger) Stop() {
	dbg.busy.Lock()
}

// End any active recording. It is safe to call End() more than once and
// from outside of Start(), for example when the process is interrupted.
func (dbg *Debugger) End() {
	if !dbg.recorder.IsRecording() {
		return
	}
	if err := dbg.recorder.End(); err != nil {
		dbg.printLine(terminal.StyleError, "%v", err)
		return
	}
	logger.Logf(logger.Verbosity(1), "debugger", "recording ended")
}

// banner prints information about the region according to the verbosity
func (dbg *Debugger) banner() {
	reg := dbg.eng.Region()

	logger.Logf(logger.Verbosity(1), "debugger", "accessing BAR%d", dbg.opts.BAR)

	switch {
	case dbg.verbose(3):
		dbg.printLine(terminal.StyleDeviceInfo, "PCI debug")
		dbg.printLine(terminal.StyleDeviceInfo, "---------")
		dbg.printLine(terminal.StyleDeviceInfo, "")
		dbg.printLine(terminal.StyleDeviceInfo, " - accessing BAR%d", dbg.opts.BAR)
		dbg.printLine(terminal.StyleDeviceInfo, " - region size is %d-bytes", reg.Size())
		dbg.printLine(terminal.StyleDeviceInfo, " - offset into region is %d-bytes", reg.Offset())
		dbg.printHelp()
	case dbg.verbose(1):
		dbg.printLine(terminal.StyleDeviceInfo, "")
		dbg.printLine(terminal.StyleDeviceInfo, "Accessing BAR%d", dbg.opts.BAR)
	}
}
