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

package debugger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/debugger"
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/hardware/endian"
	"github.com/jetsetilly/pcidebug/hardware/region"
	"github.com/jetsetilly/pcidebug/test"
)

const regionSize = 0x40

func newDebugger(t *testing.T, opts debugger.Options, input ...string) (*debugger.Debugger, *test.Terminal) {
	t.Helper()
	term := test.NewTerminal(input...)
	dbg, err := debugger.NewDebugger(term, region.NewMemory(regionSize), opts)
	test.DemandSuccess(t, err)
	return dbg, term
}

// expectOutput compares all output since the last call to Clear() with the
// expected lines
func expectOutput(t *testing.T, term *test.Terminal, expected ...string) {
	t.Helper()
	if diff := cmp.Diff(expected, term.Text()); diff != "" {
		t.Error(diff)
	}
	term.Clear()
}

func TestQuit(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{})
	test.ExpectEquality(t, dbg.State(), debugger.Running)

	test.ExpectSuccess(t, dbg.ExecuteLine("e"))
	test.ExpectEquality(t, dbg.State(), debugger.Running)

	test.ExpectFailure(t, dbg.ExecuteLine("q"))
	test.ExpectEquality(t, dbg.State(), debugger.Terminated)

	// nothing happens once the debugger has terminated
	term.Clear()
	test.ExpectFailure(t, dbg.ExecuteLine("e"))
	expectOutput(t, term)
}

func TestInvalid(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{})

	for _, s := range []string{"xyz", "d", "d12 0 4", "c 0", ""} {
		test.ExpectSuccess(t, dbg.ExecuteLine(s), s)
		test.ExpectEquality(t, dbg.State(), debugger.Running, s)
		if diff := cmp.Diff([]string{"Syntax error (use ? for help)"}, term.Styled(terminal.StyleError)); diff != "" {
			t.Errorf("%q: %s", s, diff)
		}
		term.Clear()
	}
}

func TestDisplay(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{})

	dbg.ExecuteLine("f8 0 0 20")
	expectOutput(t, term)

	dbg.ExecuteLine("d 0 20")
	expectOutput(t, term,
		"",
		"00000000: 03020100 07060504 0B0A0908 0F0E0D0C",
		"00000010: 13121110 17161514 1B1A1918 1F1E1D1C",
		"",
	)

	dbg.ExecuteLine("d16 4 4")
	expectOutput(t, term,
		"",
		"00000004: 0504 0706",
		"",
	)

	// length is truncated at the end of the region
	dbg.ExecuteLine("d8 3e 100")
	expectOutput(t, term,
		"",
		"0000003E: 00 00",
		"",
	)

	test.ExpectEquality(t, len(term.Styled(terminal.StyleError)), 0)
}

func TestEndianMode(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{})
	test.ExpectEquality(t, dbg.Mode(), endian.Little)

	dbg.ExecuteLine("e")
	expectOutput(t, term, "Endian mode: little-endian")

	dbg.ExecuteLine("eb")
	test.ExpectEquality(t, dbg.Mode(), endian.Big)
	dbg.ExecuteLine("e")
	expectOutput(t, term, "Endian mode: big-endian")

	// in big-endian mode the most significant byte is stored first
	dbg.ExecuteLine("c16 0 196E")
	dbg.ExecuteLine("d8 0 2")
	expectOutput(t, term, "", "00000000: 19 6E", "")

	dbg.ExecuteLine("d16 0 2")
	expectOutput(t, term, "", "00000000: 196E", "")

	dbg.ExecuteLine("el")
	dbg.ExecuteLine("d16 0 2")
	expectOutput(t, term, "", "00000000: 6E19", "")
}

func TestAddressErrors(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{})

	test.ExpectSuccess(t, dbg.ExecuteLine("d 41 4"))
	expectOutput(t, term, "Error: invalid address (maximum allowed is 00000040)")

	test.ExpectSuccess(t, dbg.ExecuteLine("c 41 4"))
	expectOutput(t, term, "Error: invalid address (maximum allowed is 00000040)")

	test.ExpectSuccess(t, dbg.ExecuteLine("f 41 0 4"))
	expectOutput(t, term, "Error: invalid address (maximum allowed is 00000040)")

	// the start address is valid but the access runs past the end
	test.ExpectSuccess(t, dbg.ExecuteLine("c 3e 4"))
	test.ExpectEquality(t, len(term.Styled(terminal.StyleError)), 1)
	test.ExpectSuccess(t, term.Contains("out of bounds"))
	term.Clear()

	test.ExpectEquality(t, dbg.State(), debugger.Running)
}

func TestHelp(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{})
	dbg.ExecuteLine("?")
	test.ExpectSuccess(t, len(term.Styled(terminal.StyleHelp)) > 0)
	test.ExpectSuccess(t, term.Contains("l - little-endian (default)"))
}

func TestStart(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{},
		"c8 0 1;c8 1 2",
		"",
		"# comment",
		"d8 0 2",
	)

	// end of input ends the session
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), debugger.Terminated)
	expectOutput(t, term, "", "00000000: 01 02", "")

	test.ExpectEquality(t, len(term.Prompts), 5)
	test.ExpectEquality(t, term.Prompts[0].String(), "PCI> ")
}

func TestStartSeparators(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{}, "c8 0 11; c8 1 22", " d8 0 2 ")

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, len(term.Styled(terminal.StyleError)), 0)
	expectOutput(t, term, "", "00000000: 11 22", "")
}

func TestStartQuit(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{}, "e;q;e", "e")

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), debugger.Terminated)

	// commands following the quit command are never run
	expectOutput(t, term, "Endian mode: little-endian")
	test.ExpectEquality(t, len(term.Prompts), 1)
}

func TestBanner(t *testing.T) {
	dbg, term := newDebugger(t, debugger.Options{BAR: 2, Verbosity: 3}, "q")
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectSuccess(t, term.Contains(" - accessing BAR2"))
	test.ExpectSuccess(t, term.Contains(" - region size is 64-bytes"))
	test.ExpectSuccess(t, term.Contains(" - offset into region is 0-bytes"))
	test.ExpectSuccess(t, len(term.Styled(terminal.StyleHelp)) > 0)

	dbg, term = newDebugger(t, debugger.Options{BAR: 2, Verbosity: 1}, "q")
	test.ExpectSuccess(t, dbg.Start())
	expectOutput(t, term, "", "Accessing BAR2")

	dbg, term = newDebugger(t, debugger.Options{BAR: 2, Verbosity: 0}, "q")
	test.ExpectSuccess(t, dbg.Start())
	expectOutput(t, term)
}

// interruptTerminal abandons the first line of input
type interruptTerminal struct {
	*test.Terminal
	interrupted bool
}

func (trm *interruptTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if !trm.interrupted {
		trm.interrupted = true
		return "", curated.Errorf(terminal.UserInterrupt)
	}
	return trm.Terminal.TermRead(prompt)
}

func TestInterrupt(t *testing.T) {
	term := &interruptTerminal{Terminal: test.NewTerminal("e", "q")}
	dbg, err := debugger.NewDebugger(term, region.NewMemory(regionSize), debugger.Options{})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), debugger.Terminated)
	expectOutput(t, term.Terminal, "Endian mode: little-endian")
}

func writeBatch(t *testing.T, lines ...string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "batch.cmd")
	content := strings.Join(lines, "\n") + "\n"
	test.DemandSuccess(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestBatch(t *testing.T) {
	filename := writeBatch(t, "bar0", "c8 0 A5", "", "d8 0 2", "q", "d8 0 2")

	dbg, term := newDebugger(t, debugger.Options{Batch: filename}, "d8 0 1")
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), debugger.Terminated)

	// the quit command in the batch file ends the session before the prompt
	expectOutput(t, term, "", "00000000: A5 00", "")
	test.ExpectEquality(t, len(term.Prompts), 0)
}

func TestBatchVerbose(t *testing.T) {
	filename := writeBatch(t, "bar0", "e")

	dbg, term := newDebugger(t, debugger.Options{Batch: filename, Verbosity: 2, QuitAfterBatch: true})
	test.ExpectSuccess(t, dbg.Start())
	if diff := cmp.Diff([]string{"Send: e"}, term.Styled(terminal.StyleEcho)); diff != "" {
		t.Error(diff)
	}
	test.ExpectSuccess(t, term.Contains("Endian mode: little-endian"))
}

func TestBatchQuitAfter(t *testing.T) {
	filename := writeBatch(t, "bar0", "c8 0 1")

	dbg, term := newDebugger(t, debugger.Options{Batch: filename, QuitAfterBatch: true}, "d8 0 1")
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), debugger.Terminated)
	test.ExpectEquality(t, len(term.Prompts), 0)
}

func TestBatchMismatch(t *testing.T) {
	filename := writeBatch(t, "bar1", "c8 0 1")

	dbg, term := newDebugger(t, debugger.Options{Batch: filename}, "d8 0 1")
	test.ExpectSuccess(t, dbg.Start())

	// the batch file is abandoned but the session continues
	expectOutput(t, term,
		"Warning: BAR is not compliant with the command file (Expected: 0 - Found: 1)",
		"", "00000000: 00", "",
	)
}

func TestBatchMissing(t *testing.T) {
	dbg, _ := newDebugger(t, debugger.Options{Batch: filepath.Join(t.TempDir(), "missing.cmd")})
	err := dbg.Start()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "no such file"))
}

func TestRecord(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "session.cmd")

	dbg, term := newDebugger(t, debugger.Options{BAR: 3, Record: filename},
		"c 0 1",
		"xyz",
		"?",
		"D8 0 4",
		"c 100 4",
		"eb;c16 4 BEEF",
		"q",
	)
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, term.Prompts[0].String(), "PCI (rec)> ")

	data, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "bar3\nc32 0 1\nd8 0 4\neb\nc16 4 BEEF\n")

	// replaying the recording produces the same memory
	dbg, term = newDebugger(t, debugger.Options{BAR: 3, Batch: filename}, "el;d8 0 8")
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectSuccess(t, term.Contains("00000000: 01 00 00 00 BE EF 00 00"))
}

func TestRecordExisting(t *testing.T) {
	filename := writeBatch(t, "bar0")

	dbg, _ := newDebugger(t, debugger.Options{Record: filename}, "q")
	test.ExpectFailure(t, dbg.Start())
}

// blockingBacking holds up every write to the region until it is released
type blockingBacking struct {
	syncing chan bool
	release chan bool
}

func (b *blockingBacking) Sync(_ []byte) error {
	b.syncing <- true
	<-b.release
	return nil
}

func (b *blockingBacking) Close() error {
	return nil
}

func TestStop(t *testing.T) {
	backing := &blockingBacking{
		syncing: make(chan bool),
		release: make(chan bool),
	}
	mem := make([]byte, regionSize)
	reg, err := region.NewRegion(mem, 0, regionSize, backing)
	test.DemandSuccess(t, err)

	term := test.NewTerminal("c8 0 1", "c8 1 2")
	dbg, err := debugger.NewDebugger(term, reg, debugger.Options{})
	test.DemandSuccess(t, err)

	go dbg.Start()

	// the first command is part way through its write
	<-backing.syncing

	stopped := make(chan bool)
	go func() {
		dbg.Stop()
		stopped <- true
	}()

	select {
	case <-stopped:
		t.Fatal("stopped while a command was being executed")
	case <-time.After(50 * time.Millisecond):
	}

	backing.release <- true
	<-stopped

	// the second command is never executed
	select {
	case <-backing.syncing:
		t.Fatal("command executed after the debugger was stopped")
	case <-time.After(50 * time.Millisecond):
	}
	test.ExpectEquality(t, mem[0], uint8(1))
	test.ExpectEquality(t, mem[1], uint8(0))
}
