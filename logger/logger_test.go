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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pcidebug/logger"
	"github.com/jetsetilly/pcidebug/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "batch", "send: d 0 10")
	log.Log(logger.Allow, "batch", "send: d 0 10")
	log.Log(logger.Allow, "batch", "send: d 0 10")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "batch: send: d 0 10 (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "a", "%d", 1)
	log.Logf(logger.Allow, "a", "%d", 2)
	log.Logf(logger.Allow, "a", "%d", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "a: 2\na: 3\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "pci", "opened resource0")
	test.ExpectEquality(t, w.String(), "pci: opened resource0\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "pci", "closed resource0")
	test.ExpectEquality(t, w.String(), "pci: opened resource0\n")
}

func TestVerbosity(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	logger.SetVerbosity(1)
	defer logger.SetVerbosity(logger.MaxVerbosity)

	log.Log(logger.Verbosity(0), "warning", "level zero")
	log.Log(logger.Verbosity(1), "bar", "level one")
	log.Log(logger.Verbosity(2), "batch", "level two")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "warning: level zero\nbar: level one\n")
}
