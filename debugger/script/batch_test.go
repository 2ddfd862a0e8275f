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

package script_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/debugger/script"
	"github.com/jetsetilly/pcidebug/test"
)

func TestLoadBatch(t *testing.T) {
	var q script.Queue

	filename := writeFile(t, "# written by hand\n\nbar2\nd 0 10\ne\n")
	test.ExpectSuccess(t, q.LoadBatch(filename, 2))

	if diff := cmp.Diff([]string{"d 0 10", "e"}, drain(&q)); diff != "" {
		t.Error(diff)
	}
}

func TestLoadBatchMismatch(t *testing.T) {
	var q script.Queue

	filename := writeFile(t, "bar1\nd 0 10\n")
	err := q.LoadBatch(filename, 0)
	test.ExpectSuccess(t, curated.Is(err, script.BARMismatch))
	test.ExpectEquality(t, err.Error(), "BAR is not compliant with the command file (Expected: 0 - Found: 1)")

	// nothing is loaded from the file
	test.ExpectFailure(t, q.More())

	// no header
	filename = writeFile(t, "d 0 10\n")
	err = q.LoadBatch(filename, 0)
	test.ExpectSuccess(t, curated.Is(err, script.BARMismatch))
	test.ExpectEquality(t, err.Error(), "BAR is not compliant with the command file (Expected: 0 - Found: -1)")

	// empty file
	filename = writeFile(t, "")
	err = q.LoadBatch(filename, 3)
	test.ExpectSuccess(t, curated.Is(err, script.BARMismatch))
	test.ExpectFailure(t, q.More())
}

func TestHeader(t *testing.T) {
	test.ExpectEquality(t, script.Header(0), "bar0")
	test.ExpectEquality(t, script.Header(5), "bar5")
}
