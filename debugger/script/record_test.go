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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/debugger/script"
	"github.com/jetsetilly/pcidebug/test"
)

func TestRecorder(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "session.cmd")

	var rec script.Recorder
	test.ExpectFailure(t, rec.IsRecording())

	// writing without an active recording does nothing
	test.ExpectSuccess(t, rec.WriteInput("d 0 10"))

	test.DemandSuccess(t, rec.Start(filename, 1))
	test.ExpectSuccess(t, rec.IsRecording())
	test.ExpectEquality(t, rec.Filename(), filename)

	err := rec.Start(filename, 1)
	test.ExpectSuccess(t, curated.Is(err, script.RecordingActive))

	test.ExpectSuccess(t, rec.WriteInput("c32 0 1"))
	test.ExpectSuccess(t, rec.WriteInput("d32 0 10"))
	test.ExpectSuccess(t, rec.WriteInput("eb"))
	rec.Rollback()
	test.ExpectSuccess(t, rec.WriteInput("el"))
	test.ExpectSuccess(t, rec.End())
	test.ExpectFailure(t, rec.IsRecording())
	test.ExpectEquality(t, rec.Filename(), "")

	data, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "bar1\nc32 0 1\nd32 0 10\nel\n")

	// the recording can be loaded as a batch file
	var q script.Queue
	test.ExpectSuccess(t, q.LoadBatch(filename, 1))
	if diff := cmp.Diff([]string{"c32 0 1", "d32 0 10", "el"}, drain(&q)); diff != "" {
		t.Error(diff)
	}
}

func TestRecorderExistingFile(t *testing.T) {
	filename := writeFile(t, "bar0\n")

	var rec script.Recorder
	err := rec.Start(filename, 0)
	test.ExpectSuccess(t, curated.Is(err, script.RecordingError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrExist))
	test.ExpectFailure(t, rec.IsRecording())

	// ending an inactive recording is harmless
	test.ExpectSuccess(t, rec.End())
}
