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

package script

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/pcidebug/curated"
)

// sentinal error patterns
const (
	RecordingError  = "recording: %v"
	RecordingActive = "recording: already active"
)

// Recorder writes commands to a new batch file.
type Recorder struct {
	file     *os.File
	filename string

	inputLine string
}

// IsRecording returns true if a recording is currently active.
func (rec *Recorder) IsRecording() bool {
	return rec.file != nil
}

// Filename returns the name of the file being recorded to. Returns the empty
// string if no recording is active.
func (rec *Recorder) Filename() string {
	return rec.filename
}

// Start a new recording for the BAR. The file must not already exist.
func (rec *Recorder) Start(filename string, bar int) error {
	if rec.IsRecording() {
		return curated.Errorf(RecordingActive)
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}

	if _, err := fmt.Fprintln(f, Header(bar)); err != nil {
		f.Close()
		return curated.Errorf(RecordingError, err)
	}

	rec.file = f
	rec.filename = filename

	return nil
}

// End the current recording. Can be used without explicit IsRecording()
// check.
func (rec *Recorder) End() error {
	if !rec.IsRecording() {
		return nil
	}

	defer func() {
		rec.file = nil
		rec.filename = ""
		rec.inputLine = ""
	}()

	// make sure everything has been written to the output file
	err := rec.Commit()

	// if Commit() causes an error, continue with the Close() operation and
	// return the Commit() error if the close succeeds
	if errClose := rec.file.Close(); errClose != nil {
		return curated.Errorf(RecordingError, errClose)
	}

	return err
}

// WriteInput stages a command for writing to the recording. Any previously
// staged command is committed first. Can be used without explicit
// IsRecording() check.
func (rec *Recorder) WriteInput(command string) error {
	if !rec.IsRecording() {
		return nil
	}

	err := rec.Commit()
	if command != "" {
		rec.inputLine = fmt.Sprintf("%s\n", command)
	}
	return err
}

// Rollback forgets the command staged by WriteInput() since the last
// Commit(). Can be used without explicit IsRecording() check.
func (rec *Recorder) Rollback() {
	rec.inputLine = ""
}

// Commit the staged command to the recording. Can be used without explicit
// IsRecording() check.
func (rec *Recorder) Commit() error {
	if !rec.IsRecording() {
		return nil
	}

	defer func() {
		rec.inputLine = ""
	}()

	if rec.inputLine == "" {
		return nil
	}

	n, err := io.WriteString(rec.file, rec.inputLine)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if n != len(rec.inputLine) {
		return curated.Errorf(RecordingError, "output truncated")
	}

	return nil
}
