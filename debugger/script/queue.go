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
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jetsetilly/pcidebug/curated"
)

// sentinal error patterns
const (
	NoSuchFile  = "script: no such file: %s"
	ScriptError = "script: %v"
)

// commentLine is the prefix of lines that are ignored
const commentLine = "#"

// Line is a single command line taken from the Queue.
type Line struct {
	Entry string

	// whether the line was loaded from a file
	Batch bool
}

// Queue normalises input into commands and dishes out those commands one at
// a time. Used by interactive terminals and batch files.
type Queue struct {
	lines []Line
}

// More returns true if there are more commands in the queue.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Next command in the queue.
func (q *Queue) Next() (Line, bool) {
	if len(q.lines) > 0 {
		ln := q.lines[0]
		q.lines = q.lines[1:]
		return ln, true
	}
	return Line{}, false
}

// Clear removes all commands from the queue.
func (q *Queue) Clear() {
	q.lines = q.lines[:0]
}

// Push input into the queue and return the first command. Returns io.EOF if
// the input contained no commands and the queue is empty.
func (q *Queue) Push(input string) (Line, error) {
	q.push(split(input), false)
	if ln, ok := q.Next(); ok {
		return ln, nil
	}
	return Line{}, io.EOF
}

func (q *Queue) push(lines []string, batch bool) {
	for _, s := range lines {
		q.lines = append(q.lines, Line{Entry: s, Batch: batch})
	}
}

// split input into command lines. blank lines and comment lines are removed
func split(input string) []string {
	// replace windows and mac line endings with unix line endings
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	var lines []string
	for s := range strings.SplitSeq(input, "\n") {
		if strings.HasPrefix(strings.TrimSpace(s), commentLine) {
			continue
		}

		// commands can be separated by semi-colons as well as newlines. space
		// either side of a separator is not part of the command
		for c := range strings.SplitSeq(s, ";") {
			c = strings.TrimSpace(c)
			if len(c) > 0 {
				lines = append(lines, c)
			}
		}
	}

	return lines
}

// readFile returns the command lines in the named file
func readFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoSuchFile, filename)
		}
		return nil, curated.Errorf(ScriptError, err)
	}
	defer f.Close()

	s, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}

	return split(string(s)), nil
}

// Load the commands in the named file into the queue.
func (q *Queue) Load(filename string) error {
	lines, err := readFile(filename)
	if err != nil {
		return err
	}
	q.push(lines, true)
	return nil
}
