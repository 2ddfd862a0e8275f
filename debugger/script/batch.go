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

	"github.com/jetsetilly/pcidebug/curated"
)

// BARMismatch is the sentinal error pattern for batch files that were not
// written for the BAR being accessed.
const BARMismatch = "BAR is not compliant with the command file (Expected: %d - Found: %d)"

// NoBAR is the value reported by a BARMismatch error when the batch file has
// no header.
const NoBAR = -1

// Header returns the first line of a batch file written for the BAR.
func Header(bar int) string {
	return fmt.Sprintf("bar%d", bar)
}

// parseHeader returns the BAR named by the header line. Returns NoBAR if the
// line is not a header
func parseHeader(line string) int {
	var bar int
	if n, _ := fmt.Sscanf(line, "bar%d", &bar); n != 1 {
		return NoBAR
	}
	return bar
}

// LoadBatch loads the commands in the named batch file into the queue. The
// first command line of the file must be a header naming the BAR. If it
// doesn't name the expected BAR then no commands are loaded and a
// BARMismatch error is returned.
func (q *Queue) LoadBatch(filename string, bar int) error {
	lines, err := readFile(filename)
	if err != nil {
		return err
	}

	found := NoBAR
	if len(lines) > 0 {
		found = parseHeader(lines[0])
	}
	if found != bar {
		return curated.Errorf(BARMismatch, bar, found)
	}

	q.push(lines[1:], true)
	return nil
}
