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

package logger

import "sync/atomic"

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed. A good default to
// use if a log entry should always be made.
var Allow Permission = allow{}

// the level of detail asked for by the operator
var verbosity atomic.Int32

// MaxVerbosity is the most detailed level of logging. It is also the default.
const MaxVerbosity = 3

func init() {
	verbosity.Store(MaxVerbosity)
}

// SetVerbosity changes the level of detail allowed by the Verbosity
// permission. Levels run from zero (errors and warnings only) to
// MaxVerbosity (everything).
func SetVerbosity(level int) {
	verbosity.Store(int32(level))
}

// Verbosity is a Permission that allows logging only when the verbosity set
// with SetVerbosity() is at least the value of the Verbosity instance.
type Verbosity int

// AllowLogging implements the Permission interface.
func (v Verbosity) AllowLogging() bool {
	return int32(v) <= verbosity.Load()
}
