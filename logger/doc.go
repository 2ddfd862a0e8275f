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

// Package logger is the central log for pcidebug. Log entries are tagged with
// the part of the program making the entry. Identical entries made one after
// the other are collapsed into a single entry with a repeat count.
//
// Whether a log entry is made is controlled by a Permission. The Allow
// permission should be used when an entry should always be made. The
// Verbosity type allows entries to be made only when the operator has asked
// for that level of detail.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho().
package logger
