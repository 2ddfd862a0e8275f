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

// Package endian converts values between the byte order of the host and the
// byte order used when storing values to device memory.
//
// The conversion functions are relative to the host's native byte order. A
// value is only reordered when the host order differs from the requested
// Mode. On a little-endian host the Little mode never reorders bytes and the
// Big mode always does. On a big-endian host the reverse is true.
//
// There are no 8-bit conversion functions because single bytes are never
// reordered.
package endian

import "math/bits"

// Mode is the byte order used when accessing device memory.
type Mode int

// List of valid Mode values. The zero value is Little.
const (
	Little Mode = iota
	Big
)

func (m Mode) String() string {
	switch m {
	case Little:
		return "little-endian"
	case Big:
		return "big-endian"
	}
	return "unknown endian"
}

// ModeFromLetter returns the Mode indicated by a single letter. The letter
// 'b' indicates Big and the letter 'l' indicates Little. Letters are case
// insensitive. Returns false if the letter is not recognised.
func ModeFromLetter(r byte) (Mode, bool) {
	switch r {
	case 'b', 'B':
		return Big, true
	case 'l', 'L':
		return Little, true
	}
	return Little, false
}

// swap returns true if values must be byte swapped to be stored in the mode.
func (m Mode) swap() bool {
	return (m == Big) != hostBigEndian
}

// ToWire16 prepares a 16-bit native value for storage in the byte order of
// the mode.
func ToWire16(v uint16, m Mode) uint16 {
	if m.swap() {
		return bits.ReverseBytes16(v)
	}
	return v
}

// FromWire16 converts a stored 16-bit value to native byte order.
func FromWire16(v uint16, m Mode) uint16 {
	// byte swapping is its own inverse
	return ToWire16(v, m)
}

// ToWire32 prepares a 32-bit native value for storage in the byte order of
// the mode.
func ToWire32(v uint32, m Mode) uint32 {
	if m.swap() {
		return bits.ReverseBytes32(v)
	}
	return v
}

// FromWire32 converts a stored 32-bit value to native byte order.
func FromWire32(v uint32, m Mode) uint32 {
	return ToWire32(v, m)
}

// HostMode returns the native byte order of the host.
func HostMode() Mode {
	if hostBigEndian {
		return Big
	}
	return Little
}
