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

// Package version reports the version of the application. The version number
// is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/pcidebug/version.number=v1.0.0"
//
// Without a version number the build information embedded by the go tool is
// used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "pcidebug"

// set by the linker
var number string

// Info describes the build of the application.
type Info struct {
	// the version number, "unreleased" if the application was built from a
	// repository without a version number and "local" if there is no
	// information at all
	Version string

	// vcs revision. suffixed with "+dirty" if the source had been modified
	// but not committed
	Revision string

	// whether this is a numbered release
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

// Version returns the build information.
var Version = sync.OnceValue(func() Info {
	return buildInfo(number, debug.ReadBuildInfo)
})

func buildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var vcs bool
	var modified bool

	info := Info{
		Version:  number,
		Revision: "no revision information",
		Release:  number != "",
	}

	if bi, ok := read(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified {
		info.Revision = fmt.Sprintf("%s+dirty", info.Revision)
	}

	if info.Version == "" {
		if vcs {
			info.Version = "unreleased"
		} else {
			info.Version = "local"
		}
	}

	return info
}
