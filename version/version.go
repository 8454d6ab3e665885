// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"

	"github.com/retroenv/retrogolib/buildinfo"
)

// The name to use when referring to the application
const ApplicationName = "GopherChip8"

// number, commit and date can be set with -ldflags at build time. if number
// is empty then the project was not built with release tooling
var (
	number string
	commit string
	date   string
)

// the version string as decided by init()
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly
func Version() (string, string, bool) {
	return version, commit, version == number && number != ""
}

// Banner returns a single line description of the build, suitable for
// printing at startup or in response to the VERSION mode.
func Banner() string {
	return fmt.Sprintf("%s %s", ApplicationName, buildinfo.Version(version, commit, date))
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool
	var vcsTime string

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.time":
				vcsTime = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if commit == "" && vcsRevision != "" {
		commit = vcsRevision
		if vcsModified {
			commit = fmt.Sprintf("%s+dirty", commit)
		}
	}

	if date == "" {
		date = vcsTime
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
