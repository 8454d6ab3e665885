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

// Package modalflag wraps the flag package of the standard library. It adds
// the concept of program modes, each of which can have its own set of flags
// and arguments.
//
// Arguments are first given to NewArgs() and then processed with Parse(). A
// list of possible modes is added with AddSubModes(); the first mode in the
// list is the default mode. After Parse() the selected mode is returned by
// Mode():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "VERSION")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 16, "window scaling")
//		...
//	}
//
// The second call to Parse(), after NewMode(), processes the flags for the
// selected mode. Arguments that are not flags or mode selectors are returned
// by RemainingArgs() and GetArg().
//
// Mode names are case insensitive and are always returned in upper case.
package modalflag
