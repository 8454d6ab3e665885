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


// Package archivefs allows program images to be loaded from inside zip
// archives. An archive is treated as a directory, so a path such as:
//
//	roms/games.zip/pong.ch8
//
// refers to the file pong.ch8 inside the archive games.zip. A path that names
// an archive containing exactly one file refers to that file.
package archivefs

import (
	"strings"

	"github.com/gopherchip8/gopherchip8/curated"
)

// ArchiveError is the pattern of all errors returned by the package.
const ArchiveError = "archivefs: %v"

// Open and return the data in the file named by filename. Filename can be
// inside an archive.
func Open(filename string) ([]byte, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}
	defer afs.Close()

	if afs.IsDir() {
		if !afs.InArchive() {
			return nil, curated.Errorf(ArchiveError, "cannot open a directory")
		}

		ent, err := afs.List()
		if err != nil {
			return nil, err
		}

		var files []string
		for _, e := range ent {
			if !e.IsDir {
				files = append(files, e.Name)
			}
		}

		if len(files) != 1 {
			return nil, curated.Errorf(ArchiveError, "archive does not contain a single file: "+strings.Join(files, ", "))
		}

		err = afs.Set(afs.Join(files[0]))
		if err != nil {
			return nil, err
		}
	}

	return afs.Open()
}
