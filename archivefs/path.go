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


package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopherchip8/gopherchip8/curated"
)

// Node is a single entry in a directory or in an archive.
type Node struct {
	Name string

	// an archive file is also considered to be a directory
	IsDir     bool
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path is a location in the file system. The location can be inside an
// archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// path inside the archive. always uses forward slashes
	inZip string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Join returns the current path extended by name.
func (afs Path) Join(name string) string {
	return filepath.Join(afs.current, name)
}

// Close any open archive and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the current path. Returns an error if the path does not exist.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			p := path.Join(afs.inZip, l)

			f, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return curated.Errorf(ArchiveError, err)
			}
			fi, err := f.Stat()
			f.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf(ArchiveError, err)
			}

			afs.inZip = p
			afs.isDir = fi.IsDir()
			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			return curated.Errorf(ArchiveError, err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(current)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			return curated.Errorf(ArchiveError, err)
		}
	}

	afs.current = current

	return nil
}

// Open the file at the current path and return its contents.
func (afs Path) Open() ([]byte, error) {
	if afs.isDir {
		return nil, curated.Errorf(ArchiveError, "cannot open a directory")
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(afs.inZip)
		if err != nil {
			return nil, curated.Errorf(ArchiveError, err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, curated.Errorf(ArchiveError, err)
		}
		return b, nil
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}
	return b, nil
}

// List returns the entries at the current path. If the current path is a file
// then the list will be the contents of the containing directory of that file.
//
// Directories are listed first. Entries are otherwise in alphabetical order.
func (afs Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		dir := afs.inZip
		if !afs.isDir {
			dir = path.Dir(dir)
		}
		if dir == "" {
			dir = "."
		}

		dent, err := fs.ReadDir(&afs.zf.Reader, dir)
		if err != nil {
			return nil, curated.Errorf(ArchiveError, err)
		}

		for _, d := range dent {
			ent = append(ent, Node{
				Name:  d.Name(),
				IsDir: d.IsDir(),
			})
		}
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		dent, err := os.ReadDir(dir)
		if err != nil {
			return nil, curated.Errorf(ArchiveError, err)
		}

		for _, d := range dent {
			p := filepath.Join(dir, d.Name())

			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}

			n := Node{
				Name:  d.Name(),
				IsDir: fi.IsDir(),
			}

			if !n.IsDir {
				if zf, err := zip.OpenReader(p); err == nil {
					zf.Close()
					n.IsDir = true
					n.IsArchive = true
				}
			}

			ent = append(ent, n)
		}
	}

	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}
