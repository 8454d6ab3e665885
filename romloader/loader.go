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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopherchip8/gopherchip8/archivefs"
	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/logger"
)

// LoadError is the pattern of all errors returned by Load().
const LoadError = "romloader: %v"

// FileExtensions is the list of file extensions that are commonly used for
// CHIP-8 program images. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader specifies the program image to attach to the machine.
type Loader struct {
	// filename or URL of the program image
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a Loader that has already been loaded with data.
// The name argument is used in place of a filename.
func NewLoaderFromData(name string, data []byte) Loader {
	ld := Loader{
		Filename: name,
		Data:     slices.Clone(data),
	}
	ld.Hash = hash(ld.Data)
	return ld
}

func hash(data []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(data))
}

// ShortName returns a shortened version of the filename, without path or
// extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program image. Filenames with a URL scheme will use that method to
// load the data. Currently supported schemes are HTTP(S) and local files.
// Local files can be inside a zip archive.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Sprintf("http status (%s)", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file", "":
		data, err = archivefs.Open(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(LoadError, "empty program image")
	}

	h := hash(data)
	if ld.Hash != "" && ld.Hash != h {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	ext := strings.ToUpper(filepath.Ext(ld.Filename))
	if !slices.Contains(FileExtensions[:], ext) && ext != ".ZIP" {
		logger.Logf(logger.Allow, "romloader", "unusual file extension (%s)", ext)
	}

	ld.Data = data
	ld.Hash = h

	return nil
}
