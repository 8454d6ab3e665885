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

package romloader_test

import (
	"archive/zip"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/romloader"
	"github.com/gopherchip8/gopherchip8/test"
)

var program = []byte{0x00, 0xe0, 0x12, 0x00}

// a hash that does not match the program
const wrongHash = "0000000000000000000000000000000000000000"

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "loop.ch8")
	test.ExpectSuccess(t, os.WriteFile(fn, program, 0o600))

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.HasLoaded(), false)
	test.ExpectEquality(t, ld.ShortName(), "loop")

	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, len(ld.Hash), 40)

	// the hash must match on a second load
	other := romloader.NewLoader(fn)
	other.Hash = ld.Hash
	test.ExpectSuccess(t, other.Load())

	other = romloader.NewLoader(fn)
	other.Hash = wrongHash
	err := other.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, romloader.LoadError), true)
}

func TestLoadFromArchive(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "games.zip")

	f, err := os.Create(fn)
	test.ExpectSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("loop.ch8")
	test.ExpectSuccess(t, err)
	_, err = w.Write(program)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, zw.Close())
	test.ExpectSuccess(t, f.Close())

	ld := romloader.NewLoader(filepath.Join(fn, "loop.ch8"))
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.ShortName(), "loop")

	// the archive contains a single file
	ld = romloader.NewLoader(fn)
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))

	ld = romloader.NewLoader(filepath.Join(fn, "missing.ch8"))
	err = ld.Load()
	test.ExpectEquality(t, curated.Is(err, romloader.LoadError), true)
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, romloader.LoadError), true)
}

func TestLoadEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.ch8")
	test.ExpectSuccess(t, os.WriteFile(fn, []byte{}, 0o600))
	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loop.ch8" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(program)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(fmt.Sprintf("%s/loop.ch8", srv.URL))
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))

	ld = romloader.NewLoader(fmt.Sprintf("%s/missing.ch8", srv.URL))
	test.ExpectFailure(t, ld.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/loop.ch8")
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "romloader: unsupported URL scheme (ftp)")
}

func TestFromData(t *testing.T) {
	data := []byte{0x60, 0x05}
	ld := romloader.NewLoaderFromData("test", data)
	data[0] = 0x00
	test.ExpectEquality(t, ld.Data[0], uint8(0x60))
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectSuccess(t, ld.Load())
}
