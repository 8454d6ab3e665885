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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherchip8/gopherchip8/paths"
	"github.com/gopherchip8/gopherchip8/test"
)

// change to a new temporary directory for the duration of the test
func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLocalResourcePath(t *testing.T) {
	chdir(t)
	test.ExpectSuccess(t, os.Mkdir(".gopherchip8", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".gopherchip8", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".gopherchip8", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".gopherchip8", "baz"))
	test.ExpectEquality(t, paths.ResourcePath(), ".gopherchip8")
}

func TestConfigResourcePath(t *testing.T) {
	chdir(t)
	cfg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("HOME", cfg)

	p := paths.ResourcePath("preferences")
	test.ExpectEquality(t, filepath.Base(p), "preferences")
	test.ExpectEquality(t, strings.Contains(p, "gopherchip8"), true)
	test.ExpectEquality(t, strings.Contains(p, ".gopherchip8"), false)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("audio", "pong")
	test.ExpectEquality(t, strings.HasPrefix(fn, "audio_pong_"), true)

	fn = paths.UniqueFilename("audio", " ")
	test.ExpectEquality(t, strings.HasPrefix(fn, "audio_"), true)
	test.ExpectEquality(t, strings.Contains(fn, " "), false)
}
