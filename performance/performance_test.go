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

package performance_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/performance"
	"github.com/gopherchip8/gopherchip8/romloader"
	"github.com/gopherchip8/gopherchip8/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(60, 2.0)
	test.ExpectApproximate(t, fps, 30.0, 0.001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.001)

	fps, _ = performance.CalcFPS(60, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check takes more than two seconds")
	}

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.ExpectSuccess(t, err)

	// count in V0 forever
	ld := romloader.NewLoaderFromData("count", []byte{0x70, 0x01, 0x12, 0x00})

	var s strings.Builder
	err = performance.Check(&s, performance.ProfileNone, ld, prefs, "100ms")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(s.String(), "fps"), true)
	test.ExpectEquality(t, strings.Contains(s.String(), "instructions per second"), true)

	err = performance.Check(&s, performance.ProfileNone, ld, prefs, "not a duration")
	test.ExpectFailure(t, err)
}
