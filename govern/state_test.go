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

package govern_test

import (
	"testing"

	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/test"
)

func TestState(t *testing.T) {
	test.ExpectEquality(t, govern.EmulatorStart.String(), "EmulatorStart")
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectEquality(t, govern.Halted.String(), "Halted")
	test.ExpectEquality(t, govern.State(100).String(), "")

	test.ExpectEquality(t, govern.Running.Active(), true)
	test.ExpectEquality(t, govern.Paused.Active(), true)
	test.ExpectEquality(t, govern.Halted.Active(), true)
	test.ExpectEquality(t, govern.Ending.Active(), false)
	test.ExpectEquality(t, govern.Initialising.Active(), false)
}
