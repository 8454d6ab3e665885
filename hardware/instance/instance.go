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

package instance

import (
	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main        Label = ""
	Performance Label = "performance"
	Regression  Label = "regression"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type, but is not actually the
// Machine itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences

	// rather than accessing the fields in Prefs.Quirks directly, the
	// emulation should read the fields in Quirks. these values are updated
	// with the UpdateQuirks() function.
	Quirks preferences.Quirks

	// the quirk generation at the time of the most recent UpdateQuirks()
	quirksGeneration uint64
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new preferences instance
// will be created. Providing a non-nil value allows the preferences of more
// than one machine to be synchronised.
func NewInstance(clock random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clock),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs
	ins.Quirks = prefs.Quirks.Live()
	ins.quirksGeneration = prefs.Quirks.Generation()

	return ins, nil
}

// AllowLogging implements the logger.Permission interface.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
	ins.UpdateQuirks()
}

// UpdateQuirks updates the live quirk values for the running emulation.
// Returns true if the values have changed since the previous call.
func (ins *Instance) UpdateQuirks() bool {
	gen := ins.Prefs.Quirks.Generation()
	if gen == ins.quirksGeneration {
		return false
	}
	ins.quirksGeneration = gen
	ins.Quirks = ins.Prefs.Quirks.Live()
	return true
}
