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

package preferences

import (
	"fmt"
	"sync/atomic"

	"github.com/gopherchip8/gopherchip8/paths"
	"github.com/gopherchip8/gopherchip8/prefs"
)

// DefaultSpeed is the default number of instructions executed every frame.
// At 60 frames per second this is 660 instructions per second.
const DefaultSpeed = 11

// Preferences defines and collates all the preference values used by the
// emulated machine.
type Preferences struct {
	dsk *prefs.Disk

	// the number of instructions executed every frame
	Speed prefs.Int

	Quirks QuirkPreferences
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath(prefs.DefaultPrefsFile))
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// location of the preferences file is given explicitly.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Speed.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("preferences: speed must be at least one instruction per frame")
		}
		return nil
	})

	p.Quirks.init()
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Add("chip8.speed", &p.Speed)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.Quirks.add(p.dsk)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Speed.Set(DefaultSpeed)
	p.Quirks.SetDefaults()
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Quirks is a copy of the quirk preferences. Emulation code should consult
// this type rather than QuirkPreferences.
type Quirks struct {
	// SHR and SHL operate on VX. if false, VY is shifted and the result
	// stored in VX
	ShiftVXOnly bool

	// Bnnn jumps to nnn plus the register named by the high nibble of nnn. if
	// false the jump is to nnn plus V0
	JumpVX bool

	// Fx55 and Fx65 leave I pointing at the byte after the last register
	LoadStoreIncI bool

	// OR, AND and XOR clear VF
	LogicResetsVF bool

	// sprites are clipped at the edge of the display rather than wrapped
	ClipSprites bool
}

func (q Quirks) String() string {
	return fmt.Sprintf("shiftVXOnly=%v jumpVX=%v loadStoreIncI=%v logicResetsVF=%v clipSprites=%v",
		q.ShiftVXOnly, q.JumpVX, q.LoadStoreIncI, q.LogicResetsVF, q.ClipSprites)
}

// QuirkPreferences are the disk copies of the quirk settings.
type QuirkPreferences struct {
	ShiftVXOnly   prefs.Bool
	JumpVX        prefs.Bool
	LoadStoreIncI prefs.Bool
	LogicResetsVF prefs.Bool
	ClipSprites   prefs.Bool

	// incremented by the post hook of every quirk
	generation atomic.Uint64
}

func (p *QuirkPreferences) init() {
	changed := func(_ prefs.Value) error {
		p.generation.Add(1)
		return nil
	}
	p.ShiftVXOnly.SetHookPost(changed)
	p.JumpVX.SetHookPost(changed)
	p.LoadStoreIncI.SetHookPost(changed)
	p.LogicResetsVF.SetHookPost(changed)
	p.ClipSprites.SetHookPost(changed)
}

func (p *QuirkPreferences) add(dsk *prefs.Disk) error {
	if err := dsk.Add("chip8.quirks.shiftVXOnly", &p.ShiftVXOnly); err != nil {
		return err
	}
	if err := dsk.Add("chip8.quirks.jumpVX", &p.JumpVX); err != nil {
		return err
	}
	if err := dsk.Add("chip8.quirks.loadStoreIncI", &p.LoadStoreIncI); err != nil {
		return err
	}
	if err := dsk.Add("chip8.quirks.logicResetsVF", &p.LogicResetsVF); err != nil {
		return err
	}
	if err := dsk.Add("chip8.quirks.clipSprites", &p.ClipSprites); err != nil {
		return err
	}
	return nil
}

// SetDefaults reverts all quirks to the default values.
func (p *QuirkPreferences) SetDefaults() {
	_ = p.ShiftVXOnly.Set(true)
	_ = p.JumpVX.Set(false)
	_ = p.LoadStoreIncI.Set(false)
	_ = p.LogicResetsVF.Set(false)
	_ = p.ClipSprites.Set(false)
}

// Live returns a copy of the current quirk values.
func (p *QuirkPreferences) Live() Quirks {
	return Quirks{
		ShiftVXOnly:   p.ShiftVXOnly.Get().(bool),
		JumpVX:        p.JumpVX.Get().(bool),
		LoadStoreIncI: p.LoadStoreIncI.Get().(bool),
		LogicResetsVF: p.LogicResetsVF.Get().(bool),
		ClipSprites:   p.ClipSprites.Get().(bool),
	}
}

// Generation returns a number that changes every time a quirk value is set.
// Compare with an earlier value to see if the quirks need to be copied again.
func (p *QuirkPreferences) Generation() uint64 {
	return p.generation.Load()
}
