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

// Package romloader is used to specify the program image that is to be
// attached to the emulated machine.
//
// When the image is ready to be loaded the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. Local files can be
// inside a zip archive (see the archivefs package).
//
//	ld := romloader.NewLoader("roms/PONG.ch8")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//
// After loading, the Hash field contains the SHA-1 hash of the data. If the
// Hash field is set before loading then the loaded data must match it.
package romloader
