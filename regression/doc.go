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


// Package regression facilitates the regression testing of emulation code.
// By adding test results to a database, the tests can be rerun automatically
// and checked for consistency.
//
// A DigestRegression entry runs a ROM for a fixed number of frames and records
// the fingerprint of the video and/or audio output. The emulation is
// normalised for every run: preferences are set to their default values, the
// recorded speed is applied and random numbers are generated from a zero
// seed.
package regression
