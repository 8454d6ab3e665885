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

// Package logger is the central log for the application. Entries are tagged
// and held in a ring of fixed size. Consecutive identical entries are folded
// into one entry with a repeat count.
//
// The package level functions Log() and Logf() write to the central logger.
// Additional loggers can be created with NewLogger(), which is mostly useful
// for testing.
//
// Every log request is accompanied by a Permission. If the Permission does not
// allow logging the request is ignored. The Allow value can be used when an
// entry should always be made.
package logger
