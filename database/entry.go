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


package database

import "github.com/gopherchip8/gopherchip8/curated"

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string that is used to identify the entry type
	// in the database
	EntryType() string

	// String should return information about the entry in a human readable
	// format. by contrast, machine readable representation is returned by
	// the Serialise function
	String() string

	// Serialise returns the fields of the entry, not including the key or
	// the entry type
	Serialise() ([]string, error)

	// CleanUp is called when the entry is deleted from the database
	CleanUp() error
}

// Deserialiser creates an Entry from the fields of a record.
type Deserialiser func(fields []string) (Entry, error)

// RegisterEntryType tells the database what entries it may expect in the
// database and what to do when it encounters one.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("database: trying to register a duplicate entry ID (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
