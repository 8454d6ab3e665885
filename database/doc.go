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


// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The second argument is a description of the type of activity that will be
// happening during the session. ActivityCreating will create the database
// file if it does not already exist. ActivityReading sessions never write to
// the file.
//
// The third argument is the session initialisation function. It tells the
// database which entry types it can expect to find:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", deserialiseFoo)
//	}
//
// Deserialisers are called with the fields of an entry, not including the
// key and the entry type, and return a new database.Entry.
//
// The file is a CSV file. The first two fields of every record are the key
// and the entry type.
package database
