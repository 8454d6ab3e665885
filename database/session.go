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

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/gopherchip8/gopherchip8/curated"
)

// Activity specifies what the session intends to do with the database.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init argument
// registers the entry types the database will contain.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if err := init(db); err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}
	defer f.Close()

	if err := db.readEntries(f); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) readEntries(r io.Reader) error {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		if len(rec) < numLeaderFields {
			return curated.Errorf("database: invalid entry (%v)", rec)
		}

		key, err := strconv.Atoi(rec[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s)", rec[leaderFieldKey])
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d)", key)
		}

		des, ok := db.entryTypes[rec[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s)", rec[leaderFieldID])
		}

		ent, err := des(rec[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	return nil
}

// EndSession closes the database. The database file is written if commitChanges
// is true and the session was not started with ActivityReading.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	// write to a temporary file and replace the database file only when
	// everything has been written
	tmp := fmt.Sprintf("%s.tmp", db.path)

	f, err := os.Create(tmp)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	wr := csv.NewWriter(f)

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			f.Close()
			return curated.Errorf("database: %v", err)
		}

		rec := append([]string{fmt.Sprintf("%03d", key), ent.EntryType()}, fields...)
		if err := wr.Write(rec); err != nil {
			f.Close()
			return curated.Errorf("database: %v", err)
		}
	}

	wr.Flush()
	if err := wr.Error(); err != nil {
		f.Close()
		return curated.Errorf("database: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	if err := os.Rename(tmp, db.path); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
