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


package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/database"
	"github.com/gopherchip8/gopherchip8/paths"
)

// the clear line ANSI sequence used to overwrite progress messages.
const clearLine = "\033[2K"

// DBFile returns the location of the regression database in the resource
// directory.
func DBFile() string {
	return paths.ResourcePath("regressionDB")
}

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the
	// newRegression flag indicates that the entry is being added to the
	// database and that the result should be recorded rather than compared
	//
	// the returned string gives a reason for any failure
	regress(newRegression bool) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryType, deserialiseDigestEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbfile string) error {
	db, err := database.StartSession(dbfile, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression entry to the database. The regression is
// run once to record the expected result.
func RegressAdd(output io.Writer, dbfile string, reg Regressor) error {
	if err := os.MkdirAll(filepath.Dir(dbfile), 0o755); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbfile, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "adding: %s", reg)

	ok, _, err := reg.regress(true)
	fmt.Fprintf(output, "\r%s", clearLine)
	if err != nil {
		db.EndSession(false)
		return err
	}
	if !ok {
		db.EndSession(false)
		return curated.Errorf("regression: could not add entry (%s)", reg)
	}

	key, err := db.Add(reg)
	if err != nil {
		db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "\radded: %03d %s\n", key, reg)

	return db.EndSession(true)
}

// RegressDelete removes an entry from the regression database. The user is
// asked for confirmation on the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, dbfile string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	db, err := database.StartSession(dbfile, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	reg, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", reg)

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return db.EndSession(true)
}

// RegressRun runs the tests in the regression database. The keys argument
// filters which entries are run. An empty list means that every entry is run.
//
// Returns an error if any test fails or cannot be run.
func RegressRun(output io.Writer, dbfile string, verbose bool, keys []string) error {
	db, err := database.StartSession(dbfile, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keysV := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)

	numSucceed := 0
	numFail := 0
	numError := 0

	onSelect := func(key int, ent database.Entry) error {
		// database entry should also satisfy Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		fmt.Fprintf(output, "running: %03d %s", key, reg)
		ok, reason, err := reg.regress(false)
		fmt.Fprintf(output, "\r%s", clearLine)

		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "\r  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "%v\n", err)
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "\rfailure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "%s\n", reason)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %03d %s\n", key, reg)
		}

		return nil
	}

	if db.NumEntries() > 0 {
		_, err = db.SelectKeys(onSelect, keysV...)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [with %d errors]", numError)
	}
	fmt.Fprintln(output)

	if numFail > 0 || numError > 0 {
		return curated.Errorf("regression: %d tests did not succeed", numFail+numError)
	}

	return nil
}
