// This file is part of Pagesim.
//
// Pagesim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pagesim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pagesim.  If not, see <https://www.gnu.org/licenses/>.

package workload

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/pagesim/curated"
)

// upper bounds applied when validating a workload description. storage is
// sized to the actual input; these only catch descriptions that are clearly
// malformed.
const (
	MaxProcesses = 500
	MaxSearches  = 100
)

// ProcessDef describes the work assigned to one process.
type ProcessDef struct {
	// the size of the virtual array the process searches over
	ArraySize int

	// the keys to search for, one per search
	SearchKeys []int
}

// Workload is the parsed and validated content of a workload description.
type Workload struct {
	// the number of searches every process performs
	NumSearches int

	Processes []ProcessDef
}

// Load reads a workload description from the named file.
func Load(filename string) (*Workload, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("workload: %v", err)
	}
	defer f.Close()

	wl, err := Read(f)
	if err != nil {
		return nil, curated.Errorf("workload: %s: %v", filename, err)
	}

	return wl, nil
}

// Read parses a workload description from an io.Reader. Useful directly when
// the description does not live in a file.
func Read(input io.Reader) (*Workload, error) {
	sc := bufio.NewScanner(input)
	sc.Split(bufio.ScanWords)

	numProcesses, err := nextInt(sc, "process count")
	if err != nil {
		return nil, err
	}
	numSearches, err := nextInt(sc, "search count")
	if err != nil {
		return nil, err
	}

	if numProcesses <= 0 || numProcesses > MaxProcesses {
		return nil, curated.Errorf("workload: invalid process count (%d)", numProcesses)
	}
	if numSearches <= 0 || numSearches > MaxSearches {
		return nil, curated.Errorf("workload: invalid search count (%d)", numSearches)
	}

	wl := &Workload{
		NumSearches: numSearches,
		Processes:   make([]ProcessDef, 0, numProcesses),
	}

	for i := 0; i < numProcesses; i++ {
		arraySize, err := nextInt(sc, "array size")
		if err != nil {
			return nil, curated.Errorf("workload: process %d: %v", i, err)
		}
		if arraySize <= 0 {
			return nil, curated.Errorf("workload: process %d: invalid array size (%d)", i, arraySize)
		}

		def := ProcessDef{
			ArraySize:  arraySize,
			SearchKeys: make([]int, 0, numSearches),
		}

		for j := 0; j < numSearches; j++ {
			key, err := nextInt(sc, "search key")
			if err != nil {
				return nil, curated.Errorf("workload: process %d: %v", i, err)
			}
			if key < 0 || key >= arraySize {
				return nil, curated.Errorf("workload: process %d: search key %d is outside the array (size %d)", i, key, arraySize)
			}
			def.SearchKeys = append(def.SearchKeys, key)
		}

		wl.Processes = append(wl.Processes, def)
	}

	return wl, nil
}

// nextInt returns the next whitespace-separated number in the description.
// the name argument is used to identify the field in any error message.
func nextInt(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, curated.Errorf("missing %s", name)
	}

	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, curated.Errorf("bad %s (%s)", name, sc.Text())
	}

	return v, nil
}
