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

package process

import (
	"fmt"

	"github.com/jetsetilly/pagesim/hardware/memory"
)

// Process is the simulated process. The zero value is not useful; use
// NewProcess().
type Process struct {
	ID int

	// the page table for this process's virtual address space
	PageTable *memory.PageTable

	// the size of the virtual array the process performs its searches over
	ArraySize int

	// the keys to be searched for, consumed in order. SearchIdx is the
	// cursor into the list; it only advances when a search runs to
	// completion
	SearchKeys []int
	SearchIdx  int

	// an active process holds (at least part of) its essential resident set
	// and may be scheduled. an inactive process holds no frames at all.
	//
	// note that a process that has completed all of its searches remains
	// active even though it no longer holds any frames. completed processes
	// count towards the degree of multiprogramming
	Active bool
}

// NewProcess is the preferred method of initialisation for the Process type.
// The new process is inactive and holds no frames; activation happens when
// the machine grants it an essential resident set.
func NewProcess(id int, arraySize int, searchKeys []int) *Process {
	return &Process{
		ID:         id,
		PageTable:  memory.NewPageTable(memory.PageTableSize),
		ArraySize:  arraySize,
		SearchKeys: searchKeys,
	}
}

func (p *Process) String() string {
	return fmt.Sprintf("process %d: %d/%d searches, %s", p.ID, p.SearchIdx, len(p.SearchKeys), p.PageTable)
}

// Completed reports whether the process has run out of searches to perform.
func (p *Process) Completed() bool {
	return p.SearchIdx >= len(p.SearchKeys)
}
