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

package memory

import "fmt"

// entry is a single page table entry. An entry is either a valid mapping to
// a physical frame or it is nothing at all.
type entry struct {
	frame int
	valid bool
}

// PageTable maps the pages of one process's virtual address space to
// physical frames. The table is of fixed size; the page numbers it will
// accept are decided at creation.
type PageTable struct {
	entries  []entry
	resident int
}

// NewPageTable is the preferred method of initialisation for the PageTable
// type. Every entry begins invalid.
func NewPageTable(numPages int) *PageTable {
	return &PageTable{
		entries: make([]entry, numPages),
	}
}

func (pt *PageTable) String() string {
	return fmt.Sprintf("%d of %d pages resident", pt.resident, len(pt.entries))
}

// page number range checking is applied on every access. an out of range
// page indicates a bug in the address translation of the caller.
func (pt *PageTable) rangeCheck(page int) {
	if page < 0 || page >= len(pt.entries) {
		panic(fmt.Sprintf("page table: page %d is outside the table (size %d)", page, len(pt.entries)))
	}
}

// IsResident reports whether the page has a valid mapping to a frame.
func (pt *PageTable) IsResident(page int) bool {
	pt.rangeCheck(page)
	return pt.entries[page].valid
}

// Frame returns the frame mapped to by the page. The page must be resident.
func (pt *PageTable) Frame(page int) int {
	pt.rangeCheck(page)
	if !pt.entries[page].valid {
		panic(fmt.Sprintf("page table: page %d is not resident", page))
	}
	return pt.entries[page].frame
}

// Map installs a valid mapping from page to frame. Mapping over a page that
// is already resident would lose track of a frame, so that is treated as a
// defect in the caller.
func (pt *PageTable) Map(page int, frame int) {
	pt.rangeCheck(page)
	if pt.entries[page].valid {
		panic(fmt.Sprintf("page table: page %d is already mapped (to frame %d)", page, pt.entries[page].frame))
	}

	pt.entries[page] = entry{frame: frame, valid: true}
	pt.resident++
}

// UnmapAll invalidates every entry in the table, returning the list of
// frames that were mapped. Used on swap-out and on process completion; the
// caller is expected to return the frames to the pool.
func (pt *PageTable) UnmapAll() []int {
	frames := make([]int, 0, pt.resident)
	for i := range pt.entries {
		if pt.entries[i].valid {
			frames = append(frames, pt.entries[i].frame)
			pt.entries[i] = entry{}
		}
	}
	pt.resident = 0
	return frames
}

// Resident returns the number of valid entries in the table.
func (pt *PageTable) Resident() int {
	return pt.resident
}

// Size returns the number of entries in the table, valid or not.
func (pt *PageTable) Size() int {
	return len(pt.entries)
}
