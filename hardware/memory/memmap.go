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

// the geometry of the simulated machine. 64MB of physical memory in 4KB
// frames, of which 48MB is available to user processes. the remainder is
// notionally reserved for the kernel.
const (
	PageSize    = 4096
	TotalFrames = 16384
	UserFrames  = 12288
)

// PageTableSize is the number of entries in every process's page table.
const PageTableSize = 2048

// EssentialPages is the default size of the resident set a process must hold
// before it can be scheduled. The first pages of the virtual address space
// are reserved for this purpose.
const EssentialPages = 10

// ElementSize is the storage size of one element of the virtual array that a
// process searches over.
const ElementSize = 4

// PageForElement translates an index into a process's virtual array to the
// virtual page holding that element. The array begins immediately after the
// essential pages, so the translated page number is offset by the size of
// the essential set.
func PageForElement(element int, essentialPages int) int {
	return (element*ElementSize)/PageSize + essentialPages
}
