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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/pagesim/hardware/memory"
	"github.com/jetsetilly/pagesim/hardware/process"
	"github.com/jetsetilly/pagesim/logger"
)

// Step runs one scheduling turn: the next process in round-robin order is
// given the chance to perform one full search. Inactive and completed
// processes take their turn but make no progress and reference no pages.
func (sys *System) Step() {
	p := sys.Procs[sys.cursor]
	sys.cursor = (sys.cursor + 1) % len(sys.Procs)

	if !p.Active || p.Completed() {
		return
	}

	sys.search(p)
}

// search advances a process by simulating one full binary search for the key
// at the process's search cursor.
func (sys *System) search(p *process.Process) {
	key := p.SearchKeys[p.SearchIdx]

	if sys.trace {
		fmt.Fprintf(sys.progress, "\tSearch %d by Process %d\n", p.SearchIdx+1, p.ID)
	}

	// lower-bound binary search over [0, ArraySize). the interval narrows to
	// the lower half, inclusive of the midpoint, when the key is less than
	// or equal to the midpoint
	lo := 0
	hi := p.ArraySize - 1

	for lo < hi {
		mid := (lo + hi) / 2

		page := memory.PageForElement(mid, sys.essentialPages)
		sys.Stats.PageAccess()

		if !p.PageTable.IsResident(page) {
			if !sys.pageFault(p, page) {
				// the fault suspended the process. the step is abandoned
				// without touching the search cursor; the whole search is
				// retried from scratch when the process next resumes
				return
			}
		}

		if key <= mid {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	p.SearchIdx++

	if p.Completed() {
		sys.retire(p)
	}
}

// retire releases every frame held by a process that has performed all of
// its searches and resumes as many suspended processes as the freed frames
// allow. The process stays out of the swap queue; there is nothing to resume
// it for.
func (sys *System) retire(p *process.Process) {
	for _, frame := range p.PageTable.UnmapAll() {
		sys.Frames.Release(frame)
	}

	logger.Logf(logger.Allow, "hardware", "process %d completed", p.ID)

	sys.drainSwapQueue()
}
