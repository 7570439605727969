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
	"io"

	"github.com/jetsetilly/pagesim/curated"
	"github.com/jetsetilly/pagesim/hardware/memory"
	"github.com/jetsetilly/pagesim/hardware/process"
	"github.com/jetsetilly/pagesim/hardware/queue"
	"github.com/jetsetilly/pagesim/logger"
	"github.com/jetsetilly/pagesim/statistics"
	"github.com/jetsetilly/pagesim/workload"
)

// Options for the NewSystem() function. The zero value selects the default
// machine geometry and discards progress messages.
type Options struct {
	// number of frames in the pool. values of zero or less select the
	// default of memory.UserFrames
	NumFrames int

	// size of the essential resident set. values of zero or less select the
	// default of memory.EssentialPages
	EssentialPages int

	// progress messages (swap notices, the per-search trace) are written
	// here. a nil writer discards them
	Progress io.Writer

	// emit a trace line for every search step
	TraceSearches bool
}

// System struct is the main container for the simulated machine.
type System struct {
	Frames *memory.Pool
	Procs  []*process.Process
	SwapQ  *queue.Queue
	Stats  *statistics.Statistics

	essentialPages int
	progress       io.Writer
	trace          bool

	// the round-robin cursor. the process at the cursor runs next
	cursor int
}

// NewSystem creates a new System from a workload description and prepares it
// for running: every process is granted its essential resident set, as far
// as the frame pool allows, and marked active.
func NewSystem(wl *workload.Workload, opts Options) (*System, error) {
	numFrames := opts.NumFrames
	if numFrames <= 0 {
		numFrames = memory.UserFrames
	}

	essentialPages := opts.EssentialPages
	if essentialPages <= 0 {
		essentialPages = memory.EssentialPages
	}
	if essentialPages >= memory.PageTableSize {
		return nil, curated.Errorf("hardware: essential page count (%d) does not fit the page table", essentialPages)
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	sys := &System{
		Frames:         memory.NewPool(numFrames),
		Procs:          make([]*process.Process, 0, len(wl.Processes)),
		SwapQ:          queue.NewQueue(len(wl.Processes)),
		Stats:          statistics.NewStatistics(len(wl.Processes)),
		essentialPages: essentialPages,
		progress:       progress,
		trace:          opts.TraceSearches,
	}

	for i, def := range wl.Processes {
		// the last element of the array must translate to a page inside the
		// page table
		if maxPage := memory.PageForElement(def.ArraySize-1, essentialPages); maxPage >= memory.PageTableSize {
			return nil, curated.Errorf("hardware: process %d: array size %d does not fit the page table", i, def.ArraySize)
		}

		p := process.NewProcess(i, def.ArraySize, def.SearchKeys)

		// grant the essential resident set, bounded by available frames. a
		// process that could not secure its full set still starts active; it
		// will fault on the missing pages as it touches them
		for j := 0; j < essentialPages && sys.Frames.NumFree() > 0; j++ {
			frame, _ := sys.Frames.Allocate()
			p.PageTable.Map(j, frame)
		}
		p.Active = true

		sys.Procs = append(sys.Procs, p)
	}

	logger.Logf(logger.Allow, "hardware", "initialised: %d processes, %d frames, %d essential pages",
		len(sys.Procs), numFrames, essentialPages)

	return sys, nil
}

// EssentialPages returns the size of the essential resident set for this
// machine.
func (sys *System) EssentialPages() int {
	return sys.essentialPages
}

// ActiveCount returns the number of processes currently counted as active.
// Note that a process that has completed all of its searches remains active.
func (sys *System) ActiveCount() int {
	count := 0
	for _, p := range sys.Procs {
		if p.Active {
			count++
		}
	}
	return count
}
