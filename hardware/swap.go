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

	"github.com/jetsetilly/pagesim/hardware/process"
	"github.com/jetsetilly/pagesim/logger"
)

// pageFault resolves a reference to a page with no valid mapping. The return
// value is true if the process can continue with its current step and false
// if the fault suspended it.
func (sys *System) pageFault(p *process.Process, page int) bool {
	sys.Stats.PageFault()

	frame, err := sys.Frames.Allocate()
	if err != nil {
		// the only error Allocate() returns is frame exhaustion. memory
		// pressure is relieved by suspending the faulting process
		sys.swapOut(p)
		return false
	}

	p.PageTable.Map(page, frame)
	return true
}

// swapOut suspends a process: every frame it holds is returned to the pool
// and the process joins the swap queue. No-op if the process is already
// inactive.
func (sys *System) swapOut(p *process.Process) {
	if !p.Active {
		return
	}

	for _, frame := range p.PageTable.UnmapAll() {
		sys.Frames.Release(frame)
	}

	p.Active = false
	sys.SwapQ.Enqueue(p.ID)
	sys.Stats.SwapEvent()

	active := sys.ActiveCount()
	sys.Stats.ObserveActive(active)

	fmt.Fprintf(sys.progress, "+++ Swapping out process %3d [%3d active processes]\n", p.ID, active)
	logger.Logf(logger.Allow, "hardware", "process %d swapped out", p.ID)
}

// swapIn resumes a suspended process, granting it a fresh essential resident
// set bounded by available frames. A process resumed with a partial set will
// fault on the missing pages as it touches them; swap-in never waits for the
// full set to be available. No-op if the process is already active.
func (sys *System) swapIn(p *process.Process) {
	if p.Active {
		return
	}

	for i := 0; i < sys.essentialPages && sys.Frames.NumFree() > 0; i++ {
		frame, _ := sys.Frames.Allocate()
		p.PageTable.Map(i, frame)
	}

	p.Active = true
	sys.Stats.SwapEvent()

	fmt.Fprintf(sys.progress, "+++ Swapping in process %3d [%3d active processes]\n", p.ID, sys.ActiveCount())
	logger.Logf(logger.Allow, "hardware", "process %d swapped in", p.ID)
}

// drainSwapQueue resumes suspended processes in the order they were
// suspended, for as long as the frame pool can cover an essential resident
// set. A no-op if the queue is empty or the pool is too dry.
func (sys *System) drainSwapQueue() {
	for !sys.SwapQ.IsEmpty() && sys.Frames.NumFree() >= sys.essentialPages {
		id, _ := sys.SwapQ.Dequeue()

		// queue membership implies the process is inactive
		if sys.Procs[id].Active {
			continue
		}

		sys.swapIn(sys.Procs[id])
	}
}
