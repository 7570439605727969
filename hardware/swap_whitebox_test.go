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
	"testing"

	"github.com/jetsetilly/pagesim/test"
	"github.com/jetsetilly/pagesim/workload"
)

func threeProcessSystem(t *testing.T) *System {
	t.Helper()

	wl := &workload.Workload{
		NumSearches: 1,
		Processes: []workload.ProcessDef{
			{ArraySize: 1000, SearchKeys: []int{1}},
			{ArraySize: 1000, SearchKeys: []int{2}},
			{ArraySize: 1000, SearchKeys: []int{3}},
		},
	}

	// every process gets its full essential set and the pool is left dry
	sys, err := NewSystem(wl, Options{NumFrames: 6, EssentialPages: 2})
	test.ExpectedSuccess(t, err)
	test.Equate(t, sys.Frames.NumFree(), 0)

	return sys
}

func TestFIFOResumption(t *testing.T) {
	sys := threeProcessSystem(t)

	// suspend process 0 then process 1
	sys.swapOut(sys.Procs[0])
	sys.swapOut(sys.Procs[1])
	test.Equate(t, sys.SwapQ.Len(), 2)
	test.Equate(t, sys.Frames.NumFree(), 4)

	// take two frames out of the pool so that only one essential set can be
	// covered by the drain
	_, err := sys.Frames.Allocate()
	test.ExpectedSuccess(t, err)
	_, err = sys.Frames.Allocate()
	test.ExpectedSuccess(t, err)

	sys.drainSwapQueue()

	// process 0 was suspended first, so process 0 resumes first
	test.Equate(t, sys.Procs[0].Active, true)
	test.Equate(t, sys.Procs[1].Active, false)
	test.Equate(t, sys.SwapQ.Len(), 1)
	test.Equate(t, sys.Frames.NumFree(), 0)
}

func TestDrainIdempotence(t *testing.T) {
	sys := threeProcessSystem(t)

	// draining an empty queue is a no-op
	sys.drainSwapQueue()
	test.Equate(t, sys.Stats.SwapEvents, 0)

	// draining with too few free frames is also a no-op
	sys.swapOut(sys.Procs[2])
	test.Equate(t, sys.Frames.NumFree(), 2)

	_, err := sys.Frames.Allocate()
	test.ExpectedSuccess(t, err)

	sys.drainSwapQueue()
	test.Equate(t, sys.Procs[2].Active, false)
	test.Equate(t, sys.SwapQ.Len(), 1)
	test.Equate(t, sys.Stats.SwapEvents, 1)
}

func TestDoubleSwapGuards(t *testing.T) {
	sys := threeProcessSystem(t)

	sys.swapOut(sys.Procs[0])
	test.Equate(t, sys.Stats.SwapEvents, 1)
	test.Equate(t, sys.SwapQ.Len(), 1)

	// swapping out an inactive process must not queue it twice or count
	// another event
	sys.swapOut(sys.Procs[0])
	test.Equate(t, sys.Stats.SwapEvents, 1)
	test.Equate(t, sys.SwapQ.Len(), 1)

	// swapping in an active process is a no-op
	sys.swapIn(sys.Procs[1])
	test.Equate(t, sys.Stats.SwapEvents, 1)
	test.Equate(t, sys.Procs[1].PageTable.Resident(), 2)
}

func TestSwapInPartialSet(t *testing.T) {
	sys := threeProcessSystem(t)

	sys.swapOut(sys.Procs[0])
	test.Equate(t, sys.Frames.NumFree(), 2)

	// leave a single free frame. swap-in does not wait for the full
	// essential set; the process resumes with a partial set and will fault
	// on the missing pages
	_, err := sys.Frames.Allocate()
	test.ExpectedSuccess(t, err)

	sys.swapIn(sys.Procs[0])
	test.Equate(t, sys.Procs[0].Active, true)
	test.Equate(t, sys.Procs[0].PageTable.Resident(), 1)
	test.Equate(t, sys.Frames.NumFree(), 0)
}
