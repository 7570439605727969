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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/pagesim/hardware"
	"github.com/jetsetilly/pagesim/test"
	"github.com/jetsetilly/pagesim/workload"
)

// frameConservation checks that no frame has been lost or double-assigned:
// the free frames and the frames held by every page table partition the
// whole pool.
func frameConservation(t *testing.T, sys *hardware.System) {
	t.Helper()

	held := 0
	for _, p := range sys.Procs {
		held += p.PageTable.Resident()
	}
	test.Equate(t, sys.Frames.NumFree()+held, sys.Frames.NumFrames())
}

func TestSingleSearch(t *testing.T) {
	// one process searching an eight element array for the key 3. the
	// lower-bound search probes elements 3, 1 and 2, all of which live in
	// the first element page. the first probe faults, the page is granted a
	// frame and the search runs to completion
	wl := &workload.Workload{
		NumSearches: 1,
		Processes: []workload.ProcessDef{
			{ArraySize: 8, SearchKeys: []int{3}},
		},
	}

	sys, err := hardware.NewSystem(wl, hardware.Options{})
	test.ExpectedSuccess(t, err)

	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.Completed(), true)
	test.Equate(t, sys.Stats.PageAccesses, 3)
	test.Equate(t, sys.Stats.PageFaults, 1)
	test.Equate(t, sys.Stats.SwapEvents, 0)
	test.Equate(t, sys.Stats.MinActiveProcesses, 1)
	frameConservation(t, sys)
}

func TestNoMemoryPressure(t *testing.T) {
	// two processes, one search each, over one element arrays. a one
	// element array is already sorted so the search interval starts
	// collapsed: no pages are referenced at all and the essential sets are
	// the only frames ever held
	wl := &workload.Workload{
		NumSearches: 1,
		Processes: []workload.ProcessDef{
			{ArraySize: 1, SearchKeys: []int{0}},
			{ArraySize: 1, SearchKeys: []int{0}},
		},
	}

	sys, err := hardware.NewSystem(wl, hardware.Options{})
	test.ExpectedSuccess(t, err)

	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.Stats.PageAccesses, 0)
	test.Equate(t, sys.Stats.PageFaults, 0)
	test.Equate(t, sys.Stats.SwapEvents, 0)

	// neither process was ever suspended so the degree of multiprogramming
	// is the full population
	test.Equate(t, sys.Stats.MinActiveProcesses, 2)

	// every frame is back in the pool
	test.Equate(t, sys.Frames.NumFree(), sys.Frames.NumFrames())
}

func TestScarcitySuspendsProcess(t *testing.T) {
	// the pool is smaller than the essential set, so the single process
	// starts with a partial resident set and no free frames. the first
	// reference beyond the resident set must suspend it
	wl := &workload.Workload{
		NumSearches: 1,
		Processes: []workload.ProcessDef{
			{ArraySize: 100000, SearchKeys: []int{70000}},
		},
	}

	sys, err := hardware.NewSystem(wl, hardware.Options{NumFrames: 5})
	test.ExpectedSuccess(t, err)

	p := sys.Procs[0]
	test.Equate(t, p.Active, true)
	test.Equate(t, p.PageTable.Resident(), 5)
	test.Equate(t, sys.Frames.NumFree(), 0)

	sys.Step()

	// exactly one swap-out. the search index did not advance
	test.Equate(t, sys.Stats.SwapEvents, 1)
	test.Equate(t, p.Active, false)
	test.Equate(t, p.SearchIdx, 0)
	test.Equate(t, sys.SwapQ.Len(), 1)

	// the suspended process holds nothing
	test.Equate(t, p.PageTable.Resident(), 0)
	test.Equate(t, sys.Frames.NumFree(), 5)
	frameConservation(t, sys)
}

func TestThreeProcessesTwoResidentSets(t *testing.T) {
	// the pool holds exactly two essential sets. the third process starts
	// active but with no frames; the first process to fault with the pool
	// dry is suspended before anyone makes progress
	wl := &workload.Workload{
		NumSearches: 1,
		Processes: []workload.ProcessDef{
			{ArraySize: 1000, SearchKeys: []int{500}},
			{ArraySize: 1000, SearchKeys: []int{500}},
			{ArraySize: 1000, SearchKeys: []int{500}},
		},
	}

	sys, err := hardware.NewSystem(wl, hardware.Options{NumFrames: 4, EssentialPages: 2})
	test.ExpectedSuccess(t, err)

	err = sys.Run(func() (bool, error) {
		frameConservation(t, sys)
		return true, nil
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.Completed(), true)
	test.Equate(t, sys.Stats.MinActiveProcesses, 2)

	// one swap-out and the matching swap-in: one full swap cycle
	test.Equate(t, sys.Stats.SwapEvents, 2)

	// every frame is back in the pool
	test.Equate(t, sys.Frames.NumFree(), sys.Frames.NumFrames())
}

func TestMonotonicCounters(t *testing.T) {
	// note that each search here touches one element page only. searches
	// that spread across many element pages can suspend every process in
	// turn, leaving no running process to ever drain the swap queue
	wl := &workload.Workload{
		NumSearches: 2,
		Processes: []workload.ProcessDef{
			{ArraySize: 1000, SearchKeys: []int{700, 100}},
			{ArraySize: 1000, SearchKeys: []int{5, 999}},
			{ArraySize: 1000, SearchKeys: []int{500, 1}},
		},
	}

	// a small pool keeps the machine under pressure
	sys, err := hardware.NewSystem(wl, hardware.Options{NumFrames: 4, EssentialPages: 2})
	test.ExpectedSuccess(t, err)

	accesses := 0
	faults := 0
	swaps := 0

	err = sys.Run(func() (bool, error) {
		if sys.Stats.PageAccesses < accesses || sys.Stats.PageFaults < faults || sys.Stats.SwapEvents < swaps {
			t.Fatal("counters must never decrease")
		}
		accesses = sys.Stats.PageAccesses
		faults = sys.Stats.PageFaults
		swaps = sys.Stats.SwapEvents

		frameConservation(t, sys)

		// active/resident consistency for processes that still have work to
		// do: an active process holds at least one frame once it has begun
		// referencing pages; an inactive process holds none
		for _, p := range sys.Procs {
			if !p.Active {
				test.Equate(t, p.PageTable.Resident(), 0)
			}
		}

		return true, nil
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.Completed(), true)
	test.Equate(t, sys.Frames.NumFree(), sys.Frames.NumFrames())
}

func TestArrayTooLargeForPageTable(t *testing.T) {
	// an array whose elements translate to pages beyond the page table is a
	// configuration error, caught at initialisation
	wl := &workload.Workload{
		NumSearches: 1,
		Processes: []workload.ProcessDef{
			{ArraySize: 3000000, SearchKeys: []int{0}},
		},
	}

	_, err := hardware.NewSystem(wl, hardware.Options{})
	test.ExpectedFailure(t, err)
}
