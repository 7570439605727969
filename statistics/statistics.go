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

// Package statistics accumulates the counters reported at the end of a
// simulation run: page accesses, page faults, swap events and the minimum
// number of simultaneously active processes (the degree of
// multiprogramming).
//
// All counters are monotonic over the course of a run, except for
// MinActiveProcesses which only ever decreases.
package statistics

import (
	"fmt"
	"io"
)

// Statistics is a simple accumulator. The fields are exported for reading;
// writing should go through the accumulator functions.
type Statistics struct {
	PageAccesses int
	PageFaults   int

	// every swap-out and every swap-in is one event. the summary halves the
	// event count so that a full out/in cycle reads as a single swap
	SwapEvents int

	// the lowest simultaneously-active process count observed so far
	MinActiveProcesses int
}

// NewStatistics is the preferred method of initialisation for the Statistics
// type. The minimum active count starts at the process population; it can
// only go down from there.
func NewStatistics(numProcesses int) *Statistics {
	return &Statistics{
		MinActiveProcesses: numProcesses,
	}
}

// PageAccess records one reference to a page.
func (st *Statistics) PageAccess() {
	st.PageAccesses++
}

// PageFault records a reference to a page that was not resident.
func (st *Statistics) PageFault() {
	st.PageFaults++
}

// SwapEvent records one swap-out or one swap-in.
func (st *Statistics) SwapEvent() {
	st.SwapEvents++
}

// ObserveActive records the current number of active processes, keeping the
// minimum seen over the run.
func (st *Statistics) ObserveActive(active int) {
	if active < st.MinActiveProcesses {
		st.MinActiveProcesses = active
	}
}

// WriteSummary writes the end-of-run report.
func (st *Statistics) WriteSummary(output io.Writer) {
	fmt.Fprintf(output, "+++ Page access summary\n")
	fmt.Fprintf(output, "\tTotal number of page accesses  = %7d\n", st.PageAccesses)
	fmt.Fprintf(output, "\tTotal number of page faults    = %7d\n", st.PageFaults)
	fmt.Fprintf(output, "\tTotal number of swaps          = %7d\n", st.SwapEvents/2)
	fmt.Fprintf(output, "\tDegree of multiprogramming     = %7d\n", st.MinActiveProcesses)
}
