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

// Package hardware is the base package for the demand-paging simulation. It
// and its sub-packages contain everything required for a headless run.
//
// The System type is the root of the simulation and contains references to
// all the simulated sub-systems: the frame pool, the process population, the
// swap queue and the statistics accumulator. From here, the simulation can
// either be run to completion (with optional callback to check for
// continuation); or it can be stepped one scheduling turn at a time.
//
// A scheduling turn gives one process the chance to perform one binary
// search over its virtual array. Every page the search probes is either
// resident, or faults and is granted a frame, or - when the frame pool is
// dry - suspends the process altogether. Suspended processes wait their turn
// in the swap queue and resume, first-out first-in, as frames become free.
package hardware
