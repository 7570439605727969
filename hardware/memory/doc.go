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

// Package memory implements the two memory structures of the simulated
// machine: the pool of physical frames shared by every process, and the
// per-process page table.
//
// The Pool type hands out frames one at a time and takes them back when a
// process releases them. When the pool is dry, Allocate() fails with the
// OutOfFrames error; it is the caller's job to create pressure relief (by
// swapping a process out, for instance).
//
// The PageTable type maps virtual page numbers to frames. An unmapped page
// is a page fault waiting to happen but that is of no concern to this
// package. Misuse of a page table - an out of range page number, mapping
// over a live entry - indicates a bug in the caller and causes a panic.
package memory
