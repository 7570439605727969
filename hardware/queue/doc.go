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

// Package queue implements the queue of swapped-out processes. It is a plain
// fixed-capacity circular FIFO; the fairness of the swap system rests on the
// first process to be suspended being the first to be resumed.
//
// The queue holds process IDs, not processes. Capacity is fixed at creation;
// because a process can only be queued while it is swapped out, a queue with
// capacity for the whole process population can never legitimately fill.
package queue
