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

// Package workload is responsible for loading the workload description that
// drives a simulation run.
//
// A workload description is whitespace-separated text. The first two numbers
// are the process count and the number of searches every process performs.
// Then, for each process: the size of its virtual array followed by one key
// per search.
//
// For example, two processes performing three searches each:
//
//	2 3
//	1000000 4 1000 999999
//	500000 250000 1 2
//
// Validation is strict: a malformed or out-of-range description is a
// configuration error and the simulation never starts.
package workload
