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

// Package process defines the state of a single simulated process: its page
// table, the virtual array it searches over and the list of keys it has
// still to search for.
//
// A process carries no behaviour of its own. Advancing a process by one
// search step is the job of the hardware package, which has sight of the
// frame pool and swap queue that a search step might touch.
package process
