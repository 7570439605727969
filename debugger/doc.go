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

// Package debugger implements an interactive shell around a simulated
// machine. The machine is advanced one scheduling turn at a time (or run to
// completion) and its processes, frame pool and swap queue can be inspected
// between turns.
//
// The debugger can use any terminal implementation that satisfies the
// terminal.Terminal interface. See the colorterm and plainterm packages.
package debugger
