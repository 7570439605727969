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

// Package curated provides the error type used throughout the project. A
// curated error remembers the pattern string it was created with, meaning
// that code higher up the call chain can identify the error without string
// comparison of the formatted message.
//
// Creation is through the Errorf() function. Identification is through the
// Is() and Has() functions. By convention, packages that return identifiable
// errors export the pattern as a string constant. For example:
//
//	if err := pool.Allocate(); curated.Is(err, memory.OutOfFrames) {
//		...
//	}
//
// Note that sentinel patterns of this kind are not format strings. Patterns
// with verbs are fine too but they cannot usefully be tested for.
package curated
