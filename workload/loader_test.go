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

package workload_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pagesim/test"
	"github.com/jetsetilly/pagesim/workload"
)

func TestRead(t *testing.T) {
	input := `2 3
1000000 4 1000 999999
500000 250000 1 2
`

	wl, err := workload.Read(strings.NewReader(input))
	test.ExpectedSuccess(t, err)

	test.Equate(t, wl.NumSearches, 3)
	test.Equate(t, len(wl.Processes), 2)
	test.Equate(t, wl.Processes[0].ArraySize, 1000000)
	test.Equate(t, wl.Processes[0].SearchKeys[0], 4)
	test.Equate(t, wl.Processes[1].ArraySize, 500000)
	test.Equate(t, wl.Processes[1].SearchKeys[2], 2)
}

func TestReadErrors(t *testing.T) {
	// empty description
	_, err := workload.Read(strings.NewReader(""))
	test.ExpectedFailure(t, err)

	// a process count of zero is meaningless
	_, err = workload.Read(strings.NewReader("0 1"))
	test.ExpectedFailure(t, err)

	// process count above the upper bound
	_, err = workload.Read(strings.NewReader("501 1"))
	test.ExpectedFailure(t, err)

	// search count above the upper bound
	_, err = workload.Read(strings.NewReader("1 101"))
	test.ExpectedFailure(t, err)

	// not a number
	_, err = workload.Read(strings.NewReader("1 one"))
	test.ExpectedFailure(t, err)

	// truncated description. the second process has no search keys
	_, err = workload.Read(strings.NewReader("2 1 1000 5 2000"))
	test.ExpectedFailure(t, err)

	// negative array size
	_, err = workload.Read(strings.NewReader("1 1 -50 0"))
	test.ExpectedFailure(t, err)

	// search key outside the array
	_, err = workload.Read(strings.NewReader("1 1 1000 1000"))
	test.ExpectedFailure(t, err)
}
