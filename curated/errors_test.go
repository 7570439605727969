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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/pagesim/curated"
	"github.com/jetsetilly/pagesim/test"
)

const testPattern = "test error: %v"

func TestDuplicateMessages(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.Equate(t, e.Error(), "test error: foo")

	// packing errors of the same pattern next to each other causes one of
	// them to be dropped
	f := curated.Errorf(testPattern, e)
	test.Equate(t, f.Error(), "test error: foo")
}

func TestIsChecks(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// a wrapped error is not Is() the inner pattern but it does Has() it
	f := curated.Errorf("outer error: %v", e)
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "outer error: %v"))

	// plain errors are not curated errors
	test.ExpectedFailure(t, curated.IsAny(nil))
}
