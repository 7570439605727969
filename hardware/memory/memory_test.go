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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/pagesim/curated"
	"github.com/jetsetilly/pagesim/hardware/memory"
	"github.com/jetsetilly/pagesim/test"
)

func TestPoolExhaustion(t *testing.T) {
	pl := memory.NewPool(3)
	test.Equate(t, pl.NumFree(), 3)
	test.Equate(t, pl.NumFrames(), 3)

	// allocate every frame in the pool. each returned frame number should be
	// in range and unique
	seen := make(map[int]bool)
	for i := 0; i < 3; i++ {
		frame, err := pl.Allocate()
		test.ExpectedSuccess(t, err)
		if frame < 0 || frame >= 3 {
			t.Errorf("allocated frame %d is out of range", frame)
		}
		if seen[frame] {
			t.Errorf("frame %d allocated twice", frame)
		}
		seen[frame] = true
	}
	test.Equate(t, pl.NumFree(), 0)

	// the pool is dry
	_, err := pl.Allocate()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.OutOfFrames), true)
}

func TestPoolReleaseCycle(t *testing.T) {
	pl := memory.NewPool(2)

	frame, err := pl.Allocate()
	test.ExpectedSuccess(t, err)
	test.Equate(t, pl.NumFree(), 1)

	pl.Release(frame)
	test.Equate(t, pl.NumFree(), 2)

	// a released frame is available for allocation again
	_, err = pl.Allocate()
	test.ExpectedSuccess(t, err)
	_, err = pl.Allocate()
	test.ExpectedSuccess(t, err)
	_, err = pl.Allocate()
	test.ExpectedFailure(t, err)
}

func TestPoolDoubleRelease(t *testing.T) {
	pl := memory.NewPool(2)
	frame, err := pl.Allocate()
	test.ExpectedSuccess(t, err)
	pl.Release(frame)

	// releasing the same frame twice is a defect and should panic
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double release")
		}
	}()
	pl.Release(frame)
}

func TestPageTable(t *testing.T) {
	pt := memory.NewPageTable(16)
	test.Equate(t, pt.Resident(), 0)
	test.Equate(t, pt.Size(), 16)
	test.Equate(t, pt.IsResident(0), false)

	pt.Map(0, 100)
	pt.Map(5, 101)
	test.Equate(t, pt.Resident(), 2)
	test.Equate(t, pt.IsResident(0), true)
	test.Equate(t, pt.IsResident(5), true)
	test.Equate(t, pt.IsResident(1), false)
	test.Equate(t, pt.Frame(5), 101)

	frames := pt.UnmapAll()
	test.Equate(t, len(frames), 2)
	test.Equate(t, pt.Resident(), 0)
	test.Equate(t, pt.IsResident(0), false)
	test.Equate(t, pt.IsResident(5), false)

	// unmapping an empty table is fine and frees nothing
	frames = pt.UnmapAll()
	test.Equate(t, len(frames), 0)
}

func TestPageTableRange(t *testing.T) {
	pt := memory.NewPageTable(8)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on out of range page number")
		}
	}()
	pt.IsResident(8)
}

func TestPageTableDoubleMap(t *testing.T) {
	pt := memory.NewPageTable(8)
	pt.Map(3, 99)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when mapping over a resident page")
		}
	}()
	pt.Map(3, 100)
}

func TestPageForElement(t *testing.T) {
	// the first elements of the array live in the first page after the
	// essential set
	test.Equate(t, memory.PageForElement(0, memory.EssentialPages), 10)
	test.Equate(t, memory.PageForElement(1023, memory.EssentialPages), 10)

	// one element of ElementSize bytes beyond the page boundary
	test.Equate(t, memory.PageForElement(1024, memory.EssentialPages), 11)

	// a different essential set size shifts the element pages
	test.Equate(t, memory.PageForElement(0, 4), 4)
}
