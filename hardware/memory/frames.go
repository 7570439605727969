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

package memory

import (
	"fmt"

	"github.com/jetsetilly/pagesim/curated"
)

// OutOfFrames is returned by Pool.Allocate() when every frame in the pool
// has been allocated.
const OutOfFrames = "frame pool: out of frames"

// Pool is the set of physical frames not currently assigned to any process.
// Frames are handed out and taken back one at a time. The order in which
// frames are handed out carries no meaning.
type Pool struct {
	// stack of free frame numbers. allocation pops from the end
	free []int

	// allocated is the inverse of the free stack. used to catch frames being
	// released twice
	allocated []bool
}

// NewPool is the preferred method of initialisation for the Pool type. All
// frames begin in the free state.
func NewPool(numFrames int) *Pool {
	pl := &Pool{
		free:      make([]int, numFrames),
		allocated: make([]bool, numFrames),
	}
	for i := range pl.free {
		pl.free[i] = i
	}
	return pl
}

func (pl *Pool) String() string {
	return fmt.Sprintf("%d of %d frames free", len(pl.free), len(pl.allocated))
}

// Allocate removes one frame from the free set and returns its number. When
// no frames are free the returned error tests true against the OutOfFrames
// pattern.
func (pl *Pool) Allocate() (int, error) {
	if len(pl.free) == 0 {
		return 0, curated.Errorf(OutOfFrames)
	}

	frame := pl.free[len(pl.free)-1]
	pl.free = pl.free[:len(pl.free)-1]
	pl.allocated[frame] = true

	return frame, nil
}

// Release returns a frame to the free set. Releasing a frame that is already
// free means the frame accounting has gone wrong somewhere and there is no
// sensible way to continue.
func (pl *Pool) Release(frame int) {
	if frame < 0 || frame >= len(pl.allocated) {
		panic(fmt.Sprintf("frame pool: release of frame %d which does not exist", frame))
	}
	if !pl.allocated[frame] {
		panic(fmt.Sprintf("frame pool: release of frame %d which is already free", frame))
	}

	pl.allocated[frame] = false
	pl.free = append(pl.free, frame)
}

// NumFree returns the number of frames currently in the free set.
func (pl *Pool) NumFree() int {
	return len(pl.free)
}

// NumFrames returns the total number of frames managed by the pool.
func (pl *Pool) NumFrames() int {
	return len(pl.allocated)
}
