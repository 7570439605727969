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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/pagesim/curated"
	"github.com/jetsetilly/pagesim/hardware"
	"github.com/jetsetilly/pagesim/workload"
)

// Check the performance of the simulation using the supplied workload.
//
// The simulation runs to completion. If the profile argument is true a CPU
// profile and a memory profile are written to the working directory.
func Check(output io.Writer, profile bool, wl *workload.Workload, opts hardware.Options) error {
	sys, err := hardware.NewSystem(wl, opts)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	turns := 0
	start := time.Now()

	err = cpuProfile(profile, "cpu.profile", func() error {
		return sys.Run(func() (bool, error) {
			turns++
			return true, nil
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(start).Seconds()
	if elapsed > 0 {
		output.Write([]byte(fmt.Sprintf("%d scheduling turns in %.2f seconds (%.0f turns/sec)\n",
			turns, elapsed, float64(turns)/elapsed)))
	}

	return memProfile(profile, "mem.profile")
}
