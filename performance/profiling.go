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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/pagesim/curated"
)

// cpuProfile runs the supplied function, recording a CPU profile of it when
// the profile argument is true.
func cpuProfile(profile bool, outFile string, run func() error) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

// memProfile writes a profile of the heap as it stands at the time of the
// call.
func memProfile(profile bool, outFile string) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		runtime.GC()

		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
	}

	return nil
}
