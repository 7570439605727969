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

package hardware

// A full continueCheck on every scheduling turn can be expensive, depending
// on what the check does. PerformanceBrake is a standard value callers can
// use to filter out the expensive path. For example:
//
//	brake++
//	if brake >= hardware.PerformanceBrake {
//		brake = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Completed reports whether every process has performed all of its searches.
func (sys *System) Completed() bool {
	for _, p := range sys.Procs {
		if !p.Completed() {
			return false
		}
	}
	return true
}

// Run the simulation until every process has performed all of its searches.
// The continueCheck function is called after every scheduling turn; a false
// return value or an error ends the run early.
func (sys *System) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for !sys.Completed() {
		sys.Step()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
