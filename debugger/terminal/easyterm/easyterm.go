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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// termios methods in functions with friendlier names and keeps hold of the
// terminal attributes needed to switch between canonical and raw modes.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the fields in the Terminal struct.
func (et *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm Terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm Terminal requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the terminal modes we'll be using
	termios.Tcgetattr(et.input.Fd(), &et.canAttr)
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (et *Terminal) CleanUp() {
	et.CanonicalMode()
}

// Print writes the formatted string to the output file.
func (et *Terminal) Print(s string, a ...interface{}) {
	et.output.WriteString(fmt.Sprintf(s, a...))
	et.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *Terminal) CanonicalMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *Terminal) RawMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.rawAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *Terminal) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
