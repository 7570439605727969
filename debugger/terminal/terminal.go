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

// Package terminal defines the operations required for input and output of
// the debugger's command line interface. Implementations are found in the
// sub-packages: colorterm for real terminals and plainterm for everything
// else.
package terminal

// Sentinel errors. Returned by TermRead() if caught whilst waiting for
// input.
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// Style is used by the TermPrintLine() function to hint at how the line
// should be presented.
type Style int

// List of terminal styles.
const (
	// the normal style for debugger output.
	StyleOutput Style = iota

	// used for error messages.
	StyleError

	// used for help text and other secondary information.
	StyleHelp
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line terminator.
	// The prompt is presented to the user in whatever way makes sense for
	// the implementation.
	TermRead(prompt string) (string, error)

	// IsInteractive() should return true for implementations that expect
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// to make sure the terminal is returned to canonical mode.
	CleanUp()
}
