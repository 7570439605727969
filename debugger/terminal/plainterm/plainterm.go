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

// Package plainterm implements the Terminal interface for the pagesim
// debugger. It's as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/pagesim/curated"
	"github.com/jetsetilly/pagesim/debugger/terminal"
)

// PlainTerminal is the most basic terminal interface. It keeps the terminal
// in whatever mode it started, probably cooked mode. As such, it offers only
// rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer
	reader *bufio.Scanner
}

// Initialise performs any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	pt.reader = bufio.NewScanner(pt.input)
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return false
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	pt.output.Write([]byte(prompt))

	if !pt.reader.Scan() {
		if err := pt.reader.Err(); err != nil {
			return "", err
		}
		return "", curated.Errorf(terminal.UserQuit)
	}

	return pt.reader.Text(), nil
}
