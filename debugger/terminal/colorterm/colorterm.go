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

// Package colorterm implements the Terminal interface for the pagesim
// debugger. It supports color output and basic line editing. The terminal is
// kept in raw mode between Initialise() and CleanUp().
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/pagesim/debugger/terminal"
	"github.com/jetsetilly/pagesim/debugger/terminal/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader *bufio.Reader
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.RawMode()

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		ct.Print("%s* %s%s", penRed, s, ansiOff)
	case terminal.StyleHelp:
		ct.Print("%s%s%s", penDim, s, ansiOff)
	default:
		ct.Print("%s", s)
	}

	// the terminal is in raw mode so a newline does not imply a carriage
	// return
	ct.Print("\r\n")
}
