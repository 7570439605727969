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

package colorterm

import (
	"unicode"

	"github.com/jetsetilly/pagesim/curated"
	"github.com/jetsetilly/pagesim/debugger/terminal"
	"github.com/jetsetilly/pagesim/debugger/terminal/easyterm"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.Print("\r%s%s%s", penPrompt, prompt, ansiOff)

	input := make([]rune, 0, 255)

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.Print("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			ct.Print("\r\n")
			return string(input), nil

		case easyterm.KeyBackspace, easyterm.KeyDel:
			if len(input) > 0 {
				input = input[:len(input)-1]
				ct.Print("\b \b")
			}

		case easyterm.KeyEsc:
			// swallow the rest of the escape sequence. cursor keys have no
			// function in this terminal
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r == easyterm.EscCursor {
				_, _, err = ct.reader.ReadRune()
				if err != nil {
					return "", err
				}
			}

		case easyterm.KeyTab:
			// no tab completion

		default:
			if unicode.IsPrint(r) {
				input = append(input, r)
				ct.Print("%c", r)
			}
		}
	}
}
