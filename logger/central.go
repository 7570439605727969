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

// Package logger is the central log for the entire application. There is no
// way to create a secondary log.
//
// Log entries are made with the Log() and Logf() functions. An entry is a
// tag and a detail string. The tag groups entries by the sub-system that
// made them. Repeated identical entries are coalesced into one.
//
// By default the log is silent. The SetEcho() function directs new entries
// to an io.Writer as they arrive. The Write() and Tail() functions dump the
// accumulated log.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, format string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, format, args...)
	}
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// SetEcho to print new entries to the io.Writer as they arrive. A nil writer
// turns the echo off.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}
