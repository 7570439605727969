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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides support for program modes (eg. a run mode, a debug
// mode, etc.) where each mode has its own set of flags in addition to the
// flags shared by all modes.
//
// The basic pattern is:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DEBUG")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	case "DEBUG":
//		...
//	}
//
// Individual modes can then call NewMode() again, add mode specific flags
// with the Add*() functions, and Parse() the remainder of the command line.
// Help messages, invoked with -help in the usual way, are built from the
// registered flags and the available sub-modes.
package modalflag
