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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pagesim/curated"
	"github.com/jetsetilly/pagesim/debugger/terminal"
	"github.com/jetsetilly/pagesim/hardware"
	"github.com/jetsetilly/pagesim/logger"
	"github.com/jetsetilly/pagesim/version"
	"github.com/jetsetilly/pagesim/workload"
)

// filename used by the DUMP command when no argument is given.
const defaultDumpFile = "pagesim_dump.dot"

// Debugger is the basic debugging frontend for the simulated machine.
type Debugger struct {
	sys  *hardware.System
	term terminal.Terminal

	// the number of completed scheduling turns
	turns int

	running bool
}

// NewDebugger creates a machine for the workload and a debugger around it.
// Progress messages from the machine (swap notices, the search trace) are
// routed through the terminal. The terminal itself is not initialised until
// Start() is called.
func NewDebugger(wl *workload.Workload, opts hardware.Options, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		term: term,
	}

	opts.Progress = &terminalWriter{term: term}

	var err error
	dbg.sys, err = hardware.NewSystem(wl, opts)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// terminalWriter adapts the terminal.Output interface to io.Writer. Partial
// lines are buffered until the newline arrives.
type terminalWriter struct {
	term    terminal.Output
	partial strings.Builder
}

func (tw *terminalWriter) Write(p []byte) (int, error) {
	for _, c := range p {
		if c == '\n' {
			tw.term.TermPrintLine(terminal.StyleOutput, tw.partial.String())
			tw.partial.Reset()
		} else {
			tw.partial.WriteByte(c)
		}
	}
	return len(p), nil
}

// Start the main debugger sequence. Returns when the user quits the session
// or when the terminal input is exhausted.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.printLine(terminal.StyleOutput, "%s (%s)", version.ApplicationName, version.Version)

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead("[pagesim] ")
		if err != nil {
			// ctrl-c and EOF both end the session cleanly
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserQuit) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.printError(err)
		}
	}

	return nil
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

func (dbg *Debugger) printError(err error) {
	dbg.term.TermPrintLine(terminal.StyleError, err.Error())
}

// write everything an io.Writer-based reporter produces, one terminal line
// at a time.
func (dbg *Debugger) printBlock(style terminal.Style, write func(*strings.Builder)) {
	b := &strings.Builder{}
	write(b)
	for _, l := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

func (dbg *Debugger) parseCommand(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	switch command {
	case "STEP":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("debugger: STEP: not a valid turn count (%s)", args[0])
			}
		}
		dbg.step(n)

	case "RUN":
		dbg.run()

	case "PROCS":
		dbg.listProcesses()

	case "FRAMES":
		dbg.printLine(terminal.StyleOutput, "%s", dbg.sys.Frames)

	case "QUEUE":
		dbg.printLine(terminal.StyleOutput, "swap queue: %s", dbg.sys.SwapQ)

	case "STATS":
		dbg.printBlock(terminal.StyleOutput, func(b *strings.Builder) {
			dbg.sys.Stats.WriteSummary(b)
		})

	case "LOG":
		dbg.printBlock(terminal.StyleOutput, func(b *strings.Builder) {
			logger.Write(b)
		})

	case "DUMP":
		filename := defaultDumpFile
		if len(args) > 0 {
			filename = args[0]
		}
		err := dbg.dump(filename)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleOutput, "machine state written to %s", filename)

	case "HELP":
		dbg.help()

	case "QUIT", "EXIT":
		dbg.running = false

	default:
		return curated.Errorf("debugger: unrecognised command (%s)", command)
	}

	return nil
}

// advance the machine by n scheduling turns, reporting progress through the
// terminal.
func (dbg *Debugger) step(n int) {
	for i := 0; i < n; i++ {
		if dbg.sys.Completed() {
			dbg.printLine(terminal.StyleOutput, "simulation has completed")
			return
		}
		dbg.sys.Step()
		dbg.turns++
	}
	dbg.printLine(terminal.StyleOutput, "turn %d [%d active processes, %s]",
		dbg.turns, dbg.sys.ActiveCount(), dbg.sys.Frames)
}

// run the machine to completion.
func (dbg *Debugger) run() {
	err := dbg.sys.Run(func() (bool, error) {
		dbg.turns++
		return true, nil
	})
	if err != nil {
		dbg.printError(err)
		return
	}
	dbg.printLine(terminal.StyleOutput, "simulation completed after %d turns", dbg.turns)
}

func (dbg *Debugger) listProcesses() {
	for _, p := range dbg.sys.Procs {
		state := "active"
		if !p.Active {
			state = "swapped out"
		}
		if p.Completed() {
			state = "completed"
		}
		dbg.printLine(terminal.StyleOutput, "process %3d: %-11s  %d/%d searches  %d pages resident",
			p.ID, state, p.SearchIdx, len(p.SearchKeys), p.PageTable.Resident())
	}
}

// dump writes a graphviz visualisation of the machine state to the named
// file.
func (dbg *Debugger) dump(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: DUMP: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.sys)

	return nil
}

func (dbg *Debugger) help() {
	for _, l := range []string{
		"STEP [n]      advance the machine by one (or n) scheduling turns",
		"RUN           run the machine to completion",
		"PROCS         list every process and its state",
		"FRAMES        show the frame pool",
		"QUEUE         show the swap queue",
		"STATS         show the accumulated statistics",
		"LOG           show the contents of the central log",
		"DUMP [file]   write a graphviz visualisation of the machine state",
		"HELP          show this help",
		"QUIT          end the session",
	} {
		dbg.term.TermPrintLine(terminal.StyleHelp, l)
	}
}
