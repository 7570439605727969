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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/pagesim/debugger"
	"github.com/jetsetilly/pagesim/debugger/terminal"
	"github.com/jetsetilly/pagesim/debugger/terminal/colorterm"
	"github.com/jetsetilly/pagesim/debugger/terminal/plainterm"
	"github.com/jetsetilly/pagesim/hardware"
	"github.com/jetsetilly/pagesim/logger"
	"github.com/jetsetilly/pagesim/modalflag"
	"github.com/jetsetilly/pagesim/performance"
	"github.com/jetsetilly/pagesim/statsview"
	"github.com/jetsetilly/pagesim/workload"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// machineFlags adds the flags shared by every mode that builds a machine.
func machineFlags(md *modalflag.Modes) (numFrames *int, essential *int, log *bool) {
	numFrames = md.AddInt("frames", 0, "number of frames in the pool (0 for the default)")
	essential = md.AddInt("essential", 0, "essential resident set size (0 for the default)")
	log = md.AddBool("log", false, "echo debugging log to stdout")
	return numFrames, essential, log
}

// loadWorkload expects the one remaining argument to be an input filename.
func loadWorkload(md *modalflag.Modes) (*workload.Workload, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("workload file required for %s mode", md)
	case 1:
		return workload.Load(md.GetArg(0))
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	numFrames, essential, log := machineFlags(md)
	trace := md.AddBool("trace", false, "emit a trace line for every search step")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the stats server [%s]", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	wl, err := loadWorkload(md)
	if err != nil {
		return err
	}
	fmt.Println("+++ Simulation data read from file")

	sys, err := hardware.NewSystem(wl, hardware.Options{
		NumFrames:      *numFrames,
		EssentialPages: *essential,
		Progress:       os.Stdout,
		TraceSearches:  *trace,
	})
	if err != nil {
		return err
	}
	fmt.Println("+++ Kernel data initialized")

	err = sys.Run(nil)
	if err != nil {
		return err
	}

	sys.Stats.WriteSummary(os.Stdout)

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	numFrames, essential, log := machineFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	wl, err := loadWorkload(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unrecognised terminal type (%s)", *termType)
	}

	dbg, err := debugger.NewDebugger(wl, hardware.Options{
		NumFrames:      *numFrames,
		EssentialPages: *essential,
	}, term)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	numFrames, essential, log := machineFlags(md)
	profile := md.AddBool("profile", false, "write CPU and memory profiles to the working directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	wl, err := loadWorkload(md)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, *profile, wl, hardware.Options{
		NumFrames:      *numFrames,
		EssentialPages: *essential,
	})
}
