// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pipistrelle/mipsim/asm"
	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/debugger"
	"github.com/pipistrelle/mipsim/debugger/govern"
	"github.com/pipistrelle/mipsim/debugger/terminal"
	"github.com/pipistrelle/mipsim/debugger/terminal/colorterm"
	"github.com/pipistrelle/mipsim/debugger/terminal/plainterm"
	"github.com/pipistrelle/mipsim/logger"
	"github.com/pipistrelle/mipsim/mips"
	"github.com/pipistrelle/mipsim/modalflag"
	"github.com/pipistrelle/mipsim/statsview"
	"github.com/pipistrelle/mipsim/version"
	xterm "golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "ASM", "VERSION")

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

	case "ASM":
		err = assemble(md)

	case "VERSION":
		vers, rev, release := version.Version()
		fmt.Printf("%s (%s)\n", vers, version.ApplicationName)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// run assembles the file named on the command line and runs it to
// completion, printing program output as it accumulates.
func run(md *modalflag.Modes) error {
	md.NewMode()

	limit := md.AddInt("limit", 0, "maximum number of instructions to execute (0 for no limit)")
	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("source file required for %s mode", md)
	}

	src, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	prog, err := asm.Assemble(string(src))
	if err != nil {
		return err
	}

	mach := mips.NewMachine()
	mach.AttachProgram(prog)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	printed := 0
	printPending := func() {
		out := mach.Output()
		if len(out) > printed {
			os.Stdout.WriteString(out[printed:])
			printed = len(out)
		}
	}

	ct := 0
	err = mach.Run(func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		printPending()

		ct++
		if *limit > 0 && ct > *limit {
			return govern.Ending, curated.Errorf("instruction limit reached (%d)", *limit)
		}

		return govern.Running, nil
	})

	printPending()

	return err
}

// debug starts the interactive debugger, optionally loading the file named
// on the command line.
func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, COLOR, PLAIN")
	log := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if !statsview.Available() {
			fmt.Println("! statsview not enabled in this build")
		}
		statsview.Launch(os.Stdout)
	}

	var tmnl terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to AUTO\n", *termType)
		fallthrough
	case "AUTO":
		if xterm.IsTerminal(int(os.Stdin.Fd())) {
			tmnl = &colorterm.ColorTerminal{}
		} else {
			tmnl = &plainterm.PlainTerminal{}
		}
	case "COLOR":
		tmnl = &colorterm.ColorTerminal{}
	case "PLAIN":
		tmnl = &plainterm.PlainTerminal{}
	}

	dbg, err := debugger.New(tmnl)
	if err != nil {
		return err
	}

	source := ""
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		source = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return dbg.Start(source)
}

// assemble the file named on the command line and write the listing, without
// running it.
func assemble(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "", "write listing to file (stdout by default)")
	symbols := md.AddBool("symbols", false, "append the symbol table to the listing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("source file required for %s mode", md)
	}

	src, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	prog, err := asm.Assemble(string(src))
	if err != nil {
		return err
	}

	var output io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	prog.Write(output)
	if *symbols {
		io.WriteString(output, "\n")
		prog.WriteSymbols(output)
	}

	return nil
}
