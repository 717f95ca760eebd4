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

package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/pipistrelle/mipsim/asm"
	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/debugger/govern"
	"github.com/pipistrelle/mipsim/debugger/terminal"
	"github.com/pipistrelle/mipsim/logger"
	"github.com/pipistrelle/mipsim/mips"
	"github.com/pipistrelle/mipsim/program"
)

// Error patterns at the top of the debugger's error chains.
const (
	DebuggerError = "debugger: %v"
	LoadError     = "load: %v"
)

// Debugger is the most important type in the mipsim project. It ties the
// machine and the terminal together and runs the command loop.
type Debugger struct {
	mach *mips.Machine

	// the currently loaded program and the path it was assembled from. both
	// are empty until the first successful load
	prog       *program.Program
	sourcePath string

	term   terminal.Terminal
	events *terminal.ReadEvents

	// what the input loop is doing. only ever Paused or Running; the input
	// loop reads commands when Paused and runs the machine when Running
	state govern.State

	limiter *limiter

	// how much of the machine's accumulated output has already been printed
	// to the terminal
	printedOutput int

	quit bool
}

// New is the preferred method of initialisation for the Debugger type. The
// terminal is initialised here and restored by Start() on conclusion.
func New(tmnl terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		mach:    mips.NewMachine(),
		term:    tmnl,
		state:   govern.Paused,
		limiter: newLimiter(),
	}

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			if sig == os.Interrupt {
				return curated.Errorf(terminal.UserInterrupt)
			}
			return nil
		},
		RawEvents: make(chan func(), 32),
	}
	signal.Notify(dbg.events.Signal, os.Interrupt)

	if err := dbg.term.Initialise(); err != nil {
		return nil, curated.Errorf(DebuggerError, err)
	}
	dbg.term.RegisterTabCompletion(&tabCompletion{})

	return dbg, nil
}

// Start the debugger's input loop. An empty sourcePath starts the debugger
// with no program loaded.
func (dbg *Debugger) Start(sourcePath string) error {
	defer dbg.term.CleanUp()

	if sourcePath != "" {
		if err := dbg.loadSource(sourcePath); err != nil {
			// a program that does not assemble is not fatal to the debugger
			// session. the user can fix the file and LOAD it again
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	if err := dbg.inputLoop(); err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	return nil
}

// PushRawEvent onto the event queue. Used to make functions from other
// goroutines run in the debugger goroutine, at a point where the machine is
// guaranteed to be between instructions.
func (dbg *Debugger) PushRawEvent(f func()) {
	dbg.events.RawEvents <- f
}

// loadSource assembles the file at path and attaches the result to the
// machine. On error the previously loaded program, if any, is untouched.
func (dbg *Debugger) loadSource(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	prog, err := asm.Assemble(string(src))
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	// pausing before attachment means no instruction from the old program
	// can run once the new program is in place
	dbg.state = govern.Paused

	dbg.prog = prog
	dbg.sourcePath = path
	dbg.mach.AttachProgram(prog)
	dbg.printedOutput = 0

	logger.Logf(logger.Allow, "debugger", "%s: %d instructions", path, len(prog.Instructions))
	dbg.printLine(terminal.StyleFeedback, "%s: %d instructions", path, len(prog.Instructions))

	return nil
}

// printLine formats a string and sends it to the terminal.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// printOutput sends any machine output that has accumulated since the last
// call to the terminal. Only complete lines are printed unless flush is
// true.
func (dbg *Debugger) printOutput(flush bool) {
	out := dbg.mach.Output()
	pending := out[dbg.printedOutput:]

	for {
		idx := -1
		for i, r := range pending {
			if r == '\n' {
				idx = i
				break
			}
		}
		if idx == -1 {
			break
		}
		dbg.term.TermPrintLine(terminal.StyleProgramOutput, pending[:idx])
		dbg.printedOutput += idx + 1
		pending = pending[idx+1:]
	}

	if flush && pending != "" {
		dbg.term.TermPrintLine(terminal.StyleProgramOutput, pending)
		dbg.printedOutput += len(pending)
	}
}

// prompt returns the prompt for the next TermRead().
func (dbg *Debugger) prompt() terminal.Prompt {
	content := "no program"

	if dbg.prog != nil {
		switch dbg.mach.Status() {
		case mips.Halted:
			content = "halted"
		case mips.Faulted:
			content = "faulted"
		default:
			pc := dbg.mach.CPU.PC.Address()
			if ins, ok := dbg.prog.Lookup(pc); ok {
				content = fmt.Sprintf("%08x: %s", ins.Address, ins.Mnemonic)
			} else {
				content = fmt.Sprintf("%08x", pc)
			}
		}
	}

	return terminal.Prompt{
		Type:    terminal.PromptTypeCommand,
		Content: content,
	}
}
