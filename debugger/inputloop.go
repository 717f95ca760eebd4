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
	"errors"
	"io"

	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/debugger/govern"
	"github.com/pipistrelle/mipsim/debugger/terminal"
	"github.com/pipistrelle/mipsim/mips"
)

// inputLoop is the main loop of the debugger. It reads and processes
// commands while the machine is paused and hands over to runLoop() while it
// is running.
func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		if dbg.state == govern.Running {
			if err := dbg.runLoop(); err != nil {
				dbg.printLine(terminal.StyleError, "%v", err)
			}
			if dbg.mach.Status() == mips.Halted {
				dbg.printLine(terminal.StyleFeedback, "program halted")
			}
			continue
		}

		input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use %s to quit", cmdQuit)
				continue
			}
			if errors.Is(err, io.EOF) {
				dbg.quit = true
				continue
			}
			return err
		}

		if err := dbg.processInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// runLoop runs the machine until it stops by itself or something pauses it:
// a keypress waiting in the terminal, an interrupt signal or a pushed event
// that changes the debugger state.
func (dbg *Debugger) runLoop() error {
	err := dbg.mach.Run(func() (govern.State, error) {
		if dbg.quit {
			return govern.Ending, nil
		}

		// the machine is between instructions. service any waiting events
		select {
		case f := <-dbg.events.RawEvents:
			f()
		case sig := <-dbg.events.Signal:
			if err := dbg.events.SignalHandler(sig); err != nil {
				if curated.Is(err, terminal.UserInterrupt) {
					dbg.state = govern.Paused
				} else {
					return dbg.state, err
				}
			}
		default:
		}

		// any keypress pauses the machine and returns to the command prompt
		if dbg.state == govern.Running && dbg.term.TermReadCheck() {
			dbg.state = govern.Paused
		}

		dbg.printOutput(false)
		dbg.limiter.wait()

		return dbg.state, nil
	})

	dbg.printOutput(true)

	// whatever stopped the machine, the input loop resumes in the paused
	// state
	dbg.state = govern.Paused

	if err != nil {
		return dbg.decorateFault(err)
	}

	return nil
}

// decorateFault adds the source line, when it is known, to a runtime fault.
func (dbg *Debugger) decorateFault(err error) error {
	if dbg.prog != nil {
		if line, ok := dbg.prog.SourceLine(dbg.mach.CPU.PC.Address()); ok {
			return curated.Errorf("line %d: %v", line, err)
		}
	}
	return err
}
