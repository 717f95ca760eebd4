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
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/debugger/govern"
	"github.com/pipistrelle/mipsim/debugger/terminal"
	"github.com/pipistrelle/mipsim/logger"
	"github.com/pipistrelle/mipsim/mips"
)

// debugger commands.
const (
	cmdHelp      = "HELP"
	cmdQuit      = "QUIT"
	cmdLoad      = "LOAD"
	cmdReset     = "RESET"
	cmdStep      = "STEP"
	cmdRun       = "RUN"
	cmdHalt      = "HALT"
	cmdRegisters = "REGISTERS"
	cmdMemory    = "MEMORY"
	cmdSymbols   = "SYMBOLS"
	cmdList      = "LIST"
	cmdOutput    = "OUTPUT"
	cmdLog       = "LOG"
	cmdViz       = "VIZ"
)

var commands = []string{
	cmdHelp, cmdQuit, cmdLoad, cmdReset, cmdStep, cmdRun, cmdHalt,
	cmdRegisters, cmdMemory, cmdSymbols, cmdList, cmdOutput, cmdLog, cmdViz,
}

var helps = map[string]string{
	cmdHelp:      "Lists commands and provides help for individual commands",
	cmdQuit:      "Quits the debugger",
	cmdLoad:      "Assembles the named file and loads the result into the machine",
	cmdReset:     "Resets the machine to its initial state",
	cmdStep:      "Executes the next instruction",
	cmdRun:       "Runs the machine until it stops. An optional argument throttles the run to that many instructions per second",
	cmdHalt:      "Halts a running machine (or press any key while it runs)",
	cmdRegisters: "Shows the contents of the register file and the program counter",
	cmdMemory:    "Shows memory from the named address or label. An optional second argument sets the number of bytes shown",
	cmdSymbols:   "Lists every label and the address it resolves to",
	cmdList:      "Lists the program around the current program counter",
	cmdOutput:    "Shows everything the program has printed so far",
	cmdLog:       "Shows recent entries from the application log",
	cmdViz:       "Writes a graphviz visualisation of the machine state to the named file",
}

func init() {
	sort.Strings(commands)
}

// processInput tokenises a line of input and dispatches the command.
func (dbg *Debugger) processInput(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	cmd := strings.ToUpper(toks[0])
	args := toks[1:]

	switch cmd {
	case cmdHelp:
		dbg.help(args)

	case cmdQuit:
		dbg.quit = true

	case cmdLoad:
		if len(args) != 1 {
			return curated.Errorf("%s requires a file name", cmdLoad)
		}
		return dbg.loadSource(args[0])

	case cmdReset:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		dbg.mach.Reset()
		dbg.printedOutput = 0
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdStep:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		return dbg.step()

	case cmdRun:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		if len(args) > 0 {
			ips, err := strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf("not a rate (%s)", args[0])
			}
			dbg.limiter.setRate(ips)
		} else {
			dbg.limiter.setRate(0)
		}
		if dbg.mach.Status() != mips.Ready {
			return curated.Errorf("machine is %s. use %s first", strings.ToLower(dbg.mach.Status().String()), cmdReset)
		}
		dbg.state = govern.Running

	case cmdHalt:
		// the machine cannot be running while commands are being processed
		dbg.printLine(terminal.StyleFeedback, "machine is not running")

	case cmdRegisters:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		dbg.registers()

	case cmdMemory:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		return dbg.memory(args)

	case cmdSymbols:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		s := &strings.Builder{}
		dbg.prog.WriteSymbols(s)
		dbg.printSection(terminal.StyleFeedback, s.String())

	case cmdList:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		dbg.list()

	case cmdOutput:
		if err := dbg.requireProgram(cmd); err != nil {
			return err
		}
		dbg.printSection(terminal.StyleProgramOutput, dbg.mach.Output())

	case cmdLog:
		b := &bytes.Buffer{}
		logger.Tail(b, 10)
		dbg.printSection(terminal.StyleLog, b.String())

	case cmdViz:
		path := "mipsim.dot"
		if len(args) > 0 {
			path = args[0]
		}
		return dbg.visualise(path)

	default:
		return curated.Errorf("unrecognised command (%s)", toks[0])
	}

	return nil
}

// requireProgram returns an error suitable for commands that make no sense
// without a loaded program.
func (dbg *Debugger) requireProgram(cmd string) error {
	if dbg.prog == nil {
		return curated.Errorf("no program loaded. use %s before %s", cmdLoad, cmd)
	}
	return nil
}

func (dbg *Debugger) help(args []string) {
	if len(args) > 0 {
		cmd := strings.ToUpper(args[0])
		if h, ok := helps[cmd]; ok {
			dbg.printLine(terminal.StyleHelp, "%s: %s", cmd, h)
		} else {
			dbg.printLine(terminal.StyleHelp, "no help for %s", args[0])
		}
		return
	}
	dbg.printLine(terminal.StyleHelp, strings.Join(commands, " "))
}

// step the machine one instruction, echoing the instruction that ran.
func (dbg *Debugger) step() error {
	if dbg.mach.Status() != mips.Ready {
		dbg.printLine(terminal.StyleFeedback, "machine is %s. use %s first",
			strings.ToLower(dbg.mach.Status().String()), cmdReset)
		return nil
	}

	ins, ok := dbg.prog.Lookup(dbg.mach.CPU.PC.Address())

	if err := dbg.mach.Step(); err != nil {
		return dbg.decorateFault(err)
	}

	if ok {
		dbg.printLine(terminal.StyleInstruction, "%s", ins.String())
	}
	dbg.printOutput(false)

	if dbg.mach.Status() == mips.Halted {
		dbg.printOutput(true)
		dbg.printLine(terminal.StyleFeedback, "program halted")
	}

	return nil
}

func (dbg *Debugger) registers() {
	s := &strings.Builder{}
	dbg.mach.CPU.Regs.Write(s)
	dbg.printSection(terminal.StyleFeedback, s.String())
	dbg.printLine(terminal.StyleFeedback, "pc: %08x", dbg.mach.CPU.PC.Address())
}

// memory displays a hex dump of machine memory. the address argument is a
// label or a number; numbers prefixed 0x are hexadecimal.
func (dbg *Debugger) memory(args []string) error {
	if len(args) < 1 {
		return curated.Errorf("%s requires an address or label", cmdMemory)
	}

	var addr uint32
	if a, ok := dbg.prog.Label(args[0]); ok {
		addr = a
	} else {
		a, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return curated.Errorf("not an address or label (%s)", args[0])
		}
		addr = uint32(a)
	}

	length := 64
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return curated.Errorf("not a length (%s)", args[1])
		}
		length = n
	}

	for length > 0 {
		row := 16
		if length < row {
			row = length
		}

		hex := &strings.Builder{}
		ascii := &strings.Builder{}
		for i := 0; i < row; i++ {
			v := dbg.mach.Mem.ReadByte(addr + uint32(i))
			hex.WriteString(fmt.Sprintf("%02x ", v))
			if v >= 32 && v <= 126 {
				ascii.WriteRune(rune(v))
			} else {
				ascii.WriteRune('.')
			}
		}

		dbg.printLine(terminal.StyleFeedback, "%08x  %-48s |%s|", addr, hex.String(), ascii.String())

		addr += uint32(row)
		length -= row
	}

	return nil
}

// list the program, marking the instruction the program counter points at.
func (dbg *Debugger) list() {
	pc := dbg.mach.CPU.PC.Address()
	for _, ins := range dbg.prog.Instructions {
		marker := "  "
		if ins.Address == pc {
			marker = "->"
		}
		dbg.printLine(terminal.StyleInstruction, "%s %s", marker, ins.String())
	}
}

// visualise writes a graphviz rendering of the machine state to a file.
func (dbg *Debugger) visualise(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("viz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.mach)
	dbg.printLine(terminal.StyleFeedback, "machine state written to %s", path)

	return nil
}

// printSection prints a multi-line string line by line.
func (dbg *Debugger) printSection(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

// tabCompletion is the debugger's TabCompletion implementation. it cycles
// through the commands that match the first word of the input.
type tabCompletion struct {
	options []string
	idx     int
	partial string
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	if strings.ContainsRune(strings.TrimSpace(input), ' ') {
		return input
	}

	if tc.options == nil {
		tc.partial = strings.ToUpper(strings.TrimSpace(input))
		tc.options = make([]string, 0, len(commands))
		for _, c := range commands {
			if strings.HasPrefix(c, tc.partial) {
				tc.options = append(tc.options, c)
			}
		}
		tc.idx = 0
	}

	if len(tc.options) == 0 {
		return input
	}

	s := tc.options[tc.idx]
	tc.idx = (tc.idx + 1) % len(tc.options)

	return s + " "
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.options = nil
}
