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

package mips

import (
	"bytes"

	"github.com/pipistrelle/mipsim/mips/cpu"
	"github.com/pipistrelle/mipsim/mips/memory"
	"github.com/pipistrelle/mipsim/program"
)

// Status summarises whether the machine will execute another instruction.
type Status int

// List of possible machine statuses. Halted is the clean condition: an exit
// syscall or the program running off the end. Faulted is the error
// condition; the fault itself is available through the Fault() function.
const (
	Ready Status = iota
	Halted
	Faulted
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Halted:
		return "Halted"
	case Faulted:
		return "Faulted"
	}
	return ""
}

// Machine gathers everything that makes up the simulated machine state: the
// CPU (registers and program counter), memory, the accumulated syscall
// output and the halt/fault status.
//
// A Machine is owned by exactly one controller. All mutation happens through
// AttachProgram(), Reset() and Step().
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// the currently loaded program. may be nil
	Prog *program.Program

	output bytes.Buffer

	status Status
	fault  error
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() *Machine {
	m := &Machine{}
	m.Mem = memory.NewMemory()
	m.CPU = cpu.NewCPU(m.Mem, &m.output)
	return m
}

// AttachProgram loads a program into the machine, resetting all machine
// state. The previous program, if any, is wholly forgotten: the Program
// replacement is atomic from the point of view of the execution loop, which
// only ever runs between instructions.
func (m *Machine) AttachProgram(prog *program.Program) {
	m.Prog = prog
	m.CPU.AttachProgram(prog)
	m.Reset()
}

// Reset the machine to its initial state: registers zeroed (stack pointer
// to the stack base), program counter to the start of the text section,
// memory cleared and reloaded with the program's initial data, output and
// any fault discarded.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Mem.Reset()
	m.output.Reset()
	m.status = Ready
	m.fault = nil

	if m.Prog != nil {
		// the data image is copied, not aliased. the running machine never
		// writes back into the Program
		for addr, v := range m.Prog.Data {
			m.Mem.WriteByte(addr, v)
		}
	}
}

// Status of the machine.
func (m *Machine) Status() Status {
	return m.status
}

// Fault returns the runtime fault that stopped the machine, or nil.
func (m *Machine) Fault() error {
	return m.fault
}

// Output returns the accumulated syscall output.
func (m *Machine) Output() string {
	return m.output.String()
}
