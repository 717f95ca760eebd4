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

package registers

import "fmt"

// ProgramCounter is an unsigned 32-bit address register. While a program is
// loaded the program counter is always a multiple of four: it moves only by
// Advance() or by Jump() to an instruction address.
type ProgramCounter struct {
	value uint32
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint32) ProgramCounter {
	return ProgramCounter{value: val}
}

// Reset the program counter to the specified address.
func (pc *ProgramCounter) Reset(address uint32) {
	pc.value = address
}

// Advance the program counter to the next instruction address.
func (pc *ProgramCounter) Advance() {
	pc.value += 4
}

// Jump to the specified address.
func (pc *ProgramCounter) Jump(address uint32) {
	pc.value = address
}

// Address currently held by the program counter.
func (pc ProgramCounter) Address() uint32 {
	return pc.value
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%08x", pc.value)
}
