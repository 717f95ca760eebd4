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

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NumRegisters is the size of the register file.
const NumRegisters = 32

// Indexes of the registers with special meaning to the simulator.
const (
	Zero = 0  // hardwired to zero
	V0   = 2  // syscall service code
	A0   = 4  // syscall argument
	SP   = 29 // stack pointer
	RA   = 31 // link register
)

// StackBase is the conventional initial value of the stack pointer. The
// stack pointer is the only register that resets to a non-zero value.
const StackBase = 0x7fffeffc

// conventional names in register number order
var names = []string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

// File is the fixed register file of the simulated machine: thirty-two
// signed 32-bit registers. Register zero is hardwired: the Store() function
// discards writes to it so it always reads as zero.
type File [NumRegisters]int32

// NewFile is the preferred method of initialisation for the register File.
func NewFile() *File {
	f := &File{}
	f.Reset()
	return f
}

// Reset zeroes every register and reloads the stack pointer with the stack
// base address.
func (f *File) Reset() {
	for i := range f {
		f[i] = 0
	}
	f[SP] = StackBase
}

// Load returns the value of the specified register.
func (f *File) Load(reg int) int32 {
	return f[reg]
}

// Store writes a value to the specified register. Writes to register zero
// are discarded.
func (f *File) Store(reg int, value int32) {
	if reg == Zero {
		return
	}
	f[reg] = value
}

// Name returns the conventional name for a register number.
func Name(reg int) string {
	return names[reg]
}

// Number converts a register operand token to a register number. Both the
// conventional names ($t0, $sp, ...) and plain numeric forms ($0 to $31)
// are accepted.
func Number(token string) (int, bool) {
	if !strings.HasPrefix(token, "$") {
		return 0, false
	}

	for i := range names {
		if names[i] == token {
			return i, true
		}
	}

	n, err := strconv.Atoi(token[1:])
	if err != nil || n < 0 || n >= NumRegisters {
		return 0, false
	}
	return n, true
}

// Write the contents of the register file to the io.Writer, four registers
// per row.
func (f *File) Write(output io.Writer) {
	for i := range f {
		fmt.Fprintf(output, "%5s = %08x", names[i], uint32(f[i]))
		if i%4 == 3 {
			io.WriteString(output, "\n")
		} else {
			io.WriteString(output, "   ")
		}
	}
}
