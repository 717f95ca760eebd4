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

package program

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Base addresses for the two sections recognised by the assembler. Each
// section has its own address pointer during assembly, starting at the
// section base.
const (
	TextBase uint32 = 0x00400000
	DataBase uint32 = 0x10010000
)

// Instruction is a single entry in the text section of an assembled Program.
// The operand fields are the raw tokens from the source line. They are not
// validated until the instruction is executed.
type Instruction struct {
	Address  uint32
	Mnemonic string
	Operands []string

	// the 1-based source line the instruction was assembled from
	Line int
}

func (ins Instruction) String() string {
	if len(ins.Operands) == 0 {
		return fmt.Sprintf("%08x  %s", ins.Address, ins.Mnemonic)
	}
	return fmt.Sprintf("%08x  %s %s", ins.Address, ins.Mnemonic, strings.Join(ins.Operands, ", "))
}

// Program is the result of a successful assembly. It is immutable once
// assembled; a machine never writes back into a Program.
type Program struct {
	Instructions []Instruction

	// label name to resolved address. a label may refer to a text or a data
	// address
	Labels map[string]uint32

	// the initial content of the data section, keyed by absolute address
	Data map[uint32]uint8

	// instruction index by address
	lookup map[uint32]int
}

// NewProgram is the preferred method of initialisation for the Program type.
// The fields are populated by the assembler and sealed with Finalise().
func NewProgram() *Program {
	return &Program{
		Instructions: make([]Instruction, 0),
		Labels:       make(map[string]uint32),
		Data:         make(map[uint32]uint8),
	}
}

// Finalise builds the address lookup. The assembler calls this once all
// instructions have been added.
func (p *Program) Finalise() {
	p.lookup = make(map[uint32]int, len(p.Instructions))
	for i := range p.Instructions {
		p.lookup[p.Instructions[i].Address] = i
	}
}

// Lookup the instruction at the specified address. The second return value
// is false if there is no instruction at that address.
func (p *Program) Lookup(address uint32) (Instruction, bool) {
	i, ok := p.lookup[address]
	if !ok {
		return Instruction{}, false
	}
	return p.Instructions[i], true
}

// SourceLine returns the 1-based source line for the instruction at the
// specified address. Used for highlighting the current line in a front-end.
func (p *Program) SourceLine(address uint32) (int, bool) {
	ins, ok := p.Lookup(address)
	if !ok {
		return 0, false
	}
	return ins.Line, true
}

// Label returns the resolved address for a label name.
func (p *Program) Label(name string) (uint32, bool) {
	addr, ok := p.Labels[name]
	return addr, ok
}

// Write the program listing to the io.Writer.
func (p *Program) Write(output io.Writer) {
	for _, ins := range p.Instructions {
		io.WriteString(output, ins.String())
		io.WriteString(output, "\n")
	}
}

// WriteSymbols writes the label table to the io.Writer, sorted by address.
func (p *Program) WriteSymbols(output io.Writer) {
	names := make([]string, 0, len(p.Labels))
	for n := range p.Labels {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if p.Labels[names[i]] == p.Labels[names[j]] {
			return names[i] < names[j]
		}
		return p.Labels[names[i]] < p.Labels[names[j]]
	})

	for _, n := range names {
		fmt.Fprintf(output, "%08x  %s\n", p.Labels[n], n)
	}
}
