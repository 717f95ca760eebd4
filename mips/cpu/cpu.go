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

package cpu

import (
	"io"
	"strconv"
	"strings"

	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/mips/cpu/instructions"
	"github.com/pipistrelle/mipsim/mips/memory"
	"github.com/pipistrelle/mipsim/mips/registers"
	"github.com/pipistrelle/mipsim/program"
)

// Error patterns raised during execution. Fault is the outermost pattern for
// every runtime fault; the others describe the specific decode failure and
// appear wrapped inside it.
const (
	Fault                  = "runtime fault: pc %08x: %v"
	UnknownRegister        = "unknown register (%s)"
	UnresolvableOperand    = "unresolvable operand (%s)"
	MalformedMemoryOperand = "malformed memory operand (%s)"
	MissingOperands        = "missing operands for %s"
)

// CPU executes instructions from an attached Program against the register
// file and memory. One call to ExecuteInstruction() executes exactly one
// instruction as an atomic state transition: operands are decoded before any
// register, memory or output change is made, so a decode fault leaves the
// machine state exactly as it was.
type CPU struct {
	Regs *registers.File
	PC   registers.ProgramCounter

	mem *memory.Memory
	out io.Writer

	prog *program.Program

	// the CPU has executed an exit syscall or run past the end of the
	// program. requires a Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
// Syscall output is written to the supplied io.Writer.
func NewCPU(mem *memory.Memory, out io.Writer) *CPU {
	return &CPU{
		Regs: registers.NewFile(),
		PC:   registers.NewProgramCounter(program.TextBase),
		mem:  mem,
		out:  out,
	}
}

// AttachProgram connects a Program to the CPU. The CPU only ever reads from
// the Program; initial data is loaded into memory by the machine reset.
func (mc *CPU) AttachProgram(prog *program.Program) {
	mc.prog = prog
}

// Reset the CPU. Registers to their initial values and the program counter
// to the base of the text section.
func (mc *CPU) Reset() {
	mc.Regs.Reset()
	mc.PC.Reset(program.TextBase)
	mc.Halted = false
}

func (mc *CPU) fault(err error) error {
	return curated.Errorf(Fault, mc.PC.Address(), err)
}

// operand returns the raw operand token at the index, faulting if the
// instruction has too few operands.
func operand(ins program.Instruction, idx int) (string, error) {
	if idx >= len(ins.Operands) {
		return "", curated.Errorf(MissingOperands, ins.Mnemonic)
	}
	return ins.Operands[idx], nil
}

// decode an operand token as a register number.
func (mc *CPU) reg(ins program.Instruction, idx int) (int, error) {
	tok, err := operand(ins, idx)
	if err != nil {
		return 0, err
	}
	n, ok := registers.Number(tok)
	if !ok {
		return 0, curated.Errorf(UnknownRegister, tok)
	}
	return n, nil
}

// decode an operand token as a value: first against the label table, then as
// a base-10 integer literal.
func (mc *CPU) value(ins program.Instruction, idx int) (int32, error) {
	tok, err := operand(ins, idx)
	if err != nil {
		return 0, err
	}

	if addr, ok := mc.prog.Label(tok); ok {
		return int32(addr), nil
	}

	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, curated.Errorf(UnresolvableOperand, tok)
	}
	return int32(v), nil
}

// decode a memory operand token of the form offset(reg) to an absolute
// address. The offset is optional and may be negative.
func (mc *CPU) address(ins program.Instruction, idx int) (uint32, error) {
	tok, err := operand(ins, idx)
	if err != nil {
		return 0, err
	}

	open := strings.IndexRune(tok, '(')
	if open == -1 || !strings.HasSuffix(tok, ")") {
		return 0, curated.Errorf(MalformedMemoryOperand, tok)
	}

	var offset int64
	if open > 0 {
		offset, err = strconv.ParseInt(tok[:open], 10, 64)
		if err != nil {
			return 0, curated.Errorf(MalformedMemoryOperand, tok)
		}
	}

	base, ok := registers.Number(tok[open+1 : len(tok)-1])
	if !ok {
		return 0, curated.Errorf(UnknownRegister, tok[open+1:len(tok)-1])
	}

	return uint32(mc.Regs.Load(base)) + uint32(int32(offset)), nil
}

// ExecuteInstruction executes the instruction at the current program counter
// address. If there is no instruction at that address the CPU halts
// gracefully - the program has run off the end, which is not a fault.
//
// A returned error is always a curated error with the Fault pattern. On
// fault no part of the machine state has changed.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted || mc.prog == nil {
		return nil
	}

	ins, ok := mc.prog.Lookup(mc.PC.Address())
	if !ok {
		mc.Halted = true
		return nil
	}

	defn, ok := instructions.Lookup(ins.Mnemonic)
	if !ok {
		// unrecognised mnemonics are deliberately not an error
		mc.PC.Advance()
		return nil
	}

	switch defn.Operation {
	case instructions.Add, instructions.Addu:
		d, s, t, err := mc.threeRegs(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s)+mc.Regs.Load(t))

	case instructions.Sub, instructions.Subu:
		d, s, t, err := mc.threeRegs(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s)-mc.Regs.Load(t))

	case instructions.Mul:
		d, s, t, err := mc.threeRegs(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, int32(int64(mc.Regs.Load(s))*int64(mc.Regs.Load(t))))

	case instructions.And:
		d, s, t, err := mc.threeRegs(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s)&mc.Regs.Load(t))

	case instructions.Or:
		d, s, t, err := mc.threeRegs(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s)|mc.Regs.Load(t))

	case instructions.Xor:
		d, s, t, err := mc.threeRegs(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s)^mc.Regs.Load(t))

	case instructions.Slt:
		d, s, t, err := mc.threeRegs(ins)
		if err != nil {
			return mc.fault(err)
		}
		var v int32
		if mc.Regs.Load(s) < mc.Regs.Load(t) {
			v = 1
		}
		mc.Regs.Store(d, v)

	case instructions.Addi, instructions.Addiu:
		d, s, imm, err := mc.twoRegsImm(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s)+imm)

	case instructions.Slti:
		d, s, imm, err := mc.twoRegsImm(ins)
		if err != nil {
			return mc.fault(err)
		}
		var v int32
		if mc.Regs.Load(s) < imm {
			v = 1
		}
		mc.Regs.Store(d, v)

	case instructions.Sll:
		d, s, imm, err := mc.twoRegsImm(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s)<<(uint32(imm)&0x1f))

	case instructions.Srl:
		d, s, imm, err := mc.twoRegsImm(ins)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, int32(uint32(mc.Regs.Load(s))>>(uint32(imm)&0x1f)))

	case instructions.Lui:
		d, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		imm, err := mc.value(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, imm<<16)

	case instructions.Li, instructions.La:
		// li expects an integer literal and la a label but both resolve
		// through the same rule: label table first, then literal
		d, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		v, err := mc.value(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, v)

	case instructions.Move:
		d, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		s, err := mc.reg(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, mc.Regs.Load(s))

	case instructions.Lw:
		d, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		addr, err := mc.address(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		mc.Regs.Store(d, int32(mc.mem.ReadWord(addr)))

	case instructions.Sw:
		s, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		addr, err := mc.address(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		mc.mem.WriteWord(addr, uint32(mc.Regs.Load(s)))

	case instructions.Lb:
		d, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		addr, err := mc.address(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		// sign-extend the loaded byte
		mc.Regs.Store(d, int32(int8(mc.mem.ReadByte(addr))))

	case instructions.Sb:
		s, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		addr, err := mc.address(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		mc.mem.WriteByte(addr, uint8(mc.Regs.Load(s)))

	case instructions.Beq, instructions.Bne:
		a, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		b, err := mc.reg(ins, 1)
		if err != nil {
			return mc.fault(err)
		}
		// the branch target is a pre-resolved absolute address, not a
		// PC-relative delta as in the real ISA encoding
		target, err := mc.value(ins, 2)
		if err != nil {
			return mc.fault(err)
		}

		taken := mc.Regs.Load(a) == mc.Regs.Load(b)
		if defn.Operation == instructions.Bne {
			taken = !taken
		}
		if taken {
			mc.PC.Jump(uint32(target))
		} else {
			mc.PC.Advance()
		}
		return nil

	case instructions.J, instructions.Jal:
		target, err := mc.value(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		if defn.Operation == instructions.Jal {
			mc.Regs.Store(registers.RA, int32(mc.PC.Address()+4))
		}
		mc.PC.Jump(uint32(target))
		return nil

	case instructions.Jr:
		s, err := mc.reg(ins, 0)
		if err != nil {
			return mc.fault(err)
		}
		mc.PC.Jump(uint32(mc.Regs.Load(s)))
		return nil

	case instructions.Syscall:
		mc.syscall()
	}

	mc.PC.Advance()
	return nil
}

func (mc *CPU) threeRegs(ins program.Instruction) (int, int, int, error) {
	d, err := mc.reg(ins, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	s, err := mc.reg(ins, 1)
	if err != nil {
		return 0, 0, 0, err
	}
	t, err := mc.reg(ins, 2)
	if err != nil {
		return 0, 0, 0, err
	}
	return d, s, t, nil
}

func (mc *CPU) twoRegsImm(ins program.Instruction) (int, int, int32, error) {
	d, err := mc.reg(ins, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	s, err := mc.reg(ins, 1)
	if err != nil {
		return 0, 0, 0, err
	}
	imm, err := mc.value(ins, 2)
	if err != nil {
		return 0, 0, 0, err
	}
	return d, s, imm, nil
}
