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

package cpu_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/mips/cpu"
	"github.com/pipistrelle/mipsim/mips/memory"
	"github.com/pipistrelle/mipsim/mips/registers"
	"github.com/pipistrelle/mipsim/program"
	"github.com/pipistrelle/mipsim/test"
)

// build a test program from plain source lines. the tokenising is the same
// as the assembler's text section handling: commas are whitespace.
func testProgram(lines ...string) *program.Program {
	prog := program.NewProgram()
	addr := program.TextBase
	for i, l := range lines {
		fields := strings.Fields(strings.ReplaceAll(l, ",", " "))
		prog.Instructions = append(prog.Instructions, program.Instruction{
			Address:  addr,
			Mnemonic: fields[0],
			Operands: fields[1:],
			Line:     i + 1,
		})
		addr += 4
	}
	prog.Finalise()
	return prog
}

func testCPU(prog *program.Program) (*cpu.CPU, *memory.Memory, *bytes.Buffer) {
	mem := memory.NewMemory()
	out := &bytes.Buffer{}
	mc := cpu.NewCPU(mem, out)
	mc.AttachProgram(prog)
	mc.Reset()
	return mc, mem, out
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(); err != nil {
		t.Fatal(err)
	}
}

// run the program to the halted state, with a step budget so a broken flow
// instruction can't hang the test.
func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if mc.Halted {
			return
		}
		step(t, mc)
	}
	t.Fatal("program did not halt within step budget")
}

func TestArithmetic(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"li $t0, 10",
		"li $t1, 3",
		"add $t2, $t0, $t1",
		"sub $t3, $t0, $t1",
		"mul $t4, $t0, $t1",
		"addi $t5, $t0, -15",
		"slt $t6, $t1, $t0",
		"slti $t7, $t0, 5",
	))
	run(t, mc)

	test.ExpectEquality(t, mc.Regs.Load(10), 13)
	test.ExpectEquality(t, mc.Regs.Load(11), 7)
	test.ExpectEquality(t, mc.Regs.Load(12), 30)
	test.ExpectEquality(t, mc.Regs.Load(13), -5)
	test.ExpectEquality(t, mc.Regs.Load(14), 1)
	test.ExpectEquality(t, mc.Regs.Load(15), 0)
}

func TestAddiWraparound(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"li $t0, 2147483647",
		"addi $t0, $t0, 1",
	))
	run(t, mc)

	// two's-complement wraparound, no overflow fault
	test.ExpectEquality(t, mc.Regs.Load(8), int32(-2147483648))
}

func TestLogical(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"li $t0, 12",
		"li $t1, 10",
		"and $t2, $t0, $t1",
		"or $t3, $t0, $t1",
		"xor $t4, $t0, $t1",
		"sll $t5, $t0, 2",
		"li $t6, -8",
		"srl $t6, $t6, 1",
	))
	run(t, mc)

	test.ExpectEquality(t, mc.Regs.Load(10), 8)
	test.ExpectEquality(t, mc.Regs.Load(11), 14)
	test.ExpectEquality(t, mc.Regs.Load(12), 6)
	test.ExpectEquality(t, mc.Regs.Load(13), 48)

	// srl is a logical shift. the sign bit is not duplicated
	test.ExpectEquality(t, mc.Regs.Load(14), int32(0x7ffffffc))
}

func TestLuiMove(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"lui $t0, 16",
		"move $t1, $t0",
	))
	run(t, mc)

	test.ExpectEquality(t, mc.Regs.Load(8), int32(16<<16))
	test.ExpectEquality(t, mc.Regs.Load(9), int32(16<<16))
}

func TestLabelResolution(t *testing.T) {
	prog := testProgram(
		"la $t0, msg",
		"la $t1, 4096",
	)
	prog.Labels["msg"] = program.DataBase

	mc, _, _ := testCPU(prog)
	run(t, mc)

	test.ExpectEquality(t, mc.Regs.Load(8), int32(program.DataBase))
	test.ExpectEquality(t, mc.Regs.Load(9), 4096)
}

func TestZeroRegisterDiscard(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"li $zero, 99",
		"li $t0, 1",
		"add $zero, $t0, $t0",
		"move $0, $t0",
	))
	run(t, mc)

	test.ExpectEquality(t, mc.Regs.Load(registers.Zero), 0)
}

func TestMemoryInstructions(t *testing.T) {
	prog := testProgram(
		"la $t0, buffer",
		"li $t1, -559038737",
		"sw $t1, 0($t0)",
		"lw $t2, 0($t0)",
		"lb $t3, 0($t0)",
		"li $t4, 65",
		"sb $t4, 4($t0)",
		"lb $t5, 4($t0)",
	)
	prog.Labels["buffer"] = program.DataBase

	mc, mem, _ := testCPU(prog)
	run(t, mc)

	// -559038737 == 0xdeadbeef
	test.ExpectEquality(t, mem.ReadWord(program.DataBase), uint32(0xdeadbeef))
	test.ExpectEquality(t, mc.Regs.Load(10), int32(-559038737))

	// lb sign-extends: the byte at the lowest address is 0xde
	test.ExpectEquality(t, mc.Regs.Load(11), -34)

	test.ExpectEquality(t, mem.ReadByte(program.DataBase+4), 65)
	test.ExpectEquality(t, mc.Regs.Load(13), 65)
}

func TestNegativeOffset(t *testing.T) {
	prog := testProgram(
		"la $t0, buffer",
		"li $t1, 7",
		"sw $t1, -4($t0)",
		"lw $t2, -4($t0)",
	)
	prog.Labels["buffer"] = program.DataBase + 8

	mc, mem, _ := testCPU(prog)
	run(t, mc)

	test.ExpectEquality(t, mem.ReadWord(program.DataBase+4), 7)
	test.ExpectEquality(t, mc.Regs.Load(10), 7)
}

func TestBranches(t *testing.T) {
	prog := testProgram(
		"li $t0, 0",    // 00400000
		"li $t1, 3",    // 00400004
		"addi $t0, $t0, 1", // 00400008 loop:
		"bne $t0, $t1, loop", // 0040000c
		"li $t2, 42",   // 00400010
	)
	prog.Labels["loop"] = program.TextBase + 8

	mc, _, _ := testCPU(prog)
	run(t, mc)

	test.ExpectEquality(t, mc.Regs.Load(8), 3)
	test.ExpectEquality(t, mc.Regs.Load(10), 42)
}

func TestJumpAndLink(t *testing.T) {
	prog := testProgram(
		"jal sub",      // 00400000
		"li $t1, 2",    // 00400004
		"li $t2, 3",    // 00400008 end of main
		"li $t0, 1",    // 0040000c sub:
		"jr $ra",       // 00400010
	)
	prog.Labels["sub"] = program.TextBase + 12

	mc, _, _ := testCPU(prog)

	step(t, mc) // jal
	test.ExpectEquality(t, mc.Regs.Load(registers.RA), int32(program.TextBase+4))
	test.ExpectEquality(t, mc.PC.Address(), program.TextBase+12)

	run(t, mc)
	test.ExpectEquality(t, mc.Regs.Load(8), 1)
	test.ExpectEquality(t, mc.Regs.Load(9), 2)
	test.ExpectEquality(t, mc.Regs.Load(10), 3)
}

func TestUnknownMnemonic(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"frobnicate $t0, $t1",
		"li $t0, 5",
	))
	run(t, mc)

	// the unrecognised mnemonic is a no-op. execution continues
	test.ExpectEquality(t, mc.Regs.Load(8), 5)
}

func TestRunOffEnd(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"li $t0, 1",
	))
	step(t, mc)
	test.ExpectFailure(t, mc.Halted)

	// no instruction at the new program counter address. halts gracefully
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)
}

func TestUnresolvableFault(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"j nowhere",
	))

	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.Fault))
	test.ExpectSuccess(t, curated.Has(err, cpu.UnresolvableOperand))

	// the fault left the program counter untouched
	test.ExpectEquality(t, mc.PC.Address(), program.TextBase)
}

func TestBadRegisterFault(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"add $t0, $bogus, $t1",
	))

	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, cpu.UnknownRegister))
	test.ExpectEquality(t, mc.Regs.Load(8), 0)
}

func TestMalformedMemoryOperandFault(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"lw $t0, buffer",
	))

	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, cpu.MalformedMemoryOperand))
}

func TestMissingOperandsFault(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"add $t0, $t1",
	))

	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, cpu.MissingOperands))
}

func TestSyscallPrint(t *testing.T) {
	prog := testProgram(
		"li $v0, 1",
		"li $a0, -321",
		"syscall",
		"li $v0, 11",
		"li $a0, 10",
		"syscall",
		"li $v0, 4",
		"la $a0, msg",
		"syscall",
		"li $v0, 99",
		"syscall",
		"li $v0, 10",
		"syscall",
	)
	prog.Labels["msg"] = program.DataBase

	mc, mem, out := testCPU(prog)
	for i, b := range []byte("hello") {
		mem.WriteByte(program.DataBase+uint32(i), b)
	}

	run(t, mc)
	test.ExpectEquality(t, out.String(), "-321\nhello")
	test.ExpectSuccess(t, mc.Halted)
}

func TestSyscallPrintStringTruncation(t *testing.T) {
	prog := testProgram(
		"li $v0, 4",
		"la $a0, buffer",
		"syscall",
	)
	prog.Labels["buffer"] = program.DataBase

	mc, mem, out := testCPU(prog)

	// a buffer with no terminating zero within the bounded scan window
	for i := 0; i < 1200; i++ {
		mem.WriteByte(program.DataBase+uint32(i), 'x')
	}

	// truncation is not an error
	run(t, mc)
	test.ExpectEquality(t, len(out.String()), 1000)
}

func TestSyscallExit(t *testing.T) {
	mc, _, _ := testCPU(testProgram(
		"li $v0, 10",
		"syscall",
		"li $t0, 1",
	))
	run(t, mc)

	// the halt happened before the final instruction could execute
	test.ExpectEquality(t, mc.Regs.Load(8), 0)
	test.ExpectSuccess(t, mc.Halted)
}
