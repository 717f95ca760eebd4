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

// Package cpu implements the interpreter for the MIPS subset understood by
// the simulator. Operand parsing and validation happen here, at execution
// time, not in the assembler - the assembler records raw tokens and an
// instruction is only judged when the program counter reaches it.
//
// Two deliberate simplifications, inherited from the system this simulator
// teaches with, are worth calling out. Branch and jump targets are absolute
// resolved addresses rather than the PC-relative or segment-relative forms
// of the real ISA encoding; downstream programs are written against this
// behaviour. And unrecognised mnemonics execute as no-ops rather than
// faulting, which keeps partially written programs steppable.
package cpu
