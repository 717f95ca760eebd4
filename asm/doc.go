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

// Package asm converts assembly source text into a program.Program ready
// for attachment to a mips.Machine.
//
// The assembler is deliberately permissive. It resolves sections, labels
// and data directives but it does not validate text section instructions
// at all: mnemonics and operands are carried through as raw tokens and
// only have meaning once the CPU tries to execute them. This means
// Assemble() succeeds for many programs that will later fault, which
// matches the interactive workflow the package is built for: edit,
// reassemble, run, inspect the fault.
//
// Error values returned by Assemble() are of type Error, which records the
// source line number the scan had reached.
package asm
