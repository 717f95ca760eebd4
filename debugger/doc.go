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

// Package debugger implements the command-line debugger for the mipsim
// machine. It coordinates the terminal, the assembler and the machine.
//
// The debugger is single-goroutine by design: the machine only ever runs in
// the debugger's own goroutine and all machine mutation happens between
// instructions. Other goroutines communicate with the debugger by pushing
// functions onto the RawEvents queue with PushRawEvent(); the functions are
// serviced at the next instruction boundary, or while the debugger is
// waiting at the command prompt.
//
// While the machine is running, any keypress, or a SIGINT, pauses it and
// returns control to the command prompt. A program that halts or faults
// does the same.
package debugger
