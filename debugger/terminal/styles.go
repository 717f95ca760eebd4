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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// input that has been normalised by the debugger. terminals that echo
	// user input as it is typed have no use for this.
	StyleEcho Style = iota

	// help information
	StyleHelp

	// information from the debugger about the debugger or the machine
	StyleFeedback

	// the disassembly-like instruction listing
	StyleInstruction

	// output printed by the running program's syscalls
	StyleProgramOutput

	// entries from the central logger
	StyleLog

	// any error message
	StyleError
)
