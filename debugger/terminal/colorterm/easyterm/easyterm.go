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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it wraps
// termios methods in functions with friendlier names and keeps the terminal
// attributes needed to switch between the modes the debugger uses.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the base representation for a terminal that can be switched
// between modes. Typically embedded in another struct that builds editing
// facilities on top of it.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// attributes at the time of Initialise(). restored by CleanUp()
	canAttr unix.Termios

	rawAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the terminal, recording the attributes to restore on CleanUp().
func (et *EasyTerm) Initialise(input, output *os.File) error {
	et.input = input
	et.output = output

	if err := termios.Tcgetattr(input.Fd(), &et.canAttr); err != nil {
		return err
	}

	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	// cbreak mode: no line buffering and no echo but signal generation and
	// output processing left intact
	et.cbreakAttr = et.canAttr
	et.cbreakAttr.Lflag &^= unix.ICANON | unix.ECHO
	et.cbreakAttr.Cc[unix.VMIN] = 1
	et.cbreakAttr.Cc[unix.VTIME] = 0

	return nil
}

// CleanUp returns the terminal to the state it was in at Initialise().
func (et *EasyTerm) CleanUp() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// CanonicalMode puts the terminal into regular cooked mode.
func (et *EasyTerm) CanonicalMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// RawMode puts the terminal into raw mode.
func (et *EasyTerm) RawMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
}

// CBreakMode puts the terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// TermPrint writes the string to the terminal's output stream.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}

// Flush the terminal's output stream.
func (et *EasyTerm) Flush() error {
	return et.output.Sync()
}
