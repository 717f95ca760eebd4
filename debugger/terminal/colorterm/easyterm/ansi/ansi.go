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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of muted colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// Cursor and erasure sequences.
const (
	ClearLine     = "\033[2K"
	CursorStore   = "\033[s"
	CursorRestore = "\033[u"
)

// CursorMove returns the CSI sequence that moves the cursor n columns, a
// negative n moving backwards.
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	}
	if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

func init() {
	colors := map[string]int{
		"black":   colBlack,
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	}

	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	for c, n := range colors {
		Pens[c] = fmt.Sprintf("\033[%d%dm", targetBrightPen, n)
		DimPens[c] = fmt.Sprintf("\033[%d%dm", targetPen, n)
	}

	PenStyles = map[string]string{
		"bold":      fmt.Sprintf("\033[%dm", attrBold),
		"underline": fmt.Sprintf("\033[%dm", attrUnderline),
	}
}
