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

package colorterm

import (
	"bufio"
	"os"
)

// readRune is a rune, or the read error, delivered through the rune channel.
type readRune struct {
	r   rune
	err error
}

// initRuneReader decouples reading of the input stream from the TermRead()
// select loop. the returned channel is buffered so that TermReadCheck() has
// something to measure.
func initRuneReader(input *os.File) chan readRune {
	ch := make(chan readRune, 1)

	go func() {
		buf := bufio.NewReader(input)
		for {
			r, _, err := buf.ReadRune()
			ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return ch
}
