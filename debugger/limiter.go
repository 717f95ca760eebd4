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

package debugger

import (
	"time"
)

// a specialised instruction-rate limiter for use by the debugger. an
// unthrottled machine runs millions of instructions per second, which makes
// watching a program run pointless and starves the terminal of attention.
// the limiter throttles the run loop between instructions, which is also
// where terminal events are checked, so low rates keep the terminal
// responsive rather than making it stutter.
type limiter struct {
	rate int
	tick *time.Ticker
}

func newLimiter() *limiter {
	return &limiter{}
}

// setRate to the required instructions per second. A rate of zero or less
// turns throttling off.
func (lmtr *limiter) setRate(ips int) {
	if lmtr.tick != nil {
		lmtr.tick.Stop()
		lmtr.tick = nil
	}

	lmtr.rate = ips
	if ips > 0 {
		lmtr.tick = time.NewTicker(time.Second / time.Duration(ips))
	}
}

// wait until the next instruction is due.
func (lmtr *limiter) wait() {
	if lmtr.tick != nil {
		<-lmtr.tick.C
	}
}
