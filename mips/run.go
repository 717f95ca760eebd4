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

package mips

import (
	"github.com/pipistrelle/mipsim/debugger/govern"
)

// Run the machine until it halts, faults, or the continueCheck callback
// returns something other than govern.Running.
//
// The continueCheck function is called before every fetch. It is the run
// loop's only yield point: cancellation, pacing and any other external
// concern happens inside continueCheck, between instructions, never during
// one. A nil continueCheck runs the machine as quickly as possible until
// it stops by itself.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	for m.status == Ready {
		state, err := continueCheck()
		if err != nil {
			return err
		}
		if state != govern.Running {
			return nil
		}

		if err := m.Step(); err != nil {
			return err
		}
	}

	return nil
}
