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

// Step the machine state one instruction. Calling Step() on a machine that
// is not in the Ready status is a no-op; in particular, a faulted machine
// stays faulted until Reset() or a new AttachProgram().
//
// The returned error, if any, is the runtime fault that has just stopped
// the machine. It is also recorded and available through Fault().
func (m *Machine) Step() error {
	if m.status != Ready || m.Prog == nil {
		return nil
	}

	if err := m.CPU.ExecuteInstruction(); err != nil {
		m.status = Faulted
		m.fault = err
		return err
	}

	if m.CPU.Halted {
		m.status = Halted
	}

	return nil
}
