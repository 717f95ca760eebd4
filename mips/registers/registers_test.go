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

package registers_test

import (
	"testing"

	"github.com/pipistrelle/mipsim/mips/registers"
	"github.com/pipistrelle/mipsim/test"
)

func TestReset(t *testing.T) {
	f := registers.NewFile()

	// every register reads zero after reset, except the stack pointer which
	// reads the stack base
	for i := 0; i < registers.NumRegisters; i++ {
		if i == registers.SP {
			test.ExpectEquality(t, f.Load(i), registers.StackBase)
		} else {
			test.ExpectEquality(t, f.Load(i), 0)
		}
	}

	f.Store(registers.SP, 100)
	f.Store(8, -1)
	f.Reset()
	test.ExpectEquality(t, f.Load(registers.SP), registers.StackBase)
	test.ExpectEquality(t, f.Load(8), 0)
}

func TestZeroRegister(t *testing.T) {
	f := registers.NewFile()

	f.Store(registers.Zero, 99)
	test.ExpectEquality(t, f.Load(registers.Zero), 0)

	f.Store(registers.Zero, -1)
	test.ExpectEquality(t, f.Load(registers.Zero), 0)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, registers.Name(0), "$zero")
	test.ExpectEquality(t, registers.Name(registers.SP), "$sp")
	test.ExpectEquality(t, registers.Name(registers.RA), "$ra")

	n, ok := registers.Number("$t0")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 8)

	n, ok = registers.Number("$31")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 31)

	_, ok = registers.Number("$32")
	test.ExpectFailure(t, ok)

	_, ok = registers.Number("t0")
	test.ExpectFailure(t, ok)

	_, ok = registers.Number("$nope")
	test.ExpectFailure(t, ok)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x00400000)
	test.ExpectEquality(t, pc.Address(), 0x00400000)

	pc.Advance()
	test.ExpectEquality(t, pc.Address(), 0x00400004)

	pc.Jump(0x00400020)
	test.ExpectEquality(t, pc.Address(), 0x00400020)

	pc.Reset(0x00400000)
	test.ExpectEquality(t, pc.Address(), 0x00400000)
}
