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

package program_test

import (
	"strings"
	"testing"

	"github.com/pipistrelle/mipsim/program"
	"github.com/pipistrelle/mipsim/test"
)

func testProgram() *program.Program {
	p := program.NewProgram()
	p.Instructions = append(p.Instructions,
		program.Instruction{Address: program.TextBase, Mnemonic: "li", Operands: []string{"$t0", "1"}, Line: 1},
		program.Instruction{Address: program.TextBase + 4, Mnemonic: "syscall", Line: 2},
	)
	p.Labels["main"] = program.TextBase
	p.Labels["msg"] = program.DataBase
	p.Finalise()
	return p
}

func TestLookup(t *testing.T) {
	p := testProgram()

	ins, ok := p.Lookup(program.TextBase + 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ins.Mnemonic, "syscall")

	_, ok = p.Lookup(program.TextBase + 8)
	test.ExpectFailure(t, ok)

	line, ok := p.SourceLine(program.TextBase)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, line, 1)
}

func TestListing(t *testing.T) {
	p := testProgram()

	s := &strings.Builder{}
	p.Write(s)
	test.ExpectEquality(t, s.String(), "00400000  li $t0, 1\n00400004  syscall\n")

	s.Reset()
	p.WriteSymbols(s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "main"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "10010000"))
}
