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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/pipistrelle/mipsim/modalflag"
	"github.com/pipistrelle/mipsim/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, int(p), int(modalflag.ParseContinue))
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"somefile.asm"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, int(p), int(modalflag.ParseContinue))

	// no sub-mode was given so the default applies and the argument is
	// left alone
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "somefile.asm")
}

func TestSubModeWithFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"debug", "-term", "PLAIN", "somefile.asm"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, int(p), int(modalflag.ParseContinue))
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	// the debug mode defines its own flags
	md.NewMode()
	term := md.AddString("term", "AUTO", "terminal type")

	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, int(p), int(modalflag.ParseContinue))
	test.ExpectEquality(t, *term, "PLAIN")
	test.ExpectEquality(t, md.GetArg(0), "somefile.asm")
	test.ExpectEquality(t, md.Path(), "DEBUG")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, int(p), int(modalflag.ParseError))
}
