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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pipistrelle/mipsim/debugger/govern"
	"github.com/pipistrelle/mipsim/debugger/terminal"
	"github.com/pipistrelle/mipsim/test"
)

// mockTerm is a scripted terminal. TermRead() returns the script lines one
// by one and io.EOF when the script is exhausted.
type mockTerm struct {
	script []string
	output []string

	// called, if not nil, as each line of the script is consumed
	onRead func(line string)
}

func (mt *mockTerm) Initialise() error                           { return nil }
func (mt *mockTerm) CleanUp()                                    {}
func (mt *mockTerm) RegisterTabCompletion(terminal.TabCompletion) {}
func (mt *mockTerm) Silence(bool)                                {}
func (mt *mockTerm) TermReadCheck() bool                         { return false }
func (mt *mockTerm) IsInteractive() bool                         { return false }

func (mt *mockTerm) TermPrintLine(_ terminal.Style, s string) {
	mt.output = append(mt.output, s)
}

func (mt *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if len(mt.script) == 0 {
		return "", io.EOF
	}
	s := mt.script[0]
	mt.script = mt.script[1:]
	if mt.onRead != nil {
		mt.onRead(s)
	}
	return s, nil
}

func (mt *mockTerm) contains(sub string) bool {
	for _, s := range mt.output {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func writeSource(t *testing.T, name string, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.ExpectSuccess(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestRunToCompletion(t *testing.T) {
	path := writeSource(t, "count.s", `
	li $t0, 3
loop:	move $a0, $t0
	li $v0, 1
	syscall
	addi $t0, $t0, -1
	bne $t0, $zero, loop
	li $v0, 10
	syscall
`)

	mt := &mockTerm{script: []string{"RUN"}}
	dbg, err := New(mt)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(path))

	test.ExpectSuccess(t, mt.contains("321"))
	test.ExpectSuccess(t, mt.contains("program halted"))
}

func TestStepAndInspect(t *testing.T) {
	path := writeSource(t, "step.s", "\tli $t0, 5\n\tli $v0, 10\n\tsyscall\n")

	mt := &mockTerm{script: []string{"STEP", "REGISTERS", "LIST"}}
	dbg, err := New(mt)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(path))

	test.ExpectSuccess(t, mt.contains("li $t0, 5"))
	test.ExpectSuccess(t, mt.contains("pc: 00400004"))
}

func TestFaultReporting(t *testing.T) {
	path := writeSource(t, "fault.s", "\tadd $t0, $t1\n")

	mt := &mockTerm{script: []string{"RUN"}}
	dbg, err := New(mt)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(path))

	test.ExpectSuccess(t, mt.contains("runtime fault"))
	test.ExpectSuccess(t, mt.contains("line 1"))
}

func TestUnknownCommand(t *testing.T) {
	mt := &mockTerm{script: []string{"WOBBLE"}}
	dbg, err := New(mt)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(""))

	test.ExpectSuccess(t, mt.contains("unrecognised command (WOBBLE)"))
}

func TestLoadWhileRunning(t *testing.T) {
	loop := writeSource(t, "loop.s", "loop:\tj loop\n")
	count := writeSource(t, "count.s", "\tli $a0, 9\n\tli $v0, 1\n\tsyscall\n\tli $v0, 10\n\tsyscall\n")

	mt := &mockTerm{script: []string{"RUN", "RUN"}}
	dbg, err := New(mt)
	test.ExpectSuccess(t, err)

	// while the first program is spinning, replace it. the swap happens at
	// an instruction boundary and pauses the machine, returning the
	// debugger to the command prompt where the second RUN is read
	mt.onRead = func(line string) {
		if len(mt.script) == 1 {
			time.AfterFunc(10*time.Millisecond, func() {
				dbg.PushRawEvent(func() {
					test.ExpectSuccess(t, dbg.loadSource(count))
				})
			})
		}
	}

	test.ExpectSuccess(t, dbg.Start(loop))

	test.ExpectEquality(t, dbg.state, govern.Paused)
	test.ExpectSuccess(t, mt.contains("9"))
	test.ExpectSuccess(t, mt.contains("program halted"))
}

func TestTabCompletion(t *testing.T) {
	tc := &tabCompletion{}
	test.ExpectEquality(t, tc.Complete("RE"), "REGISTERS ")
	test.ExpectEquality(t, tc.Complete("RE"), "RESET ")
	test.ExpectEquality(t, tc.Complete("RE"), "REGISTERS ")
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("q"), "QUIT ")
}
