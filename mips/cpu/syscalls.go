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

package cpu

import (
	"fmt"
	"strings"

	"github.com/pipistrelle/mipsim/mips/registers"
)

// Emulated syscall service codes. The service is selected by the value in
// the $v0 register; $a0 supplies the argument.
const (
	SysPrintInt    = 1
	SysPrintString = 4
	SysExit        = 10
	SysPrintChar   = 11
)

// printStringLimit bounds the memory scan performed by the print_string
// service. A string lacking a terminating zero within the limit is printed
// truncated. Silently: truncation is not an error.
const printStringLimit = 1000

// syscall dispatches on the service code in $v0. Unrecognised service codes
// are no-ops.
func (mc *CPU) syscall() {
	arg := mc.Regs.Load(registers.A0)

	switch mc.Regs.Load(registers.V0) {
	case SysPrintInt:
		fmt.Fprintf(mc.out, "%d", arg)

	case SysPrintString:
		s := strings.Builder{}
		addr := uint32(arg)
		for i := 0; i < printStringLimit; i++ {
			b := mc.mem.ReadByte(addr)
			if b == 0 {
				break
			}
			s.WriteByte(b)
			addr++
		}
		fmt.Fprint(mc.out, s.String())

	case SysExit:
		mc.Halted = true

	case SysPrintChar:
		fmt.Fprintf(mc.out, "%c", rune(uint8(arg)))
	}
}
