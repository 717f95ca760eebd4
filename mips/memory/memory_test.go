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

package memory_test

import (
	"testing"

	"github.com/pipistrelle/mipsim/mips/memory"
	"github.com/pipistrelle/mipsim/test"
)

func TestDefaultZero(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectEquality(t, mem.ReadByte(0x00000000), 0)
	test.ExpectEquality(t, mem.ReadByte(0x10010000), 0)
	test.ExpectEquality(t, mem.ReadByte(0xffffffff), 0)
	test.ExpectEquality(t, mem.ReadWord(0x10010000), 0)
}

func TestWordRoundTrip(t *testing.T) {
	mem := memory.NewMemory()

	for _, v := range []uint32{0x00000000, 0x00000001, 0x12345678, 0x80000000, 0xffffffff} {
		mem.WriteWord(0x10010000, v)
		test.ExpectEquality(t, mem.ReadWord(0x10010000), v)
	}
}

func TestBigEndianDecomposition(t *testing.T) {
	mem := memory.NewMemory()

	mem.WriteWord(0x10010000, 0x12345678)
	test.ExpectEquality(t, mem.ReadByte(0x10010000), 0x12)
	test.ExpectEquality(t, mem.ReadByte(0x10010001), 0x34)
	test.ExpectEquality(t, mem.ReadByte(0x10010002), 0x56)
	test.ExpectEquality(t, mem.ReadByte(0x10010003), 0x78)

	// composition works through the same byte primitives
	mem.Reset()
	mem.WriteByte(0x10010000, 0xde)
	mem.WriteByte(0x10010001, 0xad)
	mem.WriteByte(0x10010002, 0xbe)
	mem.WriteByte(0x10010003, 0xef)
	test.ExpectEquality(t, mem.ReadWord(0x10010000), uint32(0xdeadbeef))
}

func TestByteMasking(t *testing.T) {
	mem := memory.NewMemory()
	mem.WriteByte(0x00000100, 0xff)
	test.ExpectEquality(t, mem.ReadByte(0x00000100), 0xff)
	mem.WriteByte(0x00000100, 0x00)
	test.ExpectEquality(t, mem.ReadByte(0x00000100), 0)
}

func TestAddressWrap(t *testing.T) {
	mem := memory.NewMemory()

	// a word written at the very top of the address space wraps around to
	// address zero
	mem.WriteWord(0xfffffffe, 0x0a0b0c0d)
	test.ExpectEquality(t, mem.ReadByte(0xfffffffe), 0x0a)
	test.ExpectEquality(t, mem.ReadByte(0xffffffff), 0x0b)
	test.ExpectEquality(t, mem.ReadByte(0x00000000), 0x0c)
	test.ExpectEquality(t, mem.ReadByte(0x00000001), 0x0d)
	test.ExpectEquality(t, mem.ReadWord(0xfffffffe), uint32(0x0a0b0c0d))
}

func TestWalkOrder(t *testing.T) {
	mem := memory.NewMemory()
	mem.WriteByte(0x30, 3)
	mem.WriteByte(0x10, 1)
	mem.WriteByte(0x20, 2)

	var order []uint32
	mem.Walk(func(address uint32, value uint8) {
		order = append(order, address)
	})

	test.ExpectEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], 0x10)
	test.ExpectEquality(t, order[1], 0x20)
	test.ExpectEquality(t, order[2], 0x30)
}
