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

package memory

import (
	"sort"
)

// Memory is a sparse representation of the flat 2^32 byte address space.
// Addresses with no recorded value read as zero. There is no bounds checking
// beyond the natural wrapping of the 32-bit address; access outside of any
// declared segment is legal and simply reads or writes sparse storage.
type Memory struct {
	bytes map[uint32]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset discards all recorded bytes, returning every address to zero.
func (mem *Memory) Reset() {
	mem.bytes = make(map[uint32]uint8)
}

// ReadByte returns the byte at the specified address. Unset addresses read
// as zero.
func (mem *Memory) ReadByte(address uint32) uint8 {
	return mem.bytes[address]
}

// WriteByte stores the low eight bits of the value at the specified address.
// Writing zero removes the entry, keeping the storage sparse. This is not
// observable through ReadByte().
func (mem *Memory) WriteByte(address uint32, value uint8) {
	if value == 0 {
		delete(mem.bytes, address)
		return
	}
	mem.bytes[address] = value
}

// ReadWord composes the word from the four bytes starting at the specified
// address, most significant byte at the lowest address. Address arithmetic
// wraps at the end of the address space.
func (mem *Memory) ReadWord(address uint32) uint32 {
	var v uint32
	v = uint32(mem.ReadByte(address)) << 24
	v |= uint32(mem.ReadByte(address+1)) << 16
	v |= uint32(mem.ReadByte(address+2)) << 8
	v |= uint32(mem.ReadByte(address + 3))
	return v
}

// WriteWord decomposes the word into four byte writes starting at the
// specified address, most significant byte at the lowest address.
func (mem *Memory) WriteWord(address uint32, value uint32) {
	mem.WriteByte(address, uint8(value>>24))
	mem.WriteByte(address+1, uint8(value>>16))
	mem.WriteByte(address+2, uint8(value>>8))
	mem.WriteByte(address+3, uint8(value))
}

// Walk calls the supplied function for every recorded byte, in address
// order. Used by front-ends that want to display memory contents.
func (mem *Memory) Walk(f func(address uint32, value uint8)) {
	addresses := make([]uint32, 0, len(mem.bytes))
	for a := range mem.bytes {
		addresses = append(addresses, a)
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i] < addresses[j] })
	for _, a := range addresses {
		f(a, mem.bytes[a])
	}
}
