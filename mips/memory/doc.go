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

// Package memory implements the simulated machine's byte-addressable
// memory. Storage is sparse: only addresses that have been written to are
// recorded and everything else reads as zero. Word access is defined in
// terms of the byte primitives, most significant byte at the lowest
// address, so that the two levels of access can never disagree about byte
// order.
package memory
