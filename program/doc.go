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

// Package program defines the Program type, the result of a successful
// assembly: the instruction list, the label table and the initial content
// of the data section. A Program is immutable once assembled. Assembly
// either succeeds completely, replacing any previously loaded Program, or
// fails leaving the previous Program untouched - there is never a partial
// Program.
package program
