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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package, it takes a formatting pattern and placeholder
// values, and returns an error.
//
// The Is() function checks whether an error was created from a specific
// pattern. The patterns used throughout this project are declared as exported
// string constants in the package that raises them. For example:
//
//	err := machine.Step()
//	if curated.Is(err, cpu.FaultPattern) {
//		// the machine has faulted and will not step again until reset
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain; and the IsAny() function answers whether the error was
// created by curated.Errorf() at all. Put another way, IsAny() returns true
// if the error is 'curated' and false if the error is 'uncurated' - or
// 'expected' and 'unexpected' if you prefer.
//
// The Error() function implementation for curated errors normalises the error
// chain, removing duplicate adjacent message parts.
package curated
