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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Basic usage looks like the following. Note that the error handling of the
// Parse() function is not shown:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "ASM")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	}
//
// Inside each mode handler, NewMode() begins a fresh flag set for that mode.
// Flags are added with the AddString(), AddBool() and AddInt() functions and
// take effect after another call to Parse(). Any arguments left over are
// available through RemainingArgs() and GetArg().
package modalflag
