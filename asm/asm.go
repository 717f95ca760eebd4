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

package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/mips/memory"
	"github.com/pipistrelle/mipsim/program"
)

// Error patterns raised during assembly. They appear wrapped inside the
// Error type, which adds the source line number.
const (
	MalformedString = "malformed string literal"
	MalformedWord   = "malformed .word value (%s)"
	MissingArgument = "missing argument to %s"
)

// Error is the error type returned by Assemble(). It carries the 1-based
// source line number of the offending line.
type Error struct {
	Line int
	Err  error
}

func (e Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}

const (
	sectionText = iota
	sectionData
)

// Assemble source text into a Program. A single linear scan over the lines:
// comments stripped, section directives tracked, labels bound to the
// current section pointer, data directives written to the initial data
// image and text lines recorded as instructions.
//
// No operand validation happens here. Unknown mnemonics and malformed
// operands are accepted and only judged at execution time. Labels are not
// dereferenced either, so forward references need no second pass.
//
// On error the returned Program is nil: assembly is atomic and a caller's
// previously assembled Program remains usable.
func Assemble(source string) (*program.Program, error) {
	prog := program.NewProgram()

	// the data image is built through a scratch Memory so that .word
	// decomposition uses the same byte primitives the machine reads back
	// through
	data := memory.NewMemory()

	textPtr := program.TextBase
	dataPtr := program.DataBase
	section := sectionText

	for num, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		// bind any labels to the current section's pointer and continue
		// processing the remainder of the line
		for {
			idx := labelIndex(line)
			if idx == -1 {
				break
			}
			label := strings.TrimSpace(line[:idx])
			if section == sectionData {
				prog.Labels[label] = dataPtr
			} else {
				prog.Labels[label] = textPtr
			}
			line = strings.TrimSpace(line[idx+1:])
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)

		switch fields[0] {
		case ".data":
			section = sectionData
			continue
		case ".text":
			section = sectionText
			continue
		}

		if section == sectionData {
			n, err := directive(data, dataPtr, line, fields)
			if err != nil {
				return nil, Error{Line: num + 1, Err: err}
			}
			dataPtr += n
			continue
		}

		// a text line is a mnemonic and operand tokens, commas treated as
		// whitespace
		toks := strings.Fields(strings.ReplaceAll(line, ",", " "))
		prog.Instructions = append(prog.Instructions, program.Instruction{
			Address:  textPtr,
			Mnemonic: toks[0],
			Operands: toks[1:],
			Line:     num + 1,
		})
		textPtr += 4
	}

	data.Walk(func(addr uint32, v uint8) {
		prog.Data[addr] = v
	})
	prog.Finalise()

	return prog, nil
}

// directive processes a data section directive, writing to the data image
// at the current pointer. Returns the number of bytes written. Directives
// other than .asciiz, .ascii and .word are ignored.
func directive(data *memory.Memory, ptr uint32, line string, fields []string) (uint32, error) {
	switch fields[0] {
	case ".asciiz", ".ascii":
		s, err := quotedString(line)
		if err != nil {
			return 0, err
		}

		var n uint32
		for _, r := range s {
			data.WriteByte(ptr+n, uint8(r))
			n++
		}
		if fields[0] == ".asciiz" {
			// the terminating zero byte
			data.WriteByte(ptr+n, 0)
			n++
		}
		return n, nil

	case ".word":
		if len(fields) < 2 {
			return 0, curated.Errorf(MissingArgument, fields[0])
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0, curated.Errorf(MalformedWord, fields[1])
		}
		data.WriteWord(ptr, uint32(v))
		return 4, nil
	}

	return 0, nil
}

// stripComment removes everything from the first unescaped comment rune to
// the end of the line. A # inside a string literal does not begin a
// comment.
func stripComment(line string) string {
	inQuote := false
	escaped := false
	for i, r := range line {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return line[:i]
			}
		}
	}
	return line
}

// labelIndex returns the index of the label terminator, or -1. A : inside
// a string literal is not a label terminator.
func labelIndex(line string) int {
	inQuote := false
	escaped := false
	for i, r := range line {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			inQuote = !inQuote
		case ':':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}

// quotedString consumes the double-quoted string in the line, interpreting
// the \n and \t escapes. Any other escaped rune is copied through as
// itself.
func quotedString(line string) (string, error) {
	start := strings.IndexRune(line, '"')
	if start == -1 {
		return "", curated.Errorf(MalformedString)
	}

	s := strings.Builder{}
	escaped := false
	for _, r := range line[start+1:] {
		if escaped {
			switch r {
			case 'n':
				s.WriteRune('\n')
			case 't':
				s.WriteRune('\t')
			default:
				s.WriteRune(r)
			}
			escaped = false
			continue
		}

		switch r {
		case '\\':
			escaped = true
		case '"':
			return s.String(), nil
		default:
			s.WriteRune(r)
		}
	}

	return "", curated.Errorf(MalformedString)
}
