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

package asm_test

import (
	"errors"
	"testing"

	"github.com/pipistrelle/mipsim/asm"
	"github.com/pipistrelle/mipsim/curated"
	"github.com/pipistrelle/mipsim/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsAndLabels(t *testing.T) {
	prog, err := asm.Assemble(`
	.data
greeting:	.asciiz "hi"
count:	.word 12
	.text
main:	li $t0, 1
loop:	addi $t0, $t0, 1
`)
	require.NoError(t, err)

	assert.Equal(t, uint32(program.DataBase), prog.Labels["greeting"])
	assert.Equal(t, uint32(program.DataBase+3), prog.Labels["count"])
	assert.Equal(t, uint32(program.TextBase), prog.Labels["main"])
	assert.Equal(t, uint32(program.TextBase+4), prog.Labels["loop"])

	require.Len(t, prog.Instructions, 2)
	assert.Equal(t, "li", prog.Instructions[0].Mnemonic)
	assert.Equal(t, []string{"$t0", "1"}, prog.Instructions[0].Operands)
	assert.Equal(t, uint32(program.TextBase+4), prog.Instructions[1].Address)
}

func TestLabelOnOwnLine(t *testing.T) {
	prog, err := asm.Assemble("start:\n\tadd $t0, $t1, $t2\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(program.TextBase), prog.Labels["start"])
	require.Len(t, prog.Instructions, 1)
}

func TestComments(t *testing.T) {
	prog, err := asm.Assemble(`
	# full line comment
	li $t0, 5   # trailing comment
	.data
s:	.asciiz "not # a comment"  # but this is
`)
	require.NoError(t, err)

	require.Len(t, prog.Instructions, 1)
	assert.Equal(t, []string{"$t0", "5"}, prog.Instructions[0].Operands)

	// the string literal runs to its closing quote, hash included
	assert.Equal(t, uint8('#'), prog.Data[program.DataBase+4])
}

func TestStringDirectives(t *testing.T) {
	prog, err := asm.Assemble(`
	.data
a:	.asciiz "ab\n"
b:	.ascii "cd"
c:	.word 1
`)
	require.NoError(t, err)

	// .asciiz appends a terminator, .ascii does not
	assert.Equal(t, uint8('a'), prog.Data[program.DataBase])
	assert.Equal(t, uint8('b'), prog.Data[program.DataBase+1])
	assert.Equal(t, uint8('\n'), prog.Data[program.DataBase+2])
	assert.Equal(t, uint8(0), prog.Data[program.DataBase+3])
	assert.Equal(t, uint32(program.DataBase+4), prog.Labels["b"])
	assert.Equal(t, uint32(program.DataBase+6), prog.Labels["c"])
}

func TestWordDirective(t *testing.T) {
	prog, err := asm.Assemble(`
	.data
n:	.word -2
`)
	require.NoError(t, err)

	// big-endian image of 0xfffffffe
	assert.Equal(t, uint8(0xff), prog.Data[program.DataBase])
	assert.Equal(t, uint8(0xff), prog.Data[program.DataBase+1])
	assert.Equal(t, uint8(0xff), prog.Data[program.DataBase+2])
	assert.Equal(t, uint8(0xfe), prog.Data[program.DataBase+3])
}

func TestUnknownDirectiveIgnored(t *testing.T) {
	prog, err := asm.Assemble("\t.data\n\t.align 2\nx:\t.word 7\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(program.DataBase), prog.Labels["x"])
}

func TestNoTextValidation(t *testing.T) {
	// nonsense mnemonics and operands assemble without complaint
	prog, err := asm.Assemble("\tfrobnicate $t9, $t9, bananas\n")
	require.NoError(t, err)
	require.Len(t, prog.Instructions, 1)
	assert.Equal(t, "frobnicate", prog.Instructions[0].Mnemonic)
}

func TestAssemblyErrors(t *testing.T) {
	prog, err := asm.Assemble("\t.data\nx:\t.word banana\n")
	require.Error(t, err)
	assert.Nil(t, prog)

	var asmErr asm.Error
	require.True(t, errors.As(err, &asmErr))
	assert.Equal(t, 2, asmErr.Line)
	assert.True(t, curated.Is(asmErr.Err, asm.MalformedWord))

	_, err = asm.Assemble("\t.data\ns:\t.asciiz \"unterminated\n")
	require.True(t, errors.As(err, &asmErr))
	assert.True(t, curated.Is(asmErr.Err, asm.MalformedString))

	_, err = asm.Assemble("\t.data\nw:\t.word\n")
	require.True(t, errors.As(err, &asmErr))
	assert.True(t, curated.Is(asmErr.Err, asm.MissingArgument))
}

func TestSourceLines(t *testing.T) {
	prog, err := asm.Assemble("li $t0, 1\n\nli $t1, 2\n")
	require.NoError(t, err)

	line, ok := prog.SourceLine(program.TextBase)
	require.True(t, ok)
	assert.Equal(t, 1, line)

	line, ok = prog.SourceLine(program.TextBase + 4)
	require.True(t, ok)
	assert.Equal(t, 3, line)

	_, ok = prog.SourceLine(program.TextBase + 8)
	assert.False(t, ok)
}
