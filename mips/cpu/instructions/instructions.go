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

package instructions

// Operation is the decoded form of an instruction mnemonic. Dispatching on
// Operation rather than the mnemonic string means the execution switch can
// be checked for exhaustiveness.
type Operation int

// List of operations understood by the interpreter. Li, La and Move are
// pseudo instructions in the real ISA but are executed directly here.
const (
	Add Operation = iota
	Addu
	Addi
	Addiu
	Sub
	Subu
	Mul
	And
	Or
	Xor
	Sll
	Srl
	Slt
	Slti
	Lui
	Li
	La
	Move
	Lw
	Sw
	Lb
	Sb
	Beq
	Bne
	J
	Jal
	Jr
	Syscall
)

// EffectCategory categorises an operation by the effect it has.
type EffectCategory int

// List of effect categories. Flow operations are the only ones that replace
// the normal program counter advance.
const (
	Arithmetic EffectCategory = iota
	Logical
	Load
	Store
	Flow
	System
)

// Definition defines each operation in the instruction set.
type Definition struct {
	Operation Operation
	Mnemonic  string
	Effect    EffectCategory
}

var definitions = map[string]Definition{
	"add":     {Add, "add", Arithmetic},
	"addu":    {Addu, "addu", Arithmetic},
	"addi":    {Addi, "addi", Arithmetic},
	"addiu":   {Addiu, "addiu", Arithmetic},
	"sub":     {Sub, "sub", Arithmetic},
	"subu":    {Subu, "subu", Arithmetic},
	"mul":     {Mul, "mul", Arithmetic},
	"and":     {And, "and", Logical},
	"or":      {Or, "or", Logical},
	"xor":     {Xor, "xor", Logical},
	"sll":     {Sll, "sll", Logical},
	"srl":     {Srl, "srl", Logical},
	"slt":     {Slt, "slt", Arithmetic},
	"slti":    {Slti, "slti", Arithmetic},
	"lui":     {Lui, "lui", Arithmetic},
	"li":      {Li, "li", Arithmetic},
	"la":      {La, "la", Arithmetic},
	"move":    {Move, "move", Arithmetic},
	"lw":      {Lw, "lw", Load},
	"sw":      {Sw, "sw", Store},
	"lb":      {Lb, "lb", Load},
	"sb":      {Sb, "sb", Store},
	"beq":     {Beq, "beq", Flow},
	"bne":     {Bne, "bne", Flow},
	"j":       {J, "j", Flow},
	"jal":     {Jal, "jal", Flow},
	"jr":      {Jr, "jr", Flow},
	"syscall": {Syscall, "syscall", System},
}

// Lookup the Definition for a mnemonic. The second return value is false for
// unrecognised mnemonics; by policy these execute as no-ops rather than
// faulting.
func Lookup(mnemonic string) (Definition, bool) {
	defn, ok := definitions[mnemonic]
	return defn, ok
}

func (op Operation) String() string {
	for _, defn := range definitions {
		if defn.Operation == op {
			return defn.Mnemonic
		}
	}
	return "unknown"
}
