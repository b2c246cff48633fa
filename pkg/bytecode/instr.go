// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
// Package bytecode implements a flat stack-machine instruction set and the
// deterministic compiler lowering a typed AST to it.
package bytecode

import (
	"fmt"

	"github.com/clockguard/tcc/pkg/ast"
)

// Op identifies one bytecode instruction.
type Op uint8

const (
	// PUSH pushes the literal in K.
	PUSH Op = iota
	// VLOAD loads integer variable I.
	VLOAD
	// VSTORE pops the top of stack into integer variable I; traps if out of
	// the variable's declared bounds.
	VSTORE
	// VLOADX loads integer-array element (base I, runtime offset popped from
	// the stack); an extension beyond the static-operand-only VLOAD, needed
	// for dynamic array addressing (see DESIGN.md).
	VLOADX
	// VSTOREX pops a runtime offset then a value and stores into integer
	// array element (base I, offset); the store counterpart of VLOADX.
	VSTOREX
	// CLKLOAD identifies clock I for a following CLKDIFF/CLKCONSTR. The
	// compiler emits it only for a bare clock operand, which type-checked
	// input never contains: clock comparisons fold directly to a single
	// CLKCONSTR.
	CLKLOAD
	// CLKDIFF marks a difference operand between clocks I and J. Never
	// emitted by this compiler, for the same reason as CLKLOAD.
	CLKDIFF
	// CLKRESET resets clock I to the integer popped from the stack.
	CLKRESET
	// CLKRESETX resets clock-array element (base I, runtime offset popped
	// from the stack) to the integer popped next; the VSTOREX counterpart
	// for clock arrays.
	CLKRESETX
	// CLKCONSTR emits the constraint "clock I - clock J Rel K". J is
	// env.ZeroClockIndex for a unary constraint "clock I Rel K".
	CLKCONSTR
	// ADD pops two ints, pushes their sum.
	ADD
	// SUB pops two ints, pushes their difference.
	SUB
	// MUL pops two ints, pushes their product.
	MUL
	// DIV pops two ints, pushes their quotient.
	DIV
	// MOD pops two ints, pushes their remainder.
	MOD
	// NEG pops one int, pushes its negation.
	NEG
	// NOT pops one bool, pushes its negation.
	NOT
	// LT pops two ints, pushes a<b.
	LT
	// LE pops two ints, pushes a<=b.
	LE
	// EQ pops two ints, pushes a==b.
	EQ
	// NE pops two ints, pushes a!=b.
	NE
	// GE pops two ints, pushes a>=b.
	GE
	// GT pops two ints, pushes a>b.
	GT
	// AND pops two bools, pushes their conjunction.
	AND
	// JZ pops a bool; if false, advances the program counter by I
	// instructions. Used to short-circuit "and".
	JZ
	// JMP unconditionally advances the program counter by I instructions;
	// an extension needed to join the two short-circuit branches of "and"
	// back together (see DESIGN.md).
	JMP
	// INDEX bounds-checks the int on top of stack against [I,J]; traps if
	// out of range, otherwise leaves it unchanged.
	INDEX
	// RET terminates every compiled fragment exactly once.
	RET
)

func (op Op) String() string {
	names := [...]string{
		"PUSH", "VLOAD", "VSTORE", "VLOADX", "VSTOREX", "CLKLOAD", "CLKDIFF",
		"CLKRESET", "CLKRESETX", "CLKCONSTR", "ADD", "SUB", "MUL", "DIV", "MOD",
		"NEG", "NOT", "LT", "LE", "EQ", "NE", "GE", "GT", "AND", "JZ", "JMP", "INDEX", "RET",
	}

	if int(op) < len(names) {
		return names[op]
	}

	return fmt.Sprintf("OP(%d)", op)
}

// Instr is one bytecode word: an opcode plus whichever inline operands that
// opcode uses. Unused fields are zero and ignored.
type Instr struct {
	Op  Op
	I   int
	J   int
	Rel ast.BinaryOp
	K   int64
}

// IsTerminal reports whether this instruction is the RET marker consumed by
// a VM to know where a compiled fragment ends.
func (in Instr) IsTerminal() bool { return in.Op == RET }
