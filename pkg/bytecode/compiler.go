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
package bytecode

import (
	"fmt"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/env"
	"github.com/clockguard/tcc/pkg/typed"
)

// CompileExpr lowers a well-typed expression (an invariant or a guard) to a
// flat instruction stream terminated by exactly one RET. The caller must not
// pass a typed.Bad subtree; model construction checks for that before ever
// calling the compiler.
func CompileExpr(e typed.Expr) (instrs []Instr, err error) {
	defer func() {
		if r := recover(); r != nil {
			instrs = nil
			err = fmt.Errorf("bytecode: internal compiler error: %v", r)
		}
	}()

	var buf []Instr

	compileExpr(&buf, e)
	buf = append(buf, Instr{Op: RET})

	return buf, nil
}

// CompileStmt lowers a well-typed statement (a "do" action) to a flat
// instruction stream terminated by exactly one RET. The caller must not pass
// a typed.BadStmt subtree.
func CompileStmt(s typed.Stmt) (instrs []Instr, err error) {
	defer func() {
		if r := recover(); r != nil {
			instrs = nil
			err = fmt.Errorf("bytecode: internal compiler error: %v", r)
		}
	}()

	var buf []Instr

	compileStmt(&buf, s)
	buf = append(buf, Instr{Op: RET})

	return buf, nil
}

func emit(buf *[]Instr, in Instr) { *buf = append(*buf, in) }

// compileExpr recursively lowers e into buf, leaving exactly one value on
// the stack and never emitting RET; RET is the sole responsibility of the
// top-level Compile* entry points.
func compileExpr(buf *[]Instr, e typed.Expr) {
	switch n := e.(type) {
	case *typed.Const:
		emit(buf, Instr{Op: PUSH, K: n.Value})

	case *typed.IntVar:
		emit(buf, Instr{Op: VLOAD, I: n.Index})

	case *typed.ClockVar:
		emit(buf, Instr{Op: CLKLOAD, I: n.Index})

	case *typed.IntArrayAccess:
		compileExpr(buf, n.Index)
		emit(buf, Instr{Op: INDEX, I: 0, J: n.Dim - 1})
		emit(buf, Instr{Op: VLOADX, I: n.BaseIndex})

	case *typed.ClockArrayAccess:
		idx, ok := evalConstIndex(n.Index)
		if !ok {
			panic("bytecode: dynamically-indexed clock array in this position is not supported")
		}

		checkConstIndex(idx, n.Dim)
		emit(buf, Instr{Op: CLKLOAD, I: n.BaseIndex + idx})

	case *typed.Neg:
		compileExpr(buf, n.X)
		emit(buf, Instr{Op: NEG})

	case *typed.Not:
		compileExpr(buf, n.X)
		emit(buf, Instr{Op: NOT})

	case *typed.Arith:
		compileExpr(buf, n.L)
		compileExpr(buf, n.R)
		emit(buf, Instr{Op: arithOp(n.Op)})

	case *typed.IntCmp:
		compileExpr(buf, n.L)
		compileExpr(buf, n.R)
		emit(buf, Instr{Op: cmpOp(n.Op)})

	case *typed.ClockCmp:
		compileClockCmp(buf, n)

	case *typed.And:
		compileAnd(buf, n)

	case *typed.Bad:
		panic("bytecode: cannot compile a bad expression")

	default:
		panic("bytecode: unhandled typed expression case")
	}
}

// compileAnd lowers "l and r" using a JZ short-circuit: if l is false the
// whole expression is false without evaluating r.
//
//	<l>
//	JZ false
//	<r>
//	JZ false
//	PUSH 1
//	JMP end
//	false: PUSH 0
//	end:
func compileAnd(buf *[]Instr, n *typed.And) {
	compileExpr(buf, n.L)

	jz1 := len(*buf)
	emit(buf, Instr{Op: JZ}) // patched below

	compileExpr(buf, n.R)

	jz2 := len(*buf)
	emit(buf, Instr{Op: JZ}) // patched below

	emit(buf, Instr{Op: PUSH, K: 1})

	jmpEnd := len(*buf)
	emit(buf, Instr{Op: JMP}) // patched below

	falseAt := len(*buf)
	emit(buf, Instr{Op: PUSH, K: 0})

	end := len(*buf)

	(*buf)[jz1].I = falseAt - jz1 - 1
	(*buf)[jz2].I = falseAt - jz2 - 1
	(*buf)[jmpEnd].I = end - jmpEnd - 1
}

func compileClockCmp(buf *[]Instr, n *typed.ClockCmp) {
	rel := n.Op

	bound, ok := evalConstInt(n.Right)
	if !ok {
		panic("bytecode: clock constraint bound must be a compile-time constant")
	}

	switch left := n.Left.(type) {
	case *typed.ClockDiff:
		i, ok := clockIndexOf(left.Minuend)
		if !ok {
			panic("bytecode: clock-difference left operand is not a resolvable clock")
		}

		j, ok := clockIndexOf(left.Subtrahend)
		if !ok {
			panic("bytecode: clock-difference right operand is not a resolvable clock")
		}

		emit(buf, Instr{Op: CLKCONSTR, I: i, J: j, Rel: rel, K: bound})

	default:
		i, ok := clockIndexOf(n.Left)
		if !ok {
			panic("bytecode: clock-constraint left operand is not a resolvable clock")
		}

		emit(buf, Instr{Op: CLKCONSTR, I: i, J: env.ZeroClockIndex, Rel: rel, K: bound})
	}
}

// clockIndexOf resolves a clock-typed expression to a flat clock index,
// folding constant array indices statically; dynamic clock addressing inside
// a constraint is not supported (see DESIGN.md).
func clockIndexOf(e typed.Expr) (int, bool) {
	switch n := e.(type) {
	case *typed.ClockVar:
		return n.Index, true
	case *typed.ClockArrayAccess:
		idx, ok := evalConstIndex(n.Index)
		if !ok {
			return 0, false
		}

		checkConstIndex(idx, n.Dim)

		return n.BaseIndex + idx, true
	default:
		return 0, false
	}
}

// evalConstInt folds a typed integer expression to a constant if possible.
// Only the shapes the compiler itself ever needs to fold (literals, and
// negation/arithmetic over literals) are handled.
func evalConstInt(e typed.Expr) (int64, bool) {
	switch n := e.(type) {
	case *typed.Const:
		return n.Value, true
	case *typed.Neg:
		v, ok := evalConstInt(n.X)
		return -v, ok
	case *typed.Arith:
		l, lok := evalConstInt(n.L)
		r, rok := evalConstInt(n.R)

		if !lok || !rok {
			return 0, false
		}

		switch n.Op {
		case ast.Add:
			return l + r, true
		case ast.Sub:
			return l - r, true
		case ast.Mul:
			return l * r, true
		case ast.Div:
			if r == 0 {
				return 0, false
			}

			return l / r, true
		case ast.Mod:
			if r == 0 {
				return 0, false
			}

			return l % r, true
		}
	}

	return 0, false
}

func evalConstIndex(e typed.Expr) (int, bool) {
	v, ok := evalConstInt(e)
	return int(v), ok
}

func checkConstIndex(idx, dim int) {
	if idx < 0 || idx >= dim {
		panic(fmt.Sprintf("bytecode: constant array index %d out of range [0,%d)", idx, dim))
	}
}

func arithOp(op ast.BinaryOp) Op {
	switch op {
	case ast.Add:
		return ADD
	case ast.Sub:
		return SUB
	case ast.Mul:
		return MUL
	case ast.Div:
		return DIV
	case ast.Mod:
		return MOD
	default:
		panic("bytecode: not an arithmetic operator")
	}
}

func cmpOp(op ast.BinaryOp) Op {
	switch op {
	case ast.Lt:
		return LT
	case ast.Le:
		return LE
	case ast.Eq:
		return EQ
	case ast.Ne:
		return NE
	case ast.Ge:
		return GE
	case ast.Gt:
		return GT
	default:
		panic("bytecode: not a comparison operator")
	}
}

// compileStmt recursively lowers s into buf without emitting RET.
func compileStmt(buf *[]Instr, s typed.Stmt) {
	switch n := s.(type) {
	case *typed.Nop:
		// No instructions; the caller's trailing RET alone is the body.

	case *typed.Assign:
		compileAssign(buf, n)

	case *typed.Sequence:
		compileStmt(buf, n.First)
		compileStmt(buf, n.Second)

	case *typed.BadStmt:
		panic("bytecode: cannot compile a bad statement")

	default:
		panic("bytecode: unhandled typed statement case")
	}
}

// compileAssign computes the value, then the target address, then stores.
func compileAssign(buf *[]Instr, n *typed.Assign) {
	switch target := n.Target.(type) {
	case *typed.IntVar:
		compileExpr(buf, n.Value)
		emit(buf, Instr{Op: VSTORE, I: target.Index})

	case *typed.IntArrayAccess:
		compileExpr(buf, n.Value)
		compileExpr(buf, target.Index)
		emit(buf, Instr{Op: INDEX, I: 0, J: target.Dim - 1})
		emit(buf, Instr{Op: VSTOREX, I: target.BaseIndex})

	case *typed.ClockVar:
		compileExpr(buf, n.Value)
		emit(buf, Instr{Op: CLKRESET, I: target.Index})

	case *typed.ClockArrayAccess:
		idx, ok := evalConstIndex(target.Index)
		if ok {
			checkConstIndex(idx, target.Dim)
			compileExpr(buf, n.Value)
			emit(buf, Instr{Op: CLKRESET, I: target.BaseIndex + idx})

			return
		}

		compileExpr(buf, n.Value)
		compileExpr(buf, target.Index)
		emit(buf, Instr{Op: INDEX, I: 0, J: target.Dim - 1})
		emit(buf, Instr{Op: CLKRESETX, I: target.BaseIndex})

	default:
		panic("bytecode: unhandled assignment target case")
	}
}
