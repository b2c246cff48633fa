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
// Package typecheck implements the syntax-directed type-checking pass:
// untyped AST + variable environment -> typed AST, emitting diagnostics for
// ill-typed or undeclared usages.
package typecheck

import (
	"fmt"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/diag"
	"github.com/clockguard/tcc/pkg/env"
	"github.com/clockguard/tcc/pkg/interval"
	"github.com/clockguard/tcc/pkg/typed"
	"github.com/clockguard/tcc/pkg/types"
)

// CheckGuard type-checks e as a guard or invariant attribute: the result
// must have type Bool, the only type admissible as a guard or invariant.
// context is one of diag.CtxGuard or diag.CtxInvariant, pre-joined with the
// pretty-printed expression.
func CheckGuard(e ast.Expr, environment *env.Environment, logger diag.Logger, context string) typed.Expr {
	t := checkExpr(e, environment, logger, context)

	if t.Type().IsBad() {
		return t
	}

	if !t.Type().IsBool() {
		logger.Error(context, fmt.Sprintf("expected boolean expression (found %s)", t.Type()))
		return &typed.Bad{}
	}

	return t
}

// CheckStmt type-checks s, the statement executed atomically when an edge
// is taken.
func CheckStmt(s ast.Stmt, environment *env.Environment, logger diag.Logger, context string) typed.Stmt {
	switch n := s.(type) {
	case *ast.Nop:
		return &typed.Nop{}
	case *ast.Assign:
		return checkAssign(n, environment, logger, context)
	case *ast.Sequence:
		first := CheckStmt(n.First, environment, logger, context)
		second := CheckStmt(n.Second, environment, logger, context)

		if typed.IsBad(first) || typed.IsBad(second) {
			return &typed.BadStmt{}
		}

		return &typed.Sequence{First: first, Second: second}
	default:
		panic("typecheck: unhandled statement case")
	}
}

// checkExpr is the syntax-directed core of the type checker. It always
// returns a non-nil typed.Expr; ill-typed subtrees become *typed.Bad, which
// propagates upward without aborting the pass, so every independent error
// in a subtree is reported.
func checkExpr(e ast.Expr, environment *env.Environment, logger diag.Logger, context string) typed.Expr {
	switch n := e.(type) {
	case *ast.Const:
		return &typed.Const{Value: n.Value}
	case *ast.VarRef:
		return checkVarRef(n, environment, logger, context)
	case *ast.ArrayAccess:
		return checkArrayAccess(n, environment, logger, context)
	case *ast.Unary:
		return checkUnary(n, environment, logger, context)
	case *ast.Binary:
		return checkBinary(n, environment, logger, context)
	default:
		panic("typecheck: unhandled expression case")
	}
}

// checkVarRef resolves a bare name to a declared integer variable or clock.
func checkVarRef(n *ast.VarRef, environment *env.Environment, logger diag.Logger, context string) typed.Expr {
	entry, ok := environment.Lookup(n.Name)
	if !ok {
		logger.Error(context, fmt.Sprintf("undeclared identifier %q", n.Name))
		return &typed.Bad{}
	}

	if entry.Dim != 1 {
		logger.Error(context, fmt.Sprintf("%q names an array; an index is required", n.Name))
		return &typed.Bad{}
	}

	if entry.Kind == env.ClockKind {
		return &typed.ClockVar{Name: n.Name, Index: entry.Index}
	}

	return &typed.IntVar{Name: n.Name, Index: entry.Index, Low: entry.Low, High: entry.High}
}

// checkArrayAccess type-checks "base[index]". The index's static range must
// be wholly contained in [0,dim), not merely overlap it.
func checkArrayAccess(n *ast.ArrayAccess, environment *env.Environment, logger diag.Logger, context string) typed.Expr {
	index := checkExpr(n.Index, environment, logger, context)

	entry, ok := environment.Lookup(n.Base.Name)
	if !ok {
		logger.Error(context, fmt.Sprintf("undeclared identifier %q", n.Base.Name))
		return &typed.Bad{}
	}

	if entry.Dim <= 1 {
		logger.Error(context, fmt.Sprintf("%q is not an array", n.Base.Name))
		return &typed.Bad{}
	}

	if index.Type().IsBad() {
		return &typed.Bad{}
	}

	if !index.Type().IsInt() {
		logger.Error(context, fmt.Sprintf("array index must be an integer expression (found %s)", index.Type()))
		return &typed.Bad{}
	}

	rng := index.Type().Range
	if rng.Low < 0 || rng.High >= int64(entry.Dim) {
		logger.Error(context, fmt.Sprintf(
			"array index %s not statically contained in [0,%d)", index.Type(), entry.Dim))
		return &typed.Bad{}
	}

	if entry.Kind == env.ClockKind {
		return &typed.ClockArrayAccess{
			Name: n.Base.Name, BaseIndex: entry.Index, Dim: entry.Dim, Index: index,
		}
	}

	return &typed.IntArrayAccess{
		Name: n.Base.Name, BaseIndex: entry.Index, Dim: entry.Dim, Index: index,
		Low: entry.Low, High: entry.High,
	}
}

// checkUnary type-checks negation and logical-not.
func checkUnary(n *ast.Unary, environment *env.Environment, logger diag.Logger, context string) typed.Expr {
	x := checkExpr(n.X, environment, logger, context)
	if x.Type().IsBad() {
		return &typed.Bad{}
	}

	switch n.Op {
	case ast.Neg:
		if !x.Type().IsInt() {
			logger.Error(context, fmt.Sprintf("unary - requires an integer operand (found %s)", x.Type()))
			return &typed.Bad{}
		}

		return &typed.Neg{X: x, Typ: types.Type{Tag: types.Int, Range: interval.Neg(x.Type().Range)}}
	case ast.Not:
		if !x.Type().IsBool() {
			logger.Error(context, fmt.Sprintf("! requires a boolean operand (found %s)", x.Type()))
			return &typed.Bad{}
		}

		return &typed.Not{X: x}
	default:
		panic("typecheck: unhandled unary operator")
	}
}

// checkBinary dispatches to the arithmetic, conjunction or comparison rule
// according to the operator.
func checkBinary(n *ast.Binary, environment *env.Environment, logger diag.Logger, context string) typed.Expr {
	switch {
	case n.Op.IsArithmetic():
		l := checkExpr(n.L, environment, logger, context)
		r := checkExpr(n.R, environment, logger, context)

		return checkArith(n.Op, l, r, logger, context)
	case n.Op == ast.And:
		l := checkExpr(n.L, environment, logger, context)
		r := checkExpr(n.R, environment, logger, context)

		return checkAnd(l, r, logger, context)
	case n.Op.IsComparison():
		return checkComparison(n.Op, n.L, n.R, environment, logger, context)
	default:
		panic("typecheck: unhandled binary operator")
	}
}

// checkArith type-checks the five arithmetic operators, computing the
// result's static range. It is also reused, via the comparison rule, to
// type ordinary integer subtraction that merely looks like a clock
// difference syntactically.
func checkArith(op ast.BinaryOp, l, r typed.Expr, logger diag.Logger, context string) typed.Expr {
	if l.Type().IsBad() || r.Type().IsBad() {
		return &typed.Bad{}
	}

	if !l.Type().IsInt() || !r.Type().IsInt() {
		logger.Error(context, fmt.Sprintf(
			"%s requires integer operands (found %s, %s)", op, l.Type(), r.Type()))
		return &typed.Bad{}
	}

	lr, rr := l.Type().Range, r.Type().Range

	if (op == ast.Div || op == ast.Mod) && rr.Contains(0) {
		logger.Warning(context, fmt.Sprintf("possible division by zero (divisor range %s)", r.Type()))
	}

	var result interval.Interval

	switch op {
	case ast.Add:
		result = interval.Add(lr, rr)
	case ast.Sub:
		result = interval.Sub(lr, rr)
	case ast.Mul:
		result = interval.Mul(lr, rr)
	case ast.Div:
		result = interval.Div(lr, rr)
	case ast.Mod:
		result = interval.Mod(lr, rr)
	default:
		panic("typecheck: unhandled arithmetic operator")
	}

	return &typed.Arith{Op: op, L: l, R: r, Typ: types.Type{Tag: types.Int, Range: result}}
}

// checkAnd type-checks logical conjunction: both operands must be Bool.
func checkAnd(l, r typed.Expr, logger diag.Logger, context string) typed.Expr {
	if l.Type().IsBad() || r.Type().IsBad() {
		return &typed.Bad{}
	}

	if !l.Type().IsBool() || !r.Type().IsBool() {
		logger.Error(context, fmt.Sprintf(
			"and requires boolean operands (found %s, %s)", l.Type(), r.Type()))
		return &typed.Bad{}
	}

	return &typed.And{L: l, R: r}
}

// checkComparison type-checks an integer comparison or a clock constraint.
// The left operand gets special handling because the "x - y" shape is only
// meaningful as a clock difference directly at this position; any other
// shape combining a clock with a non-clock is ill-formed.
func checkComparison(
	op ast.BinaryOp, rawL, rawR ast.Expr, environment *env.Environment, logger diag.Logger, context string,
) typed.Expr {
	left := checkComparisonLeft(rawL, environment, logger, context)
	right := checkExpr(rawR, environment, logger, context)

	if left.Type().IsBad() || right.Type().IsBad() {
		return &typed.Bad{}
	}

	switch {
	case left.Type().IsInt() && right.Type().IsInt():
		return &typed.IntCmp{Op: op, L: left, R: right}
	case (left.Type().IsClock() || left.Type().IsClockDiff()) && right.Type().IsInt():
		if op == ast.Ne {
			logger.Error(context, "clock constraints do not support !=")
			return &typed.Bad{}
		}

		return &typed.ClockCmp{Op: op, Left: left, Right: right}
	default:
		logger.Error(context, fmt.Sprintf(
			"ill-formed comparison (found %s %s %s)", left.Type(), op, right.Type()))
		return &typed.Bad{}
	}
}

// checkComparisonLeft resolves the left operand of a comparison, detecting
// the "x - y" clock-difference shape before falling back to ordinary
// expression typing.
func checkComparisonLeft(e ast.Expr, environment *env.Environment, logger diag.Logger, context string) typed.Expr {
	b, ok := e.(*ast.Binary)
	if !ok || b.Op != ast.Sub {
		return checkExpr(e, environment, logger, context)
	}

	l := checkExpr(b.L, environment, logger, context)
	r := checkExpr(b.R, environment, logger, context)

	if l.Type().IsBad() || r.Type().IsBad() {
		return &typed.Bad{}
	}

	switch {
	case l.Type().IsClock() && r.Type().IsClock():
		return &typed.ClockDiff{Minuend: l, Subtrahend: r}
	case l.Type().IsClock() || r.Type().IsClock():
		logger.Error(context, "ill-formed clock constraint")
		return &typed.Bad{}
	default:
		return checkArith(ast.Sub, l, r, logger, context)
	}
}

// checkAssign type-checks an assignment statement.
func checkAssign(n *ast.Assign, environment *env.Environment, logger diag.Logger, context string) typed.Stmt {
	target, targetOK := checkLvalue(n.Target, environment, logger, context)
	value := checkExpr(n.Value, environment, logger, context)

	if !targetOK || value.Type().IsBad() {
		return &typed.BadStmt{}
	}

	switch target.Type().Tag {
	case types.Int:
		if !value.Type().IsInt() {
			logger.Error(context, fmt.Sprintf(
				"cannot assign %s to integer variable %s", value.Type(), target.Pretty()))
			return &typed.BadStmt{}
		}

		if !value.Type().Range.ContainedBy(target.Type().Range) {
			logger.Warning(context, fmt.Sprintf(
				"possible value loss assigning %s to %s", value.Type(), target.Type()))
		}

		return &typed.Assign{Target: target, Value: value}
	case types.Clock:
		if !value.Type().IsInt() {
			logger.Error(context, fmt.Sprintf(
				"clock reset requires an integer expression (found %s)", value.Type()))
			return &typed.BadStmt{}
		}

		if value.Type().Range.Low < 0 {
			logger.Error(context, "negative clock reset")
			return &typed.BadStmt{}
		}

		return &typed.Assign{Target: target, Value: value}
	default:
		panic("typecheck: lvalue has unexpected type tag")
	}
}

// checkLvalue type-checks an assignment target, which the untyped AST
// already restricts to a VarRef or ArrayAccess. The second return value is
// false when the target itself was ill-typed (error already reported by
// the nested check).
func checkLvalue(e ast.Lvalue, environment *env.Environment, logger diag.Logger, context string) (typed.Lvalue, bool) {
	var t typed.Expr

	switch n := e.(type) {
	case *ast.VarRef:
		t = checkVarRef(n, environment, logger, context)
	case *ast.ArrayAccess:
		t = checkArrayAccess(n, environment, logger, context)
	default:
		panic("typecheck: unhandled lvalue case")
	}

	lv, ok := t.(typed.Lvalue)

	return lv, ok
}
