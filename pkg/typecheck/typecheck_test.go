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
package typecheck

import (
	"testing"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/diag"
	"github.com/clockguard/tcc/pkg/env"
)

func buildTestEnv(t *testing.T) *env.Environment {
	t.Helper()

	b := env.NewBuilder()

	if err := b.AddIntVar("x", 1, 0, 10); err != nil {
		t.Fatal(err)
	}

	if err := b.AddIntVar("arr", 4, 0, 100); err != nil {
		t.Fatal(err)
	}

	if err := b.AddClock("c", 1); err != nil {
		t.Fatal(err)
	}

	if err := b.AddClock("carr", 3); err != nil {
		t.Fatal(err)
	}

	return b.Build()
}

func TestCheckGuardRejectsNonBool(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	result := CheckGuard(ast.NewVarRef("x"), e, logger, diag.CtxGuard)

	if !result.Type().IsBad() {
		t.Fatal("expected a non-bool guard to type-check as bad")
	}

	if logger.ErrorCount() != 1 {
		t.Fatalf("expected exactly one error, got %d", logger.ErrorCount())
	}
}

func TestCheckGuardAcceptsComparison(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	guard := ast.NewBinary(ast.Lt, ast.NewVarRef("x"), ast.NewConst(5))
	result := CheckGuard(guard, e, logger, diag.CtxGuard)

	if result.Type().IsBad() {
		t.Fatalf("expected a valid comparison guard to type-check, got errors: %v", logger.Errors())
	}

	if !result.Type().IsBool() {
		t.Fatalf("expected Bool, got %s", result.Type())
	}
}

func TestUndeclaredIdentifierReported(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	result := CheckGuard(ast.NewVarRef("nope"), e, logger, diag.CtxGuard)

	if !result.Type().IsBad() {
		t.Fatal("expected undeclared identifier to type-check as bad")
	}

	if logger.ErrorCount() != 1 {
		t.Fatalf("expected one error, got %d", logger.ErrorCount())
	}
}

func TestArrayAccessOutOfStaticRangeReported(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	idx := ast.NewBinary(ast.Add, ast.NewConst(1), ast.NewConst(4))
	access := ast.NewArrayAccess(ast.NewVarRef("arr"), idx)
	guard := ast.NewBinary(ast.Lt, access, ast.NewConst(10))

	result := CheckGuard(guard, e, logger, diag.CtxGuard)

	if !result.Type().IsBad() {
		t.Fatal("expected index outside the array's static range to be rejected")
	}
}

func TestClockDifferenceConstraintTypesAsBool(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	diff := ast.NewBinary(ast.Sub, ast.NewVarRef("c"), ast.NewVarRef("c"))
	guard := ast.NewBinary(ast.Le, diff, ast.NewConst(3))

	result := CheckGuard(guard, e, logger, diag.CtxGuard)

	if result.Type().IsBad() {
		t.Fatalf("expected a valid clock-difference constraint, got errors: %v", logger.Errors())
	}
}

func TestClockConstraintRejectsNotEqual(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	guard := ast.NewBinary(ast.Ne, ast.NewVarRef("c"), ast.NewConst(3))

	result := CheckGuard(guard, e, logger, diag.CtxGuard)

	if !result.Type().IsBad() {
		t.Fatal("expected != on a clock to be rejected")
	}
}

func TestClockComparedAgainstIntTypechecks(t *testing.T) {
	// The typed AST admits a clock compared against any int-typed bound; it
	// is the bytecode compiler that further requires the bound to fold to a
	// compile-time constant.
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	guard := ast.NewBinary(ast.Lt, ast.NewVarRef("c"), ast.NewVarRef("x"))

	result := CheckGuard(guard, e, logger, diag.CtxGuard)

	if result.Type().IsBad() {
		t.Fatalf("expected clock-vs-int comparison to type-check, got errors: %v", logger.Errors())
	}
}

func TestComparisonRejectsBoolAgainstInt(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	guard := ast.NewBinary(ast.Lt, ast.NewUnary(ast.Not, ast.NewBinary(ast.Eq, ast.NewConst(1), ast.NewConst(1))), ast.NewConst(1))

	result := CheckGuard(guard, e, logger, diag.CtxGuard)

	if !result.Type().IsBad() {
		t.Fatal("expected comparing a bool-typed expression against an int to be rejected")
	}
}

func TestAssignClockRejectsNegativeReset(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	stmt := ast.NewAssign(ast.NewVarRef("c"), ast.NewConst(-1))
	result := CheckStmt(stmt, e, logger, diag.CtxStatement)

	if result.Pretty() != "<bad>" {
		t.Fatal("expected a negative clock reset to be rejected")
	}
}

func TestAssignIntWarnsOnPossibleValueLoss(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	stmt := ast.NewAssign(ast.NewVarRef("x"), ast.NewBinary(ast.Add, ast.NewVarRef("x"), ast.NewConst(100)))
	result := CheckStmt(stmt, e, logger, diag.CtxStatement)

	if result.Pretty() == "<bad>" {
		t.Fatal("expected a wider-than-declared assignment to still type-check, with a warning")
	}

	if len(logger.Warnings()) == 0 {
		t.Fatal("expected a possible-value-loss warning")
	}
}

func TestSequenceTypeChecksBothStatements(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	seq := ast.NewSequence(
		ast.NewAssign(ast.NewVarRef("x"), ast.NewConst(1)),
		ast.NewAssign(ast.NewVarRef("nope"), ast.NewConst(1)),
	)

	result := CheckStmt(seq, e, logger, diag.CtxStatement)

	if result.Pretty() != "<bad>" {
		t.Fatal("expected a sequence with one bad statement to report bad as a whole")
	}

	if logger.ErrorCount() != 1 {
		t.Fatalf("expected exactly one error, got %d", logger.ErrorCount())
	}
}

func TestDivisionByPossibleZeroWarns(t *testing.T) {
	e := buildTestEnv(t)
	logger := diag.NewCollectingLogger()

	guard := ast.NewBinary(ast.Lt,
		ast.NewBinary(ast.Div, ast.NewVarRef("x"), ast.NewBinary(ast.Sub, ast.NewVarRef("x"), ast.NewConst(5))),
		ast.NewConst(1))

	CheckGuard(guard, e, logger, diag.CtxGuard)

	if len(logger.Warnings()) == 0 {
		t.Fatal("expected a possible-division-by-zero warning")
	}
}
