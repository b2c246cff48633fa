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
package system

import (
	"testing"

	"github.com/clockguard/tcc/pkg/ast"
)

func TestBuilderProducesLocationsAndEdgesInDeclarationOrder(t *testing.T) {
	b := NewBuilder()

	l0 := b.AddLocation("idle", ast.True())
	l1 := b.AddLocation("busy", ast.True())

	if l0 != 0 || l1 != 1 {
		t.Fatalf("expected location IDs 0,1, got %d,%d", l0, l1)
	}

	e0 := b.AddEdge(l0, l1, "start", ast.True(), ast.NewNop())

	g, _ := b.Build()

	if g.LocationsCount() != 2 {
		t.Fatalf("LocationsCount: got %d, want 2", g.LocationsCount())
	}

	if g.EdgesCount() != 1 {
		t.Fatalf("EdgesCount: got %d, want 1", g.EdgesCount())
	}

	edge := g.Edge(e0)
	if edge.Source() != l0 || edge.Target() != l1 || edge.Event() != "start" {
		t.Fatalf("unexpected edge: %+v", edge)
	}

	if g.Location(l1).Name() != "busy" {
		t.Fatalf("Location(l1).Name(): got %q, want %q", g.Location(l1).Name(), "busy")
	}
}

func TestLocationOutOfRangePanics(t *testing.T) {
	b := NewBuilder()
	b.AddLocation("only", ast.True())
	g, _ := b.Build()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range location index")
		}
	}()

	g.Location(1)
}

func TestEdgeOutOfRangePanics(t *testing.T) {
	g, _ := NewBuilder().Build()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range edge index")
		}
	}()

	g.Edge(0)
}

func TestAddEdgeRejectsUndeclaredLocation(t *testing.T) {
	b := NewBuilder()
	l0 := b.AddLocation("only", ast.True())

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when target location was never declared")
		}
	}()

	b.AddEdge(l0, LocationID(5), "", ast.True(), ast.NewNop())
}

func TestAddLocationRejectsNilInvariant(t *testing.T) {
	b := NewBuilder()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil invariant")
		}
	}()

	b.AddLocation("x", nil)
}

func TestAddEdgeRejectsNilGuardAndStatement(t *testing.T) {
	b := NewBuilder()
	l0 := b.AddLocation("x", ast.True())

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic on nil guard")
			}
		}()

		b.AddEdge(l0, l0, "", nil, ast.NewNop())
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic on nil statement")
			}
		}()

		b.AddEdge(l0, l0, "", ast.True(), nil)
	}()
}

func TestMarkWeaklySynchronizedRejectsEmptyEvent(t *testing.T) {
	b := NewBuilder()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when marking the empty event weakly synchronized")
		}
	}()

	b.MarkWeaklySynchronized("")
}

func TestSyncVectorReportsWeakAndUnlabelled(t *testing.T) {
	b := NewBuilder()
	l0 := b.AddLocation("a", ast.True())
	b.MarkWeaklySynchronized("tick")
	b.AddEdge(l0, l0, "tick", ast.True(), ast.NewNop())
	b.AddEdge(l0, l0, "", ast.True(), ast.NewNop())

	g, _ := b.Build()

	if !g.SyncVector().IsWeak("tick") {
		t.Fatal("expected \"tick\" to be weakly synchronized")
	}

	if g.SyncVector().IsWeak("") {
		t.Fatal("expected the empty event to never be weak")
	}

	if g.SyncVector().IsWeak("other") {
		t.Fatal("expected an unmarked event to not be weak")
	}
}

func TestBuilderDeclaresVariablesIntoEnvironment(t *testing.T) {
	b := NewBuilder()

	if err := b.AddIntVar("x", 1, 0, 10); err != nil {
		t.Fatal(err)
	}

	if err := b.AddClock("c", 1); err != nil {
		t.Fatal(err)
	}

	_, e := b.Build()

	if _, ok := e.Lookup("x"); !ok {
		t.Fatal("expected \"x\" to be declared in the built environment")
	}

	if _, ok := e.Lookup("c"); !ok {
		t.Fatal("expected \"c\" to be declared in the built environment")
	}
}

func TestParseExprDecodesConstAndVar(t *testing.T) {
	e, err := ParseExpr(`(lt (var "x") (const 5))`)
	if err != nil {
		t.Fatal(err)
	}

	want := "(x < 5)"
	if got := e.Pretty(); got != want {
		t.Fatalf("Pretty: got %q, want %q", got, want)
	}
}

func TestParseExprHandlesIndexAndArithmetic(t *testing.T) {
	e, err := ParseExpr(`(le (index (var "a") (add (const 1) (const 2))) (const 10))`)
	if err != nil {
		t.Fatal(err)
	}

	want := "(a[(1 + 2)] <= 10)"
	if got := e.Pretty(); got != want {
		t.Fatalf("Pretty: got %q, want %q", got, want)
	}
}

func TestParseExprRejectsUnknownHead(t *testing.T) {
	if _, err := ParseExpr(`(frobnicate (const 1))`); err == nil {
		t.Fatal("expected an unknown expression head to fail")
	}
}

func TestParseExprRejectsTrailingInput(t *testing.T) {
	if _, err := ParseExpr(`(const 1) (const 2)`); err == nil {
		t.Fatal("expected trailing input after a complete expression to fail")
	}
}

func TestParseExprRejectsIndexOnNonVarBase(t *testing.T) {
	if _, err := ParseExpr(`(index (const 1) (const 2))`); err == nil {
		t.Fatal("expected an index base that is not (var ...) to fail")
	}
}

func TestParseStmtDecodesAssignAndSeq(t *testing.T) {
	s, err := ParseStmt(`(seq (assign (var "x") (const 1)) (nop))`)
	if err != nil {
		t.Fatal(err)
	}

	want := "x = 1; nop"
	if got := s.Pretty(); got != want {
		t.Fatalf("Pretty: got %q, want %q", got, want)
	}
}

func TestParseStmtRejectsNonLvalueAssignTarget(t *testing.T) {
	if _, err := ParseStmt(`(assign (const 1) (const 2))`); err == nil {
		t.Fatal("expected a non-lvalue assign target to fail")
	}
}

func TestParseStmtRejectsUnknownHead(t *testing.T) {
	if _, err := ParseStmt(`(frobnicate)`); err == nil {
		t.Fatal("expected an unknown statement head to fail")
	}
}

func TestTokenizeHandlesQuotedStringsWithSpaces(t *testing.T) {
	e, err := ParseExpr(`(var "not a real name")`)
	if err != nil {
		t.Fatal(err)
	}

	ref, ok := e.(*ast.VarRef)
	if !ok {
		t.Fatalf("expected *ast.VarRef, got %T", e)
	}

	if ref.Name != "not a real name" {
		t.Fatalf("Name: got %q, want %q", ref.Name, "not a real name")
	}
}
