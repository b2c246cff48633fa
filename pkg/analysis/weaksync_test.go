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
package analysis

import (
	"testing"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/system"
)

func TestCheckWeakSyncAcceptsTrueGuardedWeakEvent(t *testing.T) {
	b := system.NewBuilder()
	l := b.AddLocation("a", ast.True())
	b.MarkWeaklySynchronized("tick")
	b.AddEdge(l, l, "tick", ast.True(), ast.NewNop())

	g, _ := b.Build()

	if v := CheckWeakSync(g); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestCheckWeakSyncRejectsGuardedWeakEvent(t *testing.T) {
	b := system.NewBuilder()
	l := b.AddLocation("a", ast.True())
	b.MarkWeaklySynchronized("tick")

	guard := ast.NewBinary(ast.Lt, ast.NewVarRef("x"), ast.NewConst(5))
	e := b.AddEdge(l, l, "tick", guard, ast.NewNop())

	g, _ := b.Build()

	violations := CheckWeakSync(g)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %d", len(violations))
	}

	if violations[0].Edge != e || violations[0].Event != "tick" {
		t.Fatalf("unexpected violation: %+v", violations[0])
	}
}

func TestCheckWeakSyncIgnoresNonWeakAndUnlabelledEdges(t *testing.T) {
	b := system.NewBuilder()
	l := b.AddLocation("a", ast.True())

	guard := ast.NewBinary(ast.Lt, ast.NewVarRef("x"), ast.NewConst(5))
	b.AddEdge(l, l, "strong", guard, ast.NewNop())
	b.AddEdge(l, l, "", guard, ast.NewNop())

	g, _ := b.Build()

	if v := CheckWeakSync(g); len(v) != 0 {
		t.Fatalf("expected no violations for non-weak and unlabelled edges, got %v", v)
	}
}

func TestViolationStringIncludesEdgeIdentity(t *testing.T) {
	v := Violation{Edge: 3, Event: "tick", Source: 0, Target: 1}

	want := `edge 3 (event "tick", 0 -> 1)`
	if got := v.String(); got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
}
