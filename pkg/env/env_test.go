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
package env

import "testing"

func TestLookupUnknownName(t *testing.T) {
	e := NewBuilder().Build()

	if _, ok := e.Lookup("x"); ok {
		t.Fatal("expected undeclared name to miss")
	}
}

func TestFlatIndicesAssignedInSortedOrder(t *testing.T) {
	b := NewBuilder()

	if err := b.AddIntVar("y", 1, 0, 10); err != nil {
		t.Fatal(err)
	}

	if err := b.AddIntVar("x", 1, 0, 10); err != nil {
		t.Fatal(err)
	}

	if err := b.AddClock("c", 1); err != nil {
		t.Fatal(err)
	}

	e := b.Build()

	x, ok := e.Lookup("x")
	if !ok || x.Index != 0 {
		t.Fatalf("expected x at index 0, got %+v ok=%v", x, ok)
	}

	y, ok := e.Lookup("y")
	if !ok || y.Index != 1 {
		t.Fatalf("expected y at index 1, got %+v ok=%v", y, ok)
	}

	c, ok := e.Lookup("c")
	if !ok || c.Kind != ClockKind || c.Index != 0 {
		t.Fatalf("expected clock c at index 0, got %+v ok=%v", c, ok)
	}
}

func TestIndexAssignmentIndependentOfDeclarationOrder(t *testing.T) {
	b1 := NewBuilder()
	_ = b1.AddIntVar("b", 1, 0, 1)
	_ = b1.AddIntVar("a", 1, 0, 1)
	e1 := b1.Build()

	b2 := NewBuilder()
	_ = b2.AddIntVar("a", 1, 0, 1)
	_ = b2.AddIntVar("b", 1, 0, 1)
	e2 := b2.Build()

	a1, _ := e1.Lookup("a")
	a2, _ := e2.Lookup("a")

	if a1.Index != a2.Index {
		t.Fatalf("expected index of a to be independent of declaration order, got %d vs %d", a1.Index, a2.Index)
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	b := NewBuilder()

	if err := b.AddIntVar("x", 1, 0, 1); err != nil {
		t.Fatal(err)
	}

	if err := b.AddClock("x", 1); err == nil {
		t.Fatal("expected duplicate name across kinds to be rejected")
	}
}

func TestEmptyRangeRejected(t *testing.T) {
	b := NewBuilder()

	if err := b.AddIntVar("x", 1, 5, 4); err == nil {
		t.Fatal("expected low > high to be rejected")
	}
}

func TestScalarVsArray(t *testing.T) {
	b := NewBuilder()
	_ = b.AddIntVar("a", 1, 0, 1)
	_ = b.AddIntVar("arr", 4, 0, 1)
	e := b.Build()

	a, _ := e.Lookup("a")
	if !a.IsScalar() {
		t.Fatal("expected dim-1 declaration to be scalar")
	}

	arr, _ := e.Lookup("arr")
	if arr.IsScalar() {
		t.Fatal("expected dim-4 declaration not to be scalar")
	}
}
