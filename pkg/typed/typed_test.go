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
package typed

import (
	"testing"

	"github.com/clockguard/tcc/pkg/ast"
)

func TestIsBadPropagatesThroughAssign(t *testing.T) {
	good := &Assign{Target: &IntVar{Name: "x", Low: 0, High: 10}, Value: &Const{Value: 1}}
	if IsBad(good) {
		t.Fatal("expected well-typed assign not to be bad")
	}

	badValue := &Assign{Target: &IntVar{Name: "x", Low: 0, High: 10}, Value: &Bad{}}
	if !IsBad(badValue) {
		t.Fatal("expected assign with bad value to be bad")
	}
}

func TestIsBadPropagatesThroughSequence(t *testing.T) {
	s := &Sequence{First: &Nop{}, Second: &BadStmt{}}
	if !IsBad(s) {
		t.Fatal("expected sequence containing a bad statement to be bad")
	}

	ok := &Sequence{First: &Nop{}, Second: &Nop{}}
	if IsBad(ok) {
		t.Fatal("expected sequence of nops not to be bad")
	}
}

func TestPrettyOfArrayAccess(t *testing.T) {
	a := &IntArrayAccess{Name: "a", Index: &Const{Value: 2}, Low: 0, High: 10}

	want := "a[2]"
	if got := a.Pretty(); got != want {
		t.Fatalf("Pretty: got %q, want %q", got, want)
	}
}

func TestPrettyOfClockConstraint(t *testing.T) {
	c := &ClockCmp{
		Op:    ast.Lt,
		Left:  &ClockDiff{Minuend: &ClockVar{Name: "a"}, Subtrahend: &ClockVar{Name: "b"}},
		Right: &Const{Value: 7},
	}

	want := "((a - b) < 7)"
	if got := c.Pretty(); got != want {
		t.Fatalf("Pretty: got %q, want %q", got, want)
	}
}
