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

// ============================================================================
// Nop
// ============================================================================

// Nop is the typed empty statement.
type Nop struct{}

func (s *Nop) stmtNode() {}

// Pretty renders a debug form of this node.
func (s *Nop) Pretty() string { return "nop" }

// ============================================================================
// Assign
// ============================================================================

// Assign is a typed assignment. Target is either an IntVar/IntArrayAccess
// (ordinary store) or a ClockVar/ClockArrayAccess (clock reset); Value is
// always int-typed.
type Assign struct {
	Target Lvalue
	Value  Expr
}

func (s *Assign) stmtNode() {}

// Pretty renders a debug form of this node.
func (s *Assign) Pretty() string { return s.Target.Pretty() + " = " + s.Value.Pretty() }

// ============================================================================
// Sequence
// ============================================================================

// Sequence is First followed by Second.
type Sequence struct {
	First  Stmt
	Second Stmt
}

func (s *Sequence) stmtNode() {}

// Pretty renders a debug form of this node.
func (s *Sequence) Pretty() string { return s.First.Pretty() + "; " + s.Second.Pretty() }

