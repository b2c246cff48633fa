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
// Package ast defines the untyped syntax tree for guard, invariant and
// statement attributes: the tree shape produced by the (external) surface
// parser and consumed by the type checker.
//
// Nodes are sum types implemented as a small set of concrete structs behind
// the Expr and Stmt interfaces. Parent nodes exclusively own their children;
// there is no sharing of subtrees and no cycles. Cloning is always a deep
// copy. Rather than a classic Accept/Visitor double-dispatch pair per node,
// dispatch over node shape is realised as a single exhaustive type switch in
// Visit/VisitStmt (see visitor.go); type-checking is itself such a switch,
// while pretty-print and clone are per-node Pretty/Clone methods.
package ast

// Expr is any expression node: Const, VarRef, ArrayAccess, Unary or Binary.
type Expr interface {
	// Pretty renders the expression in the canonical surface syntax. Parsing
	// the result and pretty-printing again yields the same string.
	Pretty() string
	// Clone returns a deep copy owning none of the receiver's memory.
	Clone() Expr

	exprNode()
}

// Lvalue is the strict subset of Expr usable as an assignment target: a
// variable reference or an array access.
type Lvalue interface {
	Expr
	lvalueNode()
}

// Stmt is any statement node: Nop, Assign or Sequence.
type Stmt interface {
	Pretty() string
	Clone() Stmt

	stmtNode()
}

func requireNonNil(name string, v any) {
	if v == nil {
		panic("ast: nil " + name)
	}
}
