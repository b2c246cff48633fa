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
// Package typed defines the typed AST: a mirror of pkg/ast annotated with an
// inferred types.Type on every node, produced by pkg/typecheck and consumed
// by pkg/bytecode.
package typed

import "github.com/clockguard/tcc/pkg/types"

// Expr is a type-checked expression node.
type Expr interface {
	// Type returns this node's inferred type tag.
	Type() types.Type
	// Pretty renders a debug form sufficient for clone-equivalence
	// comparisons; it does not claim to be surface grammar.
	Pretty() string

	exprNode()
}

// Lvalue is the subset of Expr usable as an assignment target once typed:
// a resolved integer-variable/clock reference or array access.
type Lvalue interface {
	Expr
	lvalueNode()
}

// Stmt is a type-checked statement node.
type Stmt interface {
	Pretty() string

	stmtNode()
}
