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
	"fmt"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/types"
)

// ============================================================================
// Const
// ============================================================================

// Const is a typed integer literal; its type is the singleton range
// int{c,c}.
type Const struct {
	Value int64
}

func (e *Const) exprNode() {}

// Type returns int{Value,Value}.
func (e *Const) Type() types.Type { return types.NewInt(e.Value, e.Value) }

// Pretty renders a debug form of this node.
func (e *Const) Pretty() string { return fmt.Sprintf("%d", e.Value) }

// ============================================================================
// IntVar
// ============================================================================

// IntVar is a resolved reference to a scalar (dim 1) integer variable.
type IntVar struct {
	Name  string
	Index int
	Low   int64
	High  int64
}

func (e *IntVar) exprNode()   {}
func (e *IntVar) lvalueNode() {}

// Type returns int{Low,High}.
func (e *IntVar) Type() types.Type { return types.NewInt(e.Low, e.High) }

// Pretty renders a debug form of this node.
func (e *IntVar) Pretty() string { return e.Name }

// ============================================================================
// ClockVar
// ============================================================================

// ClockVar is a resolved reference to a scalar (dim 1) clock.
type ClockVar struct {
	Name  string
	Index int
}

func (e *ClockVar) exprNode()   {}
func (e *ClockVar) lvalueNode() {}

// Type returns Clock.
func (e *ClockVar) Type() types.Type { return types.NewClock() }

// Pretty renders a debug form of this node.
func (e *ClockVar) Pretty() string { return e.Name }

// ============================================================================
// IntArrayAccess
// ============================================================================

// IntArrayAccess is a resolved access into an integer-variable array.
type IntArrayAccess struct {
	Name      string
	BaseIndex int
	Dim       int
	Index     Expr
	Low       int64
	High      int64
}

func (e *IntArrayAccess) exprNode()   {}
func (e *IntArrayAccess) lvalueNode() {}

// Type returns int{Low,High} of the array's element type.
func (e *IntArrayAccess) Type() types.Type { return types.NewInt(e.Low, e.High) }

// Pretty renders a debug form of this node.
func (e *IntArrayAccess) Pretty() string {
	return e.Name + "[" + e.Index.Pretty() + "]"
}

// ============================================================================
// ClockArrayAccess
// ============================================================================

// ClockArrayAccess is a resolved access into a clock array.
type ClockArrayAccess struct {
	Name      string
	BaseIndex int
	Dim       int
	Index     Expr
}

func (e *ClockArrayAccess) exprNode()   {}
func (e *ClockArrayAccess) lvalueNode() {}

// Type returns Clock.
func (e *ClockArrayAccess) Type() types.Type { return types.NewClock() }

// Pretty renders a debug form of this node.
func (e *ClockArrayAccess) Pretty() string {
	return e.Name + "[" + e.Index.Pretty() + "]"
}

// ============================================================================
// Neg
// ============================================================================

// Neg is unary arithmetic negation: X : int{lo,hi} -> int{-hi,-lo}.
type Neg struct {
	X   Expr
	Typ types.Type
}

func (e *Neg) exprNode() {}

// Type returns the inferred result type.
func (e *Neg) Type() types.Type { return e.Typ }

// Pretty renders a debug form of this node.
func (e *Neg) Pretty() string { return "-(" + e.X.Pretty() + ")" }

// ============================================================================
// Not
// ============================================================================

// Not is logical negation: X : bool -> bool.
type Not struct {
	X Expr
}

func (e *Not) exprNode() {}

// Type returns Bool.
func (e *Not) Type() types.Type { return types.NewBool() }

// Pretty renders a debug form of this node.
func (e *Not) Pretty() string { return "!(" + e.X.Pretty() + ")" }

// ============================================================================
// Arith
// ============================================================================

// Arith is one of {+,-,*,/,%} over two int-typed operands.
type Arith struct {
	Op  ast.BinaryOp
	L   Expr
	R   Expr
	Typ types.Type
}

func (e *Arith) exprNode() {}

// Type returns the inferred result type.
func (e *Arith) Type() types.Type { return e.Typ }

// Pretty renders a debug form of this node.
func (e *Arith) Pretty() string {
	return "(" + e.L.Pretty() + " " + e.Op.String() + " " + e.R.Pretty() + ")"
}

// ============================================================================
// IntCmp
// ============================================================================

// IntCmp compares two int-typed operands, producing bool.
type IntCmp struct {
	Op ast.BinaryOp
	L  Expr
	R  Expr
}

func (e *IntCmp) exprNode() {}

// Type returns Bool.
func (e *IntCmp) Type() types.Type { return types.NewBool() }

// Pretty renders a debug form of this node.
func (e *IntCmp) Pretty() string {
	return "(" + e.L.Pretty() + " " + e.Op.String() + " " + e.R.Pretty() + ")"
}

// ============================================================================
// ClockDiff
// ============================================================================

// ClockDiff is the form "x - y" with both operands clock-typed. It is only
// well-formed as the Left child of a ClockCmp.
type ClockDiff struct {
	Minuend    Expr
	Subtrahend Expr
}

func (e *ClockDiff) exprNode() {}

// Type returns ClockDiff.
func (e *ClockDiff) Type() types.Type { return types.NewClockDiff() }

// Pretty renders a debug form of this node.
func (e *ClockDiff) Pretty() string {
	return "(" + e.Minuend.Pretty() + " - " + e.Subtrahend.Pretty() + ")"
}

// ============================================================================
// ClockCmp
// ============================================================================

// ClockCmp is a clock constraint "x ~ k" or "(x - y) ~ k" with
// Op in {<,<=,==,>=,>}; != is not a valid clock-constraint operator.
// Left has type Clock or ClockDiff; Right has type Int.
type ClockCmp struct {
	Op    ast.BinaryOp
	Left  Expr
	Right Expr
}

func (e *ClockCmp) exprNode() {}

// Type returns Bool.
func (e *ClockCmp) Type() types.Type { return types.NewBool() }

// Pretty renders a debug form of this node.
func (e *ClockCmp) Pretty() string {
	return "(" + e.Left.Pretty() + " " + e.Op.String() + " " + e.Right.Pretty() + ")"
}

// ============================================================================
// And
// ============================================================================

// And is boolean conjunction of two bool-typed operands.
type And struct {
	L Expr
	R Expr
}

func (e *And) exprNode() {}

// Type returns Bool.
func (e *And) Type() types.Type { return types.NewBool() }

// Pretty renders a debug form of this node.
func (e *And) Pretty() string {
	return "(" + e.L.Pretty() + " and " + e.R.Pretty() + ")"
}

// ============================================================================
// Bad
// ============================================================================

// Bad marks a subtree that failed typing. It carries no children: once a
// node is bad, no bytecode is ever produced for it, so there is nothing
// further to traverse.
type Bad struct{}

func (e *Bad) exprNode() {}

// Type returns Bad.
func (e *Bad) Type() types.Type { return types.NewBad() }

// Pretty renders a debug form of this node.
func (e *Bad) Pretty() string { return "<bad>" }

