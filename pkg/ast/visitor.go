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
package ast

// ExprVisitor receives exactly one call for whichever concrete case Visit
// dispatches on.
type ExprVisitor interface {
	VisitConst(*Const)
	VisitVarRef(*VarRef)
	VisitArrayAccess(*ArrayAccess)
	VisitUnary(*Unary)
	VisitBinary(*Binary)
}

// StmtVisitor receives exactly one call for whichever concrete case
// VisitStmt dispatches on.
type StmtVisitor interface {
	VisitNop(*Nop)
	VisitAssign(*Assign)
	VisitSequence(*Sequence)
}

// Visit dispatches e to the matching method of v, playing the role a
// classic double-dispatch Accept method would; it is implemented as one
// exhaustive type switch per the sum-type style used throughout this
// module, rather than a per-node Accept method.
func Visit(e Expr, v ExprVisitor) {
	switch n := e.(type) {
	case *Const:
		v.VisitConst(n)
	case *VarRef:
		v.VisitVarRef(n)
	case *ArrayAccess:
		v.VisitArrayAccess(n)
	case *Unary:
		v.VisitUnary(n)
	case *Binary:
		v.VisitBinary(n)
	default:
		panic("ast: unhandled expression case")
	}
}

// VisitStmt dispatches s to the matching method of v.
func VisitStmt(s Stmt, v StmtVisitor) {
	switch n := s.(type) {
	case *Nop:
		v.VisitNop(n)
	case *Assign:
		v.VisitAssign(n)
	case *Sequence:
		v.VisitSequence(n)
	default:
		panic("ast: unhandled statement case")
	}
}
