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

// Visitor receives exactly one call for whichever concrete case Visit or
// VisitStmt dispatches on.
type Visitor interface {
	VisitConst(*Const)
	VisitIntVar(*IntVar)
	VisitClockVar(*ClockVar)
	VisitIntArrayAccess(*IntArrayAccess)
	VisitClockArrayAccess(*ClockArrayAccess)
	VisitNeg(*Neg)
	VisitNot(*Not)
	VisitArith(*Arith)
	VisitIntCmp(*IntCmp)
	VisitClockDiff(*ClockDiff)
	VisitClockCmp(*ClockCmp)
	VisitAnd(*And)
	VisitBad(*Bad)

	VisitNop(*Nop)
	VisitAssign(*Assign)
	VisitSequence(*Sequence)
	VisitBadStmt(*BadStmt)
}

// Visit dispatches e to the matching method of v.
func Visit(e Expr, v Visitor) {
	switch n := e.(type) {
	case *Const:
		v.VisitConst(n)
	case *IntVar:
		v.VisitIntVar(n)
	case *ClockVar:
		v.VisitClockVar(n)
	case *IntArrayAccess:
		v.VisitIntArrayAccess(n)
	case *ClockArrayAccess:
		v.VisitClockArrayAccess(n)
	case *Neg:
		v.VisitNeg(n)
	case *Not:
		v.VisitNot(n)
	case *Arith:
		v.VisitArith(n)
	case *IntCmp:
		v.VisitIntCmp(n)
	case *ClockDiff:
		v.VisitClockDiff(n)
	case *ClockCmp:
		v.VisitClockCmp(n)
	case *And:
		v.VisitAnd(n)
	case *Bad:
		v.VisitBad(n)
	default:
		panic("typed: unhandled expression case")
	}
}

// VisitStmt dispatches s to the matching method of v.
func VisitStmt(s Stmt, v Visitor) {
	switch n := s.(type) {
	case *Nop:
		v.VisitNop(n)
	case *Assign:
		v.VisitAssign(n)
	case *Sequence:
		v.VisitSequence(n)
	case *BadStmt:
		v.VisitBadStmt(n)
	default:
		panic("typed: unhandled statement case")
	}
}
