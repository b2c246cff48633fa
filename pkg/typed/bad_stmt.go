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

// BadStmt marks a statement whose subtree contains an ill-typed expression
// or lvalue. Like Bad for expressions, no bytecode is ever produced for it;
// model construction checks for it to decide whether to run the compiler.
type BadStmt struct{}

func (s *BadStmt) stmtNode() {}

// Pretty renders a debug form of this node.
func (s *BadStmt) Pretty() string { return "<bad>" }

// IsBad reports whether s is the BadStmt sentinel or contains one anywhere
// in its subtree: a node is emitted with bad if any child is bad.
func IsBad(s Stmt) bool {
	switch n := s.(type) {
	case *BadStmt:
		return true
	case *Nop:
		return false
	case *Assign:
		return n.Target.Type().IsBad() || n.Value.Type().IsBad()
	case *Sequence:
		return IsBad(n.First) || IsBad(n.Second)
	default:
		panic("typed: unhandled statement case")
	}
}
