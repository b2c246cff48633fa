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
// Package model implements the model container: it binds a system graph to
// per-location invariant and per-edge guard/statement typed ASTs and
// bytecode, and to the enclosing variable environment, under a transactional
// construction contract: either every location and edge is fully typed and
// compiled, or Build returns an error and no Model at all.
package model

import (
	"fmt"

	"github.com/clockguard/tcc/pkg/bytecode"
	"github.com/clockguard/tcc/pkg/env"
	"github.com/clockguard/tcc/pkg/system"
	"github.com/clockguard/tcc/pkg/typed"
)

// Model is the immutable, successfully-constructed result of Build. Every
// field is populated for every valid index once Build returns a non-nil
// Model; there is no partially-built state visible outside this package.
type Model struct {
	graph       *system.Graph
	environment *env.Environment

	invariantAST []typed.Expr
	invariantBC  [][]bytecode.Instr

	guardAST []typed.Expr
	guardBC  [][]bytecode.Instr

	stmtAST []typed.Stmt
	stmtBC  [][]bytecode.Instr
}

// LocationsCount returns L, the number of locations this model covers.
func (m *Model) LocationsCount() int { return len(m.invariantAST) }

// EdgesCount returns E, the number of edges this model covers.
func (m *Model) EdgesCount() int { return len(m.guardAST) }

// Env returns the variable environment this model was built against.
func (m *Model) Env() *env.Environment { return m.environment }

// InvariantAST returns the typed invariant expression for loc. Out-of-range
// loc is a precondition violation.
func (m *Model) InvariantAST(loc system.LocationID) typed.Expr {
	m.checkLocation(loc)
	return m.invariantAST[loc]
}

// InvariantBytecode returns the compiled invariant for loc.
func (m *Model) InvariantBytecode(loc system.LocationID) []bytecode.Instr {
	m.checkLocation(loc)
	return m.invariantBC[loc]
}

// GuardAST returns the typed guard expression for edge.
func (m *Model) GuardAST(edge system.EdgeID) typed.Expr {
	m.checkEdge(edge)
	return m.guardAST[edge]
}

// GuardBytecode returns the compiled guard for edge.
func (m *Model) GuardBytecode(edge system.EdgeID) []bytecode.Instr {
	m.checkEdge(edge)
	return m.guardBC[edge]
}

// StatementAST returns the typed statement for edge.
func (m *Model) StatementAST(edge system.EdgeID) typed.Stmt {
	m.checkEdge(edge)
	return m.stmtAST[edge]
}

// StatementBytecode returns the compiled statement for edge.
func (m *Model) StatementBytecode(edge system.EdgeID) []bytecode.Instr {
	m.checkEdge(edge)
	return m.stmtBC[edge]
}

func (m *Model) checkLocation(loc system.LocationID) {
	if int(loc) < 0 || int(loc) >= len(m.invariantAST) {
		panic(fmt.Sprintf("model: location index %d out of range [0,%d)", loc, len(m.invariantAST)))
	}
}

func (m *Model) checkEdge(edge system.EdgeID) {
	if int(edge) < 0 || int(edge) >= len(m.guardAST) {
		panic(fmt.Sprintf("model: edge index %d out of range [0,%d)", edge, len(m.guardAST)))
	}
}

// Clone deep-copies this model by recompiling from the system graph and
// environment it was built from, so the result shares no mutable state with
// the receiver. The result is semantically equivalent to the receiver.
func (m *Model) Clone() (*Model, error) {
	return rebuild(m.graph, m.environment)
}

// Transfer moves ownership of this model's buffers to a freshly returned
// Model and leaves the receiver in a valid, empty state (LocationsCount and
// EdgesCount both 0).
func (m *Model) Transfer() *Model {
	out := &Model{
		graph: m.graph, environment: m.environment,
		invariantAST: m.invariantAST, invariantBC: m.invariantBC,
		guardAST: m.guardAST, guardBC: m.guardBC,
		stmtAST: m.stmtAST, stmtBC: m.stmtBC,
	}

	m.graph = nil
	m.environment = nil
	m.invariantAST = nil
	m.invariantBC = nil
	m.guardAST = nil
	m.guardBC = nil
	m.stmtAST = nil
	m.stmtBC = nil

	return out
}
