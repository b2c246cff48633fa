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
// Package analysis implements the structural static-analysis predicates over
// the system graph that must hold before any compilation work begins.
package analysis

import (
	"fmt"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/system"
)

// Violation describes one edge that fails the guarded-weak-sync rule,
// carrying its (event, source, target) identity so the caller can report it
// richly.
type Violation struct {
	Edge   system.EdgeID
	Event  string
	Source system.LocationID
	Target system.LocationID
}

// String renders a one-line identification of the offending edge.
func (v Violation) String() string {
	return fmt.Sprintf("edge %d (event %q, %d -> %d)", v.Edge, v.Event, v.Source, v.Target)
}

// CheckWeakSync returns every edge labelled by a weakly-synchronized event
// whose guard is not structurally the constant-true expression. A nil result
// means the rule holds.
func CheckWeakSync(g *system.Graph) []Violation {
	var violations []Violation

	sync := g.SyncVector()

	for i := 0; i < g.EdgesCount(); i++ {
		e := g.Edge(system.EdgeID(i))

		if !sync.IsWeak(e.Event()) {
			continue
		}

		if ast.IsStructurallyTrue(e.Guard()) {
			continue
		}

		violations = append(violations, Violation{
			Edge: e.ID(), Event: e.Event(), Source: e.Source(), Target: e.Target(),
		})
	}

	return violations
}
