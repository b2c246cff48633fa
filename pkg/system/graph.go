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
// Package system implements the producer-facing "system graph": a read-only
// view of locations, edges, per-edge event labels and per-event
// weak-synchronization flags, and per-attribute untyped ASTs. The surface
// parser and the system/automaton topology that produces one of these are
// out of scope; this package gives the pipeline something concrete to run
// against, built programmatically or decoded from the literal fixture
// format in literal.go.
package system

import (
	"fmt"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/env"
)

// LocationID identifies a location by its 0-based position in the graph.
type LocationID int

// EdgeID identifies an edge by its 0-based position in the graph.
type EdgeID int

// Location is one control state, carrying the invariant that must hold
// while the system is in it.
type Location struct {
	id        LocationID
	name      string
	invariant ast.Expr
}

// ID returns this location's index.
func (l Location) ID() LocationID { return l.id }

// Name returns this location's declared name.
func (l Location) Name() string { return l.name }

// Invariant returns the untyped invariant expression guarding this location.
func (l Location) Invariant() ast.Expr { return l.invariant }

// Edge is one transition between two locations, labelled by an event and
// carrying the guard that must hold to take it and the statement executed
// atomically when it is taken.
type Edge struct {
	id        EdgeID
	source    LocationID
	target    LocationID
	event     string
	guard     ast.Expr
	statement ast.Stmt
}

// ID returns this edge's index.
func (e Edge) ID() EdgeID { return e.id }

// Source returns the location this edge departs from.
func (e Edge) Source() LocationID { return e.source }

// Target returns the location this edge arrives at.
func (e Edge) Target() LocationID { return e.target }

// Event returns this edge's event label, or "" if it is unlabelled (an
// unlabelled edge is never subject to the weak-sync rule).
func (e Edge) Event() string { return e.event }

// Guard returns the untyped guard expression.
func (e Edge) Guard() ast.Expr { return e.guard }

// Statement returns the untyped statement executed when this edge is taken.
func (e Edge) Statement() ast.Stmt { return e.statement }

// SyncVector records, per event name, whether that event is weakly
// synchronized.
type SyncVector struct {
	weak map[string]struct{}
}

// IsWeak reports whether event is flagged weakly synchronized.
func (v *SyncVector) IsWeak(event string) bool {
	if event == "" {
		return false
	}

	_, ok := v.weak[event]

	return ok
}

// Graph is the immutable, read-only result of Builder.Build.
type Graph struct {
	locations []Location
	edges     []Edge
	sync      *SyncVector
}

// LocationsCount returns the number of locations, L.
func (g *Graph) LocationsCount() int { return len(g.locations) }

// EdgesCount returns the number of edges, E.
func (g *Graph) EdgesCount() int { return len(g.edges) }

// Location returns the location at index i. Out-of-range i is a precondition
// violation.
func (g *Graph) Location(i LocationID) Location {
	if int(i) < 0 || int(i) >= len(g.locations) {
		panic(fmt.Sprintf("system: location index %d out of range [0,%d)", i, len(g.locations)))
	}

	return g.locations[i]
}

// Edge returns the edge at index j. Out-of-range j is a precondition
// violation.
func (g *Graph) Edge(j EdgeID) Edge {
	if int(j) < 0 || int(j) >= len(g.edges) {
		panic(fmt.Sprintf("system: edge index %d out of range [0,%d)", j, len(g.edges)))
	}

	return g.edges[j]
}

// SyncVector returns the graph's synchronization vector.
func (g *Graph) SyncVector() *SyncVector { return g.sync }

// Builder accumulates a system description before producing a Graph and its
// environment together. It is not safe for concurrent use.
type Builder struct {
	env       *env.Builder
	locations []Location
	edges     []Edge
	weak      map[string]struct{}
}

// NewBuilder constructs an empty Builder.
func NewBuilder() *Builder {
	return &Builder{env: env.NewBuilder(), weak: make(map[string]struct{})}
}

// AddIntVar declares an integer variable or array in the enclosing
// environment.
func (b *Builder) AddIntVar(name string, dim int, low, high int64) error {
	return b.env.AddIntVar(name, dim, low, high)
}

// AddClock declares a clock or clock array in the enclosing environment.
func (b *Builder) AddClock(name string, dim int) error {
	return b.env.AddClock(name, dim)
}

// AddLocation declares a location with the given invariant (pass ast.True()
// for a trivially-true invariant) and returns its assigned ID.
func (b *Builder) AddLocation(name string, invariant ast.Expr) LocationID {
	if invariant == nil {
		panic("system: nil invariant")
	}

	id := LocationID(len(b.locations))
	b.locations = append(b.locations, Location{id: id, name: name, invariant: invariant})

	return id
}

// AddEdge declares an edge from src to dst labelled by event (use "" for an
// unlabelled edge), with the given guard (pass ast.True() for an
// unconditional edge) and statement (pass ast.NewNop() for no-op), and
// returns its assigned ID. src and dst must already have been returned by
// AddLocation.
func (b *Builder) AddEdge(src, dst LocationID, event string, guard ast.Expr, stmt ast.Stmt) EdgeID {
	if guard == nil {
		panic("system: nil guard")
	}

	if stmt == nil {
		panic("system: nil statement")
	}

	if int(src) < 0 || int(src) >= len(b.locations) {
		panic(fmt.Sprintf("system: source location %d not yet declared", src))
	}

	if int(dst) < 0 || int(dst) >= len(b.locations) {
		panic(fmt.Sprintf("system: target location %d not yet declared", dst))
	}

	id := EdgeID(len(b.edges))
	b.edges = append(b.edges, Edge{id: id, source: src, target: dst, event: event, guard: guard, statement: stmt})

	return id
}

// MarkWeaklySynchronized flags event as weakly synchronized, activating the
// static-analysis rule against every edge labelled by it.
func (b *Builder) MarkWeaklySynchronized(event string) {
	if event == "" {
		panic("system: cannot mark the empty event weakly synchronized")
	}

	b.weak[event] = struct{}{}
}

// Build produces the immutable Graph and its Environment together.
func (b *Builder) Build() (*Graph, *env.Environment) {
	locations := append([]Location(nil), b.locations...)
	edges := append([]Edge(nil), b.edges...)

	weak := make(map[string]struct{}, len(b.weak))

	for e := range b.weak {
		weak[e] = struct{}{}
	}

	g := &Graph{locations: locations, edges: edges, sync: &SyncVector{weak: weak}}

	return g, b.env.Build()
}
