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
// Package env defines the variable environment: the immutable, read-only
// map from declared names to their kind (integer variable or clock), flat
// index and bounds/dimension, against which guards, invariants and
// statements are type-checked.
package env

import (
	"fmt"
	"sort"
)

// Kind discriminates the two disjoint declaration lists.
type Kind uint8

const (
	// IntVarKind identifies a bounded integer variable (or array thereof).
	IntVarKind Kind = iota
	// ClockKind identifies a real-valued clock (or array thereof).
	ClockKind
)

func (k Kind) String() string {
	if k == ClockKind {
		return "clock"
	}

	return "int"
}

// Entry is the result of a successful Lookup. Low/High are meaningful only
// when Kind is IntVarKind.
type Entry struct {
	Kind  Kind
	Index int
	Dim   int
	Low   int64
	High  int64
}

// IsScalar reports whether this declaration is a scalar (dim 1); scalars may
// not be indexed.
func (e Entry) IsScalar() bool { return e.Dim == 1 }

// IntVar is one declared integer variable or integer-variable array.
type IntVar struct {
	Name  string
	Index int
	Dim   int
	Low   int64
	High  int64
}

// Clock is one declared clock or clock array.
type Clock struct {
	Name  string
	Index int
	Dim   int
}

// Environment is the immutable, read-only result of Builder.Build.
type Environment struct {
	intVars []IntVar
	clocks  []Clock
	byName  map[string]Entry
}

// Lookup returns the declaration for name and true, or a zero Entry and
// false if name is undeclared. Type-checking reports "undeclared identifier"
// on the false case.
func (e *Environment) Lookup(name string) (Entry, bool) {
	entry, ok := e.byName[name]
	return entry, ok
}

// IntVars returns the integer-variable declarations, sorted by name.
func (e *Environment) IntVars() []IntVar { return e.intVars }

// Clocks returns the clock declarations, sorted by name.
func (e *Environment) Clocks() []Clock { return e.clocks }

// ZeroClockIndex is the reserved clock index meaning "the constant zero
// clock", used to compile unary clock constraints such as "c <= 3" into the
// binary CLKCONSTR form "c - zero <= 3".
const ZeroClockIndex = -1

// Builder accumulates declarations before producing an Environment. It is
// not safe for concurrent use; construction is single-threaded.
type Builder struct {
	intVars []IntVar
	clocks  []Clock
	names   map[string]struct{}
}

// NewBuilder constructs an empty Builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]struct{})}
}

// AddIntVar declares an integer variable or array. dim must be >= 1 and
// low <= high.
func (b *Builder) AddIntVar(name string, dim int, low, high int64) error {
	if err := b.reserve(name); err != nil {
		return err
	}

	if dim < 1 {
		return fmt.Errorf("env: %q: array size must be >= 1, got %d", name, dim)
	}

	if low > high {
		return fmt.Errorf("env: %q: empty range [%d,%d]", name, low, high)
	}

	b.intVars = append(b.intVars, IntVar{Name: name, Dim: dim, Low: low, High: high})

	return nil
}

// AddClock declares a clock or clock array. dim must be >= 1.
func (b *Builder) AddClock(name string, dim int) error {
	if err := b.reserve(name); err != nil {
		return err
	}

	if dim < 1 {
		return fmt.Errorf("env: %q: array size must be >= 1, got %d", name, dim)
	}

	b.clocks = append(b.clocks, Clock{Name: name, Dim: dim})

	return nil
}

func (b *Builder) reserve(name string) error {
	if name == "" {
		return fmt.Errorf("env: empty variable name")
	}

	if _, exists := b.names[name]; exists {
		return fmt.Errorf("env: %q already declared", name)
	}

	b.names[name] = struct{}{}

	return nil
}

// Build sorts both declaration lists by name, assigns 0-based flat indices
// in sorted order, and returns the resulting immutable Environment. Sorting
// makes the assignment of flat indices independent of declaration order,
// which keeps bytecode compilation deterministic across equivalent builds.
func (b *Builder) Build() *Environment {
	intVars := append([]IntVar(nil), b.intVars...)
	clocks := append([]Clock(nil), b.clocks...)

	sort.Slice(intVars, func(i, j int) bool { return intVars[i].Name < intVars[j].Name })
	sort.Slice(clocks, func(i, j int) bool { return clocks[i].Name < clocks[j].Name })

	byName := make(map[string]Entry, len(intVars)+len(clocks))

	for i := range intVars {
		intVars[i].Index = i
		byName[intVars[i].Name] = Entry{
			Kind: IntVarKind, Index: i, Dim: intVars[i].Dim,
			Low: intVars[i].Low, High: intVars[i].High,
		}
	}

	for i := range clocks {
		clocks[i].Index = i
		byName[clocks[i].Name] = Entry{Kind: ClockKind, Index: i, Dim: clocks[i].Dim}
	}

	return &Environment{intVars: intVars, clocks: clocks, byName: byName}
}
