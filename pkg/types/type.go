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
// Package types defines the type tags attached to every node of the typed
// AST.
package types

import (
	"fmt"

	"github.com/clockguard/tcc/pkg/interval"
)

// Tag discriminates the five type-tag cases.
type Tag uint8

const (
	// Int is an integer-valued expression with a known static range.
	Int Tag = iota
	// Clock is a clock-valued expression.
	Clock
	// ClockDiff is the form "x - y" where both x and y are clock-typed; it
	// is only well-formed as the left side of a clock comparison.
	ClockDiff
	// Bool is a propositional expression; the only type admissible as a
	// guard or invariant.
	Bool
	// Bad is assigned to any subtree that failed typing; it propagates to
	// every ancestor up to the attribute root.
	Bad
)

func (t Tag) String() string {
	switch t {
	case Int:
		return "int"
	case Clock:
		return "clock"
	case ClockDiff:
		return "clock_diff"
	case Bool:
		return "bool"
	default:
		return "bad"
	}
}

// Type is the full type-tag value: a Tag plus, for Int, the static range.
type Type struct {
	Tag   Tag
	Range interval.Interval
}

// NewInt constructs an Int{lo,hi} type.
func NewInt(lo, hi int64) Type { return Type{Tag: Int, Range: interval.New(lo, hi)} }

// NewClock constructs the Clock type.
func NewClock() Type { return Type{Tag: Clock} }

// NewClockDiff constructs the ClockDiff type.
func NewClockDiff() Type { return Type{Tag: ClockDiff} }

// NewBool constructs the Bool type.
func NewBool() Type { return Type{Tag: Bool} }

// NewBad constructs the Bad type.
func NewBad() Type { return Type{Tag: Bad} }

// IsBad reports whether this is the Bad tag.
func (t Type) IsBad() bool { return t.Tag == Bad }

// IsInt reports whether this is the Int tag.
func (t Type) IsInt() bool { return t.Tag == Int }

// IsBool reports whether this is the Bool tag.
func (t Type) IsBool() bool { return t.Tag == Bool }

// IsClock reports whether this is the Clock tag.
func (t Type) IsClock() bool { return t.Tag == Clock }

// IsClockDiff reports whether this is the ClockDiff tag.
func (t Type) IsClockDiff() bool { return t.Tag == ClockDiff }

// String renders the type for diagnostics, e.g. "int[0,10]", "clock", "bool".
func (t Type) String() string {
	if t.Tag == Int {
		return fmt.Sprintf("int[%d,%d]", t.Range.Low, t.Range.High)
	}

	return t.Tag.String()
}
