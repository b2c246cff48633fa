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
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/clockguard/tcc/pkg/ast"
	"github.com/clockguard/tcc/pkg/env"
	"github.com/clockguard/tcc/pkg/system"
)

// systemDoc is the on-disk shape of a "tcc compile" input file: declarations
// plus per-location/edge attributes given in the literal expression format
// of pkg/system/literal.go. This is a convenience format for this CLI and
// its fixtures, not a claim about any real surface syntax.
type systemDoc struct {
	IntVars []struct {
		Name string `json:"name"`
		Dim  int    `json:"dim"`
		Low  int64  `json:"low"`
		High int64  `json:"high"`
	} `json:"int_vars"`
	Clocks []struct {
		Name string `json:"name"`
		Dim  int    `json:"dim"`
	} `json:"clocks"`
	WeakEvents []string `json:"weak_events"`
	Locations  []struct {
		Name      string `json:"name"`
		Invariant string `json:"invariant"`
	} `json:"locations"`
	Edges []struct {
		Source    int    `json:"source"`
		Target    int    `json:"target"`
		Event     string `json:"event"`
		Guard     string `json:"guard"`
		Statement string `json:"statement"`
	} `json:"edges"`
}

// DecodeSystem reads a JSON system description from r and builds the
// corresponding system.Graph and env.Environment.
func DecodeSystem(r io.Reader) (*system.Graph, *env.Environment, error) {
	var doc systemDoc

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("cmd: decoding system description: %w", err)
	}

	b := system.NewBuilder()

	for _, v := range doc.IntVars {
		if err := b.AddIntVar(v.Name, v.Dim, v.Low, v.High); err != nil {
			return nil, nil, err
		}
	}

	for _, c := range doc.Clocks {
		if err := b.AddClock(c.Name, c.Dim); err != nil {
			return nil, nil, err
		}
	}

	for _, event := range doc.WeakEvents {
		b.MarkWeaklySynchronized(event)
	}

	for _, loc := range doc.Locations {
		invariant, err := literalOrTrue(loc.Invariant)
		if err != nil {
			return nil, nil, fmt.Errorf("cmd: location %q: %w", loc.Name, err)
		}

		b.AddLocation(loc.Name, invariant)
	}

	for i, e := range doc.Edges {
		guard, err := literalOrTrue(e.Guard)
		if err != nil {
			return nil, nil, fmt.Errorf("cmd: edge %d: %w", i, err)
		}

		stmt, err := literalOrNop(e.Statement)
		if err != nil {
			return nil, nil, fmt.Errorf("cmd: edge %d: %w", i, err)
		}

		b.AddEdge(system.LocationID(e.Source), system.LocationID(e.Target), e.Event, guard, stmt)
	}

	g, environment := b.Build()

	return g, environment, nil
}

func literalOrTrue(src string) (ast.Expr, error) {
	if src == "" {
		return ast.True(), nil
	}

	return system.ParseExpr(src)
}

func literalOrNop(src string) (ast.Stmt, error) {
	if src == "" {
		return ast.NewNop(), nil
	}

	return system.ParseStmt(src)
}
