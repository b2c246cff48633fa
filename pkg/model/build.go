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
package model

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/clockguard/tcc/pkg/analysis"
	"github.com/clockguard/tcc/pkg/bytecode"
	"github.com/clockguard/tcc/pkg/diag"
	"github.com/clockguard/tcc/pkg/env"
	"github.com/clockguard/tcc/pkg/system"
	"github.com/clockguard/tcc/pkg/typecheck"
	"github.com/clockguard/tcc/pkg/typed"
)

// Build runs the single transactional construction step:
//
//  1. Static analysis over the system graph. Failure aborts immediately,
//     before any compilation, with ErrWeakSync.
//  2. For every location and edge, type-check the relevant attribute against
//     environment, then (if not bad) compile it to bytecode. Failures are
//     reported to logger with the attribute's fixed context string; they do
//     not abort the pass.
//  3. If logger recorded any error, construction fails with
//     ErrCompilationFailed and no Model is returned.
//
// A panic escaping from deeper in the pipeline (a structural precondition
// violation at an AST constructor boundary) is recovered here and reported
// as ErrPrecondition, so a caller such as the CLI never crashes on
// malformed input.
func Build(g *system.Graph, environment *env.Environment, logger diag.Logger) (built *Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			built = nil
			err = fmt.Errorf("%w: %v", ErrPrecondition, r)
		}
	}()

	return build(g, environment, logger)
}

// rebuild is Build with a private, throwaway logger, used by Model.Clone to
// recompile from the same system graph and environment.
func rebuild(g *system.Graph, environment *env.Environment) (built *Model, err error) {
	return Build(g, environment, diag.NewCollectingLogger())
}

func build(g *system.Graph, environment *env.Environment, logger diag.Logger) (*Model, error) {
	if violations := analysis.CheckWeakSync(g); len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrWeakSync, violations[0].String())
	}

	l := g.LocationsCount()
	e := g.EdgesCount()

	m := &Model{
		graph: g, environment: environment,
		invariantAST: make([]typed.Expr, l), invariantBC: make([][]bytecode.Instr, l),
		guardAST: make([]typed.Expr, e), guardBC: make([][]bytecode.Instr, e),
		stmtAST: make([]typed.Stmt, e), stmtBC: make([][]bytecode.Instr, e),
	}

	locCoverage := bitset.New(uint(l))
	edgeCoverage := bitset.New(uint(e))

	for i := 0; i < l; i++ {
		loc := g.Location(system.LocationID(i))
		ctx := diag.CtxInvariant + loc.Invariant().Pretty()

		texpr := typecheck.CheckGuard(loc.Invariant(), environment, logger, ctx)
		m.invariantAST[i] = texpr

		if texpr.Type().IsBad() {
			continue
		}

		bc, err := bytecode.CompileExpr(texpr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		m.invariantBC[i] = bc
		locCoverage.Set(uint(i))
	}

	for j := 0; j < e; j++ {
		edge := g.Edge(system.EdgeID(j))

		guardCtx := diag.CtxGuard + edge.Guard().Pretty()
		tguard := typecheck.CheckGuard(edge.Guard(), environment, logger, guardCtx)
		m.guardAST[j] = tguard

		if !tguard.Type().IsBad() {
			bc, err := bytecode.CompileExpr(tguard)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInternal, err)
			}

			m.guardBC[j] = bc
		}

		stmtCtx := diag.CtxStatement + edge.Statement().Pretty()
		tstmt := typecheck.CheckStmt(edge.Statement(), environment, logger, stmtCtx)
		m.stmtAST[j] = tstmt

		if !typed.IsBad(tstmt) {
			bc, err := bytecode.CompileStmt(tstmt)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInternal, err)
			}

			m.stmtBC[j] = bc
		}

		if !tguard.Type().IsBad() && !typed.IsBad(tstmt) {
			edgeCoverage.Set(uint(j))
		}
	}

	if logger.ErrorCount() > 0 {
		return nil, ErrCompilationFailed
	}

	if int(locCoverage.Count()) != l || int(edgeCoverage.Count()) != e {
		return nil, fmt.Errorf("%w: coverage invariant violated with zero reported errors", ErrInternal)
	}

	return m, nil
}
