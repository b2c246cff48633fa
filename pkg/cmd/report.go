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
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/clockguard/tcc/pkg/bytecode"
	"github.com/clockguard/tcc/pkg/diag"
	"github.com/clockguard/tcc/pkg/model"
	"github.com/clockguard/tcc/pkg/system"
)

func bytecodeDisasm(instrs []bytecode.Instr) string {
	var b strings.Builder

	for _, line := range strings.Split(strings.TrimRight(bytecode.Disassemble(instrs), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

const fallbackWidth = 80

// reportWidth returns the terminal width used for the separator rule between
// report entries, falling back to fallbackWidth when stdout is not a terminal.
func reportWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}

	return w
}

// PrintModel renders the pretty-printed typed AST and disassembled bytecode
// for every location and edge of m.
func PrintModel(w io.Writer, g *system.Graph, m *model.Model) {
	rule := strings.Repeat("-", reportWidth())

	for i := 0; i < g.LocationsCount(); i++ {
		loc := g.Location(system.LocationID(i))
		fmt.Fprintf(w, "location %d %q invariant: %s\n", i, loc.Name(), m.InvariantAST(loc.ID()).Pretty())
		fmt.Fprint(w, bytecodeDisasm(m.InvariantBytecode(loc.ID())))
		fmt.Fprintln(w, rule)
	}

	for j := 0; j < g.EdgesCount(); j++ {
		edge := g.Edge(system.EdgeID(j))
		fmt.Fprintf(w, "edge %d (%d -> %d, event %q)\n", j, edge.Source(), edge.Target(), edge.Event())
		fmt.Fprintf(w, "  guard: %s\n", m.GuardAST(edge.ID()).Pretty())
		fmt.Fprint(w, bytecodeDisasm(m.GuardBytecode(edge.ID())))
		fmt.Fprintf(w, "  statement: %s\n", m.StatementAST(edge.ID()).Pretty())
		fmt.Fprint(w, bytecodeDisasm(m.StatementBytecode(edge.ID())))
		fmt.Fprintln(w, rule)
	}
}

// PrintDiagnostics renders every recorded diagnostic as
// "[severity] context: message", using the fixed context-string convention
// from pkg/diag.
func PrintDiagnostics(w io.Writer, logger diag.RecordingLogger) {
	for _, r := range logger.Records() {
		fmt.Fprintf(w, "[%s] %s%s\n", r.Severity, r.Context, r.Message)
	}
}
