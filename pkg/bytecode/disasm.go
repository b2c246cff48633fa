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
package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble renders instrs as one line per instruction, indices from 0,
// suitable for the CLI's bytecode-listing report.
func Disassemble(instrs []Instr) string {
	var b strings.Builder

	for i, in := range instrs {
		fmt.Fprintf(&b, "%4d  %s\n", i, formatInstr(in))
	}

	return b.String()
}

func formatInstr(in Instr) string {
	switch in.Op {
	case PUSH:
		return fmt.Sprintf("%s %d", in.Op, in.K)
	case VLOAD, VSTORE, VLOADX, VSTOREX, CLKLOAD, CLKRESET, CLKRESETX:
		return fmt.Sprintf("%s %d", in.Op, in.I)
	case CLKDIFF:
		return fmt.Sprintf("%s %d %d", in.Op, in.I, in.J)
	case CLKCONSTR:
		return fmt.Sprintf("%s %d %d %s %d", in.Op, in.I, in.J, in.Rel, in.K)
	case JZ, JMP:
		return fmt.Sprintf("%s %+d", in.Op, in.I)
	case INDEX:
		return fmt.Sprintf("%s [%d,%d]", in.Op, in.I, in.J)
	default:
		return in.Op.String()
	}
}
