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
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clockguard/tcc/pkg/diag"
	"github.com/clockguard/tcc/pkg/model"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file.json>",
	Short: "Type-check and compile a system description into bytecode.",
	Long: "Reads a JSON system description, builds the environment and system graph, runs model " +
		"construction, and reports diagnostics; on success prints the typed AST and disassembled " +
		"bytecode for every location and edge.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		runCompile(args[0])
	},
}

func runCompile(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer f.Close()

	graph, environment, err := DecodeSystem(f)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger := diag.NewLogrusLogger(log.StandardLogger())

	m, err := model.Build(graph, environment, logger)
	if err != nil {
		PrintDiagnostics(os.Stdout, logger)
		fmt.Println(describeBuildError(err))
		os.Exit(1)
	}

	PrintModel(os.Stdout, graph, m)
}

func describeBuildError(err error) string {
	switch {
	case errors.Is(err, model.ErrWeakSync):
		return "Weakly synchronized event shall not be guarded: " + err.Error()
	case errors.Is(err, model.ErrInternal):
		return "internal error: " + err.Error()
	case errors.Is(err, model.ErrPrecondition):
		return "precondition violated: " + err.Error()
	default:
		return err.Error()
	}
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
