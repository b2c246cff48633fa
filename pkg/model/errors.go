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

import "errors"

// ErrPrecondition is returned (never panicked past this package's boundary) if a structural
// precondition is violated anywhere during construction; ErrWeakSync if
// static analysis rejects the system before any compilation starts;
// ErrInternal if the bytecode compiler is ever handed a typed-AST shape the
// type checker should never produce; ErrCompilationFailed if the logger
// recorded any per-attribute error after the full pass. Use errors.Is to
// test a returned error against these.
var (
	ErrPrecondition      = errors.New("model: structural precondition violated")
	ErrWeakSync          = errors.New("model: weakly synchronized event has a non-trivial guard")
	ErrInternal          = errors.New("model: internal compiler/type-checker disagreement")
	ErrCompilationFailed = errors.New("model: system compilation failed")
)
