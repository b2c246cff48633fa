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
// Package diag implements the diagnostic sink the compilation pipeline
// reports to: a simple Error/Warning/ErrorCount contract, plus a
// structured-logging-backed implementation for the CLI and a pure in-memory
// implementation for tests.
package diag

import (
	log "github.com/sirupsen/logrus"
)

// Severity distinguishes a fatal diagnostic from an advisory one. Warnings
// never fail construction.
type Severity uint8

const (
	// SevError is a per-attribute error.
	SevError Severity = iota
	// SevWarning is an advisory diagnostic.
	SevWarning
)

func (s Severity) String() string {
	if s == SevWarning {
		return "warning"
	}

	return "error"
}

// Kind distinguishes the five error kinds the pipeline can report.
// Diagnostics reported through Logger.Error/Warning during per-attribute
// checking are always KindAttribute; the other kinds name failures that
// model.Build reports through its returned sentinel error rather than
// through Logger (a fatal weak-sync violation, for instance, aborts before
// any attribute is even checked).
type Kind uint8

const (
	// KindPrecondition is a structural precondition violation.
	KindPrecondition Kind = iota
	// KindAttribute is a per-attribute diagnostic.
	KindAttribute
	// KindWeakSync is the fatal weak-sync-with-guard violation.
	KindWeakSync
	// KindInternal is a compiler/type-checker disagreement.
	KindInternal
	// KindCompilationFailure is the post-pass error-count determination.
	KindCompilationFailure
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindWeakSync:
		return "weak-sync"
	case KindInternal:
		return "internal"
	case KindCompilationFailure:
		return "compilation-failure"
	default:
		return "attribute"
	}
}

// Record is one reported diagnostic, carrying the fixed attribute context
// string ("Attribute invariant: ...", etc.) and the message.
type Record struct {
	Severity Severity
	Kind     Kind
	Context  string
	Message  string
}

// Logger is the producer-facing diagnostic sink contract.
type Logger interface {
	// Error reports a fatal per-attribute diagnostic.
	Error(context, message string)
	// Warning reports an advisory diagnostic that never fails construction.
	Warning(context, message string)
	// ErrorCount returns the number of Error calls made so far.
	ErrorCount() int
	// Errors returns every Error-severity diagnostic reported so far.
	Errors() []Record
	// Warnings returns every Warning-severity diagnostic reported so far.
	Warnings() []Record
}

// RecordingLogger is implemented by loggers that retain every diagnostic
// they have received, for test assertions and CLI reporting.
type RecordingLogger interface {
	Logger
	// Records returns every diagnostic reported so far, in report order.
	Records() []Record
}

// CollectingLogger is a pure in-memory Logger: it has no side effect beyond
// recording. It is the logger used throughout this module's own tests,
// returning plain diagnostic slices from compiler passes for assertions.
type CollectingLogger struct {
	records  []Record
	errCount int
}

// NewCollectingLogger constructs an empty CollectingLogger.
func NewCollectingLogger() *CollectingLogger {
	return &CollectingLogger{}
}

// Error reports a fatal per-attribute diagnostic.
func (l *CollectingLogger) Error(context, message string) {
	l.records = append(l.records, Record{Severity: SevError, Kind: KindAttribute, Context: context, Message: message})
	l.errCount++
}

// Warning reports an advisory diagnostic.
func (l *CollectingLogger) Warning(context, message string) {
	l.records = append(l.records, Record{Severity: SevWarning, Kind: KindAttribute, Context: context, Message: message})
}

// ErrorCount returns the number of Error calls made so far.
func (l *CollectingLogger) ErrorCount() int { return l.errCount }

// Records returns every diagnostic reported so far, in report order.
func (l *CollectingLogger) Records() []Record {
	return l.records
}

// Errors returns the subset of Records with SevError.
func (l *CollectingLogger) Errors() []Record { return l.filter(SevError) }

// Warnings returns the subset of Records with SevWarning.
func (l *CollectingLogger) Warnings() []Record { return l.filter(SevWarning) }

func (l *CollectingLogger) filter(sev Severity) []Record {
	var out []Record

	for _, r := range l.records {
		if r.Severity == sev {
			out = append(out, r)
		}
	}

	return out
}

// LogrusLogger is the default Logger used by the CLI: every diagnostic is
// both recorded (so model.Build can check ErrorCount) and emitted as a
// structured logrus entry, with a "context" field, at ErrorLevel or
// WarnLevel respectively.
type LogrusLogger struct {
	*CollectingLogger
	entry *log.Entry
}

// NewLogrusLogger constructs a LogrusLogger writing through the given
// *logrus.Logger. Pass logrus.StandardLogger() to use the package-global
// logger.
func NewLogrusLogger(base *log.Logger) *LogrusLogger {
	return &LogrusLogger{
		CollectingLogger: NewCollectingLogger(),
		entry:            log.NewEntry(base),
	}
}

// Error reports a fatal per-attribute diagnostic, both recording it and
// emitting it at ErrorLevel.
func (l *LogrusLogger) Error(context, message string) {
	l.entry.WithField("context", context).Error(message)
	l.CollectingLogger.Error(context, message)
}

// Warning reports an advisory diagnostic, both recording it and emitting it
// at WarnLevel.
func (l *LogrusLogger) Warning(context, message string) {
	l.entry.WithField("context", context).Warn(message)
	l.CollectingLogger.Warning(context, message)
}

// Context prefixes used verbatim by the type checker so diagnostics are
// stable and tests can match on them.
const (
	// CtxInvariant prefixes diagnostics about a location's invariant.
	CtxInvariant = "Attribute invariant: "
	// CtxGuard prefixes diagnostics about an edge's guard ("provided").
	CtxGuard = "Attribute provided: "
	// CtxStatement prefixes diagnostics about an edge's statement ("do").
	CtxStatement = "Attribute do: "
)
