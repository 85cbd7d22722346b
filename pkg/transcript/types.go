// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package transcript implements the transcript pruning engine: boundary
// discovery, reference-tracking rewrite, and the usage-counter adjustment
// described for context-prune. The package is pure and side-effect-free —
// it never touches a filesystem, a clock, or a logger. Callers (pkg/session,
// cmd/context-prune) own all I/O.
package transcript

// RecordKind classifies a single transcript line.
type RecordKind int

const (
	// KindUnknown is the zero value; never assigned by Classify.
	KindUnknown RecordKind = iota
	// KindHead marks line index 0, regardless of its parsed type.
	KindHead
	// KindUser is a message record with type "user".
	KindUser
	// KindAssistant is a message record with type "assistant".
	KindAssistant
	// KindSystem is a message record with type "system".
	KindSystem
	// KindToolCall is a tool-invocation record (type "tool_call").
	KindToolCall
	// KindToolResult is a tool-result record (type "tool_result").
	KindToolResult
	// KindOther is a parsed record whose `type` is missing or is not one of
	// the kinds above.
	KindOther
	// KindOpaque is a line that failed to parse as a single JSON object.
	KindOpaque
)

// IsMessage reports whether k is one of the message record kinds
// (user/assistant/system), as defined in spec.md §3.
func (k RecordKind) IsMessage() bool {
	switch k {
	case KindUser, KindAssistant, KindSystem:
		return true
	default:
		return false
	}
}

// Line is the Line Classifier's output for a single input line.
type Line struct {
	Raw   string
	Index int
	Kind  RecordKind

	// InvocationIDs holds every tool_use content-item id contributed by
	// this line, populated for KindAssistant lines and for a KindHead line
	// that is itself an assistant record.
	InvocationIDs []string

	// ToolUseID is the invocation id this line references back to;
	// populated for KindToolResult lines and for a KindHead line that is
	// itself a tool_result record.
	ToolUseID string
}

// BoundaryKind distinguishes the two ways a Boundary can be discovered.
type BoundaryKind string

const (
	// BoundaryExplicitMarker is a boundary found via a literal
	// ===INTENT_BOUNDARY=== substring.
	BoundaryExplicitMarker BoundaryKind = "explicit-marker"
	// BoundaryDerivedCommit is a boundary derived from a successful
	// `git commit` tool-result.
	BoundaryDerivedCommit BoundaryKind = "derived-commit"
)

// Boundary is a candidate cut-point discovered by the Boundary Analyzer.
type Boundary struct {
	LineNumber          int
	Kind                BoundaryKind
	Description         string
	Timestamp           string
	Intent              string
	RetentionPercentage int
	CharacterCount      int
}

// Report summarizes the outcome of a Pruner operation.
type Report struct {
	Kept           int
	Dropped        int
	AssistantCount int // only meaningful for keep-by-assistant-count
}
