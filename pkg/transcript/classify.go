// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

import "encoding/json"

// Classify parses a single raw line and returns its classification. It is
// best-effort and total: every line, including ones that fail to parse,
// yields a Line. index is the line's zero-based position in the transcript;
// index 0 is always classified KindHead regardless of parse outcome.
func Classify(raw string, index int) Line {
	line := Line{Raw: raw, Index: index}

	var rec map[string]any
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		line.Kind = KindOpaque
		if index == 0 {
			line.Kind = KindHead
		}
		return line
	}

	typ, _ := rec["type"].(string)

	switch {
	case index == 0:
		line.Kind = KindHead
	case typ == "user":
		line.Kind = KindUser
	case typ == "assistant":
		line.Kind = KindAssistant
	case typ == "system":
		line.Kind = KindSystem
	case typ == "tool_call":
		line.Kind = KindToolCall
	case typ == "tool_result":
		line.Kind = KindToolResult
	default:
		line.Kind = KindOther
	}

	if line.Kind == KindToolResult || (index == 0 && typ == "tool_result") {
		if id, ok := rec["tool_use_id"].(string); ok {
			line.ToolUseID = id
		}
	}

	if line.Kind == KindAssistant || (index == 0 && typ == "assistant") {
		line.InvocationIDs = extractInvocationIDs(rec)
	}

	return line
}

// extractInvocationIDs pulls every id off content[].type=="tool_use"
// elements of an assistant record. A missing or malformed content array,
// or a tool_use element without an id, is non-fatal: it simply contributes
// nothing.
func extractInvocationIDs(rec map[string]any) []string {
	content, ok := rec["content"].([]any)
	if !ok {
		return nil
	}

	var ids []string
	for _, item := range content {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if kind, _ := obj["type"].(string); kind != "tool_use" {
			continue
		}
		if id, ok := obj["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
