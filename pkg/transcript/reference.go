// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

// filterResult is the Reference Tracker's output: the surviving lines plus
// kept/dropped message counts.
type filterResult struct {
	lines   []string
	kept    int
	dropped int
}

// filterWithReferences applies the Reference Tracker (spec.md §4.3) at cut
// index k: invocation-ids surviving at or after k are collected in pass 1,
// then tool_result orphans before that set are dropped in pass 2. The head
// (index 0) is always kept and never counted.
func filterWithReferences(lines []string, k int) filterResult {
	classified := make([]Line, len(lines))
	for i, raw := range lines {
		classified[i] = Classify(raw, i)
	}

	surviving := make(map[string]struct{})
	for i := k; i < len(classified); i++ {
		if classified[i].Kind != KindAssistant {
			continue
		}
		for _, id := range classified[i].InvocationIDs {
			surviving[id] = struct{}{}
		}
	}

	var out filterResult
	for i, l := range classified {
		if i == 0 {
			out.lines = append(out.lines, lines[i])
			continue
		}

		if i < k {
			if l.Kind.IsMessage() {
				out.dropped++
			}
			continue
		}

		if l.Kind == KindToolResult {
			if _, ok := surviving[l.ToolUseID]; !ok {
				continue
			}
		}

		out.lines = append(out.lines, lines[i])
		if l.Kind.IsMessage() {
			out.kept++
		}
	}

	return out
}
