// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

// KeepByAssistantCount implements spec.md §4.5's "keep-by-assistant-count"
// operation: retain the head plus everything from the keepN-th-to-last
// assistant record onward. A negative keepN clamps to zero.
func KeepByAssistantCount(lines []string, keepN int) ([]string, Report) {
	if keepN < 0 {
		keepN = 0
	}

	assistantIndices := assistantLineIndices(lines)
	a := len(assistantIndices)

	// See spec.md §9's "keepN == 0" open question: the literal formula
	// "(A - keepN)-th assistant-index, 0-based" is undefined at keepN=0
	// (it would index one past the last assistant); the original
	// implementation resolves that case to the first assistant index.
	cut := 1
	switch {
	case a <= keepN:
		cut = 1
	case keepN == 0:
		cut = assistantIndices[0]
	default:
		cut = assistantIndices[a-keepN]
	}

	rewritten := rewriteUsageCounters(lines)
	result := filterWithReferences(rewritten, cut)

	return result.lines, Report{
		Kept:           result.kept,
		Dropped:        result.dropped,
		AssistantCount: a,
	}
}

// KeepFromBoundary implements spec.md §4.5's "keep-from-boundary"
// operation: retain the head plus everything at or after line b. b <= 0
// behaves as 1; b beyond the last index drops everything after the head.
func KeepFromBoundary(lines []string, b int) ([]string, Report) {
	if b <= 0 {
		b = 1
	}

	rewritten := rewriteUsageCounters(lines)
	result := filterWithReferences(rewritten, b)

	return result.lines, Report{
		Kept:    result.kept,
		Dropped: result.dropped,
	}
}

// assistantLineIndices returns, in ascending order, the indices of every
// assistant record in lines, ignoring index 0 (the head is never counted
// as an assistant boundary even if it happens to parse as one).
func assistantLineIndices(lines []string) []int {
	var indices []int
	for i, raw := range lines {
		if i == 0 {
			continue
		}
		if Classify(raw, i).Kind == KindAssistant {
			indices = append(indices, i)
		}
	}
	return indices
}
