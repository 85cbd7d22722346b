// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

const boundaryMarker = "===INTENT_BOUNDARY==="

var commitMessagePattern = regexp.MustCompile(`git commit -m ["']([^"']+)["']`)

var commitSuccessSubstrings = []string{"files changed", "insertions", "deletions"}

// AnalyzeBoundaries scans lines and returns the candidate boundary list
// (sorted by descending line_number, per spec.md §4.2 step 5) plus the
// total byte count used for retention-percentage math.
func AnalyzeBoundaries(lines []string) ([]Boundary, int) {
	if len(lines) == 0 {
		return nil, 0
	}

	offsets := make([]int, len(lines)+1)
	for i, l := range lines {
		offsets[i+1] = offsets[i] + len(l) + 1
	}
	byteTotal := offsets[len(lines)]

	var boundaries []Boundary
	for i, l := range lines {
		if b, ok := explicitMarkerBoundary(l, i); ok {
			boundaries = append(boundaries, finishBoundary(b, i, offsets, byteTotal))
			continue
		}
		if b, ok := derivedCommitBoundary(lines, i); ok {
			boundaries = append(boundaries, finishBoundary(b, i, offsets, byteTotal))
		}
	}

	sort.SliceStable(boundaries, func(i, j int) bool {
		return boundaries[i].LineNumber > boundaries[j].LineNumber
	})

	return boundaries, byteTotal
}

func finishBoundary(b Boundary, lineNumber int, offsets []int, byteTotal int) Boundary {
	b.LineNumber = lineNumber
	b.RetentionPercentage = retentionPercentage(offsets[lineNumber], byteTotal)
	b.CharacterCount = byteTotal - offsets[lineNumber]
	return b
}

// retentionPercentage implements round(100 * (byte_total - offset) / byte_total).
func retentionPercentage(offset, byteTotal int) int {
	if byteTotal == 0 {
		return 0
	}
	retained := byteTotal - offset
	return int((100*retained + byteTotal/2) / byteTotal)
}

// explicitMarkerBoundary detects the ===INTENT_BOUNDARY=== substring on raw
// line bytes, independent of JSON structure, per spec.md §9's instruction
// that detection must not be restricted to non-JSON lines.
func explicitMarkerBoundary(raw string, _ int) (Boundary, bool) {
	idx := strings.Index(raw, boundaryMarker)
	if idx < 0 {
		return Boundary{}, false
	}

	rest := raw[idx+len(boundaryMarker):]
	// A marker embedded in a JSON string value ends at that string's
	// closing (unescaped) quote; the JSON that follows is not part of it.
	if json.Valid([]byte(raw)) {
		for q := 0; q < len(rest); q++ {
			if rest[q] == '\\' {
				q++
				continue
			}
			if rest[q] == '"' {
				rest = rest[:q]
				break
			}
		}
	}
	rest = strings.TrimSpace(rest)
	var ts, intent, description string
	if pipe := strings.Index(rest, "|"); pipe >= 0 {
		ts = strings.TrimSpace(rest[:pipe])
		intent = strings.TrimSpace(rest[pipe+1:])
		description = intent
	} else {
		ts = strings.TrimSpace(rest)
		description = "Boundary marker"
	}

	return Boundary{
		Kind:        BoundaryExplicitMarker,
		Description: description,
		Timestamp:   ts,
		Intent:      intent,
	}, true
}

// derivedCommitBoundary detects a successful `git commit` via a bash
// tool_result record whose content mentions a commit-stat summary, then
// walks backward for the originating bash tool_call to label it.
func derivedCommitBoundary(lines []string, i int) (Boundary, bool) {
	var rec struct {
		Type    string `json:"type"`
		Name    string `json:"name"`
		Content any    `json:"content"`
	}
	if err := json.Unmarshal([]byte(lines[i]), &rec); err != nil {
		return Boundary{}, false
	}
	if rec.Type != "tool_result" || rec.Name != "bash" {
		return Boundary{}, false
	}

	content, ok := rec.Content.(string)
	if !ok {
		return Boundary{}, false
	}
	if !containsAny(content, commitSuccessSubstrings) {
		return Boundary{}, false
	}

	description := "Successful commit"
	if msg, ok := findCommitMessage(lines, i); ok {
		description = "Git commit: " + msg
	}

	return Boundary{Kind: BoundaryDerivedCommit, Description: description}, true
}

// findCommitMessage walks backward from i looking for the nearest bash
// tool_call whose parameters.command matches a `git commit -m "..."` form.
func findCommitMessage(lines []string, i int) (string, bool) {
	for j := i - 1; j >= 0; j-- {
		var rec struct {
			Type       string `json:"type"`
			Name       string `json:"name"`
			Parameters struct {
				Command string `json:"command"`
			} `json:"parameters"`
		}
		if err := json.Unmarshal([]byte(lines[j]), &rec); err != nil {
			continue
		}
		if rec.Type != "tool_call" || rec.Name != "bash" {
			continue
		}
		if m := commitMessagePattern.FindStringSubmatch(rec.Parameters.Command); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
