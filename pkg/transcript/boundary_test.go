// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBoundaries_Empty(t *testing.T) {
	boundaries, byteTotal := AnalyzeBoundaries(nil)
	assert.Empty(t, boundaries)
	assert.Equal(t, 0, byteTotal)
}

func TestAnalyzeBoundaries_ExplicitMarker(t *testing.T) {
	lines := []string{
		"0123456789",
		"abcdefghij",
		`===INTENT_BOUNDARY=== 2024-01-15T10:30:00 | feat: add auth`,
		"0123456789",
	}

	boundaries, byteTotal := AnalyzeBoundaries(lines)
	require.Len(t, boundaries, 1)
	assert.Equal(t, 92, byteTotal)

	b := boundaries[0]
	assert.Equal(t, 2, b.LineNumber)
	assert.Equal(t, BoundaryExplicitMarker, b.Kind)
	assert.Equal(t, "feat: add auth", b.Description)
	assert.Equal(t, "feat: add auth", b.Intent)
	assert.Equal(t, "2024-01-15T10:30:00", b.Timestamp)
	assert.Equal(t, 76, b.RetentionPercentage)
}

func TestAnalyzeBoundaries_ExplicitMarkerWithoutIntent(t *testing.T) {
	lines := []string{`{"type":"summary"}`, `===INTENT_BOUNDARY=== 2024-01-15T10:30:00`}
	boundaries, _ := AnalyzeBoundaries(lines)
	require.Len(t, boundaries, 1)
	assert.Equal(t, "Boundary marker", boundaries[0].Description)
	assert.Empty(t, boundaries[0].Intent)
}

func TestAnalyzeBoundaries_MarkerInsideJSONString(t *testing.T) {
	raw := `{"type":"assistant","content":[{"type":"text","text":"===INTENT_BOUNDARY=== 2024-01-01T00:00:00 | wrapped"}]}`
	boundaries, _ := AnalyzeBoundaries([]string{`{"type":"summary"}`, raw})
	require.Len(t, boundaries, 1)
	assert.Equal(t, "wrapped", boundaries[0].Description)
}

func TestAnalyzeBoundaries_DerivedCommitWithMessage(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`{"type":"tool_call","name":"bash","parameters":{"command":"git commit -m \"feat: X\""}}`,
		`{"type":"tool_result","name":"bash","content":"1 file changed, 5 insertions(+)"}`,
	}

	boundaries, _ := AnalyzeBoundaries(lines)
	require.Len(t, boundaries, 1)
	b := boundaries[0]
	assert.Equal(t, 2, b.LineNumber)
	assert.Equal(t, BoundaryDerivedCommit, b.Kind)
	assert.Equal(t, "Git commit: feat: X", b.Description)
}

func TestAnalyzeBoundaries_DerivedCommitWithoutMatchingCall(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`{"type":"tool_result","name":"bash","content":"2 files changed"}`,
	}

	boundaries, _ := AnalyzeBoundaries(lines)
	require.Len(t, boundaries, 1)
	assert.Equal(t, "Successful commit", boundaries[0].Description)
}

func TestAnalyzeBoundaries_SortedDescending(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`===INTENT_BOUNDARY=== ts1`,
		`{"type":"user"}`,
		`===INTENT_BOUNDARY=== ts2`,
	}

	boundaries, _ := AnalyzeBoundaries(lines)
	require.Len(t, boundaries, 2)
	assert.Equal(t, 3, boundaries[0].LineNumber)
	assert.Equal(t, 1, boundaries[1].LineNumber)
}

func TestAnalyzeBoundaries_RetentionInRange(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`===INTENT_BOUNDARY=== a`,
		`{"type":"tool_result","name":"bash","content":"3 files changed"}`,
	}

	boundaries, _ := AnalyzeBoundaries(lines)
	for _, b := range boundaries {
		assert.GreaterOrEqual(t, b.RetentionPercentage, 0)
		assert.LessOrEqual(t, b.RetentionPercentage, 100)
	}
}
