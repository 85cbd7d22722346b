// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestKeepByAssistantCount_AllPreserved(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`{"type":"user","uuid":"1"}`,
		`{"type":"assistant","uuid":"2"}`,
	}

	out, report := KeepByAssistantCount(lines, 5)
	assert.Equal(t, lines, out)
	assert.Equal(t, Report{Kept: 2, Dropped: 0, AssistantCount: 1}, report)
}

func TestKeepByAssistantCount_CutWithOrphans(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`{"type":"assistant","content":[{"type":"tool_use","id":"T1"}]}`,
		`{"type":"tool_result","tool_use_id":"T1"}`,
		`{"type":"assistant","content":[{"type":"tool_use","id":"T2"}]}`,
		`{"type":"tool_result","tool_use_id":"T2"}`,
	}

	out, report := KeepByAssistantCount(lines, 1)
	require.Equal(t, []string{lines[0], lines[3], lines[4]}, out)
	assert.Equal(t, 1, report.Kept)
	assert.NotContains(t, out, lines[1])
	assert.NotContains(t, out, lines[2])
}

func TestKeepByAssistantCount_CacheZero(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`{"type":"user","usage":{"cache_read_input_tokens":500}}`,
		`{"type":"assistant","usage":{"cache_read_input_tokens":1000}}`,
		`{"type":"user","usage":{"cache_read_input_tokens":1500}}`,
	}

	out, _ := KeepByAssistantCount(lines, 10)
	require.Len(t, out, 4)
	assert.Equal(t, int64(500), gjson.Get(out[1], "usage.cache_read_input_tokens").Int())
	assert.Equal(t, int64(1000), gjson.Get(out[2], "usage.cache_read_input_tokens").Int())
	assert.Equal(t, int64(0), gjson.Get(out[3], "usage.cache_read_input_tokens").Int())
}

func TestKeepByAssistantCount_KeepZeroWithAssistants(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`{"type":"assistant","content":[{"type":"tool_use","id":"T1"}]}`,
		`{"type":"tool_result","tool_use_id":"T1"}`,
	}

	out, report := KeepByAssistantCount(lines, 0)
	assert.Equal(t, []string{lines[0], lines[1], lines[2]}, out)
	assert.Equal(t, 1, report.AssistantCount)
}

func TestKeepByAssistantCount_KeepZeroNoAssistants(t *testing.T) {
	lines := []string{`{"type":"summary"}`, `{"type":"user"}`}
	out, report := KeepByAssistantCount(lines, 0)
	assert.Equal(t, []string{lines[0]}, out)
	assert.Equal(t, 0, report.AssistantCount)
	assert.Equal(t, 1, report.Dropped)
}

func TestKeepByAssistantCount_NegativeKeepNClampsToZero(t *testing.T) {
	lines := []string{`{"type":"summary"}`, `{"type":"user"}`}
	withNegative, _ := KeepByAssistantCount(lines, -3)
	withZero, _ := KeepByAssistantCount(lines, 0)
	assert.Equal(t, withZero, withNegative)
}

func TestKeepByAssistantCount_HeadAlwaysKept(t *testing.T) {
	lines := []string{"not json at all", `{"type":"user"}`}
	out, _ := KeepByAssistantCount(lines, 0)
	assert.Equal(t, lines[0], out[0])
}

func TestKeepFromBoundary_BoundaryOne(t *testing.T) {
	lines := []string{`{"type":"summary"}`, `{"type":"user"}`, `{"type":"assistant"}`}
	out, report := KeepFromBoundary(lines, 1)
	assert.Equal(t, lines, out)
	assert.Equal(t, 0, report.Dropped)
}

func TestKeepFromBoundary_BeyondLastIndex(t *testing.T) {
	lines := []string{`{"type":"summary"}`, `{"type":"user"}`, `{"type":"assistant"}`}
	out, report := KeepFromBoundary(lines, 99)
	assert.Equal(t, []string{lines[0]}, out)
	assert.Equal(t, 2, report.Dropped)
}

func TestKeepFromBoundary_NonPositiveClampsToOne(t *testing.T) {
	lines := []string{`{"type":"summary"}`, `{"type":"user"}`}
	withZero, _ := KeepFromBoundary(lines, 0)
	withOne, _ := KeepFromBoundary(lines, 1)
	assert.Equal(t, withOne, withZero)
}

func TestKeepByAssistantCount_Idempotence(t *testing.T) {
	lines := []string{
		`{"type":"summary"}`,
		`{"type":"assistant","content":[{"type":"tool_use","id":"T1"}]}`,
		`{"type":"tool_result","tool_use_id":"T1"}`,
		`{"type":"assistant","content":[{"type":"tool_use","id":"T2"}]}`,
		`{"type":"tool_result","tool_use_id":"T2"}`,
	}

	once, report := KeepByAssistantCount(lines, 1)
	require.GreaterOrEqual(t, report.AssistantCount, 0)

	twice, _ := KeepByAssistantCount(once, 5)
	assert.Equal(t, once, twice)
}
