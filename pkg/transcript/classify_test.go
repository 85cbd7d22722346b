// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Head(t *testing.T) {
	l := Classify(`{"type":"summary"}`, 0)
	assert.Equal(t, KindHead, l.Kind)
}

func TestClassify_MessageKinds(t *testing.T) {
	assert.Equal(t, KindUser, Classify(`{"type":"user"}`, 1).Kind)
	assert.Equal(t, KindAssistant, Classify(`{"type":"assistant"}`, 1).Kind)
	assert.Equal(t, KindSystem, Classify(`{"type":"system"}`, 1).Kind)
}

func TestClassify_ToolCallAndResult(t *testing.T) {
	call := Classify(`{"type":"tool_call","name":"bash"}`, 1)
	assert.Equal(t, KindToolCall, call.Kind)

	result := Classify(`{"type":"tool_result","tool_use_id":"T1"}`, 2)
	require.Equal(t, KindToolResult, result.Kind)
	assert.Equal(t, "T1", result.ToolUseID)
}

func TestClassify_UnknownType(t *testing.T) {
	l := Classify(`{"type":"weird"}`, 1)
	assert.Equal(t, KindOther, l.Kind)
}

func TestClassify_OpaqueLine(t *testing.T) {
	l := Classify("not json at all", 3)
	assert.Equal(t, KindOpaque, l.Kind)
}

func TestClassify_AssistantContentInvocationIDs(t *testing.T) {
	raw := `{"type":"assistant","content":[{"type":"text","text":"hi"},{"type":"tool_use","id":"T1"},{"type":"tool_use","id":"T2"}]}`
	l := Classify(raw, 1)
	assert.Equal(t, []string{"T1", "T2"}, l.InvocationIDs)
}

func TestClassify_AssistantContentMissingOrMalformed(t *testing.T) {
	// content absent
	l := Classify(`{"type":"assistant"}`, 1)
	assert.Nil(t, l.InvocationIDs)

	// content not an array
	l = Classify(`{"type":"assistant","content":"plain text"}`, 1)
	assert.Nil(t, l.InvocationIDs)

	// tool_use item without an id
	l = Classify(`{"type":"assistant","content":[{"type":"tool_use"}]}`, 1)
	assert.Nil(t, l.InvocationIDs)
}

func TestClassify_IsMessage(t *testing.T) {
	assert.True(t, KindUser.IsMessage())
	assert.True(t, KindAssistant.IsMessage())
	assert.True(t, KindSystem.IsMessage())
	assert.False(t, KindToolCall.IsMessage())
	assert.False(t, KindToolResult.IsMessage())
	assert.False(t, KindOpaque.IsMessage())
}
