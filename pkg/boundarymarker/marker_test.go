// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package boundarymarker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_WithIntent(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	got := Format(at, "feat: add auth")
	assert.Equal(t, "===INTENT_BOUNDARY=== 2024-01-15T10:30:00Z | feat: add auth", got)
}

func TestFormat_WithoutIntent(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	got := Format(at, "")
	assert.Equal(t, "===INTENT_BOUNDARY=== 2024-01-15T10:30:00Z", got)
	assert.NotContains(t, got, "|")
}

func TestAppend_CreatesAndAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"summary"}`+"\n"), 0644))

	require.NoError(t, Append(path, "feat: X"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], Marker)
	assert.Contains(t, lines[1], "feat: X")
}

func TestIsSessionReset(t *testing.T) {
	assert.True(t, IsSessionReset("/clear"))
	assert.True(t, IsSessionReset("  /start now"))
	assert.False(t, IsSessionReset("hello /clear"))
	assert.False(t, IsSessionReset("regular message"))
}
