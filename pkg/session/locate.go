// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package session locates, reads, backs up and restores Claude Code
// session transcript files on disk. It is the only package that touches
// the filesystem on behalf of the pruning core - pkg/transcript itself
// never does I/O.
package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cicd-ai-toolkit/context-prune/pkg/errors"
)

// ProjectsDir is the directory Claude Code stores per-project session
// transcripts under, relative to the user's home directory.
const ProjectsDir = ".claude/projects"

// Locate resolves the on-disk path of a session transcript for the given
// sessionId, scoped to cwd (typically the process's current working
// directory). The project directory name is cwd with path separators
// replaced by hyphens, matching Claude Code's own convention.
func Locate(cwd, sessionID string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.SessionError("could not determine home directory", err)
	}

	projectDir := hyphenate(cwd)
	return filepath.Join(homeDir, ProjectsDir, projectDir, sessionID+".jsonl"), nil
}

// hyphenate mirrors Claude Code's project-directory naming: an absolute
// path like /home/user/my-project becomes -home-user-my-project.
func hyphenate(path string) string {
	cleaned := filepath.Clean(path)
	return strings.ReplaceAll(cleaned, string(filepath.Separator), "-")
}

// Read loads a session transcript at path and splits it into a line list
// with CR/LF stripped and empty lines removed, per spec.md §6's input
// contract for the pruning core.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SessionError("could not read session file "+path, err)
	}

	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Write joins lines with "\n" separators and a single trailing newline,
// and writes the result to path, overwriting any existing content.
func Write(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.SessionError("could not write session file "+path, err)
	}
	return nil
}
