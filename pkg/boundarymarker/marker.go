// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package boundarymarker is the "boundary writer" external collaborator
// from spec.md §6: it independently appends boundary-marker lines into a
// live session transcript. It is a Go port of the marker-injection half
// of original_source/hook/track-intent.py's inject_boundary_marker -
// the intent-generation machinery (the Claude CLI call, the relevance
// scoring table, the dedup cache) is out of scope for the pruning tool
// and is not ported. The transcript pruning core only ever reads what
// this package writes; it never calls into pkg/transcript.
package boundarymarker

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Marker is the literal substring the Boundary Analyzer searches for.
const Marker = "===INTENT_BOUNDARY==="

// Format renders a boundary-marker line for the given intent at the
// given instant. An empty intent omits the trailing "| intent" segment,
// matching track-intent.py's inject_boundary_marker behavior.
func Format(at time.Time, intent string) string {
	intent = strings.TrimSpace(intent)
	if intent == "" {
		return fmt.Sprintf("%s %s", Marker, at.Format(time.RFC3339))
	}
	return fmt.Sprintf("%s %s | %s", Marker, at.Format(time.RFC3339), intent)
}

// Append writes a boundary-marker line to the end of the transcript file
// at path, creating the file if it does not already exist. The marker is
// written as its own opaque line - it deliberately is not itself a
// well-formed transcript record, so the Line Classifier will treat it as
// KindOpaque while the Boundary Analyzer's raw-substring scan still finds
// it (spec.md §9).
func Append(path string, intent string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("boundarymarker: could not open %s: %w", path, err)
	}
	defer f.Close()

	line := Format(time.Now(), intent) + "\n"
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("boundarymarker: could not append to %s: %w", path, err)
	}
	return nil
}

// IsSessionReset reports whether a raw user-message line looks like a
// leading "/clear" or "/start" slash command. track-intent.py's boundary
// priority order treats a fresh session start as a natural place to also
// consider emitting a marker; this is a hook-side convenience only - the
// core Boundary Analyzer never calls this and recognizes only the two
// boundary kinds spec.md §3 defines.
func IsSessionReset(userMessageText string) bool {
	trimmed := strings.TrimSpace(userMessageText)
	return strings.HasPrefix(trimmed, "/clear") || strings.HasPrefix(trimmed, "/start")
}
