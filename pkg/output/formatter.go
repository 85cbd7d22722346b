// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output renders pkg/transcript results for the CLI: prune
// reports and boundary tables.
package output

import (
	"fmt"
	"strings"

	"github.com/cicd-ai-toolkit/context-prune/pkg/transcript"
)

// Formatter renders transcript.Report and transcript.Boundary values as
// human-readable text.
type Formatter struct {
	// dryRun prefixes report output with a notice that nothing was written.
	dryRun bool
}

// NewFormatter creates a new formatter.
func NewFormatter(dryRun bool) *Formatter {
	return &Formatter{dryRun: dryRun}
}

// FormatReport renders a prune report.
func (f *Formatter) FormatReport(sessionID string, report transcript.Report) string {
	var b strings.Builder

	if f.dryRun {
		fmt.Fprintf(&b, "dry run: %s would be pruned, nothing written\n", sessionID)
	} else {
		fmt.Fprintf(&b, "pruned %s\n", sessionID)
	}

	fmt.Fprintf(&b, "  kept:    %d message(s)\n", report.Kept)
	fmt.Fprintf(&b, "  dropped: %d message(s)\n", report.Dropped)
	if report.AssistantCount > 0 {
		fmt.Fprintf(&b, "  assistant turns observed: %d\n", report.AssistantCount)
	}

	return b.String()
}

// FormatBoundaries renders a boundary list as a plain table, one row per
// boundary, for the non-interactive `context-prune boundaries` command.
func (f *Formatter) FormatBoundaries(boundaries []transcript.Boundary) string {
	if len(boundaries) == 0 {
		return "no boundaries found\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-16s %-10s %s\n", "LINE", "KIND", "RETAIN%", "DESCRIPTION")
	for _, bound := range boundaries {
		fmt.Fprintf(&b, "%-6d %-16s %-10d %s\n", bound.LineNumber, bound.Kind, bound.RetentionPercentage, bound.Description)
	}
	return b.String()
}
