// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package tui is the interactive boundary picker for context-prune's
// `--boundary` mode.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor = lipgloss.Color("#00D4FF")
	MutedColor   = lipgloss.Color("#9CA3AF")
	BorderColor  = lipgloss.Color("#4B5563")
	HighlightBg  = lipgloss.Color("#2D3748")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	CursorStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Background(HighlightBg)

	MenuItemStyle = lipgloss.NewStyle()

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginTop(1)
)
