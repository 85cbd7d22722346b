// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cicd-ai-toolkit/context-prune/pkg/transcript"
)

// PickerKeyMap defines key bindings for the boundary picker, modeled on
// Finesssee-ProxyPilot/internal/tui/switch.go's SwitchKeyMap.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultPickerKeyMap returns the default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "cancel"),
		),
	}
}

// BoundaryPickerModel is the bubbletea model for choosing a cut boundary
// from the Boundary Analyzer's output.
type BoundaryPickerModel struct {
	boundaries []transcript.Boundary
	cursor     int
	quitting   bool
	chosen     *transcript.Boundary
}

// NewBoundaryPickerModel creates a new picker over the given boundaries,
// which must already be sorted by descending line_number (the Boundary
// Analyzer's own output order).
func NewBoundaryPickerModel(boundaries []transcript.Boundary) BoundaryPickerModel {
	return BoundaryPickerModel{boundaries: boundaries}
}

// Chosen returns the boundary the user selected, or nil if they cancelled.
func (m BoundaryPickerModel) Chosen() *transcript.Boundary {
	return m.chosen
}

// Init implements tea.Model.
func (m BoundaryPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BoundaryPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keys := DefaultPickerKeyMap()

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.boundaries)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, keys.Select):
		if m.cursor < len(m.boundaries) {
			chosen := m.boundaries[m.cursor]
			m.chosen = &chosen
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m BoundaryPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Choose a boundary"))
	b.WriteString("\n")

	if len(m.boundaries) == 0 {
		b.WriteString("no boundaries found in this transcript\n")
		return b.String()
	}

	separator := lipgloss.NewStyle().Foreground(BorderColor).Render(strings.Repeat("-", 40))
	b.WriteString(separator)
	b.WriteString("\n\n")

	for i, bound := range m.boundaries {
		cursor := "  "
		style := MenuItemStyle
		if i == m.cursor {
			cursor = CursorStyle.Render("> ")
			style = SelectedItemStyle
		}

		line := fmt.Sprintf("line %-6d %3d%% retained  %s", bound.LineNumber, bound.RetentionPercentage, bound.Description)
		b.WriteString(cursor)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("[enter] choose    [esc/q] cancel"))
	return b.String()
}

// RunPicker runs the boundary picker as a standalone TUI program and
// returns the chosen boundary, or nil if the user cancelled.
func RunPicker(boundaries []transcript.Boundary) (*transcript.Boundary, error) {
	model := NewBoundaryPickerModel(boundaries)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	result, ok := final.(BoundaryPickerModel)
	if !ok {
		return nil, nil
	}
	return result.Chosen(), nil
}
