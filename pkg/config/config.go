// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for context-prune.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.context-prune/config.yaml
// 3. Environment Variables: CONTEXT_PRUNE_*
//
// Unlike the ambient config of a CI/CD toolkit, context-prune has no
// project-level config file: a session transcript is identified purely by
// its sessionId, not by the directory the CLI happens to run in.
package config

// Config represents the complete application configuration.
type Config struct {
	Prune  PruneConfig  `yaml:"prune"`
	Global GlobalConfig `yaml:"global"`
}

// PruneConfig contains defaults for the prune operation itself.
type PruneConfig struct {
	// DefaultKeep is the assistant-turn count used when --keep is omitted.
	DefaultKeep int `yaml:"default_keep"`
	// BackupDirName is the sibling directory backups are written under,
	// relative to the session file's own directory.
	BackupDirName string `yaml:"backup_dir_name"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return "config error in " + e.Path + ": " + e.Err.Error()
	}
	if e.Field != "" {
		return "config error for " + e.Field + ": " + e.Err.Error()
	}
	return "config error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
