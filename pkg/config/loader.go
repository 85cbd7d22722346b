// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "CONTEXT_PRUNE"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".context-prune"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from a global file and the environment.
type Loader struct {
	skipGlobal bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// SkipGlobal skips loading the global config file, so the loaded config
// does not depend on the invoking user's home directory.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.context-prune/config.yaml)
// 3. Environment Variables (CONTEXT_PRUNE_*)
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if !l.skipGlobal {
		globalCfg, err := l.loadGlobalConfig()
		if err == nil {
			mergeConfig(cfg, globalCfg)
		}
		// Missing or unreadable global config is not an error - it's optional.
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path.
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// loadGlobalConfig loads global config from $HOME/.context-prune/config.yaml.
func (l *Loader) loadGlobalConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	globalPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile)
	return l.LoadFromPath(globalPath)
}

// applyEnvOverrides applies environment variable overrides.
// Format: CONTEXT_PRUNE_SECTION__KEY=value
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CONTEXT_PRUNE_PRUNE__DEFAULT_KEEP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Field: "prune.default_keep", Err: err}
		}
		cfg.Prune.DefaultKeep = n
	}
	if v := os.Getenv("CONTEXT_PRUNE_PRUNE__BACKUP_DIR_NAME"); v != "" {
		cfg.Prune.BackupDirName = v
	}
	if v := os.Getenv("CONTEXT_PRUNE_GLOBAL__LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}

	return nil
}

// mergeConfig merges src into dst (src overrides dst).
func mergeConfig(dst, src *Config) {
	if src.Prune.DefaultKeep > 0 {
		dst.Prune.DefaultKeep = src.Prune.DefaultKeep
	}
	if src.Prune.BackupDirName != "" {
		dst.Prune.BackupDirName = src.Prune.BackupDirName
	}
	if src.Global.LogLevel != "" {
		dst.Global.LogLevel = src.Global.LogLevel
	}
}

// GetEnvConfig returns all environment variables that start with
// CONTEXT_PRUNE_, for diagnostics.
func GetEnvConfig() map[string]string {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			kv := strings.SplitN(env, "=", 2)
			if len(kv) == 2 {
				result[kv[0]] = kv[1]
			}
		}
	}

	return result
}
