// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Prune:  DefaultPruneConfig(),
		Global: DefaultGlobalConfig(),
	}
}

// DefaultPruneConfig returns default prune configuration.
func DefaultPruneConfig() PruneConfig {
	return PruneConfig{
		DefaultKeep:   10,
		BackupDirName: "prune-backup",
	}
}

// DefaultGlobalConfig returns default global configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		LogLevel: "info",
	}
}

// GetDefaultConfigPath returns the default global config file path.
func GetDefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile)
}
