// Package main provides the context-prune CLI application.
package main

import (
	"github.com/cicd-ai-toolkit/context-prune/pkg/config"
	"github.com/cicd-ai-toolkit/context-prune/pkg/observability"
	"github.com/cicd-ai-toolkit/context-prune/pkg/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "context-prune",
	Short: "Prune a Claude Code session transcript",
	Long: `context-prune rewrites a long-running Claude Code session transcript
into a shorter one that preserves the logical tail of the conversation,
while keeping tool-result references intact and always backing up the
original file first.`,
	Version: version.FullString(),
}

// cfg is the loaded configuration, available to every subcommand.
var cfg *config.Config

// log is the CLI-layer structured logger. pkg/transcript never imports it.
var log observability.Logger

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	loaded, err := config.NewLoader().Load()
	if err != nil {
		loaded = config.DefaultConfig()
	}
	cfg = loaded
	log = observability.NewLogger(cfg.Global.LogLevel)
}
