// Package main provides the context-prune CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/context-prune/pkg/errors"
	"github.com/cicd-ai-toolkit/context-prune/pkg/observability"
	"github.com/cicd-ai-toolkit/context-prune/pkg/session"
)

var restoreBackupPath string

var restoreCmd = &cobra.Command{
	Use:   "restore <sessionId>",
	Short: "Restore a session transcript from backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	restoreCmd.Flags().StringVar(&restoreBackupPath, "backup", "", "path to a specific backup file (default: most recent)")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	cwd, err := os.Getwd()
	if err != nil {
		return errors.SessionError("could not determine working directory", err)
	}

	path, err := session.Locate(cwd, sessionID)
	if err != nil {
		return err
	}

	if err := session.Restore(path, sessionID, restoreBackupPath, cfg.Prune.BackupDirName); err != nil {
		return err
	}
	log.Info("session restored", observability.String("path", path))
	fmt.Printf("restored %s\n", sessionID)
	return nil
}
