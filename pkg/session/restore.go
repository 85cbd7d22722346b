// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package session

import (
	"path/filepath"

	"github.com/cicd-ai-toolkit/context-prune/pkg/errors"
)

// Restore copies backupPath back over sessionPath. If backupPath is
// empty, the most recent backup for sessionID in the backupDirName
// directory beside the session file (prune-backup when backupDirName is
// empty) is used.
func Restore(sessionPath, sessionID, backupPath, backupDirName string) error {
	if backupPath == "" {
		if backupDirName == "" {
			backupDirName = DefaultBackupDirName
		}
		backupDir := filepath.Join(filepath.Dir(sessionPath), backupDirName)

		found, err := LatestBackup(backupDir, sessionID)
		if err != nil {
			return err
		}
		backupPath = found
	}

	if err := copyFile(backupPath, sessionPath); err != nil {
		return errors.BackupError("could not restore backup "+backupPath, err)
	}
	return nil
}
