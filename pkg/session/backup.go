// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cicd-ai-toolkit/context-prune/pkg/errors"
)

// DefaultBackupDirName is the sibling directory backups are written under,
// relative to the session file's own project directory.
const DefaultBackupDirName = "prune-backup"

// Backup copies the session file at sessionPath to
// <backupDirName>/<sessionId>.jsonl.<unix-ms> in the same project
// directory, creating the backup directory if it doesn't already exist.
// It returns the path of the backup file written.
func Backup(sessionPath, sessionID, backupDirName string) (string, error) {
	if backupDirName == "" {
		backupDirName = DefaultBackupDirName
	}

	projectDir := filepath.Dir(sessionPath)
	backupDir := filepath.Join(projectDir, backupDirName)
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", errors.BackupError("could not create backup directory "+backupDir, err)
	}

	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s.jsonl.%d", sessionID, time.Now().UnixMilli()))

	if err := copyFile(sessionPath, backupPath); err != nil {
		return "", errors.BackupError("could not write backup "+backupPath, err)
	}

	return backupPath, nil
}

// LatestBackup returns the most recently written backup path for
// sessionID in backupDir, chosen by the trailing unix-ms suffix (not
// filesystem mtime, so backups remain comparable across filesystems).
func LatestBackup(backupDir, sessionID string) (string, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return "", errors.BackupError("could not read backup directory "+backupDir, err)
	}

	prefix := sessionID + ".jsonl."
	var best string
	var bestTs int64 = -1

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		ts, err := strconv.ParseInt(strings.TrimPrefix(entry.Name(), prefix), 10, 64)
		if err != nil {
			continue
		}
		if ts > bestTs {
			bestTs = ts
			best = entry.Name()
		}
	}

	if best == "" {
		return "", errors.BackupError("no backups found for session "+sessionID, nil)
	}

	return filepath.Join(backupDir, best), nil
}

// ListBackups returns every backup path for sessionID in backupDir,
// ordered oldest to newest.
func ListBackups(backupDir, sessionID string) ([]string, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return nil, errors.BackupError("could not read backup directory "+backupDir, err)
	}

	prefix := sessionID + ".jsonl."
	type stamped struct {
		path string
		ts   int64
	}
	var found []stamped
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		ts, err := strconv.ParseInt(strings.TrimPrefix(entry.Name(), prefix), 10, 64)
		if err != nil {
			continue
		}
		found = append(found, stamped{path: filepath.Join(backupDir, entry.Name()), ts: ts})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].ts < found[j].ts })

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.path
	}
	return paths, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
