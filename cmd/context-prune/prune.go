// Package main provides the context-prune CLI application.
package main

import (
	stdcontext "context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	signalcontext "github.com/cicd-ai-toolkit/context-prune/pkg/context"
	"github.com/cicd-ai-toolkit/context-prune/pkg/errors"
	"github.com/cicd-ai-toolkit/context-prune/pkg/observability"
	"github.com/cicd-ai-toolkit/context-prune/pkg/output"
	"github.com/cicd-ai-toolkit/context-prune/pkg/session"
	"github.com/cicd-ai-toolkit/context-prune/pkg/transcript"
	"github.com/cicd-ai-toolkit/context-prune/pkg/tui"
)

var (
	pruneKeep     int
	pruneBoundary bool
	pruneDryRun   bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune <sessionId>",
	Short: "Prune a session transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrune,
}

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", 0, "number of trailing assistant turns to keep (default: config prune.default_keep)")
	pruneCmd.Flags().BoolVar(&pruneBoundary, "boundary", false, "pick a cut point interactively from detected boundaries")
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "print the report without writing")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	cwd, err := os.Getwd()
	if err != nil {
		return errors.SessionError("could not determine working directory", err)
	}

	path, err := session.Locate(cwd, sessionID)
	if err != nil {
		return err
	}

	lines, err := session.Read(path)
	if err != nil {
		return err
	}
	log.Info("session located", observability.String("path", path), observability.Int("lines", len(lines)))

	var (
		out    []string
		report transcript.Report
	)

	if pruneBoundary {
		boundaries, _ := transcript.AnalyzeBoundaries(lines)
		chosen, err := tui.RunPicker(boundaries)
		if err != nil {
			return errors.ValidationError("boundary picker failed", err)
		}
		if chosen == nil {
			fmt.Println("cancelled, nothing changed")
			return nil
		}
		out, report = transcript.KeepFromBoundary(lines, chosen.LineNumber)
	} else {
		keepN := pruneKeep
		if keepN <= 0 {
			keepN = cfg.Prune.DefaultKeep
		}
		out, report = transcript.KeepByAssistantCount(lines, keepN)
	}

	formatter := output.NewFormatter(pruneDryRun)
	fmt.Print(formatter.FormatReport(sessionID, report))

	if pruneDryRun {
		return nil
	}

	ctx, cancel := signalcontext.WithSignal(stdcontext.Background(), os.Interrupt)
	defer cancel()

	backupPath, err := session.Backup(path, sessionID, cfg.Prune.BackupDirName)
	if err != nil {
		return err
	}
	log.Info("backup written", observability.String("path", backupPath))

	if ctx.Err() != nil {
		return errors.SessionError("interrupted after backup, session left unmodified", ctx.Err())
	}

	if err := session.Write(path, out); err != nil {
		return err
	}

	if ctx.Err() != nil {
		log.Warn("interrupt received during write, session state may be incomplete", observability.String("backup", backupPath))
	}

	log.Info("session pruned", observability.String("path", path), observability.Int("kept", report.Kept), observability.Int("dropped", report.Dropped))

	return nil
}
