// Package main provides the context-prune CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/context-prune/pkg/errors"
	"github.com/cicd-ai-toolkit/context-prune/pkg/output"
	"github.com/cicd-ai-toolkit/context-prune/pkg/session"
	"github.com/cicd-ai-toolkit/context-prune/pkg/transcript"
)

var boundariesCmd = &cobra.Command{
	Use:   "boundaries <sessionId>",
	Short: "List detected boundaries as a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoundaries,
}

func init() {
	rootCmd.AddCommand(boundariesCmd)
}

func runBoundaries(cmd *cobra.Command, args []string) error {
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

	boundaries, _ := transcript.AnalyzeBoundaries(lines)
	formatter := output.NewFormatter(false)
	fmt.Print(formatter.FormatBoundaries(boundaries))
	return nil
}
