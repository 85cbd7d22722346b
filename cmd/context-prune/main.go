// Package main is the entry point for the context-prune CLI.
package main

import (
	"os"

	"github.com/cicd-ai-toolkit/context-prune/pkg/errors"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
