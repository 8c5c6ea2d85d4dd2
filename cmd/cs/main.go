// Package main implements the cs CLI tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bikramtuladhar/claude-code-resumer/cli"
	"github.com/bikramtuladhar/claude-code-resumer/logger"
	"github.com/bikramtuladhar/claude-code-resumer/process"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Close()
	os.Exit(exitCode(err))
}

var rootCmd = &cobra.Command{
	Use:   "cs [flags] [claude flags] [prompt]",
	Short: "cs - Claude Code Session Manager",
	// Every token goes to cli.Classify, which knows claude's flag grammar.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

// exitStatus carries claude's exit status out of RunE without an error message.
type exitStatus int

func (s exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(s)) }

func (s exitStatus) ExitCode() int { return int(s) }

// exitCode reports err on stderr and maps it to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var status exitStatus
	if errors.As(err, &status) {
		return status.ExitCode()
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, cli.HelpHint)
	}
	if errors.Is(err, process.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "Install Claude Code from https://claude.ai/code or set CS_CLAUDE_BIN.")
	}

	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
