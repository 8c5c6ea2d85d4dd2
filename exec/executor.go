// Package exec runs external commands behind an interface so that git, the
// upgrade command and a spawned claude can be replaced by recorded responses
// in tests.
package exec

import (
	"context"
	"io"
	"os/exec"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Output runs a command and returns its stdout.
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

	// CombinedOutput runs a command and returns stdout and stderr interleaved.
	CombinedOutput(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

	// Stream runs a command attached to streams and waits for it.
	Stream(ctx context.Context, dir string, streams Streams, name string, args ...string) error
}

// Streams are the standard streams handed to a streamed command.
// Nil fields leave the corresponding stream unconnected.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// RealExecutor runs commands with os/exec.
type RealExecutor struct{}

// NewRealExecutor returns a new RealExecutor.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

func command(ctx context.Context, dir, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd
}

// Output runs a command and returns its stdout.
func (e *RealExecutor) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	return command(ctx, dir, name, args).Output()
}

// CombinedOutput runs a command and returns stdout and stderr interleaved.
func (e *RealExecutor) CombinedOutput(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	return command(ctx, dir, name, args).CombinedOutput()
}

// Stream runs a command attached to streams and waits for it.
func (e *RealExecutor) Stream(ctx context.Context, dir string, streams Streams, name string, args ...string) error {
	cmd := command(ctx, dir, name, args)
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr
	return cmd.Run()
}

var _ CommandExecutor = (*RealExecutor)(nil)
