// Package process starts the claude CLI once a session has been resolved.
//
// There are two ways to hand over to claude. Where the platform can replace
// the running program, cs execs claude in its own place so that signals,
// exit status and the terminal belong to claude alone. Elsewhere cs spawns
// claude as a child with inherited stdio and exits with the child's status.
package process

import (
	"context"
	"errors"
	"fmt"

	"github.com/bikramtuladhar/claude-code-resumer/config"
	pexec "github.com/bikramtuladhar/claude-code-resumer/exec"
)

// ErrNotFound means the executable could not be found.
var ErrNotFound = errors.New("executable not found in PATH")

// ErrUnsupported means the launcher cannot run on this platform.
var ErrUnsupported = errors.New("launch mode not supported on this platform")

// Launcher runs bin with args.
type Launcher interface {
	// Launch returns claude's exit status. A launcher that replaces the
	// current process only returns when it fails to start.
	Launch(ctx context.Context, bin string, args []string) (int, error)
}

// LaunchError reports a failure to start claude.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitCode is 127 when the executable is missing and 1 otherwise.
func (e *LaunchError) ExitCode() int {
	if errors.Is(e.Err, ErrNotFound) {
		return 127
	}
	return 1
}

// DefaultLauncher picks the launcher the platform supports best.
func DefaultLauncher(executor pexec.CommandExecutor) Launcher {
	if execSupported {
		return &ExecLauncher{}
	}
	return NewSpawnLauncher(executor)
}

// ForMode returns the launcher for a configured launch mode.
func ForMode(mode config.LaunchMode, executor pexec.CommandExecutor) (Launcher, error) {
	switch mode {
	case config.LaunchAuto, "":
		return DefaultLauncher(executor), nil
	case config.LaunchExec:
		if !execSupported {
			return nil, fmt.Errorf("launch_mode %q: %w", mode, ErrUnsupported)
		}
		return &ExecLauncher{}, nil
	case config.LaunchSpawn:
		return NewSpawnLauncher(executor), nil
	}
	return nil, fmt.Errorf("unknown launch mode %q", mode)
}
