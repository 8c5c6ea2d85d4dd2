//go:build unix

package process

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/bikramtuladhar/claude-code-resumer/logger"
)

const execSupported = true

// ExecLauncher replaces the cs process with claude.
type ExecLauncher struct{}

// Launch resolves bin and execs it. It does not return on success.
func (l *ExecLauncher) Launch(ctx context.Context, bin string, args []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 1, &LaunchError{Binary: bin, Err: err}
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		return 1, &LaunchError{Binary: bin, Err: ErrNotFound}
	}

	logger.WithComponent("process").Info("exec", "path", path, "args", args)

	argv := append([]string{bin}, args...)
	err = syscall.Exec(path, argv, os.Environ())
	if errors.Is(err, syscall.ENOENT) {
		err = ErrNotFound
	}
	return 1, &LaunchError{Binary: bin, Err: err}
}
