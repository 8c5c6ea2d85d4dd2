package process

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"

	pexec "github.com/bikramtuladhar/claude-code-resumer/exec"
	"github.com/bikramtuladhar/claude-code-resumer/logger"
)

// SpawnLauncher runs claude as a child process and waits for it.
type SpawnLauncher struct {
	executor pexec.CommandExecutor
	streams  pexec.Streams
}

// NewSpawnLauncher returns a launcher that attaches the child to cs's own
// stdin, stdout and stderr.
func NewSpawnLauncher(executor pexec.CommandExecutor) *SpawnLauncher {
	return NewSpawnLauncherWithStreams(executor, pexec.Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}

// NewSpawnLauncherWithStreams returns a launcher using the given streams.
func NewSpawnLauncherWithStreams(executor pexec.CommandExecutor, streams pexec.Streams) *SpawnLauncher {
	if executor == nil {
		executor = pexec.NewRealExecutor()
	}
	return &SpawnLauncher{executor: executor, streams: streams}
}

// Launch runs bin and returns its exit status. A non-zero status is not an
// error; only a failure to start is.
func (l *SpawnLauncher) Launch(ctx context.Context, bin string, args []string) (int, error) {
	log := logger.WithComponent("process")

	// The terminal delivers Ctrl-C to claude as well; claude decides what it
	// means, cs just keeps waiting.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	log.Info("spawn", "bin", bin, "args", args)
	err := l.executor.Stream(context.WithoutCancel(ctx), "", l.streams, bin, args...)
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		log.Info("child exited", "code", code)
		return code, nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		err = ErrNotFound
	}
	return 1, &LaunchError{Binary: bin, Err: err}
}
