//go:build !unix

package process

import "context"

const execSupported = false

// ExecLauncher is unavailable on this platform.
type ExecLauncher struct{}

func (l *ExecLauncher) Launch(ctx context.Context, bin string, args []string) (int, error) {
	return 1, &LaunchError{Binary: bin, Err: ErrUnsupported}
}
