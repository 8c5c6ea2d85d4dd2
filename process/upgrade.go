package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	pexec "github.com/bikramtuladhar/claude-code-resumer/exec"
	"github.com/bikramtuladhar/claude-code-resumer/logger"
)

// ErrNoUpgradeCommand means the configured upgrade command is empty.
var ErrNoUpgradeCommand = errors.New("no upgrade command configured")

// Upgrade runs argv once and copies its combined output to out.
func Upgrade(ctx context.Context, executor pexec.CommandExecutor, argv []string, out io.Writer) error {
	if len(argv) == 0 {
		return ErrNoUpgradeCommand
	}
	log := logger.WithComponent("upgrade")

	fmt.Fprintf(out, "Running: %s\n", strings.Join(argv, " "))
	output, err := executor.CombinedOutput(ctx, "", argv[0], argv[1:]...)
	out.Write(output)
	if err != nil {
		log.Error("upgrade failed", "argv", argv, "error", err)
		return fmt.Errorf("upgrade failed: %w", err)
	}

	log.Info("upgrade complete", "argv", argv)
	fmt.Fprintln(out, "cs upgraded.")
	return nil
}
