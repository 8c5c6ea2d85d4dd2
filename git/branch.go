package git

import (
	"context"
	"errors"
	"strings"

	"github.com/bikramtuladhar/claude-code-resumer/logger"
)

var (
	// ErrNotRepository means dir is not inside a git work tree, or git
	// itself could not be run.
	ErrNotRepository = errors.New("not a git repository or no branch found")

	// ErrDetachedHead means HEAD does not point at a branch, so there is no
	// name to key the session by.
	ErrDetachedHead = errors.New("HEAD is detached (not on a branch)")
)

// CurrentBranch returns the name of the branch checked out in dir.
func (s *GitService) CurrentBranch(ctx context.Context, dir string) (string, error) {
	log := logger.WithComponent("git")

	output, err := s.executor.Output(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		log.Debug("rev-parse failed", "dir", dir, "error", err)
		return "", ErrNotRepository
	}

	branch := strings.TrimSpace(string(output))
	switch branch {
	case "":
		return "", ErrNotRepository
	case "HEAD":
		return "", ErrDetachedHead
	}

	log.Debug("current branch", "dir", dir, "branch", branch)
	return branch, nil
}
