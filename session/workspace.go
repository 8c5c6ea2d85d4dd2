package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bikramtuladhar/claude-code-resumer/git"
	"github.com/bikramtuladhar/claude-code-resumer/logger"
)

var (
	// ErrNoWorkspace means the working directory has no usable name.
	ErrNoWorkspace = errors.New("failed to get folder name")

	// ErrBranchRequired means a branch is required but none was found.
	ErrBranchRequired = errors.New("not on a git branch (require_branch is set)")
)

// BranchReader reports the git branch checked out in a directory.
type BranchReader interface {
	CurrentBranch(ctx context.Context, dir string) (string, error)
}

// WorkspaceName returns the final component of dir.
func WorkspaceName(dir string) (string, error) {
	if dir == "" {
		return "", ErrNoWorkspace
	}
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == string(filepath.Separator) {
		return "", ErrNoWorkspace
	}
	return name, nil
}

// Locate returns the workspace name and branch for dir. A missing branch is
// only an error when requireBranch is set; a detached HEAD always is.
func Locate(ctx context.Context, branches BranchReader, dir string, requireBranch bool) (workspace, branch string, err error) {
	workspace, err = WorkspaceName(dir)
	if err != nil {
		return "", "", err
	}

	branch, err = branches.CurrentBranch(ctx, dir)
	switch {
	case err == nil:
		return workspace, branch, nil
	case errors.Is(err, git.ErrNotRepository) && !requireBranch:
		logger.WithComponent("session").Debug("no git branch", "dir", dir)
		return workspace, "", nil
	case errors.Is(err, git.ErrNotRepository):
		return "", "", fmt.Errorf("%w: %v", ErrBranchRequired, err)
	}
	return "", "", err
}
