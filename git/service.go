// Package git reads the version control context a session is keyed by.
package git

import (
	pexec "github.com/bikramtuladhar/claude-code-resumer/exec"
)

// GitService provides git operations with explicit dependency injection.
// Each GitService instance holds its own executor so tests can swap in a
// MockExecutor without touching global state.
type GitService struct {
	executor pexec.CommandExecutor
}

// NewGitService creates a new GitService with the default real executor.
func NewGitService() *GitService {
	return &GitService{executor: pexec.NewRealExecutor()}
}

// NewGitServiceWithExecutor creates a new GitService with a custom executor.
// This is primarily used for testing where a mock executor is needed.
func NewGitServiceWithExecutor(exec pexec.CommandExecutor) *GitService {
	return &GitService{executor: exec}
}
