// Package testsupport builds cs and prepares isolated environments for
// testscript runs.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	csPath    string
	buildErr  error
)

// FakeGit prints $FAKE_GIT_BRANCH, or fails like git outside a repository.
const FakeGit = `#!/bin/sh
if [ -n "$FAKE_GIT_BRANCH" ]; then
	echo "$FAKE_GIT_BRANCH"
	exit 0
fi
echo "fatal: not a git repository (or any of the parent directories): .git" >&2
exit 128
`

// FakeClaude echoes its arguments and exits with $FAKE_CLAUDE_EXIT.
const FakeClaude = `#!/bin/sh
echo "claude $*"
exit ${FAKE_CLAUDE_EXIT:-0}
`

// BuildCS builds the cs binary once and returns its path.
func BuildCS(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "cs-bin-")
		if err != nil {
			buildErr = err
			return
		}

		csPath = filepath.Join(binDir, "cs")
		cmd := exec.Command("go", "build", "-o", csPath, "./cmd/cs")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build cs: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return csPath
}

// InstallFakes writes executable fake git and claude scripts into dir.
func InstallFakes(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, script := range map[string]string{"git": FakeGit, "claude": FakeClaude} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
			return fmt.Errorf("write fake %s: %w", name, err)
		}
	}
	return nil
}

// SetupScriptEnv configures common environment variables for testscript.
// $CS is the binary under test, HOME is private to the script, and the fake
// git and claude shadow any real ones on PATH.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("CS", BuildCS(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	binDir := filepath.Join(env.WorkDir, ".bin")
	if err := InstallFakes(binDir); err != nil {
		return err
	}
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
	env.Setenv("NO_COLOR", "1")
	return nil
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
