package process

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	pexec "github.com/bikramtuladhar/claude-code-resumer/exec"
)

func TestUpgrade(t *testing.T) {
	argv := []string{"go", "install", "example.com/cs@latest"}
	mock := pexec.NewMockExecutor(nil)
	mock.AddExactMatch("go", argv[1:], pexec.MockResponse{Stdout: []byte("go: downloading example.com/cs v1.2.0\n")})

	var out bytes.Buffer
	if err := Upgrade(context.Background(), mock, argv, &out); err != nil {
		t.Fatalf("Upgrade: %v", err)
	}

	for _, want := range []string{"Running: go install example.com/cs@latest", "downloading", "cs upgraded."} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	calls := mock.GetCalls()
	if len(calls) != 1 || calls[0].Name != "go" || !slices.Equal(calls[0].Args, argv[1:]) {
		t.Errorf("calls = %+v", calls)
	}
}

func TestUpgrade_Failure(t *testing.T) {
	mock := pexec.NewMockExecutor(nil)
	mock.AddPrefixMatch("brew", nil, pexec.MockResponse{
		Stderr: []byte("Error: No available formula\n"),
		Err:    errors.New("exit status 1"),
	})

	var out bytes.Buffer
	err := Upgrade(context.Background(), mock, []string{"brew", "upgrade", "cs"}, &out)
	if err == nil || !strings.Contains(err.Error(), "upgrade failed") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out.String(), "No available formula") {
		t.Errorf("output should include the command's stderr:\n%s", out.String())
	}
	if len(mock.GetCalls()) != 1 {
		t.Error("upgrade must be attempted exactly once")
	}
}

func TestUpgrade_EmptyCommand(t *testing.T) {
	if err := Upgrade(context.Background(), pexec.NewMockExecutor(nil), nil, &bytes.Buffer{}); !errors.Is(err, ErrNoUpgradeCommand) {
		t.Errorf("err = %v, want ErrNoUpgradeCommand", err)
	}
}
