package exec

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMockExecutor_ExactMatch(t *testing.T) {
	mock := NewMockExecutor(nil)
	mock.AddExactMatch("git", []string{"rev-parse", "--abbrev-ref", "HEAD"}, MockResponse{
		Stdout: []byte("main\n"),
	})

	out, err := mock.Output(context.Background(), "/repo", "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "main\n" {
		t.Errorf("expected 'main\\n', got %q", string(out))
	}

	calls := mock.GetCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Dir != "/repo" || calls[0].Name != "git" {
		t.Errorf("unexpected call recorded: %+v", calls[0])
	}
}

func TestMockExecutor_PrefixMatch(t *testing.T) {
	mock := NewMockExecutor(nil)
	mock.AddPrefixMatch("go", []string{"install"}, MockResponse{Stdout: []byte("installed")})

	ctx := context.Background()
	out, err := mock.CombinedOutput(ctx, "", "go", "install", "example.com/cmd/cs@latest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "installed" {
		t.Errorf("expected 'installed', got %q", string(out))
	}

	// Different prefix falls through to the empty default.
	out, _ = mock.CombinedOutput(ctx, "", "go", "build")
	if len(out) != 0 {
		t.Errorf("expected empty output for unmatched command, got %q", string(out))
	}
}

func TestMockExecutor_Error(t *testing.T) {
	mock := NewMockExecutor(nil)
	expectedErr := errors.New("exit status 128")
	mock.AddExactMatch("git", []string{"rev-parse", "--abbrev-ref", "HEAD"}, MockResponse{
		Stderr: []byte("fatal: not a git repository"),
		Err:    expectedErr,
	})

	out, err := mock.CombinedOutput(context.Background(), "", "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != expectedErr {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if string(out) != "fatal: not a git repository" {
		t.Errorf("unexpected output %q", string(out))
	}
}

func TestMockExecutor_CombinedOutputDoesNotAliasResponse(t *testing.T) {
	mock := NewMockExecutor(nil)
	stdout := make([]byte, 3, 16)
	copy(stdout, "out")
	mock.AddExactMatch("cmd", nil, MockResponse{Stdout: stdout, Stderr: []byte("err")})

	ctx := context.Background()
	first, _ := mock.CombinedOutput(ctx, "", "cmd")
	second, _ := mock.CombinedOutput(ctx, "", "cmd")
	if string(first) != "outerr" || string(second) != "outerr" {
		t.Errorf("expected 'outerr' twice, got %q and %q", first, second)
	}
}

func TestMockExecutor_Stream(t *testing.T) {
	mock := NewMockExecutor(nil)
	mock.AddPrefixMatch("claude", nil, MockResponse{
		Stdout: []byte("hello from claude"),
		Stderr: []byte("warn"),
	})

	var out, errOut bytes.Buffer
	err := mock.Stream(context.Background(), "", Streams{Stdout: &out, Stderr: &errOut}, "claude", "--session-id", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hello from claude" || errOut.String() != "warn" {
		t.Errorf("unexpected streamed output %q / %q", out.String(), errOut.String())
	}

	calls := mock.GetCalls()
	if len(calls) != 1 || strings.Join(calls[0].Args, " ") != "--session-id x" {
		t.Errorf("unexpected calls: %+v", calls)
	}
}

func TestMockExecutor_Fallback(t *testing.T) {
	mock := NewMockExecutor(NewRealExecutor())
	mock.AddPrefixMatch("git", nil, MockResponse{Stdout: []byte("mocked")})

	ctx := context.Background()

	out, err := mock.Output(ctx, "", "git", "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "mocked" {
		t.Errorf("expected 'mocked', got %q", string(out))
	}

	out, err = mock.Output(ctx, "", "echo", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello\n" {
		t.Errorf("expected 'hello\\n', got %q", string(out))
	}
	if len(mock.GetCalls()) != 2 {
		t.Errorf("fallback calls should be recorded too, got %+v", mock.GetCalls())
	}
}

func TestMockExecutor_RuleOrder(t *testing.T) {
	mock := NewMockExecutor(nil)
	mock.AddExactMatch("git", []string{"rev-parse", "--abbrev-ref", "HEAD"}, MockResponse{Stdout: []byte("specific")})
	mock.AddPrefixMatch("git", []string{"rev-parse"}, MockResponse{Stdout: []byte("general")})

	ctx := context.Background()
	if out, _ := mock.Output(ctx, "", "git", "rev-parse", "--abbrev-ref", "HEAD"); string(out) != "specific" {
		t.Errorf("expected 'specific', got %q", string(out))
	}
	if out, _ := mock.Output(ctx, "", "git", "rev-parse", "--show-toplevel"); string(out) != "general" {
		t.Errorf("expected 'general', got %q", string(out))
	}
}

func TestMockExecutor_GetCallsIsACopy(t *testing.T) {
	mock := NewMockExecutor(nil)
	mock.Output(context.Background(), "/dir1", "cmd1", "arg1")

	calls := mock.GetCalls()
	calls[0].Name = "changed"
	if mock.GetCalls()[0].Name != "cmd1" {
		t.Error("GetCalls should not expose the recorded slice")
	}
}
