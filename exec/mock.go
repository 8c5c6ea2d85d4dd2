package exec

import (
	"context"
	"slices"
	"sync"
)

// MockResponse is what a matched command produces.
type MockResponse struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// CommandMatcher decides whether a rule applies to a command.
type CommandMatcher func(dir, name string, args []string) bool

type mockRule struct {
	match    CommandMatcher
	response MockResponse
}

// MockCall is one recorded invocation.
type MockCall struct {
	Dir  string
	Name string
	Args []string
}

// MockExecutor answers commands from rules, tried in the order they were
// added. Unmatched commands go to the fallback, or succeed with no output.
type MockExecutor struct {
	mu       sync.Mutex
	rules    []mockRule
	calls    []MockCall
	fallback CommandExecutor
}

// NewMockExecutor creates a MockExecutor. fallback may be nil.
func NewMockExecutor(fallback CommandExecutor) *MockExecutor {
	return &MockExecutor{fallback: fallback}
}

// AddRule answers commands accepted by match with response.
func (e *MockExecutor) AddRule(match CommandMatcher, response MockResponse) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, mockRule{match: match, response: response})
}

// AddExactMatch answers name invoked with exactly args.
func (e *MockExecutor) AddExactMatch(name string, args []string, response MockResponse) {
	e.AddRule(func(_, n string, a []string) bool {
		return n == name && slices.Equal(a, args)
	}, response)
}

// AddPrefixMatch answers name invoked with args starting with prefix.
func (e *MockExecutor) AddPrefixMatch(name string, prefix []string, response MockResponse) {
	e.AddRule(func(_, n string, a []string) bool {
		return n == name && len(a) >= len(prefix) && slices.Equal(a[:len(prefix)], prefix)
	}, response)
}

// GetCalls returns a copy of the recorded invocations.
func (e *MockExecutor) GetCalls() []MockCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.calls)
}

// record logs the call and returns the first matching response, or nil.
func (e *MockExecutor) record(dir, name string, args []string) *MockResponse {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, MockCall{Dir: dir, Name: name, Args: slices.Clone(args)})
	for _, rule := range e.rules {
		if rule.match(dir, name, args) {
			resp := rule.response
			return &resp
		}
	}
	return nil
}

func (e *MockExecutor) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	resp := e.record(dir, name, args)
	switch {
	case resp != nil:
		return resp.Stdout, resp.Err
	case e.fallback != nil:
		return e.fallback.Output(ctx, dir, name, args...)
	}
	return nil, nil
}

func (e *MockExecutor) CombinedOutput(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	resp := e.record(dir, name, args)
	switch {
	case resp != nil:
		return slices.Concat(resp.Stdout, resp.Stderr), resp.Err
	case e.fallback != nil:
		return e.fallback.CombinedOutput(ctx, dir, name, args...)
	}
	return nil, nil
}

// Stream writes the response's stdout and stderr to streams.
func (e *MockExecutor) Stream(ctx context.Context, dir string, streams Streams, name string, args ...string) error {
	resp := e.record(dir, name, args)
	switch {
	case resp != nil:
		if streams.Stdout != nil {
			streams.Stdout.Write(resp.Stdout)
		}
		if streams.Stderr != nil {
			streams.Stderr.Write(resp.Stderr)
		}
		return resp.Err
	case e.fallback != nil:
		return e.fallback.Stream(ctx, dir, streams, name, args...)
	}
	return nil
}

var _ CommandExecutor = (*MockExecutor)(nil)
