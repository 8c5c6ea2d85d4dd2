package claude

import "strings"

// Subcommands are claude's own commands. When one of them is the first
// argument cs forwards the whole command line unchanged.
var Subcommands = newTokenSet(
	"config",
	"doctor",
	"install",
	"mcp",
	"migrate-installer",
	"plugin",
	"setup-token",
	"update",
)

// BoolFlags take no value.
var BoolFlags = newTokenSet(
	"--allow-dangerously-skip-permissions",
	"--continue", "-c",
	"--dangerously-skip-permissions",
	"--debug", "-d",
	"--disable-slash-commands",
	"--fork-session",
	"--ide",
	"--include-partial-messages",
	"--mcp-debug",
	"--print", "-p",
	"--replay-user-messages",
	"--strict-mcp-config",
	"--verbose",
)

// ValueFlags consume the token that follows them.
var ValueFlags = newTokenSet(
	"--add-dir",
	"--agent",
	"--agents",
	"--allowed-tools", "--allowedTools",
	"--append-system-prompt",
	"--betas",
	"--disallowed-tools", "--disallowedTools",
	"--fallback-model",
	"--input-format",
	"--json-schema",
	"--max-budget-usd",
	"--max-turns",
	"--mcp-config",
	"--model",
	"--output-format",
	"--permission-mode",
	"--permission-prompt-tool",
	"--plugin-dir",
	"--setting-sources",
	"--settings",
	"--system-prompt",
	"--tools",
)

// SessionFlags select a session explicitly and conflict with cs's own
// identifier management.
var SessionFlags = newTokenSet(
	"--session-id",
	"-r",
)

// TokenSet is a fixed set of command line tokens.
type TokenSet map[string]struct{}

func newTokenSet(tokens ...string) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether token is in the set.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// IsKnownFlag reports whether name is a boolean or value flag.
func IsKnownFlag(name string) bool {
	return BoolFlags.Has(name) || ValueFlags.Has(name)
}

// SplitAssignment splits "--flag=value" on the first '='.
func SplitAssignment(token string) (name, value string, ok bool) {
	return strings.Cut(token, "=")
}
