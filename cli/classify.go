// Package cli classifies cs command lines and checks the tools cs runs.
package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bikramtuladhar/claude-code-resumer/claude"
	"github.com/spf13/pflag"
)

// Kind identifies what an invocation asks cs to do.
type Kind int

const (
	// KindRun resolves a session and launches claude.
	KindRun Kind = iota
	KindHelp
	KindVersion
	KindList
	KindClear
	KindSelfUpdate
	// KindPassthrough forwards Outcome.Args to claude without touching sessions.
	KindPassthrough
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindRun:
		return "run"
	case KindHelp:
		return "help"
	case KindVersion:
		return "version"
	case KindList:
		return "list"
	case KindClear:
		return "clear"
	case KindSelfUpdate:
		return "self-update"
	case KindPassthrough:
		return "passthrough"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Options are the session modes and forwarded arguments of a KindRun outcome.
type Options struct {
	DryRun bool
	Force  bool
	Reset  bool
	Resume bool
	// Passthrough holds the claude arguments in their original order.
	Passthrough []string
}

// Outcome is the result of classifying a command line.
type Outcome struct {
	Kind    Kind
	Options Options
	// Args is the verbatim command line for KindPassthrough.
	Args []string
	// Err is set for KindError and is always a *UsageError.
	Err error
}

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// ExitCode implements the exit status contract used by main.
func (e *UsageError) ExitCode() int { return 1 }

func usageErrorf(format string, args ...any) Outcome {
	return Outcome{Kind: KindError, Err: &UsageError{Msg: fmt.Sprintf(format, args...)}}
}

// directives end classification as soon as they are seen.
var directives = map[string]Kind{
	"help":    KindHelp,
	"version": KindVersion,
	"list":    KindList,
	"clear":   KindClear,
	"upgrade": KindSelfUpdate,
}

// OwnFlags returns cs's own flags. The set is only used for lookups and help
// output; command lines are never parsed with it.
func OwnFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("cs", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.BoolP("force", "f", false, "Force create a new session (ignore the registry)")
	fs.Bool("reset", false, "Remove this session from the registry and create it anew")
	fs.BoolP("resume", "R", false, "Resume via claude's session picker")
	fs.BoolP("dry-run", "n", false, "Show session info without launching claude")
	fs.BoolP("list", "l", false, "List all sessions in the registry")
	fs.Bool("clear", false, "Clear the entire session registry")
	fs.BoolP("upgrade", "U", false, "Upgrade cs to the latest release")
	fs.BoolP("help", "h", false, "Show this help message")
	fs.BoolP("version", "v", false, "Show version")
	return fs
}

var ownFlags = OwnFlags()

// lookupOwn resolves token to one of cs's own flags, or nil.
func lookupOwn(token string) *pflag.Flag {
	switch {
	case strings.HasPrefix(token, "--"):
		return ownFlags.Lookup(token[2:])
	case len(token) == 2 && token[0] == '-':
		return ownFlags.ShorthandLookup(token[1:])
	}
	return nil
}

// Classify splits a command line into cs directives and claude arguments.
func Classify(args []string) Outcome {
	if len(args) > 0 {
		if claude.Subcommands.Has(args[0]) {
			return Outcome{Kind: KindPassthrough, Args: slices.Clone(args)}
		}
		if args[0] == "upgrade" {
			return Outcome{Kind: KindSelfUpdate}
		}
	}

	opts := Options{Passthrough: []string{}}
	for i := 0; i < len(args); i++ {
		token := args[i]

		if f := lookupOwn(token); f != nil {
			if kind, ok := directives[f.Name]; ok {
				return Outcome{Kind: kind}
			}
			switch f.Name {
			case "dry-run":
				opts.DryRun = true
			case "force":
				opts.Force = true
			case "reset":
				opts.Reset = true
			case "resume":
				opts.Resume = true
			}
			continue
		}

		name, _, hasValue := claude.SplitAssignment(token)
		if claude.SessionFlags.Has(name) {
			return usageErrorf("%s conflicts with automatic session management (use --reset or --force to start over)", name)
		}

		switch {
		case claude.BoolFlags.Has(token):
			opts.Passthrough = append(opts.Passthrough, token)
		case claude.ValueFlags.Has(token):
			if i+1 >= len(args) {
				return usageErrorf("flag %s requires a value", token)
			}
			opts.Passthrough = append(opts.Passthrough, token, args[i+1])
			i++
		// Only flags are checked for "name=value"; a prompt may contain "=".
		case !strings.HasPrefix(token, "-"):
			opts.Passthrough = append(opts.Passthrough, token)
		case hasValue:
			if !claude.IsKnownFlag(name) {
				return usageErrorf("unknown flag: %s", name)
			}
			opts.Passthrough = append(opts.Passthrough, token)
		default:
			return usageErrorf("unknown argument: %s", token)
		}
	}

	return Outcome{Kind: KindRun, Options: opts}
}
