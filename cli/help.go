package cli

import (
	"fmt"
	"io"

	"github.com/bikramtuladhar/claude-code-resumer/ui"
	"github.com/muesli/reflow/indent"
)

// HelpHint is appended to usage errors.
const HelpHint = "Run 'cs --help' for usage"

// Locations are the files listed under FILES. Empty fields show the default
// location.
type Locations struct {
	Registry string
	Config   string
	Log      string
	// XDG is set when the XDG layout is in use instead of ~/.cs.
	XDG bool
}

func (l Locations) orDefault() Locations {
	if l.Registry == "" {
		l.Registry = "~/.cs/sessions"
	}
	if l.Config == "" {
		l.Config = "~/.cs/config.yaml"
	}
	if l.Log == "" {
		l.Log = "~/.cs/logs/cs.log"
	}
	return l
}

// WriteHelp writes the usage text. checks, when non-empty, are listed under
// PREREQUISITES.
func WriteHelp(w io.Writer, loc Locations, checks []CheckResult, color bool) {
	section := func(title string) {
		fmt.Fprintf(w, "\n%s\n", ui.Heading(title, color))
	}

	fmt.Fprintln(w, "cs - Claude Code Session Manager")

	section("USAGE:")
	fmt.Fprintln(w, "    cs [flags] [claude flags] [prompt]")
	fmt.Fprintln(w, "    cs <claude subcommand> [args]   Run a claude subcommand directly")
	fmt.Fprintln(w, "    cs upgrade                      Same as --upgrade")

	section("FLAGS:")
	fmt.Fprint(w, indent.String(OwnFlags().FlagUsages(), 2))

	section("PASS-THROUGH:")
	fmt.Fprintln(w, "    Any other claude flag is forwarded unchanged, e.g.")
	fmt.Fprintln(w, "    cs --model opus \"fix the tests\"")
	fmt.Fprintln(w, "    --session-id and -r are managed by cs and rejected.")

	section("SESSION FORMAT:")
	fmt.Fprintln(w, "    <folder>+<branch> -> deterministic UUID v5")
	fmt.Fprintln(w, "    Outside a git repository the folder name alone is used.")

	section("TROUBLESHOOTING:")
	fmt.Fprintln(w, "    If you see \"No conversation found\" error:")
	fmt.Fprintln(w, "        cs --reset   # Clears stale entry and creates fresh session")

	section("ENVIRONMENT VARIABLES:")
	fmt.Fprintln(w, "    CS_NAMESPACE    Custom UUID v5 namespace (default: DNS namespace)")
	fmt.Fprintln(w, "    CS_DB_PATH      Session database location")
	fmt.Fprintln(w, "    CS_CLAUDE_BIN   claude executable to launch")
	fmt.Fprintln(w, "    CS_CONFIG       Config file location")
	fmt.Fprintln(w, "    CS_DEBUG        Enable debug logging")

	loc = loc.orDefault()
	if loc.XDG {
		section("FILES (XDG layout):")
	} else {
		section("FILES:")
	}
	fmt.Fprintf(w, "    Sessions  %s (one UUID per line)\n", loc.Registry)
	fmt.Fprintf(w, "    Config    %s\n", loc.Config)
	fmt.Fprintf(w, "    Log       %s\n", loc.Log)

	if len(checks) > 0 {
		section("PREREQUISITES:")
		fmt.Fprint(w, indent.String(FormatCheckResults(checks), 2))
	}
}
