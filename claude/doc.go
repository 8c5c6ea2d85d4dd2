// Package claude describes the command line of the Claude Code CLI.
//
// # Grammar
//
// cs forwards most of its arguments to claude untouched, so it has to know
// which tokens claude accepts and how many tokens each one consumes:
//
//   - Subcommands (doctor, mcp, ...) are handled by claude itself and never
//     take part in session management.
//   - Boolean flags stand alone (--verbose, -p).
//   - Value flags consume the following token (--model opus).
//   - Either kind may be written as --flag=value.
//
// The explicit session flags (--session-id, -r) are reserved: cs chooses the
// session identifier itself and would be contradicted by a user-supplied one.
//
// # Session directives
//
// BuildCommandArgs prefixes the forwarded arguments with the directive that
// selects the session:
//
//	--session-id <id>   create the session with a fixed identifier
//	-r <id>             resume the recorded session
//	--resume <id>       resume, letting claude fall back to its picker
package claude
