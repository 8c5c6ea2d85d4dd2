// Package session decides which claude session a cs invocation belongs to.
//
// # Session names
//
// A session is named after where it runs: the final component of the working
// directory, joined with the checked out git branch by a plus sign.
//
//	my-project+feature/auth
//
// Outside a git repository the directory name is used on its own. The name
// is hashed into a version 5 UUID (see package identity), so the same
// directory and branch always lead back to the same conversation.
//
// # Lifecycle
//
// 1. New: the identifier is not in the registry. It is recorded, and claude
// is started with --session-id so the conversation is created under it.
//
// 2. Exists: the identifier was recorded by an earlier run. claude is started
// with -r to resume it.
//
// 3. Force: --force creates the session again under the same identifier
// without consulting the registry.
//
// 4. Reset: --reset forgets the identifier first, then behaves like New.
// This is the recovery path when claude no longer knows a recorded session.
//
// 5. Resume with picker: --resume hands the identifier to claude's --resume,
// which falls back to its interactive picker. The registry is left alone.
//
// # Planning
//
// Resolver.Plan only reads the registry. Resolver.Apply performs the removal
// and recording the plan calls for, so --dry-run is simply a plan that is
// printed and never applied.
package session
