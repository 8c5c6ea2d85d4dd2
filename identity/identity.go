// Package identity derives deterministic session identifiers.
//
// A session identifier is a version 5 (SHA-1, name-based) UUID computed from
// a namespace and a session name such as "my-project+feature/auth". The same
// workspace on the same branch therefore always maps to the same claude
// session, across machines and reinstalls, as long as the namespace matches.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace seeds identifier derivation.
type Namespace = uuid.UUID

// DefaultNamespace is the RFC 4122 DNS namespace.
var DefaultNamespace = uuid.NameSpaceDNS

// Derive returns the canonical 36-character identifier for name under ns.
func Derive(ns Namespace, name string) string {
	return uuid.NewSHA1(ns, []byte(name)).String()
}

// SessionName joins a workspace and branch into the name that gets hashed.
// An empty branch means the workspace is not under version control.
func SessionName(workspace, branch string) string {
	if branch == "" {
		return workspace
	}
	return workspace + "+" + branch
}

// ParseNamespace parses a namespace written as 32 hex digits. Hyphens, braces
// and any other non-hex characters are ignored and case does not matter.
func ParseNamespace(s string) (Namespace, bool) {
	var b strings.Builder
	for _, r := range s {
		if isHexDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() != 32 {
		return uuid.Nil, false
	}
	ns, err := uuid.Parse(b.String())
	if err != nil {
		return uuid.Nil, false
	}
	return ns, true
}

// ResolveNamespace returns the parsed override, or DefaultNamespace when the
// override is empty or malformed.
func ResolveNamespace(override string) (ns Namespace, overridden bool) {
	if override == "" {
		return DefaultNamespace, false
	}
	if ns, ok := ParseNamespace(override); ok {
		return ns, true
	}
	return DefaultNamespace, false
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
