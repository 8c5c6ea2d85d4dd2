package cli

import (
	"fmt"
	"os/exec"
	"strings"
)

// Prerequisite represents a CLI tool cs shells out to
type Prerequisite struct {
	Name        string // Command name or path (e.g., "claude", "git")
	Required    bool   // Whether a session can be launched without it
	Description string // Human-readable description
	InstallURL  string // URL for installation instructions
}

// ClaudePrerequisite describes the claude binary cs launches.
func ClaudePrerequisite(binary string) Prerequisite {
	if binary == "" {
		binary = "claude"
	}
	return Prerequisite{
		Name:        binary,
		Required:    true,
		Description: "Claude Code CLI",
		InstallURL:  "https://claude.ai/code",
	}
}

// DefaultPrerequisites returns the CLI tools cs uses
func DefaultPrerequisites(claudeBinary string) []Prerequisite {
	return []Prerequisite{
		ClaudePrerequisite(claudeBinary),
		{
			Name:        "git",
			Required:    false, // Without git the session is keyed by directory only
			Description: "Git version control (optional, for per-branch sessions)",
			InstallURL:  "https://git-scm.com/downloads",
		},
	}
}

// CheckResult contains the result of checking a prerequisite
type CheckResult struct {
	Prerequisite Prerequisite
	Found        bool
	Path         string // Path to the executable if found
	Error        error
}

// Check verifies that a CLI tool is available in PATH
func Check(prereq Prerequisite) CheckResult {
	result := CheckResult{Prerequisite: prereq}

	path, err := exec.LookPath(prereq.Name)
	if err != nil {
		result.Error = fmt.Errorf("%s not found in PATH", prereq.Name)
		return result
	}

	result.Found = true
	result.Path = path
	return result
}

// CheckAll verifies all prerequisites and returns results
func CheckAll(prereqs []Prerequisite) []CheckResult {
	results := make([]CheckResult, len(prereqs))
	for i, prereq := range prereqs {
		results[i] = Check(prereq)
	}
	return results
}

// FormatCheckResults formats check results for display
func FormatCheckResults(results []CheckResult) string {
	var sb strings.Builder

	for _, r := range results {
		status := "✓"
		if !r.Found {
			if r.Prerequisite.Required {
				status = "✗"
			} else {
				status = "○"
			}
		}

		fmt.Fprintf(&sb, "  %s %s", status, r.Prerequisite.Name)
		switch {
		case r.Found:
			fmt.Fprintf(&sb, " (%s)", r.Path)
		case r.Prerequisite.Required:
			sb.WriteString(" [REQUIRED]")
		default:
			sb.WriteString(" [optional]")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
