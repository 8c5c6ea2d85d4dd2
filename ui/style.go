// Package ui renders cs's terminal output.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const rule = "─────────────────────────────────────────────"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("33")).
			PaddingLeft(1)
)

// ColorEnabled reports whether styled output should be written to f.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Heading styles a section title.
func Heading(s string, color bool) string {
	if !color {
		return s
	}
	return headingStyle.Render(s)
}

// Field is one labelled row of a Box.
type Field struct {
	Label string
	Value string
}

// Box renders fields as an aligned block framed on the left.
func Box(fields []Field, color bool) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label)+1)
	}

	rows := make([]string, len(fields))
	for i, f := range fields {
		label := f.Label + ":" + strings.Repeat(" ", width-len(f.Label))
		if color {
			label = labelStyle.Render(label)
		}
		rows[i] = label + f.Value
	}

	if color {
		return boxStyle.Render(strings.Join(rows, "\n")) + "\n"
	}

	var sb strings.Builder
	sb.WriteString("┌" + rule + "\n")
	for _, row := range rows {
		sb.WriteString("│ " + row + "\n")
	}
	sb.WriteString("└" + rule + "\n")
	return sb.String()
}
