// Package output composes the response strings shown to the user.
package output

import (
	"fmt"
	"strings"

	"kiwi/internal/parser"
	"kiwi/internal/task"
)

const (
	// ListHeader precedes the full task list.
	ListHeader = "Here are your tasks:"

	// MatchHeader precedes find results.
	MatchHeader = "Here are the matching tasks:"

	// Indent prefixes a task echoed inside a confirmation.
	Indent = "  "
)

// Numbered renders header followed by "N. <display>" lines, numbered from 1.
// There is no trailing newline.
func Numbered(header string, tasks []task.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
	}
	return b.String()
}

// Echo renders msg followed by the indented display of t.
func Echo(msg string, t task.Task) string {
	return msg + "\n" + Indent + t.String()
}

// Help renders the command reference for forms.
func Help(forms []parser.Form) string {
	width := 0
	for _, f := range forms {
		width = max(width, len(f.Usage()))
	}

	var b strings.Builder
	b.WriteString("Here's what I understand:")
	for _, f := range forms {
		fmt.Fprintf(&b, "\n%s%-*s  %s", Indent, width, f.Usage(), f.Summary)
	}
	b.WriteString("\n\nDate/time is yyyy-MM-dd HHmm (e.g., 2026-02-15 2359), or HHmm for today.")
	b.WriteString("\nA time-only /to falls on the /from date.")
	return b.String()
}

// SingleLine replaces line breaks with spaces for fields that must stay on
// one line, such as remote task titles.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
